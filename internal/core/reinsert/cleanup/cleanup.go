package cleanup

import (
	"reflect"

	"github.com/dfki-mlt/transins-go/internal/core/tagmodel"
	"github.com/dfki-mlt/transins-go/internal/platform/observability"
)

// Result is the outcome of running the full cleanup pipeline.
type Result struct {
	Tokens []tagmodel.Token
	Unused []tagmodel.Tag
}

type pass struct {
	name string
	run  func([]tagmodel.Token) []tagmodel.Token
}

var passes = []pass{
	{"move_bpe", MoveTagsOutOfBPE},
	{"undo_bpe", UndoBPE},
	{"repair_inversions", RepairInversions},
	{"remove_redundant", RemoveRedundant},
	{"balance", Balance},
	{"merge_neighbor_pairs", MergeNeighborPairs},
}

// Run applies the six cleanup passes in their fixed order (spec §4.7) and
// reports any source tag pair that did not survive into the output. The
// pipeline is idempotent: running it again on Result.Tokens returns the same
// tokens and no further unused tags.
func Run(tokens []tagmodel.Token, tagMap *tagmodel.TagMap) Result {
	for _, p := range passes {
		next := p.run(tokens)
		if !reflect.DeepEqual(next, tokens) {
			observability.CleanupPassRepairs.WithLabelValues(p.name).Inc()
		}

		tokens = next
	}

	return Result{
		Tokens: tokens,
		Unused: CollectUnused(tokens, tagMap),
	}
}
