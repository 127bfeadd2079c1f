package cleanup

import "github.com/dfki-mlt/transins-go/internal/core/tagmodel"

// CollectUnused diffs the final output's tag multiset against the source
// tag pairs known to tagMap (spec §4.7 step 7), returning every pair
// endpoint that did not survive into the output.
func CollectUnused(output []tagmodel.Token, tagMap *tagmodel.TagMap) []tagmodel.Tag {
	present := make(map[tagmodel.Tag]bool, len(output))

	for _, tok := range output {
		if tok.IsTag {
			present[tok.Tag] = true
		}
	}

	var unused []tagmodel.Tag

	for _, pair := range tagMap.Pairs() {
		if !present[pair.Open] {
			unused = append(unused, pair.Open)
		}

		if !present[pair.Close] {
			unused = append(unused, pair.Close)
		}
	}

	return unused
}
