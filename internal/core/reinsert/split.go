package reinsert

import "github.com/dfki-mlt/transins-go/internal/core/tagmodel"

// Split is the decomposition of a source sentence into sentence-spanning
// prefix tags, sentence-spanning suffix tags, and everything in between
// (spec §4.3). Prefix tags are openings (and leading isolated tags) that
// enclose the whole inner region; suffix tags are their closers (and
// trailing isolated tags).
type Split struct {
	Prefix []tagmodel.Tag
	Suffix []tagmodel.Tag
	Inner  []tagmodel.Token
}

// SplitTagsSentence peels sentence-spanning wrapper tags off both ends of a
// source token sequence so the per-token projection pass never has to
// reason about them.
//
// Algorithm (spec §4.3):
//  1. Peel every leading tag into a prefix candidate.
//  2. Peel every trailing tag into a suffix candidate.
//  3. A closing tag only belongs in the suffix if its opening partner is
//     still in the prefix candidate (i.e. the pair truly wraps the whole
//     inner region); otherwise it is pushed back into inner. Symmetrically,
//     an opening tag only belongs in the prefix if its closing partner is
//     still in the suffix candidate. Isolated tags have no partner and so
//     always survive at the edge they were peeled from.
//
// The two checks can cascade (removing one tag can invalidate another), so
// they run to a fixed point.
func SplitTagsSentence(tokens []tagmodel.Token, tagMap *tagmodel.TagMap) Split {
	left := 0
	for left < len(tokens) && tokens[left].IsTag {
		left++
	}

	right := len(tokens)
	for right > left && tokens[right-1].IsTag {
		right--
	}

	prefix := make([]tagmodel.Tag, 0, left)
	for _, tok := range tokens[:left] {
		prefix = append(prefix, tok.Tag)
	}

	suffix := make([]tagmodel.Tag, 0, len(tokens)-right)
	for _, tok := range tokens[right:] {
		suffix = append(suffix, tok.Tag)
	}

	inner := append([]tagmodel.Token(nil), tokens[left:right]...)

	prefix, suffix, inner = stabilizeSplit(prefix, suffix, inner, tagMap)

	return Split{Prefix: prefix, Suffix: suffix, Inner: inner}
}

func stabilizeSplit(prefix, suffix []tagmodel.Tag, inner []tagmodel.Token, tagMap *tagmodel.TagMap) ([]tagmodel.Tag, []tagmodel.Tag, []tagmodel.Token) {
	for {
		changed := false

		prefixIDs := openingIDSet(prefix)
		suffixIDs := closingIDSet(suffix)

		keptSuffix := suffix[:0:0]

		for _, tag := range suffix {
			if tag.Kind == tagmodel.Closing {
				if open, ok := tagMap.OpeningFor(tag); !ok || !prefixIDs[open.ID] {
					inner = append(inner, tagmodel.FromTag(tag))
					changed = true

					continue
				}
			}

			keptSuffix = append(keptSuffix, tag)
		}

		suffix = keptSuffix

		keptPrefix := make([]tagmodel.Tag, 0, len(prefix))

		for i := len(prefix) - 1; i >= 0; i-- {
			tag := prefix[i]
			if tag.Kind == tagmodel.Opening {
				if close, ok := tagMap.ClosingFor(tag); !ok || !suffixIDs[close.ID] {
					inner = append([]tagmodel.Token{tagmodel.FromTag(tag)}, inner...)
					changed = true

					continue
				}
			}

			keptPrefix = append([]tagmodel.Tag{tag}, keptPrefix...)
		}

		prefix = keptPrefix

		if !changed {
			return prefix, suffix, inner
		}
	}
}

func openingIDSet(tags []tagmodel.Tag) map[int]bool {
	set := make(map[int]bool, len(tags))

	for _, t := range tags {
		if t.Kind == tagmodel.Opening {
			set[t.ID] = true
		}
	}

	return set
}

func closingIDSet(tags []tagmodel.Tag) map[int]bool {
	set := make(map[int]bool, len(tags))

	for _, t := range tags {
		if t.Kind == tagmodel.Closing {
			set[t.ID] = true
		}
	}

	return set
}
