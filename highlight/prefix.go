package highlight

import (
	graphemeutil "github.com/iw2rmb/hilite/internal/grapheme"
	"github.com/iw2rmb/hilite/richtext"
)

// FindPrefixRange returns the cluster range of the first case-insensitive
// occurrence of prefix that starts at a word boundary of text.
//
// A word boundary is the start of text or a position whose previous cluster
// is neither a letter nor a digit. Empty text or prefix never match.
func FindPrefixRange(text, prefix string) (richtext.Range, bool) {
	if text == "" || prefix == "" {
		return richtext.Range{}, false
	}

	tc := graphemeutil.Fold(graphemeutil.Split(text))
	pc := graphemeutil.Fold(graphemeutil.Split(prefix))

	for i := 0; i+len(pc) <= len(tc); i++ {
		if i > 0 && graphemeutil.IsWord(tc[i-1]) {
			continue
		}
		if hasPrefixAt(tc, pc, i) {
			return richtext.Range{Start: i, End: i + len(pc)}, true
		}
	}
	return richtext.Range{}, false
}

func hasPrefixAt(text, prefix []string, at int) bool {
	for j, c := range prefix {
		if text[at+j] != c {
			return false
		}
	}
	return true
}
