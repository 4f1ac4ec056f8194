// Package grapheme holds the cluster-level text helpers shared by the
// richtext and highlight packages. Every index in this module counts
// grapheme clusters.
package grapheme

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"
	"golang.org/x/text/cases"
)

// Split returns grapheme clusters for text in visual order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, utf8.RuneCountInString(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	return uniseg.GraphemeClusterCount(text)
}

// Slice returns the substring covering clusters [start, end).
func Slice(text string, start, end int) string {
	if text == "" {
		return ""
	}
	if start < 0 {
		start = 0
	}
	if end <= start {
		return ""
	}

	g := uniseg.NewGraphemes(text)
	idx := 0
	var sb strings.Builder
	for g.Next() {
		if idx >= end {
			break
		}
		if idx >= start {
			sb.WriteString(g.Str())
		}
		idx++
	}
	return sb.String()
}

// IsWord reports whether cluster starts with a letter or digit.
// Combining marks ride along with their base rune, so only the first rune counts.
func IsWord(cluster string) bool {
	r, size := utf8.DecodeRuneInString(cluster)
	if size == 0 || r == utf8.RuneError && size == 1 {
		return false
	}
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// Fold returns the clusters with Unicode case folding applied to each one.
// Folding is per cluster so indexes line up with Split of the original text.
func Fold(clusters []string) []string {
	if len(clusters) == 0 {
		return nil
	}
	c := cases.Fold()
	out := make([]string, len(clusters))
	for i, s := range clusters {
		out[i] = c.String(s)
	}
	return out
}
