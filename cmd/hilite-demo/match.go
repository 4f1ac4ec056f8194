package main

import (
	"strings"

	graphemeutil "github.com/iw2rmb/hilite/internal/grapheme"
	"github.com/iw2rmb/hilite/richtext"
)

// dialRange locates the digits of query inside phone, skipping the
// formatting characters of phone. The query must look like something typed
// on a dial pad: digits plus optional "+-() " separators.
func dialRange(phone, query string) (richtext.Range, bool) {
	want, ok := dialDigits(query)
	if !ok {
		return richtext.Range{}, false
	}

	var digits strings.Builder
	var cols []int
	for col, c := range graphemeutil.Split(phone) {
		if len(c) == 1 && isDigit(c[0]) {
			digits.WriteByte(c[0])
			cols = append(cols, col)
		}
	}

	idx := strings.Index(digits.String(), want)
	if idx < 0 {
		return richtext.Range{}, false
	}
	return richtext.Range{Start: cols[idx], End: cols[idx+len(want)-1] + 1}, true
}

func dialDigits(query string) (string, bool) {
	var sb strings.Builder
	for i := 0; i < len(query); i++ {
		b := query[i]
		switch {
		case isDigit(b):
			sb.WriteByte(b)
		case strings.IndexByte("+-() ", b) >= 0:
		default:
			return "", false
		}
	}
	if sb.Len() == 0 {
		return "", false
	}
	return sb.String(), true
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
