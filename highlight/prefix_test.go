package highlight

import (
	"strings"
	"testing"

	"pgregory.net/rapid"

	"github.com/iw2rmb/hilite/richtext"
)

func TestFindPrefixRange(t *testing.T) {
	cases := []struct {
		name   string
		text   string
		prefix string
		want   richtext.Range
		ok     bool
	}{
		{name: "empty both", text: "", prefix: ""},
		{name: "empty prefix", text: "test", prefix: ""},
		{name: "empty text", text: "", prefix: "te"},
		{name: "whole word", text: "test", prefix: "test", want: richtext.Range{Start: 0, End: 4}, ok: true},
		{name: "case folded", text: "TeSt", prefix: "tE", want: richtext.Range{Start: 0, End: 2}, ok: true},
		{name: "prefix longer than text", text: "te", prefix: "test"},
		{name: "prefix longer than tail", text: "atest te", prefix: "tes"},
		{name: "second word", text: "a test", prefix: "TE", want: richtext.Range{Start: 2, End: 4}, ok: true},
		{name: "leading spaces", text: "  test", prefix: "te", want: richtext.Range{Start: 2, End: 4}, ok: true},
		{name: "after hyphen", text: "x-test", prefix: "te", want: richtext.Range{Start: 2, End: 4}, ok: true},
		{name: "after apostrophe", text: "it's stuff", prefix: "s", want: richtext.Range{Start: 3, End: 4}, ok: true},
		{name: "first of many", text: "a test's tests are not tests", prefix: "TE", want: richtext.Range{Start: 2, End: 4}, ok: true},
		{name: "mid word", text: "atest", prefix: "TE"},
		{name: "mid word twice", text: "atest otest", prefix: "TE"},
		{name: "mid word then word", text: "atest test", prefix: "TE", want: richtext.Range{Start: 6, End: 8}, ok: true},
		{name: "digits are word characters", text: "4test test", prefix: "te", want: richtext.Range{Start: 6, End: 8}, ok: true},
		{name: "digit prefix", text: "call 555-0100", prefix: "01", want: richtext.Range{Start: 9, End: 11}, ok: true},
		{name: "no match", text: "test", prefix: "TA"},
		{name: "unicode fold", text: "hello Émile", prefix: "ém", want: richtext.Range{Start: 6, End: 8}, ok: true},
		{name: "cluster columns", text: "日本 über", prefix: "ÜB", want: richtext.Range{Start: 3, End: 5}, ok: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := FindPrefixRange(tc.text, tc.prefix)
			if ok != tc.ok {
				t.Fatalf("FindPrefixRange(%q, %q) ok=%v, want %v", tc.text, tc.prefix, ok, tc.ok)
			}
			if got != tc.want {
				t.Fatalf("FindPrefixRange(%q, %q)=%v, want %v", tc.text, tc.prefix, got, tc.want)
			}
		})
	}
}

func isASCIIWord(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

// TestFindPrefixRange_MatchesFirstBoundaryOccurrence compares against a
// byte-level scan over ASCII input, where clusters and bytes coincide.
func TestFindPrefixRange_MatchesFirstBoundaryOccurrence(t *testing.T) {
	alphabet := []rune("aAbB1 '-")
	rapid.Check(t, func(rt *rapid.T) {
		text := rapid.StringOf(rapid.RuneFrom(alphabet)).Draw(rt, "text")
		prefix := rapid.StringOfN(rapid.RuneFrom(alphabet), 1, 3, -1).Draw(rt, "prefix")

		want := -1
		for i := 0; i+len(prefix) <= len(text); i++ {
			if i > 0 && isASCIIWord(text[i-1]) {
				continue
			}
			if strings.EqualFold(text[i:i+len(prefix)], prefix) {
				want = i
				break
			}
		}

		got, ok := FindPrefixRange(text, prefix)
		if want < 0 {
			if ok {
				rt.Fatalf("FindPrefixRange(%q, %q)=%v, want no match", text, prefix, got)
			}
			return
		}
		if !ok || got != (richtext.Range{Start: want, End: want + len(prefix)}) {
			rt.Fatalf("FindPrefixRange(%q, %q)=%v ok=%v, want start %d", text, prefix, got, ok, want)
		}
	})
}
