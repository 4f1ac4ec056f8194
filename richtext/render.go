package richtext

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Render returns the text styled with base. Consecutive clusters covered by
// the same spans are rendered as one run; span styles inherit from base and
// kinds attached later are layered over earlier ones.
func (t *Text) Render(base lipgloss.Style) string {
	if len(t.clusters) == 0 {
		return ""
	}

	cursors := make([]int, len(t.kinds))
	active := make([]*Span, len(t.kinds))
	prev := make([]*Span, len(t.kinds))

	var out strings.Builder
	var run strings.Builder
	flush := func() {
		if run.Len() == 0 {
			return
		}
		out.WriteString(layeredStyle(base, prev).Render(run.String()))
		run.Reset()
	}

	for col, c := range t.clusters {
		for i, k := range t.kinds {
			active[i] = spanAt(t.spans[k], &cursors[i], col)
		}
		if col > 0 && !sameSpans(active, prev) {
			flush()
		}
		copy(prev, active)
		run.WriteString(c)
	}
	flush()

	return out.String()
}

// spanAt returns the span covering col, advancing *cursor past spans that
// end at or before col. Spans must be sorted and col must not decrease.
func spanAt(list []Span, cursor *int, col int) *Span {
	for *cursor < len(list) && list[*cursor].Range.End <= col {
		*cursor++
	}
	if *cursor >= len(list) {
		return nil
	}
	sp := &list[*cursor]
	if sp.Range.Start > col {
		return nil
	}
	return sp
}

func sameSpans(a, b []*Span) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func layeredStyle(base lipgloss.Style, layers []*Span) lipgloss.Style {
	st := base
	for _, sp := range layers {
		if sp == nil {
			continue
		}
		st = sp.Style.Inherit(st)
	}
	return st
}
