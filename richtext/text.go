package richtext

import (
	"fmt"
	"slices"
	"sort"

	"github.com/charmbracelet/lipgloss"

	graphemeutil "github.com/iw2rmb/hilite/internal/grapheme"
)

// Text is an immutable string plus a mutable set of styled spans.
//
// A Text is owned by one caller at a time; it is not safe for concurrent use.
type Text struct {
	text     string
	clusters []string

	// kinds keeps first-attach order; later kinds render on top.
	kinds []Kind
	spans map[Kind][]Span

	version uint64
}

// New wraps text with no spans.
func New(text string) *Text {
	return &Text{
		text:     text,
		clusters: graphemeutil.Split(text),
		spans:    make(map[Kind][]Span),
	}
}

func (t *Text) String() string { return t.text }

// Len returns the number of grapheme clusters.
func (t *Text) Len() int { return len(t.clusters) }

// Version increments every time the span set is modified.
func (t *Text) Version() uint64 { return t.version }

// IsSpanned reports whether any span of any kind is attached.
func (t *Text) IsSpanned() bool {
	for _, list := range t.spans {
		if len(list) > 0 {
			return true
		}
	}
	return false
}

// Spans returns a copy of the spans of kind, ordered by Start.
// An empty kind returns the spans of every kind, ordered by Start and then
// by attach order of their kind.
func (t *Text) Spans(kind Kind) []Span {
	if kind != "" {
		list := t.spans[kind]
		if len(list) == 0 {
			return nil
		}
		return slices.Clone(list)
	}

	var out []Span
	for _, k := range t.kinds {
		out = append(out, t.spans[k]...)
	}
	if len(out) == 0 {
		return nil
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Range.Start < out[j].Range.Start
	})
	return out
}

// Attach sets style over r for kind.
//
// Every span of the same kind that intersects r is detached first and the
// new span covers the union of r and those spans, so a kind never stacks.
// An empty or inverted r is a no-op. A non-empty r outside [0, Len] fails
// with ErrOutOfBounds and leaves t untouched.
func (t *Text) Attach(kind Kind, r Range, style lipgloss.Style) error {
	if r.IsEmpty() {
		return nil
	}
	if err := t.checkRange(r); err != nil {
		return err
	}

	existing := t.spans[kind]
	merged := r
	out := make([]Span, 0, len(existing)+1)
	for _, sp := range existing {
		if sp.Range.Intersects(r) {
			merged = merged.Union(sp.Range)
			continue
		}
		out = append(out, sp)
	}

	i := sort.Search(len(out), func(i int) bool {
		return out[i].Range.Start >= merged.Start
	})
	out = slices.Insert(out, i, Span{Kind: kind, Range: merged, Style: style})

	if _, ok := t.spans[kind]; !ok {
		t.kinds = append(t.kinds, kind)
	}
	t.spans[kind] = out
	t.version++
	return nil
}

// Detach removes every span of kind that intersects r. An empty kind
// detaches intersecting spans of all kinds.
func (t *Text) Detach(kind Kind, r Range) error {
	if r.IsEmpty() {
		return nil
	}
	if err := t.checkRange(r); err != nil {
		return err
	}

	removed := false
	for _, k := range t.kinds {
		if kind != "" && k != kind {
			continue
		}
		list := t.spans[k]
		kept := make([]Span, 0, len(list))
		for _, sp := range list {
			if sp.Range.Intersects(r) {
				removed = true
				continue
			}
			kept = append(kept, sp)
		}
		t.spans[k] = kept
	}
	if removed {
		t.version++
	}
	return nil
}

// NextTransition returns the first span boundary of kind strictly after
// from and strictly before limit, or limit when there is none. An empty kind
// considers every kind.
func (t *Text) NextTransition(from, limit int, kind Kind) int {
	next := limit
	for _, k := range t.kinds {
		if kind != "" && k != kind {
			continue
		}
		for _, sp := range t.spans[k] {
			if sp.Range.Start >= next {
				break
			}
			if b := sp.Range.Start; b > from && b < next {
				next = b
			}
			if b := sp.Range.End; b > from && b < next {
				next = b
			}
		}
	}
	return next
}

func (t *Text) checkRange(r Range) error {
	if r.Start < 0 || r.End > len(t.clusters) || r.Start > r.End {
		return fmt.Errorf("%w: [%d, %d) in text of length %d", ErrOutOfBounds, r.Start, r.End, len(t.clusters))
	}
	return nil
}
