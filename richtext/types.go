package richtext

import (
	"errors"

	"github.com/charmbracelet/lipgloss"
)

// ErrOutOfBounds is returned when a range falls outside [0, Len].
var ErrOutOfBounds = errors.New("richtext: range out of bounds")

// Range is a half-open cluster range: [Start, End).
type Range struct {
	Start int
	End   int
}

// IsEmpty reports whether r covers no clusters. Inverted ranges are empty.
func (r Range) IsEmpty() bool {
	return r.Start >= r.End
}

func (r Range) Len() int {
	if r.IsEmpty() {
		return 0
	}
	return r.End - r.Start
}

// Intersects reports whether r and o share at least one cluster.
// Touching ranges such as [0,2) and [2,4) do not intersect.
func (r Range) Intersects(o Range) bool {
	if r.IsEmpty() || o.IsEmpty() {
		return false
	}
	return r.Start < o.End && o.Start < r.End
}

// Union returns the smallest range covering both r and o.
func (r Range) Union(o Range) Range {
	return Range{Start: minInt(r.Start, o.Start), End: maxInt(r.End, o.End)}
}

// Kind names a span attribute. At most one span of a kind covers a cluster.
type Kind string

// Span attaches a style of a given kind to a range.
type Span struct {
	Kind  Kind
	Range Range
	Style lipgloss.Style
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
