package highlight

import (
	"errors"
	"fmt"

	"github.com/iw2rmb/hilite/richtext"
)

// Span kinds attached by a Highlighter.
const (
	KindPrefix richtext.Kind = "prefix"
	KindMask   richtext.Kind = "mask"
)

var ErrNilText = errors.New("highlight: nil text")

// Highlighter attaches prefix and mask emphasis. Its configuration never
// changes after New, so one Highlighter can serve many goroutines; the
// richtext.Text values it mutates cannot.
type Highlighter struct {
	style Style
}

func New(cfg Config) *Highlighter {
	return &Highlighter{style: cfg.Style}
}

func (h *Highlighter) Style() Style { return h.style }

// ApplyPrefixHighlight wraps text and attaches the prefix style over the
// first word-initial match of prefix. Without a match the result has no spans.
func (h *Highlighter) ApplyPrefixHighlight(text, prefix string) *richtext.Text {
	t := richtext.New(text)
	r, ok := FindPrefixRange(text, prefix)
	if !ok {
		return t
	}
	// r is computed from text itself, so it is always in bounds.
	_ = t.Attach(KindPrefix, r, h.style.Prefix)
	return t
}

// ApplyMaskingHighlight attaches the mask style over [start, end) of t.
//
// Mask spans intersecting the range are replaced by one span covering their
// union with it. start >= end leaves t untouched. Indexes outside
// [0, t.Len()] return an error wrapping richtext.ErrOutOfBounds.
func (h *Highlighter) ApplyMaskingHighlight(t *richtext.Text, start, end int) error {
	if start >= end {
		return nil
	}
	if t == nil {
		return ErrNilText
	}
	if err := t.Attach(KindMask, richtext.Range{Start: start, End: end}, h.style.Mask); err != nil {
		return fmt.Errorf("mask highlight: %w", err)
	}
	return nil
}
