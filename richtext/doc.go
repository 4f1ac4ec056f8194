// Package richtext implements a plain string paired with styled spans.
//
// Coordinates are 0-based grapheme-cluster indexes.
// Ranges are half-open: [Start, End).
// Spans are grouped by Kind; within a kind they never overlap.
package richtext
