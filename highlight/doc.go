// Package highlight marks query matches inside display strings.
//
// A Highlighter is configured once with the styles it attaches. Prefix
// highlighting bolds the leading part of the first word that starts with a
// typed query and returns a new richtext.Text. Masking highlighting marks an
// arbitrary cluster range on a caller-owned richtext.Text in place.
package highlight
