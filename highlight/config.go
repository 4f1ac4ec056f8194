package highlight

// Config configures a Highlighter.
type Config struct {
	// Style is copied at construction; start from DefaultStyle and override.
	Style Style
}
