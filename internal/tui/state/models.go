package state

// EditorMode represents what the field shows.
type EditorMode int

const (
	EDIT   EditorMode = iota // formatted text, editable
	STATIC                   // static mask rendering, read-only
)

// UIState holds cross-widget UI state used by status bar, editor, diff and help.
type UIState struct {
	// Mode & panels
	Mode     EditorMode
	ShowDiff bool
	ShowHelp bool

	// Layout
	Width int

	// Preset cycling
	Preset  int // index into the sorted preset names
	Presets int // number of presets available

	NoColor bool

	// Notices and ephemeral messages
	Notice string
}
