package editor

import (
	"strings"

	"autoformat/internal/tui/state"
	"autoformat/internal/tui/util"
)

// Buffer is what the editor draws: the visible text, the selection and the
// ghost (the not-yet-filled remainder of the template).
type Buffer struct {
	Text     string
	Ghost    string
	SelStart int
	SelEnd   int
	Cursor   int
}

type Editor struct {
	styles util.FieldStyles
}

func NewEditor(noColor bool) Editor {
	return Editor{styles: util.DefaultFieldStyles(util.DefaultPalette(), noColor)}
}

// View renders the field with its mode, cursor and ghost template. In the
// STATIC mode no cursor is drawn.
func (e Editor) View(s state.UIState, b Buffer) string {
	header := "[EDIT]"
	if s.Mode == state.STATIC {
		header = "[STATIC]"
	}
	var sb strings.Builder
	sb.WriteString(header + "  ")

	text := []rune(b.Text)
	ghost := []rune(b.Ghost)
	for i, r := range text {
		switch {
		case s.Mode == state.EDIT && i == b.Cursor:
			sb.WriteString(e.styles.Cursor.Render(string(r)))
		case i >= b.SelStart && i < b.SelEnd:
			sb.WriteString(e.styles.Selection.Render(string(r)))
		default:
			sb.WriteString(e.styles.Text.Render(string(r)))
		}
	}
	// Cursor at the end sits on the first ghost rune, or on a blank.
	if s.Mode == state.EDIT && b.Cursor >= len(text) {
		cell := " "
		if len(ghost) > 0 {
			cell = string(ghost[0])
			ghost = ghost[1:]
		}
		sb.WriteString(e.styles.Cursor.Render(cell))
	}
	if len(ghost) > 0 {
		sb.WriteString(e.styles.Ghost.Render(string(ghost)))
	}
	sb.WriteString("\n")
	return sb.String()
}
