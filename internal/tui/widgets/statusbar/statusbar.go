package statusbar

import (
	"fmt"
	"strings"

	"autoformat/internal/tui/state"
)

// Field is the part of the field state the status line reports.
type Field struct {
	Preset   string
	Raw      string
	Cursor   int
	Capacity int // -1 without an input template
}

type StatusBar struct{}

func NewStatusBar() StatusBar { return StatusBar{} }

// View composes a concise status line reflecting key UI and field state.
func (StatusBar) View(s state.UIState, f Field) string {
	mode := "[EDIT]"
	if s.Mode == state.STATIC {
		mode = "[STATIC]"
	}
	preset := f.Preset
	if preset == "" {
		preset = "(none)"
	}
	capacity := "∞"
	if f.Capacity >= 0 {
		capacity = fmt.Sprint(f.Capacity)
	}
	parts := []string{
		mode,
		"Preset: " + preset,
		fmt.Sprintf("Raw: %q", f.Raw),
		fmt.Sprintf("Cur:%d", f.Cursor),
		fmt.Sprintf("Len:%d/%s", len([]rune(f.Raw)), capacity),
	}
	if s.Width > 0 {
		parts = append(parts, fmt.Sprintf("W:%d", s.Width))
	}
	if s.Notice != "" {
		parts = append(parts, s.Notice)
	}
	return strings.Join(parts, "  ")
}
