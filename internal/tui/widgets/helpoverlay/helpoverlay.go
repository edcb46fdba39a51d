package helpoverlay

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"

	"autoformat/internal/tui/state"
)

type HelpOverlay struct {
	model help.Model
}

func NewHelpOverlay(width int) HelpOverlay {
	m := help.New()
	m.Width = width
	return HelpOverlay{model: m}
}

// View returns the short key help, or the grouped full help with the
// current mode indicated when ShowHelp is set.
func (h HelpOverlay) View(s state.UIState, keys help.KeyMap) string {
	h.model.ShowAll = s.ShowHelp
	if s.Width > 0 {
		h.model.Width = s.Width
	}
	if !s.ShowHelp {
		return h.model.View(keys)
	}
	mode := "EDIT"
	if s.Mode == state.STATIC {
		mode = "STATIC"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Help (Mode: %s)\n", mode)
	b.WriteString(h.model.View(keys))
	return b.String()
}
