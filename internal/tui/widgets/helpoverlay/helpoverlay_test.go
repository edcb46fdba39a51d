package helpoverlay

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/key"

	"autoformat/internal/tui/state"
)

type testKeys struct {
	quit, copy key.Binding
}

func (k testKeys) ShortHelp() []key.Binding  { return []key.Binding{k.quit} }
func (k testKeys) FullHelp() [][]key.Binding { return [][]key.Binding{{k.quit}, {k.copy}} }

func TestShortAndFullHelp(t *testing.T) {
	keys := testKeys{
		quit: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "quit")),
		copy: key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "copy raw")),
	}
	h := NewHelpOverlay(80)

	short := h.View(state.UIState{}, keys)
	if !strings.Contains(short, "quit") || strings.Contains(short, "copy raw") {
		t.Fatalf("unexpected short help: %q", short)
	}

	full := h.View(state.UIState{ShowHelp: true, Mode: state.STATIC}, keys)
	if !strings.HasPrefix(full, "Help (Mode: STATIC)\n") || !strings.Contains(full, "copy raw") {
		t.Fatalf("unexpected full help: %q", full)
	}
}
