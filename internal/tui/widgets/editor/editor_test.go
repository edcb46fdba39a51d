package editor

import (
	"strings"
	"testing"

	"autoformat/internal/tui/state"
)

func TestViewNoColor(t *testing.T) {
	e := NewEditor(true)
	out := e.View(state.UIState{Mode: state.EDIT}, Buffer{Text: "12-3", Ghost: "#", Cursor: 4, SelStart: 4, SelEnd: 4})
	if !strings.HasPrefix(out, "[EDIT]  12-3") {
		t.Fatalf("unexpected editor line: %q", out)
	}
	if !strings.Contains(out, "#") {
		t.Fatalf("expected ghost template in output: %q", out)
	}
}

func TestViewStaticHasNoGhostCursor(t *testing.T) {
	e := NewEditor(true)
	out := e.View(state.UIState{Mode: state.STATIC}, Buffer{Text: "+1(***) ***-4567", Cursor: 3})
	if out != "[STATIC]  +1(***) ***-4567\n" {
		t.Fatalf("unexpected static line: %q", out)
	}
}
