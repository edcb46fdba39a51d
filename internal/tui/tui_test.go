package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"autoformat/internal/config"
	"autoformat/internal/tui/state"
)

func send(t *testing.T, m model, msgs ...tea.Msg) (model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		m = next.(model)
	}
	return m, cmd
}

func typed(s string) []tea.Msg {
	var msgs []tea.Msg
	for _, r := range s {
		if r == ' ' {
			msgs = append(msgs, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
			continue
		}
		msgs = append(msgs, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return msgs
}

func press(t tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: t} }

func phoneModel() model {
	m := newModel(Options{Presets: config.Default(), Preset: "phone", NoColor: true})
	m.copyFn = func(string) error { return nil }
	m.pasteFn = func() (string, error) { return "", nil }
	return m
}

func TestTypingFormatsAsYouGo(t *testing.T) {
	m, _ := send(t, phoneModel(), typed("5551234567")...)
	if got := m.f.Display(); got != "+1(555) 123-4567" {
		t.Fatalf("display = %q", got)
	}
	out := m.View()
	for _, want := range []string{"Field: phone", "+1(555) 123-4567", "[Complete]", `Raw: "5551234567"`} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in view:\n%s", want, out)
		}
	}
}

func TestOverflowShowsNotice(t *testing.T) {
	m, _ := send(t, phoneModel(), typed("55512345678")...)
	if m.f.Unformatted() != "5551234567" {
		t.Fatalf("raw = %q", m.f.Unformatted())
	}
	if m.ui.Notice != "Input full" {
		t.Fatalf("notice = %q", m.ui.Notice)
	}
	if !strings.Contains(m.View(), "[Rejected]") {
		t.Fatalf("expected rejected chip")
	}
}

func TestStaticToggleIsReadOnly(t *testing.T) {
	m, _ := send(t, phoneModel(), typed("5551234567")...)
	m, _ = send(t, m, press(tea.KeyCtrlS))
	if m.ui.Mode != state.STATIC {
		t.Fatalf("mode = %v", m.ui.Mode)
	}
	if got := m.f.Display(); got != "+1(***) ***-4567" {
		t.Fatalf("static display = %q", got)
	}
	m, _ = send(t, m, typed("9")...)
	if m.f.Unformatted() != "5551234567" {
		t.Fatalf("static view accepted input: %q", m.f.Unformatted())
	}
	if !strings.Contains(m.ui.Notice, "read-only") {
		t.Fatalf("notice = %q", m.ui.Notice)
	}
	m, _ = send(t, m, press(tea.KeyCtrlS))
	if got := m.f.Display(); got != "+1(555) 123-4567" {
		t.Fatalf("display after toggle back = %q", got)
	}
}

func TestBackspaceAndClear(t *testing.T) {
	m, _ := send(t, phoneModel(), typed("5551")...)
	m, _ = send(t, m, press(tea.KeyBackspace))
	if got := m.f.Display(); got != "+1(555" {
		t.Fatalf("after backspace = %q", got)
	}
	if m.prev != "+1(555) 1" {
		t.Fatalf("prev = %q", m.prev)
	}
	m, _ = send(t, m, press(tea.KeyCtrlU))
	if m.f.Display() != "" || m.f.Unformatted() != "" {
		t.Fatalf("clear left %q", m.f.Display())
	}
}

func TestPresetCyclingKeepsRaw(t *testing.T) {
	m, _ := send(t, phoneModel(), typed("5551234567")...)
	m, _ = send(t, m, press(tea.KeyTab))
	if m.presetName() != "plain" {
		t.Fatalf("preset = %q", m.presetName())
	}
	if got := m.f.Display(); got != "5551234567" {
		t.Fatalf("plain display = %q", got)
	}
	m, _ = send(t, m, press(tea.KeyShiftTab), press(tea.KeyShiftTab))
	if m.presetName() != "date" {
		t.Fatalf("preset = %q", m.presetName())
	}
	// date holds 8 placeholders, so the raw value is trimmed
	if got := m.f.Display(); got != "55/51/2345" {
		t.Fatalf("date display = %q", got)
	}
}

func TestClipboard(t *testing.T) {
	m, _ := send(t, phoneModel(), typed("555")...)
	var copied []string
	m.copyFn = func(s string) error { copied = append(copied, s); return nil }
	m.pasteFn = func() (string, error) { return "1234567", nil }

	m, _ = send(t, m, press(tea.KeyCtrlY), press(tea.KeyCtrlO))
	if len(copied) != 2 || copied[0] != "555" || copied[1] != "+1(555" {
		t.Fatalf("copied = %q", copied)
	}
	m, _ = send(t, m, press(tea.KeyCtrlV))
	if got := m.f.Display(); got != "+1(555) 123-4567" {
		t.Fatalf("after paste = %q", got)
	}

	m.copyFn = func(string) error { return errors.New("no clipboard") }
	m, _ = send(t, m, press(tea.KeyCtrlY))
	if m.ui.Notice != "Copy failed: no clipboard" {
		t.Fatalf("notice = %q", m.ui.Notice)
	}
}

func TestSubmitAndQuit(t *testing.T) {
	m, _ := send(t, phoneModel(), typed("555")...)
	m, cmd := send(t, m, press(tea.KeyEnter))
	if cmd == nil || !m.submitted {
		t.Fatalf("enter should submit and quit")
	}
	r := m.result()
	if r.Raw != "555" || r.Formatted != "+1(555" || r.Preset != "phone" || !r.Submitted {
		t.Fatalf("result = %+v", r)
	}

	m2, cmd := send(t, phoneModel(), press(tea.KeyEsc))
	if cmd == nil || m2.result().Submitted {
		t.Fatalf("esc should quit without submitting")
	}
}

func TestDiffAndHelpPanels(t *testing.T) {
	m, _ := send(t, phoneModel(), tea.WindowSizeMsg{Width: 80, Height: 24})
	m, _ = send(t, m, press(tea.KeyCtrlT), press(tea.KeyF1))
	m, _ = send(t, m, typed("5")...)
	if !m.ui.ShowDiff || !m.ui.ShowHelp {
		t.Fatalf("panels not toggled: %+v", m.ui)
	}
	out := m.View()
	if !strings.Contains(out, "{+") {
		t.Fatalf("expected insertion marker in diff:\n%s", out)
	}
	if !strings.Contains(out, "Help (Mode: EDIT)") {
		t.Fatalf("expected help header:\n%s", out)
	}
}

func TestInitialValueAndStaticPreset(t *testing.T) {
	c := config.Default()
	p := c.Fields["ssn"]
	p.StaticEnabled = true
	c.Fields["ssn"] = p
	m := newModel(Options{Presets: c, Preset: "ssn", Value: "123456789", NoColor: true})
	if m.ui.Mode != state.STATIC {
		t.Fatalf("expected static mode")
	}
	if got := m.f.Display(); got != "***-**-6789" {
		t.Fatalf("display = %q", got)
	}
	if got := m.f.Formatted(); got != "123-45-6789" {
		t.Fatalf("formatted = %q", got)
	}
}
