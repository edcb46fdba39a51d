package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"autoformat/internal/config"
	"autoformat/internal/field"
	"autoformat/internal/mask"
	"autoformat/internal/tui/views/presets"
)

// CustomPreset is the name an ad-hoc template is stored under.
const CustomPreset = "custom"

type pickerModel struct {
	presets   *config.Config
	names     []string
	cursor    int
	inputMode bool
	input     *field.Field // ad-hoc template, edited as plain text
	noColor   bool
	done      bool
	cancelled bool
	msg       string
}

// PickPreset opens a list of the configured presets. Pressing 'a' lets the
// user type an input template instead; it is added to c as "custom".
// ok is false when the user quit without choosing.
func PickPreset(c *config.Config, noColor bool) (name string, ok bool, err error) {
	m := newPicker(c, noColor)
	p := tea.NewProgram(m, tea.WithAltScreen())
	final, rerr := p.Run()
	if rerr != nil {
		return "", false, rerr
	}
	fm := final.(pickerModel)
	if fm.cancelled || !fm.done {
		return "", false, nil
	}
	return fm.names[fm.cursor], true, nil
}

func newPicker(c *config.Config, noColor bool) pickerModel {
	return pickerModel{
		presets: c,
		names:   config.Names(c),
		input:   field.New(field.Options{}),
		noColor: noColor,
	}
}

func (m pickerModel) Init() tea.Cmd { return nil }

// addCustom validates the typed template and stores it as the custom preset.
func (m *pickerModel) addCustom() bool {
	tmpl := strings.TrimSpace(m.input.Unformatted())
	if tmpl == "" {
		m.msg = "! empty template"
		return false
	}
	if mask.NewInputMask(tmpl, mask.DefaultPlaceholder).PlaceholderCount() == 0 {
		m.msg = fmt.Sprintf("! template %q has no %c placeholder", tmpl, mask.DefaultPlaceholder)
		return false
	}
	m.presets.Fields[CustomPreset] = config.Preset{InputMask: tmpl}
	m.names = config.Names(m.presets)
	for i, n := range m.names {
		if n == CustomPreset {
			m.cursor = i
		}
	}
	m.msg = ""
	return true
}

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	k := strings.ToLower(km.String())
	if m.inputMode {
		switch {
		case k == "enter":
			if m.addCustom() {
				m.inputMode = false
				m.done = true
				return m, tea.Quit
			}
		case k == "esc":
			m.inputMode = false
			m.input.SetText("")
			m.msg = ""
		case km.Type == tea.KeyBackspace || km.Type == tea.KeyCtrlH:
			m.input.Backspace()
		case km.Type == tea.KeySpace:
			m.input.Insert(" ")
		case km.Type == tea.KeyRunes:
			m.input.Insert(string(km.Runes))
		}
		return m, nil
	}
	switch k {
	case "q", "esc", "ctrl+c":
		m.cancelled = true
		return m, tea.Quit
	case "a":
		m.inputMode = true
		m.input.SetText("")
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.names)-1 {
			m.cursor++
		}
	case "enter":
		if len(m.names) > 0 {
			m.done = true
			return m, tea.Quit
		}
	}
	return m, nil
}

var errStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "160", Dark: "203"})

func (m pickerModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Choose a field") + "\n\n")
	if m.msg != "" {
		if m.noColor {
			b.WriteString(m.msg + "\n")
		} else {
			b.WriteString(errStyle.Render(m.msg) + "\n")
		}
	}
	if len(m.names) == 0 {
		b.WriteString("  (no presets)\n")
	}
	b.WriteString(presets.RenderList(m.presets, m.names, m.cursor, m.noColor))
	if m.inputMode {
		b.WriteString("\nTemplate: " + m.input.Display() + "\n")
		b.WriteString(faintStyle.Render("use # for each typed character") + "\n")
		b.WriteString("enter: use   esc: cancel\n")
	} else {
		b.WriteString("\nKeys: " + selStyle.Render("enter") + " choose  a ad-hoc template  j/k move  q quit\n")
	}
	return b.String()
}
