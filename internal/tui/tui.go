package tui

import (
	"fmt"
	"log"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"autoformat/internal/config"
	"autoformat/internal/field"
	"autoformat/internal/mask"
	"autoformat/internal/tui/state"
	"autoformat/internal/tui/util"
	"autoformat/internal/tui/widgets/diff"
	"autoformat/internal/tui/widgets/editor"
	"autoformat/internal/tui/widgets/helpoverlay"
	"autoformat/internal/tui/widgets/statusbar"
	"autoformat/internal/tui/widgets/tagchips"
)

// Options configures the masked field program.
type Options struct {
	Presets *config.Config // config.Default() when nil
	Preset  string         // initial preset; first name when empty or unknown
	Value   string         // initial raw value
	Static  bool           // start in the static view
	NoColor bool
	Debug   bool // log every reconciliation through the standard logger
}

// Result is what the field held when the program ended.
type Result struct {
	Preset    string
	Raw       string
	Formatted string
	Submitted bool // false when the user quit instead of accepting
}

// Run shows a single masked input field. The user types into it, can flip
// to the static view, cycle presets and copy the value out.
func Run(o Options) (Result, error) {
	p := tea.NewProgram(newModel(o))
	final, err := p.Run()
	if err != nil {
		return Result{}, err
	}
	return final.(model).result(), nil
}

// ===== Model =====

type model struct {
	// data
	presets *config.Config
	names   []string
	f       *field.Field

	// display before the last edit, for the diff panel
	prev string

	// ui state
	ui        state.UIState
	keys      keyMap
	editor    editor.Editor
	diff      diff.DiffView
	status    statusbar.StatusBar
	help      helpoverlay.HelpOverlay
	submitted bool

	// clipboard access; swapped out in tests
	copyFn  func(string) error
	pasteFn func() (string, error)
}

func newModel(o Options) model {
	presets := o.Presets
	if presets == nil {
		presets = config.Default()
	}
	names := config.Names(presets)
	idx := 0
	for i, n := range names {
		if n == o.Preset {
			idx = i
		}
	}
	noColor := util.NoColor(o.NoColor)
	m := model{
		presets: presets,
		names:   names,
		f:       field.New(field.Options{}),
		ui:      state.UIState{Preset: idx, Presets: len(names), NoColor: noColor},
		keys:    defaultKeyMap(),
		editor:  editor.NewEditor(noColor),
		diff:    diff.NewDiffView(),
		status:  statusbar.NewStatusBar(),
		help:    helpoverlay.NewHelpOverlay(0),
		copyFn:  clipboard.WriteAll,
		pasteFn: clipboard.ReadAll,
	}
	if o.Debug {
		m.f.OnChange(func(c field.Change) {
			log.Printf("edit %s: raw=%q formatted=%q cursor=%d", c.Outcome, c.Raw, c.Formatted, c.Cursor)
		})
	}
	m.applyPreset()
	if o.Value != "" {
		m.f.SetText(o.Value)
	}
	m.prev = m.f.Display()
	if o.Static || m.preset().StaticEnabled {
		m.ui.Mode = state.STATIC
		m.f.SetStaticFormatEnabled(true)
	}
	return m
}

func (m model) Init() tea.Cmd { return nil }

// Update handles all TUI interactions.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ui = state.Resize(m.ui, msg.Width)
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.ui = state.SetNotice(m.ui, "")
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Submit):
		m.submitted = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Static):
		m.ui = state.ToggleMode(m.ui)
		m.f.SetStaticFormatEnabled(m.ui.Mode == state.STATIC)
	case key.Matches(msg, m.keys.Diff):
		m.ui = state.ToggleDiff(m.ui)
	case key.Matches(msg, m.keys.Help):
		m.ui = state.ToggleHelp(m.ui)
	case key.Matches(msg, m.keys.NextPreset):
		m.ui = state.NextPreset(m.ui)
		m.switchPreset()
	case key.Matches(msg, m.keys.PrevPreset):
		m.ui = state.PrevPreset(m.ui)
		m.switchPreset()

	case key.Matches(msg, m.keys.Copy):
		m.copy(m.f.Unformatted(), "raw value")
	case key.Matches(msg, m.keys.CopyFormatted):
		m.copy(m.f.Formatted(), "formatted value")
	case key.Matches(msg, m.keys.Paste):
		text, err := m.pasteFn()
		if err != nil {
			m.ui = state.SetNotice(m.ui, "Paste failed: "+err.Error())
			break
		}
		m.edit(func() bool { return m.f.Insert(text) })

	case key.Matches(msg, m.keys.Left):
		m.f.MoveCursor(-1)
	case key.Matches(msg, m.keys.Right):
		m.f.MoveCursor(1)
	case key.Matches(msg, m.keys.Home):
		m.f.MoveTo(0)
	case key.Matches(msg, m.keys.End):
		m.f.MoveTo(len([]rune(m.f.Display())))
	case key.Matches(msg, m.keys.SelectLeft):
		m.f.ExtendSelection(-1)
	case key.Matches(msg, m.keys.SelectRight):
		m.f.ExtendSelection(1)

	case key.Matches(msg, m.keys.Backspace):
		m.edit(m.f.Backspace)
	case key.Matches(msg, m.keys.Delete):
		m.edit(m.f.Delete)
	case key.Matches(msg, m.keys.Clear):
		m.edit(m.f.Clear)
	case msg.Type == tea.KeySpace:
		m.edit(func() bool { return m.f.Insert(" ") })
	case msg.Type == tea.KeyRunes:
		text := string(msg.Runes)
		m.edit(func() bool { return m.f.Insert(text) })
	}
	return m, nil
}

// edit runs one field edit and remembers the display it started from.
func (m *model) edit(op func() bool) {
	before := m.f.Display()
	if !op() {
		if m.f.StaticEnabled() {
			m.ui = state.SetNotice(m.ui, "Static view is read-only (ctrl+s to edit)")
		}
		return
	}
	m.prev = before
	if m.f.Last().Outcome == mask.Rejected {
		m.ui = state.SetNotice(m.ui, "Input full")
	}
}

func (m *model) copy(s, what string) {
	if err := m.copyFn(s); err != nil {
		log.Printf("clipboard: %v", err)
		m.ui = state.SetNotice(m.ui, "Copy failed: "+err.Error())
		return
	}
	m.ui = state.SetNotice(m.ui, "Copied "+what)
}

func (m *model) preset() config.Preset {
	if len(m.names) == 0 {
		return config.Preset{}
	}
	return m.presets.Fields[m.names[m.ui.Preset]]
}

func (m *model) presetName() string {
	if len(m.names) == 0 {
		return ""
	}
	return m.names[m.ui.Preset]
}

// applyPreset configures the field for the current preset and re-formats
// the raw value it already holds.
func (m *model) applyPreset() {
	p := m.preset()
	static := p.StaticMask
	if static == "" {
		static = mask.DefaultStaticTemplate
	}
	m.f.SetInputFormatEnabled(!p.InputDisabled)
	m.f.ConfigureStaticMask(static)
	m.f.ConfigureInputMask(p.InputMask, p.PlaceholderRune())
}

func (m *model) switchPreset() {
	before := m.f.Display()
	m.applyPreset()
	m.prev = before
	m.ui = state.SetNotice(m.ui, "Preset: "+m.presetName())
}

func (m model) result() Result {
	return Result{
		Preset:    m.presetName(),
		Raw:       m.f.Unformatted(),
		Formatted: m.f.Formatted(),
		Submitted: m.submitted,
	}
}

// ===== Views =====

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	selStyle   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "205", Dark: "213"}).Bold(true)
	faintStyle = lipgloss.NewStyle().Faint(true)
)

func (m model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Field: %s", m.presetName())) + "\n")
	if t := m.f.InputMask().Template(); t != "" && m.f.InputEnabled() {
		b.WriteString(faintStyle.Render("template "+t) + "\n")
	}
	b.WriteString("\n")

	s, e := m.f.Selection()
	b.WriteString(m.editor.View(m.ui, editor.Buffer{
		Text:     m.f.Display(),
		Ghost:    m.f.Ghost(),
		SelStart: s,
		SelEnd:   e,
		Cursor:   m.f.Cursor(),
	}))
	tags := util.ComputeTags(m.f.Unformatted(), m.f.Capacity(), m.f.Last().Outcome, m.f.StaticEnabled())
	b.WriteString(tagchips.View(tags, m.ui.NoColor) + "\n")

	if m.ui.ShowDiff {
		b.WriteString("\n" + m.diff.View(m.prev, m.f.Display(), m.ui.NoColor))
	}

	b.WriteString("\n" + m.status.View(m.ui, statusbar.Field{
		Preset:   m.presetName(),
		Raw:      m.f.Unformatted(),
		Cursor:   m.f.Cursor(),
		Capacity: m.f.Capacity(),
	}) + "\n")
	b.WriteString(m.help.View(m.ui, m.keys) + "\n")
	return b.String()
}
