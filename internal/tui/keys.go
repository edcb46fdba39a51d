package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap is the field editor's bindings. Printable runes are not bound;
// anything that is not a binding and carries runes is typed into the field.
type keyMap struct {
	Left, Right, Home, End     key.Binding
	SelectLeft, SelectRight    key.Binding
	Backspace, Delete, Clear   key.Binding
	Static, Diff, Help         key.Binding
	NextPreset, PrevPreset     key.Binding
	Copy, CopyFormatted, Paste key.Binding
	Submit, Quit               key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Left:          key.NewBinding(key.WithKeys("left", "ctrl+b"), key.WithHelp("←", "left")),
		Right:         key.NewBinding(key.WithKeys("right", "ctrl+f"), key.WithHelp("→", "right")),
		Home:          key.NewBinding(key.WithKeys("home", "ctrl+a"), key.WithHelp("home", "start")),
		End:           key.NewBinding(key.WithKeys("end", "ctrl+e"), key.WithHelp("end", "end")),
		SelectLeft:    key.NewBinding(key.WithKeys("shift+left"), key.WithHelp("shift+←", "select left")),
		SelectRight:   key.NewBinding(key.WithKeys("shift+right"), key.WithHelp("shift+→", "select right")),
		Backspace:     key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("bksp", "delete back")),
		Delete:        key.NewBinding(key.WithKeys("delete", "ctrl+d"), key.WithHelp("del", "delete")),
		Clear:         key.NewBinding(key.WithKeys("ctrl+u"), key.WithHelp("ctrl+u", "clear")),
		Static:        key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "static view")),
		Diff:          key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "edit diff")),
		Help:          key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "more keys")),
		NextPreset:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next preset")),
		PrevPreset:    key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev preset")),
		Copy:          key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "copy raw")),
		CopyFormatted: key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "copy formatted")),
		Paste:         key.NewBinding(key.WithKeys("ctrl+v"), key.WithHelp("ctrl+v", "paste")),
		Submit:        key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "accept")),
		Quit:          key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Static, k.NextPreset, k.Copy, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Home, k.End, k.SelectLeft, k.SelectRight},
		{k.Backspace, k.Delete, k.Clear, k.Paste},
		{k.Static, k.Diff, k.NextPreset, k.PrevPreset},
		{k.Copy, k.CopyFormatted, k.Submit, k.Quit, k.Help},
	}
}
