package state

// ToggleMode switches between EDIT and STATIC and sets a brief notice.
func ToggleMode(s UIState) UIState {
	if s.Mode == EDIT {
		s.Mode = STATIC
		s.Notice = "[STATIC]"
	} else {
		s.Mode = EDIT
		s.Notice = "[EDIT]"
	}
	return s
}

// ToggleDiff shows or hides the last-edit diff panel.
func ToggleDiff(s UIState) UIState {
	s.ShowDiff = !s.ShowDiff
	return s
}

// ToggleHelp switches between the short and the full key help.
func ToggleHelp(s UIState) UIState {
	s.ShowHelp = !s.ShowHelp
	return s
}

// MinDiffWidth is the narrowest terminal that still shows the diff panel.
const MinDiffWidth = 24

// Resize updates width; narrow terminals drop the diff panel.
func Resize(s UIState, width int) UIState {
	s.Width = width
	if s.ShowDiff && s.Width > 0 && s.Width < MinDiffWidth {
		s.ShowDiff = false
		s.Notice = "Narrow width: diff hidden"
	}
	return s
}

// NextPreset advances to the next preset, wrapping around.
func NextPreset(s UIState) UIState {
	if s.Presets == 0 {
		return s
	}
	s.Preset = (s.Preset + 1) % s.Presets
	return s
}

// PrevPreset goes back one preset, wrapping around.
func PrevPreset(s UIState) UIState {
	if s.Presets == 0 {
		return s
	}
	s.Preset = (s.Preset - 1 + s.Presets) % s.Presets
	return s
}

// SetNotice replaces the notice line.
func SetNotice(s UIState, notice string) UIState {
	s.Notice = notice
	return s
}
