package mask

// Strategy is how a field turns edit events into field states and how it
// renders its static display.
type Strategy interface {
	Reconcile(before, after string, span EditSpan) EditTextState
	FormatStatic(raw string) string
}

// Config selects and parameterises a Strategy.
type Config struct {
	InputMask   string
	Placeholder rune
	StaticMask  string
}

// NewStrategy picks the input-mask strategy when an input template is set,
// the static-only strategy when only a static template is set, and
// Plain otherwise.
func NewStrategy(c Config) Strategy {
	switch {
	case c.InputMask != "":
		ph := c.Placeholder
		if ph == 0 {
			ph = DefaultPlaceholder
		}
		s := &InputStrategy{Input: NewInputMask(c.InputMask, ph)}
		if c.StaticMask != "" {
			s.Static = NewStaticMask(c.StaticMask)
		}
		return s
	case c.StaticMask != "":
		return &StaticStrategy{Static: NewStaticMask(c.StaticMask)}
	default:
		return Plain{}
	}
}

// InputStrategy formats while typing through an InputMask. Static is
// optional; without it the static display is the formatted text.
type InputStrategy struct {
	Input  *InputMask
	Static *StaticMask
}

func (s *InputStrategy) Reconcile(before, after string, span EditSpan) EditTextState {
	return Reconciler{Mask: s.Input}.Reconcile(before, after, span)
}

func (s *InputStrategy) FormatStatic(raw string) string {
	if s.Static == nil {
		return s.Input.Format(raw)
	}
	return s.Static.Format(raw)
}

// StaticStrategy leaves typing alone and only masks the static display.
type StaticStrategy struct {
	Static *StaticMask
}

func (s *StaticStrategy) Reconcile(before, after string, span EditSpan) EditTextState {
	return Reconciler{}.Reconcile(before, after, span)
}

func (s *StaticStrategy) FormatStatic(raw string) string { return s.Static.Format(raw) }

// Plain behaves like an unmasked text field.
type Plain struct{}

func (Plain) Reconcile(before, after string, span EditSpan) EditTextState {
	return Reconciler{}.Reconcile(before, after, span)
}

func (Plain) FormatStatic(raw string) string { return raw }
