// Package field keeps the state of one masked text field between edit
// events: the raw value, what is on screen and where the cursor is.
//
// A Field is driven by its host. The host reports each text change with
// HandleTextChanged (or uses the editing helpers in edit.go), then reads
// Display and Selection back and shows both at once.
package field

import "autoformat/internal/mask"

// Change is delivered to OnChange listeners after every reconciliation.
type Change struct {
	Raw       string
	Formatted string
	Cursor    int
	Outcome   mask.Outcome
}

// Options configures a new Field.
type Options struct {
	InputMask   string
	Placeholder rune
	// StaticMask defaults to mask.DefaultStaticTemplate.
	StaticMask    string
	StaticEnabled bool
	// InputDisabled turns off formatting while typing.
	InputDisabled bool
}

// Field is not safe for concurrent use.
type Field struct {
	input  *mask.InputMask
	static *mask.StaticMask

	inputEnabled  bool
	staticEnabled bool

	formatted   string
	unformatted string
	display     string

	// anchor and head are the selection ends in display coordinates; head
	// is where the cursor blinks.
	anchor, head int

	last mask.EditTextState

	onUnformatted func(string)
	onText        func(string)
	onChange      func(Change)
}

// New returns an empty field configured by o.
func New(o Options) *Field {
	ph := o.Placeholder
	if ph == 0 {
		ph = mask.DefaultPlaceholder
	}
	st := o.StaticMask
	if st == "" {
		st = mask.DefaultStaticTemplate
	}
	return &Field{
		input:         mask.NewInputMask(o.InputMask, ph),
		static:        mask.NewStaticMask(st),
		inputEnabled:  !o.InputDisabled,
		staticEnabled: o.StaticEnabled,
		last:          mask.EditTextState{Outcome: mask.PassThrough},
	}
}

// OnUnformattedValueChanged registers fn to be called when the raw value
// changes.
func (f *Field) OnUnformattedValueChanged(fn func(string)) { f.onUnformatted = fn }

// OnTextChanged registers fn to be called when the formatted text changes.
func (f *Field) OnTextChanged(fn func(string)) { f.onText = fn }

// OnChange registers fn to be called after every edit event.
func (f *Field) OnChange(fn func(Change)) { f.onChange = fn }

func (f *Field) strategy() mask.Strategy {
	switch {
	case f.inputEnabled && f.input.Len() > 0:
		return &mask.InputStrategy{Input: f.input, Static: f.static}
	case f.static.Template() != "":
		return &mask.StaticStrategy{Static: f.static}
	default:
		return mask.Plain{}
	}
}

// Reconcile computes the state for an edit without applying it.
func (f *Field) Reconcile(before, after string, start, selLen, replLen int) mask.EditTextState {
	return f.strategy().Reconcile(before, after, mask.EditSpan{
		Start:             start,
		SelectionLength:   selLen,
		ReplacementLength: replLen,
	})
}

// FormatStatic renders raw through the static mask.
func (f *Field) FormatStatic(raw string) string { return f.strategy().FormatStatic(raw) }

// HandleTextChanged is called by the host after it replaced before runes at
// start with count runes, leaving after in the widget.
func (f *Field) HandleTextChanged(after string, start, before, count int) {
	f.apply(f.Reconcile(f.formatted, after, start, before, count))
}

func (f *Field) apply(st mask.EditTextState) {
	f.last = st
	if st.UnformattedText != f.unformatted {
		f.unformatted = st.UnformattedText
		if f.onUnformatted != nil {
			f.onUnformatted(st.UnformattedText)
		}
	}
	if st.FormattedText != f.formatted {
		f.formatted = st.FormattedText
		if f.onText != nil {
			f.onText(st.FormattedText)
		}
	}
	f.refresh()
	f.anchor = clampPos(st.CursorStart, f.display)
	f.head = clampPos(st.CursorEnd, f.display)
	if f.onChange != nil {
		f.onChange(Change{Raw: f.unformatted, Formatted: f.formatted, Cursor: f.head, Outcome: st.Outcome})
	}
}

func (f *Field) refresh() {
	if f.staticEnabled {
		f.display = f.FormatStatic(f.unformatted)
	} else {
		f.display = f.formatted
	}
}

// SetText replaces the whole text as if the user had selected everything
// and typed s.
func (f *Field) SetText(s string) {
	n := len([]rune(f.formatted))
	f.HandleTextChanged(s, 0, n, len([]rune(s)))
}

// ConfigureInputMask replaces the input template and placeholder and
// re-formats the current raw value.
func (f *Field) ConfigureInputMask(template string, placeholder rune) {
	if placeholder == 0 {
		placeholder = mask.DefaultPlaceholder
	}
	if placeholder != f.input.Placeholder() {
		f.input = mask.NewInputMask(f.input.Template(), placeholder)
	}
	f.SetInputMask(template)
}

// SetInputMask replaces the input template, trims the raw value to the new
// capacity and re-formats it.
func (f *Field) SetInputMask(template string) {
	raw := f.unformatted
	f.input.SetTemplate(template)
	if n := f.input.PlaceholderCount(); template != "" && len([]rune(raw)) > n {
		raw = string([]rune(raw)[:n])
	}
	f.SetText(raw)
}

// ConfigureStaticMask replaces the static template and refreshes the
// display.
func (f *Field) ConfigureStaticMask(template string) {
	f.static.SetTemplate(template)
	f.refresh()
}

// SetStaticFormatEnabled switches the display between the formatted text and
// the static rendering of the raw value.
func (f *Field) SetStaticFormatEnabled(on bool) {
	f.staticEnabled = on
	f.refresh()
	f.anchor = clampPos(f.anchor, f.display)
	f.head = clampPos(f.head, f.display)
}

// SetInputFormatEnabled turns formatting while typing on or off. It takes
// effect with the next edit.
func (f *Field) SetInputFormatEnabled(on bool) { f.inputEnabled = on }

// Formatted returns the input-masked text, whatever the display shows.
func (f *Field) Formatted() string { return f.formatted }

// Unformatted returns the raw value.
func (f *Field) Unformatted() string { return f.unformatted }

// Display returns the text the host should show.
func (f *Field) Display() string { return f.display }

// StaticEnabled reports whether the static rendering is displayed.
func (f *Field) StaticEnabled() bool { return f.staticEnabled }

// InputEnabled reports whether text is formatted while typing.
func (f *Field) InputEnabled() bool { return f.inputEnabled }

// Last returns the state produced by the most recent edit event.
func (f *Field) Last() mask.EditTextState { return f.last }

// InputMask returns the live input mask. Use ConfigureInputMask to change it.
func (f *Field) InputMask() *mask.InputMask { return f.input }

// StaticMask returns the live static mask.
func (f *Field) StaticMask() *mask.StaticMask { return f.static }

// Cursor returns the cursor position in display runes.
func (f *Field) Cursor() int { return f.head }

// Selection returns the selected range [start, end) in display runes.
func (f *Field) Selection() (int, int) {
	return min(f.anchor, f.head), max(f.anchor, f.head)
}

// Capacity returns how many raw runes the field accepts, or -1 when no
// input template is active.
func (f *Field) Capacity() int {
	if !f.inputEnabled || f.input.Len() == 0 {
		return -1
	}
	return f.input.PlaceholderCount()
}

// Ghost returns the part of the template not yet covered by the formatted
// text, for hosts that show the remaining shape of the value.
func (f *Field) Ghost() string {
	if f.Capacity() < 0 || f.staticEnabled {
		return ""
	}
	t := []rune(f.input.Template())
	n := len([]rune(f.formatted))
	if n >= len(t) {
		return ""
	}
	return string(t[n:])
}

func clampPos(p int, s string) int {
	return min(max(p, 0), len([]rune(s)))
}
