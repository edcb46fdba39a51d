package mask

// Outcome says which branch of reconciliation produced an EditTextState.
type Outcome int

const (
	// Applied means the edit was re-expressed through the input mask.
	Applied Outcome = iota
	// PassThrough means no template was active and the text was kept as typed.
	PassThrough
	// Rejected means the edit would overflow the template and was discarded.
	Rejected
)

func (o Outcome) String() string {
	switch o {
	case Applied:
		return "applied"
	case PassThrough:
		return "pass-through"
	case Rejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// EditSpan describes one edit event against the text shown before it.
type EditSpan struct {
	// Start is the index in the old text where the edit begins.
	Start int
	// SelectionLength is the number of old runes replaced.
	SelectionLength int
	// ReplacementLength is the number of new runes inserted.
	ReplacementLength int
}

// EditTextState is what a host applies to its field after an edit: the text
// to show, the raw value behind it and the new selection.
type EditTextState struct {
	FormattedText   string
	UnformattedText string
	CursorStart     int
	CursorEnd       int
	Outcome         Outcome
}

func newState(formatted, unformatted string, cursor int, o Outcome) EditTextState {
	return EditTextState{
		FormattedText:   formatted,
		UnformattedText: unformatted,
		CursorStart:     cursor,
		CursorEnd:       cursor,
		Outcome:         o,
	}
}

// Reconciler maps an edit of the displayed text back onto the raw value and
// re-formats it. A nil Mask, or one with an empty template, passes text
// through untouched.
type Reconciler struct {
	Mask *InputMask
}

// Reconcile computes the field state after the host replaced
// span.SelectionLength runes of before at span.Start with
// span.ReplacementLength runes, producing after.
func (r Reconciler) Reconcile(before, after string, span EditSpan) EditTextState {
	b, a := []rune(before), []rune(after)
	start := clamp(span.Start, 0, len(b))
	selLen := clamp(span.SelectionLength, 0, len(b)-start)
	replLen := span.ReplacementLength

	if r.Mask == nil || r.Mask.Len() == 0 {
		return newState(after, after, start+max(replLen, 0), PassThrough)
	}
	m := r.Mask

	// Typing past the end of the template. Edits at position 0 are let
	// through and truncated below.
	if len(a) > m.Len() && span.SelectionLength != replLen && span.Start > 0 && !m.Matches(after) {
		return newState(before, m.Unformat(before, 0, len(b)), start, Rejected)
	}

	insStart := clamp(start, 0, len(a))
	insEnd := clamp(start+replLen, insStart, len(a))
	inserted := string(a[insStart:insEnd])
	left := m.Unformat(before, 0, start)
	right := m.Unformat(before, start+selLen, len(b))

	// One backspace over an auto-inserted literal also removes the raw rune
	// in front of it.
	if l := []rune(left); len(l) > 0 && len(l) <= m.PlaceholderCount() &&
		!m.IsPlaceholder(start) && span.SelectionLength == 1 && replLen == 0 {
		left = string(l[:len(l)-1])
	}

	raw := truncate(left+inserted+right, m.PlaceholderCount())
	cursor := len([]rune(m.Format(left + inserted)))
	return newState(m.Format(raw), raw, cursor, Applied)
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	return min(max(v, lo), hi)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
