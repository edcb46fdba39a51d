package mask

import "strings"

// DefaultPlaceholder is the placeholder rune used when a configuration does
// not name one.
const DefaultPlaceholder = '#'

// InputMask converts between raw values and their display form for a
// template in which every placeholder rune stands for one raw rune and every
// other rune is a literal shown as-is.
//
// Positions are rune indexes. An InputMask is not safe for concurrent use;
// callers replace the template between edit events, never during one.
type InputMask struct {
	template    []rune
	placeholder rune

	// count caches PlaceholderCount; -1 until computed.
	count int
}

// NewInputMask returns a mask for template using placeholder as the
// placeholder rune.
func NewInputMask(template string, placeholder rune) *InputMask {
	return &InputMask{template: []rune(template), placeholder: placeholder, count: -1}
}

// Template returns the current template string.
func (m *InputMask) Template() string { return string(m.template) }

// Placeholder returns the placeholder rune.
func (m *InputMask) Placeholder() rune { return m.placeholder }

// Len returns the template length in runes.
func (m *InputMask) Len() int { return len(m.template) }

// SetTemplate replaces the template and drops the cached placeholder count.
func (m *InputMask) SetTemplate(template string) {
	m.template = []rune(template)
	m.count = -1
}

// IsPlaceholder reports whether the template position i holds the
// placeholder rune. Positions outside the template report false.
func (m *InputMask) IsPlaceholder(i int) bool {
	return i >= 0 && i < len(m.template) && m.template[i] == m.placeholder
}

// Matches reports whether s has the template's shape: the same length and
// the same rune at every literal position.
func (m *InputMask) Matches(s string) bool {
	r := []rune(s)
	if len(r) != len(m.template) {
		return false
	}
	for i, c := range m.template {
		if c != m.placeholder && c != r[i] {
			return false
		}
	}
	return true
}

// PlaceholderCount returns the number of placeholder positions, which is
// also the maximum raw value length.
func (m *InputMask) PlaceholderCount() int {
	if m.count < 0 {
		n := 0
		for _, c := range m.template {
			if c == m.placeholder {
				n++
			}
		}
		m.count = n
	}
	return m.count
}

// Format lays raw out over the template. Output stops as soon as raw is
// used up, so neither leading literals (for an empty raw value) nor trailing
// literals are emitted. Raw runes beyond the template capacity are dropped.
func (m *InputMask) Format(raw string) string {
	src := []rune(raw)
	var b strings.Builder
	used := 0
	for _, c := range m.template {
		if used == len(src) {
			break
		}
		if c == m.placeholder {
			b.WriteRune(src[used])
			used++
		} else {
			b.WriteRune(c)
		}
	}
	return b.String()
}

// Unformat collects the runes of formatted that sit on placeholder
// positions within [start, end). The range indexes the template; it is
// clamped to both the template and formatted.
func (m *InputMask) Unformat(formatted string, start, end int) string {
	src := []rune(formatted)
	if len(src) == 0 {
		return ""
	}
	start = max(start, 0)
	end = min(end, len(src), len(m.template))
	var b strings.Builder
	for i := start; i < end; i++ {
		if m.template[i] == m.placeholder {
			b.WriteRune(src[i])
		}
	}
	return b.String()
}
