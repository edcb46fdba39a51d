package mask

import (
	"strconv"
	"strings"
)

// DefaultStaticTemplate hides the whole value.
const DefaultStaticTemplate = "***"

// StaticMask renders a display-only view of a raw value. Its template is
// literal text with index tokens "[n]" and range tokens "[a-b]" (inclusive,
// 0-based) that are replaced by runes of the raw value.
//
// Tokens that point outside the raw value are left in the output verbatim.
type StaticMask struct {
	template string
}

// NewStaticMask returns a static mask for template.
func NewStaticMask(template string) *StaticMask {
	return &StaticMask{template: template}
}

// Template returns the current template string.
func (m *StaticMask) Template() string { return m.template }

// SetTemplate replaces the template.
func (m *StaticMask) SetTemplate(template string) { m.template = template }

// Format substitutes index tokens, then range tokens. After every
// substitution the text is scanned again from the start, so runes produced
// by one substitution can complete a token with their neighbours.
func (m *StaticMask) Format(source string) string {
	src := []rune(source)
	out := []rune(m.template)
	// Index tokens always shrink the text; range tokens can grow it.
	limit := len(out) + len(src)
	out = substitute(out, limit, func(tok []rune) ([]rune, bool) {
		i, ok := parseIndex(tok)
		if !ok || i >= len(src) {
			return nil, false
		}
		return src[i : i+1], true
	})
	out = substitute(out, limit, func(tok []rune) ([]rune, bool) {
		a, b, ok := parseRange(tok)
		if !ok || a > b || b >= len(src) {
			return nil, false
		}
		return src[a : b+1], true
	})
	return string(out)
}

// substitute replaces the leftmost token that resolve accepts and starts
// over, at most limit times.
func substitute(s []rune, limit int, resolve func(tok []rune) ([]rune, bool)) []rune {
	for n := 0; n < limit; n++ {
		open, end, repl, ok := nextToken(s, resolve)
		if !ok {
			break
		}
		next := make([]rune, 0, len(s)-(end+1-open)+len(repl))
		next = append(next, s[:open]...)
		next = append(next, repl...)
		next = append(next, s[end+1:]...)
		s = next
	}
	return s
}

// nextToken finds the leftmost bracketed token that resolves to something
// other than itself. A token that would reproduce itself is a fixed point
// and is skipped.
func nextToken(s []rune, resolve func(tok []rune) ([]rune, bool)) (open, end int, repl []rune, ok bool) {
	pos := 0
	for {
		open = indexRune(s, '[', pos)
		if open < 0 {
			return 0, 0, nil, false
		}
		end = indexRune(s, ']', open+1)
		if end < 0 {
			return 0, 0, nil, false
		}
		if repl, ok = resolve(s[open+1 : end]); ok && string(repl) != string(s[open:end+1]) {
			return open, end, repl, true
		}
		// A '[' inside the rejected token may open a valid one.
		pos = open + 1
	}
}

func indexRune(s []rune, r rune, from int) int {
	for i := from; i < len(s); i++ {
		if s[i] == r {
			return i
		}
	}
	return -1
}

// parseIndex accepts a non-empty run of ASCII digits.
func parseIndex(tok []rune) (int, bool) {
	if len(tok) == 0 {
		return 0, false
	}
	for _, c := range tok {
		if c < '0' || c > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(string(tok))
	if err != nil {
		return 0, false
	}
	return n, true
}

// parseRange accepts "a-b" where a and b are digit runs.
func parseRange(tok []rune) (int, int, bool) {
	lo, hi, found := strings.Cut(string(tok), "-")
	if !found {
		return 0, 0, false
	}
	a, ok := parseIndex([]rune(lo))
	if !ok {
		return 0, 0, false
	}
	b, ok := parseIndex([]rune(hi))
	if !ok {
		return 0, 0, false
	}
	return a, b, true
}
