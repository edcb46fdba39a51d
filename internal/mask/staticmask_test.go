package mask

import (
	"strings"
	"testing"
)

func TestStaticFormat(t *testing.T) {
	cases := []struct {
		name, template, source, want string
	}{
		{"single", "Card ending [3]", "42121234", "Card ending 2"},
		{"range", "[0-3]-[4-7]", "12345678", "1234-5678"},
		{"unresolved single", "[9]", "abc", "[9]"},
		{"unresolved range", "[1-5]", "abc", "[1-5]"},
		{"reversed range", "[3-1]", "abcd", "[3-1]"},
		{"one rune range", "[2-2]", "abcd", "c"},
		{"no tokens", "***", "secret", "***"},
		{"empty source", "x[0]y[0-1]", "", "x[0]y[0-1]"},
		{"phone", "+1(***) ***-[6][7][8][9]", "5551236789", "+1(***) ***-6789"},
		{"phone with range", "+1(***) ***-[6][7][8][9]--[6-9]", "5551236789", "+1(***) ***-6789--6789"},
		{"multi digit", "[10][11]", "0123456789AB", "AB"},
		{"skips unresolvable then resolves later", "[9][0]", "abc", "[9]a"},
		{"nested bracket", "[[0]]", "x", "[x]"},
		{"not a token", "[a][-1][]", "abc", "[a][-1][]"},
		{"multibyte source", "[1]", "äöü", "ö"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := NewStaticMask(c.template).Format(c.source); got != c.want {
				t.Fatalf("Format(%q) with %q = %q, want %q", c.source, c.template, got, c.want)
			}
		})
	}
}

func TestStaticFormatRescansAfterSubstitution(t *testing.T) {
	// "[0]" becomes "[", which completes "[2]".
	m := NewStaticMask("[0]2]")
	if got := m.Format("[ab"); got != "b" {
		t.Fatalf("unexpected %q", got)
	}
	// A token that resolves to itself is left alone.
	m.SetTemplate("[0-4]")
	if got := m.Format("[0-4]"); got != "[0-4]" {
		t.Fatalf("unexpected %q", got)
	}
	m.SetTemplate("[0][1-2]")
	if got := m.Format("[12"); got != "[12" {
		t.Fatalf("unexpected %q", got)
	}
	if m.Template() != "[0][1-2]" {
		t.Fatalf("template not replaced")
	}
}

func TestStaticFormatGrowingRangeTerminates(t *testing.T) {
	// Each pass re-expands the token; substitutions stop after
	// len(template)+len(source) rounds.
	got := NewStaticMask("[0-6]").Format("[0-6]ab")
	if want := "[0-6]" + strings.Repeat("ab", 12); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
