package mask

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// edit applies a raw keystroke to before the way a text widget would and
// returns the text it reports together with the span.
func edit(before string, start, selLen int, text string) (string, EditSpan) {
	b := []rune(before)
	after := string(b[:start]) + text + string(b[start+selLen:])
	return after, EditSpan{Start: start, SelectionLength: selLen, ReplacementLength: len([]rune(text))}
}

func TestReconcileNoTemplatePassesThrough(t *testing.T) {
	for _, r := range []Reconciler{{}, {Mask: NewInputMask("", '#')}} {
		after, span := edit("abc", 1, 1, "XY")
		got := r.Reconcile("abc", after, span)
		want := EditTextState{FormattedText: "aXYc", UnformattedText: "aXYc", CursorStart: 3, CursorEnd: 3, Outcome: PassThrough}
		if d := cmp.Diff(want, got); d != "" {
			t.Fatalf("state mismatch (-want +got):\n%s", d)
		}
	}
}

func TestReconcileRejectsOverflow(t *testing.T) {
	r := Reconciler{Mask: NewInputMask("###-####", '#')}
	after, span := edit("123-4567", 8, 0, "89")
	got := r.Reconcile("123-4567", after, span)
	want := EditTextState{FormattedText: "123-4567", UnformattedText: "1234567", CursorStart: 8, CursorEnd: 8, Outcome: Rejected}
	if d := cmp.Diff(want, got); d != "" {
		t.Fatalf("state mismatch (-want +got):\n%s", d)
	}
}

func TestReconcileRejectsOverflowInTheMiddle(t *testing.T) {
	r := Reconciler{Mask: NewInputMask("##-##", '#')}
	after, span := edit("12-34", 2, 0, "5")
	got := r.Reconcile("12-34", after, span)
	if got.Outcome != Rejected || got.FormattedText != "12-34" || got.CursorStart != 2 {
		t.Fatalf("expected snap back, got %+v", got)
	}
}

func TestReconcileOverflowAtStartIsTruncated(t *testing.T) {
	r := Reconciler{Mask: NewInputMask("##-##", '#')}
	after, span := edit("12-34", 0, 0, "9")
	got := r.Reconcile("12-34", after, span)
	want := EditTextState{FormattedText: "91-23", UnformattedText: "9123", CursorStart: 1, CursorEnd: 1, Outcome: Applied}
	if d := cmp.Diff(want, got); d != "" {
		t.Fatalf("state mismatch (-want +got):\n%s", d)
	}
}

func TestReconcileBackspaceOverLiteral(t *testing.T) {
	r := Reconciler{Mask: NewInputMask("(###) ####", '#')}
	before := r.Mask.Format("1234567")
	if before != "(123) 4567" {
		t.Fatalf("unexpected formatted value %q", before)
	}
	after, span := edit(before, 5, 1, "")
	got := r.Reconcile(before, after, span)
	want := EditTextState{FormattedText: "(124) 567", UnformattedText: "124567", CursorStart: 3, CursorEnd: 3, Outcome: Applied}
	if d := cmp.Diff(want, got); d != "" {
		t.Fatalf("state mismatch (-want +got):\n%s", d)
	}
}

func TestReconcileBackspaceOverPlaceholder(t *testing.T) {
	r := Reconciler{Mask: NewInputMask("(###) ####", '#')}
	after, span := edit("(123) 4567", 7, 1, "")
	got := r.Reconcile("(123) 4567", after, span)
	want := EditTextState{FormattedText: "(123) 467", UnformattedText: "123467", CursorStart: 7, CursorEnd: 7, Outcome: Applied}
	if d := cmp.Diff(want, got); d != "" {
		t.Fatalf("state mismatch (-want +got):\n%s", d)
	}
}

func TestReconcileCursorPlacement(t *testing.T) {
	r := Reconciler{Mask: NewInputMask("##-##", '#')}
	text, cursor := "", 0
	var cursors []int
	for _, c := range []string{"1", "2", "3"} {
		after, span := edit(text, cursor, 0, c)
		st := r.Reconcile(text, after, span)
		text, cursor = st.FormattedText, st.CursorStart
		cursors = append(cursors, cursor)
	}
	if d := cmp.Diff([]int{1, 2, 4}, cursors); d != "" {
		t.Fatalf("cursor positions (-want +got):\n%s", d)
	}
	if text != "12-3" {
		t.Fatalf("unexpected text %q", text)
	}
}

func TestReconcileReplaceSelection(t *testing.T) {
	r := Reconciler{Mask: NewInputMask("###-####", '#')}
	after, span := edit("123-4567", 2, 3, "9")
	got := r.Reconcile("123-4567", after, span)
	want := EditTextState{FormattedText: "129-567", UnformattedText: "129567", CursorStart: 3, CursorEnd: 3, Outcome: Applied}
	if d := cmp.Diff(want, got); d != "" {
		t.Fatalf("state mismatch (-want +got):\n%s", d)
	}
}

func TestReconcilePasteIntoEmpty(t *testing.T) {
	r := Reconciler{Mask: NewInputMask("+1(###) ###-####", '#')}
	after, span := edit("", 0, 0, "5551234567")
	got := r.Reconcile("", after, span)
	want := EditTextState{FormattedText: "+1(555) 123-4567", UnformattedText: "5551234567", CursorStart: 16, CursorEnd: 16, Outcome: Applied}
	if d := cmp.Diff(want, got); d != "" {
		t.Fatalf("state mismatch (-want +got):\n%s", d)
	}
}

func TestReconcileOutOfRangeSpanDoesNotPanic(t *testing.T) {
	r := Reconciler{Mask: NewInputMask("##-##", '#')}
	spans := []EditSpan{
		{Start: -4, SelectionLength: 2, ReplacementLength: 1},
		{Start: 40, SelectionLength: 0, ReplacementLength: 3},
		{Start: 1, SelectionLength: 40, ReplacementLength: 40},
		{Start: 2, SelectionLength: -1, ReplacementLength: -1},
	}
	for _, s := range spans {
		st := r.Reconcile("12-3", "12-34", s)
		if n := len([]rune(st.UnformattedText)); n > r.Mask.PlaceholderCount() {
			t.Fatalf("raw value %q exceeds capacity for span %+v", st.UnformattedText, s)
		}
	}
}

func TestStrategySelection(t *testing.T) {
	if _, ok := NewStrategy(Config{InputMask: "##", StaticMask: "*[1]"}).(*InputStrategy); !ok {
		t.Fatalf("expected input strategy")
	}
	if _, ok := NewStrategy(Config{StaticMask: "*[1]"}).(*StaticStrategy); !ok {
		t.Fatalf("expected static strategy")
	}
	if _, ok := NewStrategy(Config{}).(Plain); !ok {
		t.Fatalf("expected pass-through")
	}
}

func TestStrategyFormatStatic(t *testing.T) {
	s := NewStrategy(Config{InputMask: "###-####"})
	if got := s.FormatStatic("1234567"); got != "123-4567" {
		t.Fatalf("input strategy without static mask should show formatted text, got %q", got)
	}
	s = NewStrategy(Config{InputMask: "###-####", StaticMask: "***-[3-6]"})
	if got := s.FormatStatic("1234567"); got != "***-4567" {
		t.Fatalf("unexpected %q", got)
	}
	st := s.Reconcile("", "1", EditSpan{ReplacementLength: 1})
	if st.FormattedText != "1" || st.Outcome != Applied {
		t.Fatalf("unexpected %+v", st)
	}
	s = NewStrategy(Config{StaticMask: "[0]**"})
	if st := s.Reconcile("ab", "abc", EditSpan{Start: 2, ReplacementLength: 1}); st.Outcome != PassThrough {
		t.Fatalf("static strategy should not format while typing, got %+v", st)
	}
	if got := s.FormatStatic("abc"); got != "a**" {
		t.Fatalf("unexpected %q", got)
	}
	if got := (Plain{}).FormatStatic("abc"); got != "abc" {
		t.Fatalf("unexpected %q", got)
	}
}
