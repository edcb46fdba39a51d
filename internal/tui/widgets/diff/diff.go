package diff

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	dmp "github.com/sergi/go-diff/diffmatchpatch"
)

var (
	delLine = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "160", Dark: "203"})
	addLine = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "28", Dark: "114"})
	delChar = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "160", Dark: "203"}).Underline(true)
	addChar = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "28", Dark: "114"}).Underline(true)
	faint   = lipgloss.NewStyle().Faint(true)
)

type DiffView struct{}

func NewDiffView() DiffView { return DiffView{} }

// View renders what the last edit did to the displayed value as a pair of
// -/+ lines with char-level highlights. Without color, changed runs are
// wrapped in [-...-] and {+...+}.
func (DiffView) View(before, after string, noColor bool) string {
	if before == after {
		return paint(faint, "  (no change)", noColor) + "\n"
	}
	d := dmp.New()
	diffs := d.DiffMain(before, after, false)
	d.DiffCleanupSemantic(diffs)

	var sb strings.Builder
	// deleted line (whole-line color with embedded char spans)
	sb.WriteString(paint(delLine, "- ", noColor))
	for _, df := range diffs {
		switch df.Type {
		case dmp.DiffDelete:
			if noColor {
				sb.WriteString("[-" + df.Text + "-]")
			} else {
				sb.WriteString(delChar.Render(df.Text))
			}
		case dmp.DiffEqual:
			sb.WriteString(paint(delLine, df.Text, noColor))
		}
	}
	sb.WriteString("\n")
	// added line
	sb.WriteString(paint(addLine, "+ ", noColor))
	for _, df := range diffs {
		switch df.Type {
		case dmp.DiffInsert:
			if noColor {
				sb.WriteString("{+" + df.Text + "+}")
			} else {
				sb.WriteString(addChar.Render(df.Text))
			}
		case dmp.DiffEqual:
			sb.WriteString(paint(addLine, df.Text, noColor))
		}
	}
	sb.WriteString("\n")
	return sb.String()
}

func paint(s lipgloss.Style, text string, noColor bool) string {
	if noColor {
		return text
	}
	return s.Render(text)
}
