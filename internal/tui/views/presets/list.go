package presets

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"autoformat/internal/config"
	"autoformat/internal/mask"
)

var (
	selStyle   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "205", Dark: "213"}).Bold(true)
	faintStyle = lipgloss.NewStyle().Faint(true)
)

// RenderList lists presets in the given order, one per line, with the
// input template and a sample of the static rendering. sel < 0 marks none.
func RenderList(c *config.Config, names []string, sel int, noColor bool) string {
	var b strings.Builder
	for i, name := range names {
		p := c.Fields[name]
		line := fmt.Sprintf("%-8s %s", name, describe(p))
		switch {
		case i == sel && noColor:
			line = "> " + line
		case i == sel:
			line = selStyle.Render("> " + line)
		default:
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}

func describe(p config.Preset) string {
	if p.InputMask == "" && p.StaticMask == "" {
		return "(plain text)"
	}
	parts := []string{}
	if p.InputMask != "" {
		parts = append(parts, "input "+p.InputMask)
	}
	if p.StaticMask != "" {
		parts = append(parts, "static "+p.StaticMask+" "+faintStyle.Render("→ "+Sample(p)))
	}
	return strings.Join(parts, "  ")
}

// Sample renders the static template over a full-length run of digits so
// the list can show what the hidden form looks like.
func Sample(p config.Preset) string {
	n := mask.NewInputMask(p.InputMask, p.PlaceholderRune()).PlaceholderCount()
	if n == 0 {
		n = 10
	}
	var digits strings.Builder
	for i := 0; i < n; i++ {
		digits.WriteByte(byte('0' + i%10))
	}
	return mask.NewStaticMask(p.StaticMask).Format(digits.String())
}
