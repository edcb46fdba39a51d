package tagchips

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"autoformat/internal/tui/state"
	"autoformat/internal/tui/util"
)

// View renders field tags in a stable order using colored chips when
// possible and ASCII fallbacks when color is disabled or not desired.
func View(tags []state.Tag, noColor bool) string {
	if len(tags) == 0 {
		return ""
	}
	// Honor NO_COLOR env var in addition to explicit param
	if !noColor && os.Getenv("NO_COLOR") != "" {
		noColor = true
	}

	p := util.DefaultPalette()
	parts := make([]string, 0, len(tags))
	for _, t := range tags {
		parts = append(parts, renderChip(t, p, noColor))
	}
	return strings.Join(parts, " ")
}

func renderChip(t state.Tag, p util.Palette, noColor bool) string {
	label := chipLabel(t)
	if noColor {
		return fmt.Sprintf("[%s]", label)
	}
	return chipStyle(t, p).Render(" " + label + " ")
}

func chipLabel(t state.Tag) string {
	switch t.Kind {
	case state.STATIC_VIEW:
		return "Static"
	case state.REJECTED:
		return "Rejected"
	case state.PLAIN:
		return "Plain"
	case state.EMPTY:
		return fmt.Sprintf("Empty 0/%d", t.Max)
	case state.COMPLETE:
		return "Complete"
	case state.PARTIAL:
		return fmt.Sprintf("Partial %d/%d", t.Value, t.Max)
	case state.RAW_LEN:
		return fmt.Sprintf("Raw %d", t.Value)
	default:
		return "Tag"
	}
}

func chipStyle(t state.Tag, p util.Palette) lipgloss.Style {
	base := lipgloss.NewStyle().Padding(0, 1).Bold(true)
	white := lipgloss.Color("#FFFFFF")
	switch t.Kind {
	case state.STATIC_VIEW:
		return base.Background(p.Primary).Foreground(white)
	case state.COMPLETE:
		return base.Background(p.Success).Foreground(white)
	case state.REJECTED:
		return base.Background(p.Danger).Foreground(white)
	case state.PARTIAL, state.EMPTY:
		return base.Background(p.Warning).Foreground(lipgloss.Color("#111111"))
	case state.PLAIN:
		return base.Background(p.Muted).Foreground(white)
	case state.RAW_LEN:
		return base.Background(p.MutedDark).Foreground(white)
	default:
		return base
	}
}
