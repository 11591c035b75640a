// Package viz holds the lipgloss styles the atlas CLI reports with.
package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/atlas/internal/regime"
)

var (
	// Header with decorative line
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffffff")).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(lipgloss.Color("#444466"))

	// Subtle muted text
	Subtle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666688"))

	MetricValue = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00ccff")).
			Bold(true)

	MetricLabel = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888899"))

	Panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#444466")).
		Padding(0, 1)
)

// One color per regime band, calm to hot.
var regimeColors = map[regime.Regime]lipgloss.Color{
	regime.StableFixedPoint: lipgloss.Color("#00ff88"),
	regime.LowPeriodCycles:  lipgloss.Color("#38bdf8"),
	regime.PeriodDoubling:   lipgloss.Color("#ffcc00"),
	regime.ChaoticWindows:   lipgloss.Color("#f97316"),
	regime.StrongChaos:      lipgloss.Color("#ff4444"),
}

func RegimeStyle(g regime.Regime) lipgloss.Style {
	c, ok := regimeColors[g]
	if !ok {
		c = lipgloss.Color("#888899")
	}
	return lipgloss.NewStyle().Bold(true).Foreground(c)
}

// Header renders a section title.
func Header(title string) string {
	return HeaderStyle.Render(title)
}

// Metric renders "label: value" with fixed-width label.
func Metric(label string, value any) string {
	var v string
	switch x := value.(type) {
	case float64:
		v = fmt.Sprintf("%.6g", x)
	default:
		v = fmt.Sprint(x)
	}
	return MetricLabel.Render(fmt.Sprintf("%-12s", label+":")) + " " + MetricValue.Render(v)
}

// RegimeLine renders the regime label for r in its band color.
func RegimeLine(r float64) string {
	g := regime.Classify(r)
	return Metric("r", r) + "\n" + MetricLabel.Render(fmt.Sprintf("%-12s", "regime:")) + " " + RegimeStyle(g).Render(g.String())
}

// RegimeLegend lists every band with its parameter range.
func RegimeLegend() string {
	lines := make([]string, 0, len(regime.All()))
	for _, g := range regime.All() {
		lo, hi := g.Bounds()
		lines = append(lines, fmt.Sprintf("%-14s %s  %s",
			fmt.Sprintf("[%g, %g)", lo, hi), RegimeStyle(g).Render("■"), g.String()))
	}
	return Panel.Render(strings.Join(lines, "\n"))
}
