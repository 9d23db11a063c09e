package tui

import (
	"fmt"
	"strings"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"

	"github.com/mabhi256/jlint/internal/graph"
	"github.com/mabhi256/jlint/internal/report"
	"github.com/mabhi256/jlint/utils"
)

const (
	chartLabelWidth = 14
	minChartWidth   = 20
)

func (m *Model) RenderSummary() string {
	cycles := graph.DetectCycles(m.ctx.Matrix)

	stats := []string{
		utils.TitleStyle.Render("🔍 Analysis Summary"),
		"",
		utils.FormatKeyValue("Input", m.ctx.Path, 16),
		utils.FormatKeyValue("Classes", fmt.Sprintf("%d", m.ctx.ClassCount()), 16),
		utils.FormatKeyValue("Relationships", fmt.Sprintf("%d", len(m.edges)), 16),
		utils.FormatKeyValue("Cycles", fmt.Sprintf("%d", len(cycles)), 16),
		utils.FormatKeyValue("Violations", fmt.Sprintf("%d", len(m.violations)), 16),
	}

	sections := []string{strings.Join(stats, "\n")}

	if len(m.groups) == 0 {
		sections = append(sections, utils.GoodStyle.Render("✅ No violations found"))
	} else {
		sections = append(sections, utils.HeaderStyle.Render("Violations per check"), m.renderViolationChart())
	}

	sections = append(sections, utils.HeaderStyle.Render("Relationships by kind"), m.renderKindCounts())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *Model) renderViolationChart() string {
	width := max(m.width-4, minChartWidth)
	height := min(max(len(m.groups)*2, 2), max(m.contentHeight()-14, 2))

	chart := barchart.New(width, height, barchart.WithHorizontalBars())

	var bars []barchart.BarData
	for _, g := range m.groups {
		color := utils.GetSeverityColor(report.Severity(g.Check))
		bars = append(bars, barchart.BarData{
			Label: utils.TruncateString(g.Check, chartLabelWidth),
			Values: []barchart.BarValue{{
				Name:  g.Check,
				Value: float64(len(g.Violations)),
				Style: lipgloss.NewStyle().Foreground(color),
			}},
		})
	}
	chart.PushAll(bars)
	chart.Draw()

	var legend []string
	for _, g := range m.groups {
		legend = append(legend, fmt.Sprintf("%s %s: %d",
			utils.GetSeverityIcon(report.Severity(g.Check)), g.Check, len(g.Violations)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, chart.View(), "", strings.Join(legend, "\n"))
}

func (m *Model) renderKindCounts() string {
	counts := make(map[graph.RelationshipKind]int)
	for _, e := range m.edges {
		counts[e.Kind]++
	}

	var lines []string
	for _, kind := range kindFilters[1:] {
		style := utils.GetRelationshipStyle(kind.String())
		lines = append(lines, fmt.Sprintf("%s %d", style.Render(utils.PadRight(kind.String(), 12)), counts[kind]))
	}
	return strings.Join(lines, "\n")
}
