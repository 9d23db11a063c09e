package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mabhi256/jlint/internal/graph"
	"github.com/mabhi256/jlint/utils"
)

func (m *Model) filteredEdges() []graph.Edge {
	if m.kindFilter == graph.NONE {
		return m.edges
	}

	var edges []graph.Edge
	for _, e := range m.edges {
		if e.Kind == m.kindFilter {
			edges = append(edges, e)
		}
	}
	return edges
}

func (m *Model) RenderDependencies() string {
	header := m.renderKindTabs()

	edges := m.filteredEdges()
	if len(edges) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, header, "", utils.MutedStyle.Render("No relationships of this kind."))
	}

	nameWidth := 0
	for _, e := range edges {
		nameWidth = max(nameWidth, len(e.From))
	}

	availableHeight := max(m.contentHeight()-2, 1)
	start := min(m.depScroll, len(edges)-1)
	end := min(start+availableHeight, len(edges))

	var lines []string
	for _, e := range edges[start:end] {
		style := utils.GetRelationshipStyle(e.Kind.String())
		lines = append(lines, fmt.Sprintf("%s %s %s",
			utils.PadRight(e.From, nameWidth),
			style.Render(utils.PadRight(e.Kind.Describe(), 10)),
			e.To))
	}

	footer := utils.MutedStyle.Render(fmt.Sprintf("%d-%d of %d", start+1, end, len(edges)))

	return lipgloss.JoinVertical(lipgloss.Left, header, "", strings.Join(lines, "\n"), footer)
}

func (m *Model) renderKindTabs() string {
	var tabs []string
	for _, kind := range kindFilters {
		style := utils.TabInactiveStyle
		if kind == m.kindFilter {
			style = utils.TabActiveStyle
		}
		label := kind.String()
		if kind == graph.NONE {
			label = "ALL"
		}
		tabs = append(tabs, style.Render(label))
	}
	return strings.Join(tabs, " ")
}
