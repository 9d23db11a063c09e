package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mabhi256/jlint/internal/lint"
	"github.com/mabhi256/jlint/internal/report"
	"github.com/mabhi256/jlint/utils"
)

func (m *Model) RenderViolations() string {
	if len(m.groups) == 0 {
		return utils.GoodStyle.Render("✅ No violations found")
	}

	header := m.renderGroupTabs()
	content := m.renderViolationList(m.groups[m.selectedGroup])

	// Keep the selected violation on screen
	contentLines := strings.Split(content, "\n")
	availableHeight := max(m.contentHeight()-2, 1)
	if len(contentLines) > availableHeight {
		selectedLine := m.selectedStartLine()
		scrollY := 0
		if selectedLine >= availableHeight {
			scrollY = selectedLine - availableHeight/2
		}
		scrollY = max(min(scrollY, len(contentLines)-availableHeight), 0)
		content = strings.Join(contentLines[scrollY:scrollY+availableHeight], "\n")
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, "", content)
}

func (m *Model) renderGroupTabs() string {
	var tabs []string
	for i, g := range m.groups {
		style := utils.TabInactiveStyle
		if i == m.selectedGroup {
			style = utils.TabActiveStyle
		}
		icon := utils.GetSeverityIcon(report.Severity(g.Check))
		tabs = append(tabs, style.Render(fmt.Sprintf("%s %s: %d", icon, g.Check, len(g.Violations))))
	}
	return strings.Join(tabs, " ")
}

func (m *Model) renderViolationList(group report.Group) string {
	var lines []string
	for i, v := range group.Violations {
		lines = append(lines, m.renderViolationItem(v, i == m.selectedViolation, m.expanded[i])...)
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderViolationItem(v lint.Violation, isSelected, isExpanded bool) []string {
	selector := " "
	if isSelected {
		selector = "▶"
	}

	expandIcon := "[+]"
	if isExpanded {
		expandIcon = "[-]"
	}

	titleLine := fmt.Sprintf("%s %s %s", selector, expandIcon, v.ClassName)
	if isSelected {
		titleLine = utils.SelectedStyle.Render(titleLine)
	} else {
		titleLine = utils.GetSeverityStyle(report.Severity(v.CheckName)).Render(titleLine)
	}

	lines := []string{
		titleLine,
		utils.MutedStyle.Render("  └─ " + utils.TruncateString(v.Message, max(m.width-6, 10))),
	}

	if isExpanded {
		lines = append(lines, m.violationDetails(v)...)
	}

	return lines
}

// violationDetails lists where the class came from and what it depends on
func (m *Model) violationDetails(v lint.Violation) []string {
	var lines []string

	if path, ok := m.ctx.Sources[v.ClassName]; ok {
		lines = append(lines, utils.InfoStyle.Render("     File: ")+path)
	}

	if cls, ok := m.ctx.Class(v.ClassName); ok {
		lines = append(lines, utils.InfoStyle.Render("     Package: ")+orDefault(cls.Package, "(default)"))
	}

	outgoing := m.ctx.Matrix.Outgoing(v.ClassName)
	if len(outgoing) == 0 {
		return lines
	}

	lines = append(lines, utils.InfoStyle.Render("     Depends on:"))
	for _, e := range outgoing {
		style := utils.GetRelationshipStyle(e.Kind.String())
		lines = append(lines, fmt.Sprintf("       %s %s", style.Render(e.Kind.Describe()), e.To))
	}
	return lines
}

// selectedStartLine mirrors the line layout of renderViolationList
func (m *Model) selectedStartLine() int {
	group := m.groups[m.selectedGroup]
	line := 0
	for i := 0; i < m.selectedViolation && i < len(group.Violations); i++ {
		line += 3
		if m.expanded[i] {
			line += len(m.violationDetails(group.Violations[i]))
		}
	}
	return line
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
