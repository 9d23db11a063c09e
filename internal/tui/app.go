package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mabhi256/jlint/internal/lint"
	"github.com/mabhi256/jlint/internal/report"
	"github.com/mabhi256/jlint/utils"
)

// chromeHeight covers the tab bar, its border and the help bar
const chromeHeight = 4

func NewModel(ctx *lint.Context, violations []lint.Violation) *Model {
	return &Model{
		ctx:        ctx,
		violations: violations,
		groups:     report.GroupByCheck(violations),
		edges:      ctx.Matrix.Edges(),
		currentTab: SummaryTab,
		expanded:   make(map[int]bool),
		keys:       DefaultKeyMap(),
		help:       help.New(),
	}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.Tab1):
			m.currentTab = SummaryTab
		case key.Matches(msg, m.keys.Tab2):
			m.currentTab = ViolationsTab
		case key.Matches(msg, m.keys.Tab3):
			m.currentTab = DependenciesTab
		case key.Matches(msg, m.keys.Tab):
			m.currentTab = utils.GetNextEnum(m.currentTab, DependenciesTab)
		case key.Matches(msg, m.keys.Back):
			m.currentTab = utils.GetPrevEnum(m.currentTab, DependenciesTab)
		default:
			m.handleTabSpecificKeys(msg)
		}
	}

	return m, nil
}

func (m *Model) handleTabSpecificKeys(msg tea.KeyMsg) {
	switch m.currentTab {
	case ViolationsTab:
		m.handleViolationsKeys(msg)
	case DependenciesTab:
		m.handleDependenciesKeys(msg)
	}
}

func (m *Model) handleViolationsKeys(msg tea.KeyMsg) {
	if len(m.groups) == 0 {
		return
	}

	switch {
	case key.Matches(msg, m.keys.Left):
		m.selectGroup((m.selectedGroup + len(m.groups) - 1) % len(m.groups))
	case key.Matches(msg, m.keys.Right):
		m.selectGroup((m.selectedGroup + 1) % len(m.groups))
	case key.Matches(msg, m.keys.Up):
		if m.selectedViolation > 0 {
			m.selectedViolation--
		}
	case key.Matches(msg, m.keys.Down):
		if m.selectedViolation < len(m.groups[m.selectedGroup].Violations)-1 {
			m.selectedViolation++
		}
	case key.Matches(msg, m.keys.Enter):
		m.expanded[m.selectedViolation] = !m.expanded[m.selectedViolation]
	}
}

func (m *Model) selectGroup(i int) {
	m.selectedGroup = i
	m.selectedViolation = 0
	m.expanded = make(map[int]bool)
}

func (m *Model) handleDependenciesKeys(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.keys.Left):
		m.kindFilter = kindFilters[(m.kindFilterIndex()+len(kindFilters)-1)%len(kindFilters)]
		m.depScroll = 0
	case key.Matches(msg, m.keys.Right):
		m.kindFilter = kindFilters[(m.kindFilterIndex()+1)%len(kindFilters)]
		m.depScroll = 0
	case key.Matches(msg, m.keys.Up):
		if m.depScroll > 0 {
			m.depScroll--
		}
	case key.Matches(msg, m.keys.Down):
		if m.depScroll < len(m.filteredEdges())-1 {
			m.depScroll++
		}
	}
}

func (m *Model) kindFilterIndex() int {
	for i, kind := range kindFilters {
		if kind == m.kindFilter {
			return i
		}
	}
	return 0
}

func (m *Model) contentHeight() int {
	return max(m.height-chromeHeight, 1)
}

func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var content string
	switch m.currentTab {
	case SummaryTab:
		content = m.RenderSummary()
	case ViolationsTab:
		content = m.RenderViolations()
	case DependenciesTab:
		content = m.RenderDependencies()
	}

	helpBar := utils.HelpBarStyle.Width(m.width).Render(m.help.View(m.keys))

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		content,
		helpBar,
	)
}

func (m *Model) renderHeader() string {
	tabs := []string{}

	tabIcons := []string{"📊", "⚠️", "🔗"}
	tabNames := []string{"Summary", "Violations", "Dependencies"}

	for i, name := range tabNames {
		style := utils.TabInactiveStyle
		indicator := " "

		if TabType(i) == m.currentTab {
			style = utils.TabActiveStyle
			indicator = "●"
		}

		tabText := fmt.Sprintf("%s %s %s [%d]", indicator, tabIcons[i], name, i+1)
		tabs = append(tabs, style.Render(tabText))
	}

	tabLine := strings.Join(tabs, "  ")
	border := strings.Repeat("─", m.width)

	return lipgloss.JoinVertical(lipgloss.Left, tabLine, border)
}

// StartTUI browses the results of one analysis run until the user quits
func StartTUI(ctx *lint.Context, violations []lint.Violation) error {
	model := NewModel(ctx, violations)

	program := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := program.Run()
	return err
}
