package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"

	"github.com/mabhi256/jlint/internal/graph"
	"github.com/mabhi256/jlint/internal/lint"
	"github.com/mabhi256/jlint/internal/report"
)

type Model struct {
	// Data
	ctx        *lint.Context
	violations []lint.Violation
	groups     []report.Group
	edges      []graph.Edge

	// UI State
	currentTab TabType
	width      int
	height     int

	selectedGroup     int
	selectedViolation int
	expanded          map[int]bool

	kindFilter graph.RelationshipKind // NONE shows every kind
	depScroll  int

	// Key bindings
	keys KeyMap
	help help.Model
}

type TabType int

const (
	SummaryTab TabType = iota
	ViolationsTab
	DependenciesTab
)

// kindFilters is the cycle order of the dependencies tab filter
var kindFilters = []graph.RelationshipKind{
	graph.NONE, graph.IS_A, graph.IMPLEMENTS, graph.HAS_MANY, graph.HAS_A, graph.GENERAL,
}

type KeyMap struct {
	Tab1  key.Binding
	Tab2  key.Binding
	Tab3  key.Binding
	Tab   key.Binding
	Back  key.Binding
	Left  key.Binding
	Right key.Binding
	Up    key.Binding
	Down  key.Binding
	Enter key.Binding
	Help  key.Binding
	Quit  key.Binding
}

func k(keys []string, help, desc string) key.Binding {
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(help, desc),
	)
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Tab1:  k([]string{"1"}, "1", "summary"),
		Tab2:  k([]string{"2"}, "2", "violations"),
		Tab3:  k([]string{"3"}, "3", "dependencies"),
		Tab:   k([]string{"tab"}, "tab", "next tab"),
		Back:  k([]string{"shift+tab"}, "shift+tab", "prev tab"),
		Left:  k([]string{"left", "h"}, "←/h", "prev filter"),
		Right: k([]string{"right", "l"}, "→/l", "next filter"),
		Up:    k([]string{"up", "k"}, "↑/k", "up"),
		Down:  k([]string{"down", "j"}, "↓/j", "down"),
		Enter: k([]string{"enter", " "}, "enter", "details"),
		Help:  k([]string{"?"}, "?", "help"),
		Quit:  k([]string{"q", "ctrl+c"}, "q", "quit"),
	}
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Left, k.Right, k.Help, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab1, k.Tab2, k.Tab3, k.Tab, k.Back},
		{k.Up, k.Down, k.Left, k.Right},
		{k.Enter, k.Help, k.Quit},
	}
}
