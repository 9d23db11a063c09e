package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mabhi256/jlint/internal/graph"
	"github.com/mabhi256/jlint/internal/lint"
	"github.com/mabhi256/jlint/internal/model"
)

func testModel() *Model {
	classes := []*model.ClassModel{
		{Name: "Order", Package: "com.shop", SuperType: "Entity", Fields: []*model.FieldModel{
			{Name: "customer", OwnerName: "Order", Type: "Customer"},
		}},
		{Name: "Customer", SuperType: model.RootObject, Fields: []*model.FieldModel{
			{Name: "orders", OwnerName: "Customer", Type: "Order[]"},
		}},
		{Name: "Entity", SuperType: model.RootObject, IsAbstract: true},
	}
	ctx := lint.NewContext(classes, "build/classes")
	ctx.Sources["Order"] = "com/shop/Order.class"

	violations := []lint.Violation{
		lint.NewViolation(lint.CircularDependencyCheckName, "Order", "Circular dependency detected: Order -> Customer -> Order"),
		lint.NewViolation(lint.PublicMutableFieldsCheckName, "Order", "Field 'total' is public and mutable"),
		lint.NewViolation(lint.PublicMutableFieldsCheckName, "Customer", "Field 'name' is public and mutable"),
	}

	m := NewModel(ctx, violations)
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return m
}

func press(m *Model, keys ...string) {
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		case "shift+tab":
			msg = tea.KeyMsg{Type: tea.KeyShiftTab}
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		m.Update(msg)
	}
}

func TestTabNavigation(t *testing.T) {
	m := testModel()
	assert.Equal(t, SummaryTab, m.currentTab)

	press(m, "3")
	assert.Equal(t, DependenciesTab, m.currentTab)

	press(m, "tab")
	assert.Equal(t, SummaryTab, m.currentTab)

	press(m, "tab")
	assert.Equal(t, ViolationsTab, m.currentTab)

	press(m, "shift+tab", "shift+tab")
	assert.Equal(t, DependenciesTab, m.currentTab)
}

func TestViolationSelection(t *testing.T) {
	m := testModel()
	press(m, "2")

	require.Len(t, m.groups, 2)
	assert.Equal(t, 0, m.selectedGroup)

	press(m, "j")
	assert.Equal(t, 0, m.selectedViolation, "first group has a single violation")

	press(m, "l", "j", "j")
	assert.Equal(t, 1, m.selectedGroup)
	assert.Equal(t, 1, m.selectedViolation)

	press(m, "enter")
	assert.True(t, m.expanded[1])

	press(m, "h")
	assert.Equal(t, 0, m.selectedGroup)
	assert.Equal(t, 0, m.selectedViolation)
	assert.Empty(t, m.expanded)
}

func TestDependencyFilter(t *testing.T) {
	m := testModel()
	press(m, "3")

	assert.Len(t, m.filteredEdges(), 3)

	press(m, "l")
	assert.Equal(t, graph.IS_A, m.kindFilter)
	require.Len(t, m.filteredEdges(), 1)
	assert.Equal(t, graph.Edge{From: "Order", To: "Entity", Kind: graph.IS_A}, m.filteredEdges()[0])

	press(m, "h", "h")
	assert.Equal(t, graph.GENERAL, m.kindFilter)
	assert.Empty(t, m.filteredEdges())
}

func TestView(t *testing.T) {
	m := NewModel(lint.NewContext(nil, "x"), nil)
	assert.Equal(t, "Loading...", m.View())

	m = testModel()
	assert.Contains(t, m.View(), "Analysis Summary")

	press(m, "2", "enter")
	view := m.View()
	assert.Contains(t, view, "Circular dependency detected")
	assert.Contains(t, view, "com/shop/Order.class")
	assert.Contains(t, view, "has a")

	press(m, "3")
	assert.Contains(t, m.View(), "Customer")
}

func TestQuit(t *testing.T) {
	m := testModel()
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
