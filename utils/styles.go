package utils

import (
	"fmt"
	"math"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
)

var (
	CriticalColor = lipgloss.Color("#CC3333") // Dark red
	WarningColor  = lipgloss.Color("#FF8800") // Orange
	GoodColor     = lipgloss.Color("#228B22") // Forest green
	InfoColor     = lipgloss.Color("#4682B4") // Steel blue
	TextColor     = lipgloss.Color("#CCCCCC") // Light gray
	MutedColor    = lipgloss.Color("#888888") // Medium gray
	BorderColor   = lipgloss.Color("#666666") // Dark gray

	CriticalLightColor = lipgloss.Color("#FF6666")
	WarningLightColor  = lipgloss.Color("#FFAA44")
	InfoLightColor     = lipgloss.Color("#88AACC")
)

var (
	CriticalStyle = lipgloss.NewStyle().Foreground(CriticalColor).Bold(true)
	WarningStyle  = lipgloss.NewStyle().Foreground(WarningColor).Bold(true)
	GoodStyle     = lipgloss.NewStyle().Foreground(GoodColor).Bold(true)
	InfoStyle     = lipgloss.NewStyle().Foreground(InfoColor)
	MutedStyle    = lipgloss.NewStyle().Foreground(MutedColor)
	TextStyle     = lipgloss.NewStyle().Foreground(TextColor)

	InfoLightStyle = lipgloss.NewStyle().Foreground(InfoLightColor)
)

var (
	TabActiveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(InfoColor).
			Padding(0, 1).
			Bold(true)

	TabInactiveStyle = lipgloss.NewStyle().
				Foreground(MutedColor).
				Padding(0, 1)

	SelectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#2a2a4a")).
			Bold(true)
)

var (
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderColor).
			Padding(1, 2)

	TitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Bold(true).
			Padding(0, 1)

	HeaderStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Background(lipgloss.Color("#1a1a1a")).
			Bold(true).
			Padding(0, 1)

	HelpBarStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Background(lipgloss.Color("#1a1a1a")).
			Width(0). // Will be set dynamically
			Padding(0, 1)
)

var supportsUnicode = detectUnicode()

func detectUnicode() bool {
	if strings.HasPrefix(os.Getenv("TERM"), "vt") {
		return false
	}
	testStr := "█░"
	return utf8.RuneCountInString(testStr) == len([]rune(testStr))
}

func CreateProgressBar(percentage float64, width int, color lipgloss.Color) string {
	if width < 4 {
		return fmt.Sprintf("%.0f%%", percentage*100)
	}

	fillChar, emptyChar := "█", "░"
	if !supportsUnicode {
		fillChar, emptyChar = "#", "-"
	}

	filled := int(math.Round(percentage * float64(width)))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	bar := strings.Repeat(fillChar, filled) + strings.Repeat(emptyChar, width-filled)
	if color != "" {
		bar = lipgloss.NewStyle().Foreground(color).Render(bar)
	}

	return bar
}

// Severity levels used by the reports; they map onto SARIF result levels
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
	SeverityNote    = "note"
)

func GetSeverityStyle(severity string) lipgloss.Style {
	switch severity {
	case SeverityError:
		return CriticalStyle
	case SeverityWarning:
		return WarningStyle
	default:
		return InfoStyle
	}
}

func GetSeverityColor(severity string) lipgloss.Color {
	switch severity {
	case SeverityError:
		return CriticalColor
	case SeverityWarning:
		return WarningColor
	default:
		return InfoColor
	}
}

func GetSeverityIcon(severity string) string {
	switch severity {
	case SeverityError:
		return "🔴"
	case SeverityWarning:
		return "⚠️"
	default:
		return "ℹ️"
	}
}

// GetRelationshipStyle colours a relationship kind by how tightly it couples two classes
func GetRelationshipStyle(kind string) lipgloss.Style {
	switch kind {
	case "IS_A", "IMPLEMENTS":
		return CriticalStyle
	case "HAS_MANY", "HAS_A":
		return WarningStyle
	case "GENERAL":
		return InfoStyle
	default:
		return MutedStyle
	}
}

// FormatKeyValue renders an aligned "key: value" pair
func FormatKeyValue(key, value string, keyWidth int) string {
	keyStyled := InfoStyle.Width(keyWidth).Render(key + ":")
	valueStyled := TextStyle.Render(value)
	return lipgloss.JoinHorizontal(lipgloss.Left, keyStyled, " ", valueStyled)
}

// TruncateString truncates a string to fit within maxWidth
func TruncateString(s string, maxWidth int) string {
	if utf8.RuneCountInString(s) <= maxWidth {
		return s
	}
	if maxWidth < 4 {
		return strings.Repeat(".", max(maxWidth, 0))
	}
	runes := []rune(s)
	return string(runes[:maxWidth-3]) + "..."
}

// PadRight pads a string to the right to reach the specified width
func PadRight(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}
