package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/mabhi256/jlint/internal/lint"
	"github.com/mabhi256/jlint/utils"
)

const shareBarWidth = 20

// WriteCLI prints a styled summary grouped by check
func WriteCLI(w io.Writer, violations []lint.Violation, ctx *lint.Context) error {
	var b strings.Builder

	b.WriteString("🔍 Lint Analysis\n")
	if ctx != nil {
		fmt.Fprintf(&b, "Input: %s  |  Classes: %d  |  Relationships: %d\n",
			ctx.Path, ctx.ClassCount(), len(ctx.Matrix.Edges()))
	}
	b.WriteString(strings.Repeat("═", 65) + "\n")

	if len(violations) == 0 {
		b.WriteString("\n" + utils.GoodStyle.Render("✅ No violations found") + "\n")
		_, err := io.WriteString(w, b.String())
		return err
	}

	groups := GroupByCheck(violations)

	b.WriteString("\n📊 SUMMARY\n")
	b.WriteString(strings.Repeat("─", 35) + "\n")
	nameWidth := 0
	for _, g := range groups {
		nameWidth = max(nameWidth, len(g.Check))
	}
	for _, g := range groups {
		severity := Severity(g.Check)
		share := float64(len(g.Violations)) / float64(len(violations))
		fmt.Fprintf(&b, "%s %s %s %d\n",
			utils.GetSeverityIcon(severity),
			utils.PadRight(g.Check, nameWidth),
			utils.CreateProgressBar(share, shareBarWidth, utils.GetSeverityColor(severity)),
			len(g.Violations))
	}

	for _, g := range groups {
		style := utils.GetSeverityStyle(Severity(g.Check))
		fmt.Fprintf(&b, "\n%s\n", style.Render(fmt.Sprintf("%s (%d)", strings.ToUpper(g.Check), len(g.Violations))))
		b.WriteString(strings.Repeat("─", 35) + "\n")
		for _, v := range g.Violations {
			fmt.Fprintf(&b, "  %s %s\n", utils.InfoStyle.Render(v.ClassName), v.Message)
		}
	}

	fmt.Fprintf(&b, "\n🎯 Total: %d violation(s) across %d check(s)\n", len(violations), len(groups))

	_, err := io.WriteString(w, b.String())
	return err
}
