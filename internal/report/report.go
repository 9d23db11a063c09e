package report

import (
	"fmt"
	"io"

	"github.com/mabhi256/jlint/internal/config"
	"github.com/mabhi256/jlint/internal/lint"
	"github.com/mabhi256/jlint/utils"
)

// Group is the violations of one check, in the order they were reported
type Group struct {
	Check      string
	Violations []lint.Violation
}

// GroupByCheck groups violations by check name, ordered by first appearance
func GroupByCheck(violations []lint.Violation) []Group {
	index := make(map[string]int)
	var groups []Group
	for _, v := range violations {
		i, ok := index[v.CheckName]
		if !ok {
			i = len(groups)
			index[v.CheckName] = i
			groups = append(groups, Group{Check: v.CheckName})
		}
		groups[i].Violations = append(groups[i].Violations, v)
	}
	return groups
}

// Severity ranks a check for display and for SARIF result levels
func Severity(checkName string) string {
	switch checkName {
	case lint.CircularDependencyCheckName, lint.EqualsHashCodeCheckName:
		return utils.SeverityError
	case lint.PublicMutableFieldsCheckName, lint.RedundantInterfacesCheckName, lint.PublicConstructorCheckName:
		return utils.SeverityWarning
	default:
		return utils.SeverityNote
	}
}

// Write renders violations in one of the non-interactive output formats
func Write(w io.Writer, format string, violations []lint.Violation, ctx *lint.Context) error {
	switch format {
	case config.OutputText:
		return WriteText(w, violations)
	case config.OutputCLI:
		return WriteCLI(w, violations, ctx)
	case config.OutputJSON:
		return WriteJSON(w, violations)
	case config.OutputSARIF:
		return WriteSARIF(w, violations, ctx)
	default:
		return fmt.Errorf("unsupported report format: %s", format)
	}
}

// WriteText prints one numbered line per violation
func WriteText(w io.Writer, violations []lint.Violation) error {
	if len(violations) == 0 {
		_, err := fmt.Fprintln(w, "No violations found")
		return err
	}

	for i, v := range violations {
		if _, err := fmt.Fprintf(w, "%d. %s\n", i+1, v); err != nil {
			return err
		}
	}
	return nil
}
