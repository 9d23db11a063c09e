package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/owenrumney/go-sarif/v2/sarif"

	"github.com/mabhi256/jlint/internal/lint"
)

const (
	toolName = "jlint"
	toolURI  = "https://github.com/mabhi256/jlint"
)

// RuleID turns a check name into a stable SARIF rule id, e.g. "circular-dependency-check"
func RuleID(checkName string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(checkName) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// BuildSARIF creates a SARIF 2.1.0 report with one rule per check and one result per violation
func BuildSARIF(violations []lint.Violation, ctx *lint.Context) (*sarif.Report, error) {
	report, err := sarif.New(sarif.Version210)
	if err != nil {
		return nil, fmt.Errorf("failed to create SARIF report: %w", err)
	}

	descriptions := make(map[string]string)
	for _, entry := range lint.Catalog() {
		descriptions[entry.Name] = entry.New(lint.CatalogOptions{}).Description()
	}

	run := sarif.NewRunWithInformationURI(toolName, toolURI)
	for _, group := range GroupByCheck(violations) {
		level := Severity(group.Check)
		description := descriptions[group.Check]
		if description == "" {
			description = group.Check
		}

		rule := run.AddRule(RuleID(group.Check)).
			WithDescription(description).
			WithDefaultConfiguration(&sarif.ReportingConfiguration{Level: level})

		for _, v := range group.Violations {
			className, kind := v.ClassName, "type"
			location := sarif.NewLocation()
			location.LogicalLocations = []*sarif.LogicalLocation{{Name: &className, Kind: &kind}}
			if ctx != nil {
				if path, ok := ctx.Sources[v.ClassName]; ok {
					location.WithPhysicalLocation(sarif.NewPhysicalLocation().
						WithArtifactLocation(sarif.NewArtifactLocation().WithUri(path)))
				}
			}

			result := sarif.NewRuleResult(rule.ID).
				WithMessage(sarif.NewTextMessage(v.Message)).
				WithLevel(level).
				WithLocations([]*sarif.Location{location})
			run.AddResult(result)
		}
	}
	report.AddRun(run)

	return report, nil
}

func WriteSARIF(w io.Writer, violations []lint.Violation, ctx *lint.Context) error {
	report, err := BuildSARIF(violations, ctx)
	if err != nil {
		return err
	}
	return report.PrettyWrite(w)
}
