package lint

import (
	"fmt"
	"strconv"
	"strings"
)

// SelectionError describes one selector token that could not be mapped to a check
type SelectionError struct {
	Token  string `json:"token"`
	Reason string `json:"reason"`
}

func (e *SelectionError) Error() string {
	return fmt.Sprintf("invalid check selection %q: %s", e.Token, e.Reason)
}

// CatalogOptions configures checks that need settings from outside the core
type CatalogOptions struct {
	Diagram DiagramOptions
}

// CatalogEntry is one selectable check
type CatalogEntry struct {
	Number int
	Name   string
	New    func(opts CatalogOptions) Check
}

// Catalog lists every check in selector order
func Catalog() []CatalogEntry {
	return []CatalogEntry{
		{1, EqualsHashCodeCheckName, func(CatalogOptions) Check { return NewEqualsHashCodeCheck() }},
		{2, PublicMutableFieldsCheckName, func(CatalogOptions) Check { return NewPublicMutableFieldsCheck() }},
		{3, NamingConventionCheckName, func(CatalogOptions) Check { return NewNamingConventionCheck() }},
		{4, RedundantInterfacesCheckName, func(CatalogOptions) Check { return NewRedundantInterfacesCheck() }},
		{5, CircularDependencyCheckName, func(CatalogOptions) Check { return NewCircularDependencyCheck() }},
		{6, DiagramCheckName, func(opts CatalogOptions) Check { return NewDiagramCheck(opts.Diagram) }},
		{7, PublicConstructorCheckName, func(CatalogOptions) Check { return NewPublicConstructorCheck() }},
	}
}

// ParseSelection maps "all" or a comma-separated list of check numbers to checks.
// Bad tokens are collected and skipped; valid ones keep their order.
func ParseSelection(input string, opts CatalogOptions) ([]Check, []*SelectionError) {
	catalog := Catalog()

	if strings.EqualFold(strings.TrimSpace(input), "all") {
		checks := make([]Check, 0, len(catalog))
		for _, entry := range catalog {
			checks = append(checks, entry.New(opts))
		}
		return checks, nil
	}

	var (
		checks []Check
		errs   []*SelectionError
	)
	for _, raw := range strings.Split(input, ",") {
		token := strings.TrimSpace(raw)
		if token == "" {
			continue
		}

		number, err := strconv.Atoi(token)
		if err != nil {
			errs = append(errs, &SelectionError{Token: token, Reason: "not a number"})
			continue
		}
		if number < 1 || number > len(catalog) {
			errs = append(errs, &SelectionError{
				Token:  token,
				Reason: fmt.Sprintf("no check with number %d (valid: 1-%d)", number, len(catalog)),
			})
			continue
		}

		checks = append(checks, catalog[number-1].New(opts))
	}

	return checks, errs
}
