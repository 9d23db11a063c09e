package lint

import (
	"fmt"

	"github.com/mabhi256/jlint/internal/model"
)

const RedundantInterfacesCheckName = "Redundant Interfaces Check"

// RedundantInterfacesCheck reports interfaces a class declares although an analysed
// ancestor already declares them
type RedundantInterfacesCheck struct{}

func NewRedundantInterfacesCheck() Check {
	return &RedundantInterfacesCheck{}
}

func (c *RedundantInterfacesCheck) Name() string { return RedundantInterfacesCheckName }

func (c *RedundantInterfacesCheck) Description() string {
	return "Detects interfaces that are redundantly declared because they are already implemented by a parent or any ancestor class"
}

func (c *RedundantInterfacesCheck) Analyze(ctx *Context) []Violation {
	byName := make(map[string]*model.ClassModel, len(ctx.Classes))
	for _, cls := range ctx.Classes {
		if _, exists := byName[cls.Name]; !exists {
			byName[cls.Name] = cls
		}
	}

	var violations []Violation
	for _, cls := range ctx.Classes {
		inherited := ancestorInterfaces(cls, byName)
		for _, iface := range cls.Interfaces {
			ancestor, ok := inherited[iface]
			if !ok {
				continue
			}
			violations = append(violations, NewViolation(c.Name(), cls.Name, fmt.Sprintf(
				"Interface '%s' is redundant because it is already implemented by ancestor '%s'",
				iface, ancestor)))
		}
	}

	return violations
}

// ancestorInterfaces maps every interface declared along the super-type chain to the
// nearest ancestor declaring it. The walk stops at the root object, at a super type
// outside the analysed set, or when the chain loops back on itself.
func ancestorInterfaces(cls *model.ClassModel, byName map[string]*model.ClassModel) map[string]string {
	inherited := make(map[string]string)
	seen := map[string]bool{cls.Name: true}

	current := cls.SuperType
	for current != "" && current != model.RootObject && !seen[current] {
		ancestor, ok := byName[current]
		if !ok {
			break
		}
		seen[current] = true

		for _, iface := range ancestor.Interfaces {
			if _, exists := inherited[iface]; !exists {
				inherited[iface] = ancestor.Name
			}
		}
		current = ancestor.SuperType
	}

	return inherited
}
