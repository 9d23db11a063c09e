package lint

import (
	"github.com/mabhi256/jlint/internal/graph"
)

const CircularDependencyCheckName = "Circular Dependency Check"

// CircularDependencyCheck reports each cycle in the relationship matrix once,
// attributed to the class at which the cycle closes
type CircularDependencyCheck struct{}

func NewCircularDependencyCheck() Check {
	return &CircularDependencyCheck{}
}

func (c *CircularDependencyCheck) Name() string { return CircularDependencyCheckName }

func (c *CircularDependencyCheck) Description() string {
	return "Detects circular dependencies between classes where Class A depends on Class B and Class B depends on Class A (directly or indirectly)."
}

func (c *CircularDependencyCheck) Analyze(ctx *Context) []Violation {
	var violations []Violation
	for _, cycle := range graph.DetectCycles(ctx.Matrix) {
		violations = append(violations, NewViolation(c.Name(), cycle.Start(),
			"Circular dependency detected: "+cycle.String()))
	}
	return violations
}
