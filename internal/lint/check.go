package lint

import "github.com/mabhi256/jlint/internal/model"

// Check is a pluggable rule run by the Engine
type Check interface {
	Name() string
	Description() string
	Analyze(ctx *Context) []Violation
}

// MemberRules are the optional per-level hooks of a member traversal.
// A nil hook produces nothing.
type MemberRules struct {
	Class    func(c *model.ClassModel) (Violation, bool)
	Field    func(f *model.FieldModel) (Violation, bool)
	Method   func(m *model.MethodModel) (Violation, bool)
	Variable func(v *model.VariableModel, m *model.MethodModel) (Violation, bool)
}

// TraverseMembers visits every class, then its fields, then each method followed by
// the method's variables, collecting whatever the hooks report in that order.
func TraverseMembers(classes []*model.ClassModel, rules MemberRules) []Violation {
	var violations []Violation
	add := func(v Violation, found bool) {
		if found {
			violations = append(violations, v)
		}
	}

	for _, c := range classes {
		if rules.Class != nil {
			add(rules.Class(c))
		}

		if rules.Field != nil {
			for _, f := range c.Fields {
				add(rules.Field(f))
			}
		}

		for _, m := range c.Methods {
			if rules.Method != nil {
				add(rules.Method(m))
			}
			if rules.Variable != nil {
				for _, v := range m.Variables {
					add(rules.Variable(v, m))
				}
			}
		}
	}

	return violations
}

// memberCheck adapts a set of hooks to the Check interface
type memberCheck struct {
	name        string
	description string
	rules       MemberRules
}

func (c *memberCheck) Name() string        { return c.name }
func (c *memberCheck) Description() string { return c.description }

func (c *memberCheck) Analyze(ctx *Context) []Violation {
	return TraverseMembers(ctx.Classes, c.rules)
}

// NewMemberCheck builds a Check that runs the given hooks over every member
func NewMemberCheck(name, description string, rules MemberRules) Check {
	return &memberCheck{name: name, description: description, rules: rules}
}

// found and none keep hook bodies short
func found(v Violation) (Violation, bool) { return v, true }
func none() (Violation, bool)             { return Violation{}, false }
