package lint

import (
	"github.com/mabhi256/jlint/internal/model"
)

const PublicConstructorCheckName = "Public Constructor Check"

// NewPublicConstructorCheck flags public concrete classes whose instances can be
// created through a public constructor, either an explicit one or the implicit
// default the compiler adds when none is declared.
func NewPublicConstructorCheck() Check {
	return &publicConstructorCheck{}
}

type publicConstructorCheck struct{}

func (c *publicConstructorCheck) Name() string { return PublicConstructorCheckName }

func (c *publicConstructorCheck) Description() string {
	return "Checks if public classes have public constructors (explicit or implicit). " +
		"Public classes should not expose public constructors to prevent direct instantiation."
}

func (c *publicConstructorCheck) Analyze(ctx *Context) []Violation {
	owners := make(map[string]*model.ClassModel, len(ctx.Classes))
	for _, cls := range ctx.Classes {
		owners[cls.Name] = cls
	}

	return TraverseMembers(ctx.Classes, MemberRules{
		Class: checkImplicitConstructor,
		Method: func(m *model.MethodModel) (Violation, bool) {
			return checkExplicitConstructor(owners[m.OwnerName], m)
		},
	})
}

func isExposedClass(c *model.ClassModel) bool {
	return c != nil && c.IsPublic && c.IsConcrete()
}

func checkImplicitConstructor(c *model.ClassModel) (Violation, bool) {
	if !isExposedClass(c) || len(c.Constructors()) > 0 {
		return none()
	}
	return found(NewViolation(PublicConstructorCheckName, c.Name,
		"Public class has no explicit constructor, resulting in an implicit public constructor"))
}

func checkExplicitConstructor(owner *model.ClassModel, m *model.MethodModel) (Violation, bool) {
	if !m.IsConstructor() || !m.IsPublic || !isExposedClass(owner) {
		return none()
	}
	return found(NewViolation(PublicConstructorCheckName, owner.Name,
		"Public class has an explicit public constructor: "+m.Name))
}
