package lint

import "github.com/mabhi256/jlint/internal/model"

const EqualsHashCodeCheckName = "Equals/HashCode Check"

// NewEqualsHashCodeCheck flags classes declaring exactly one of equals and hashCode
func NewEqualsHashCodeCheck() Check {
	return NewMemberCheck(
		EqualsHashCodeCheckName,
		"Detects classes that override equals() or hashCode() but not both",
		MemberRules{Class: checkEqualsHashCode},
	)
}

func checkEqualsHashCode(c *model.ClassModel) (Violation, bool) {
	hasEquals := c.HasMethod("equals")
	hasHashCode := c.HasMethod("hashCode")

	if hasEquals == hasHashCode {
		return none()
	}

	message := "Class overrides hashCode() but not equals()"
	if hasEquals {
		message = "Class overrides equals() but not hashCode()"
	}
	return found(NewViolation(EqualsHashCodeCheckName, c.Name, message))
}
