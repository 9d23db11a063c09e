package lint

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mabhi256/jlint/internal/model"
)

const NamingConventionCheckName = "Naming Convention Check"

/*
NewNamingConventionCheck validates names at every level:

	classes, interfaces    start uppercase
	fields, methods, vars  start lowercase
	final fields           all uppercase

No name may contain a digit, '_' or '$'. Constructors, static initializers
and the receiver binding are exempt.
*/
func NewNamingConventionCheck() Check {
	return NewMemberCheck(
		NamingConventionCheckName,
		"Validates that class, method, field, and variable names follow naming conventions",
		MemberRules{
			Class:    checkClassName,
			Field:    checkFieldName,
			Method:   checkMethodName,
			Variable: checkVariableName,
		},
	)
}

func checkClassName(c *model.ClassModel) (Violation, bool) {
	if beginsWithUppercase(c.Name) && isPlainName(c.Name) {
		return none()
	}
	return found(NewViolation(NamingConventionCheckName, c.Name, fmt.Sprintf(
		"Class name '%s' does not follow naming conventions (should start with uppercase, no special characters or numbers)",
		c.Name)))
}

func checkFieldName(f *model.FieldModel) (Violation, bool) {
	if f.IsFinal {
		if isAllUppercase(f.Name) && isPlainName(f.Name) {
			return none()
		}
		return found(NewViolation(NamingConventionCheckName, f.OwnerName, fmt.Sprintf(
			"Constant '%s' does not follow naming conventions (should be all uppercase, no special characters or numbers)",
			f.Name)))
	}

	if beginsWithLowercase(f.Name) && isPlainName(f.Name) {
		return none()
	}
	return found(NewViolation(NamingConventionCheckName, f.OwnerName, fmt.Sprintf(
		"Field '%s' does not follow naming conventions (should start with lowercase, no special characters or numbers)",
		f.Name)))
}

func checkMethodName(m *model.MethodModel) (Violation, bool) {
	if m.IsConstructor() || m.IsStaticInitializer() {
		return none()
	}
	if beginsWithLowercase(m.Name) && isPlainName(m.Name) {
		return none()
	}
	return found(NewViolation(NamingConventionCheckName, m.OwnerName, fmt.Sprintf(
		"Method '%s' does not follow naming conventions (should start with lowercase, no special characters or numbers)",
		m.Name)))
}

func checkVariableName(v *model.VariableModel, m *model.MethodModel) (Violation, bool) {
	if v.Name == model.ReceiverName {
		return none()
	}
	if beginsWithLowercase(v.Name) && isPlainName(v.Name) {
		return none()
	}
	return found(NewViolation(NamingConventionCheckName, m.OwnerName, fmt.Sprintf(
		"Local variable '%s' in method '%s' does not follow naming conventions (should start with lowercase, no special characters or numbers)",
		v.Name, m.Name)))
}

func beginsWithUppercase(name string) bool {
	r, _ := utf8.DecodeRuneInString(name)
	return name != "" && unicode.IsUpper(r)
}

func beginsWithLowercase(name string) bool {
	r, _ := utf8.DecodeRuneInString(name)
	return name != "" && unicode.IsLower(r)
}

// isAllUppercase is true when no letter is lowercase
func isAllUppercase(name string) bool {
	return !strings.ContainsFunc(name, unicode.IsLower)
}

// isPlainName rejects digits, '_' and '$'
func isPlainName(name string) bool {
	return !strings.ContainsFunc(name, func(r rune) bool {
		return unicode.IsDigit(r) || r == '_' || r == '$'
	})
}
