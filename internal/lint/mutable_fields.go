package lint

import (
	"fmt"

	"github.com/mabhi256/jlint/internal/model"
)

const PublicMutableFieldsCheckName = "Public Mutable Fields Check"

func NewPublicMutableFieldsCheck() Check {
	return NewMemberCheck(
		PublicMutableFieldsCheckName,
		"Detects public fields that are not final (mutable)",
		MemberRules{Field: checkPublicMutableField},
	)
}

func checkPublicMutableField(f *model.FieldModel) (Violation, bool) {
	if !f.IsPublic || f.IsFinal {
		return none()
	}
	return found(NewViolation(PublicMutableFieldsCheckName, f.OwnerName,
		fmt.Sprintf("Field '%s' is public and mutable", f.Name)))
}
