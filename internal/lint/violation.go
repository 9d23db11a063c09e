package lint

import "fmt"

// Violation is one reported rule failure
type Violation struct {
	CheckName string `json:"check"`
	ClassName string `json:"class"`
	Message   string `json:"message"`
}

func NewViolation(checkName, className, message string) Violation {
	return Violation{CheckName: checkName, ClassName: className, Message: message}
}

func (v Violation) String() string {
	return fmt.Sprintf("%s violated in %s: %s", v.CheckName, v.ClassName, v.Message)
}
