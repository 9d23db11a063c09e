package report

import (
	"encoding/json"
	"io"

	"github.com/mabhi256/jlint/internal/lint"
)

// WriteJSON writes the violations as an array of {check, class, message}
func WriteJSON(w io.Writer, violations []lint.Violation) error {
	if violations == nil {
		violations = []lint.Violation{}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(violations)
}
