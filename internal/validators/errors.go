package validators

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")
	ErrInvalidSettings = errors.New("invalid settings")
)

// Violation is a single failed rule.
type Violation struct {
	// Field is the JSON field name as written in the settings document.
	Field string
	// Rule is the validation tag that failed, e.g. "required" or "url".
	Rule string
	// Param is the rule parameter, e.g. "65535" for lte=65535.
	Param string
}

func (v Violation) String() string {
	if v.Param == "" {
		return fmt.Sprintf("%q failed %s", v.Field, v.Rule)
	}
	return fmt.Sprintf("%q failed %s=%s", v.Field, v.Rule, v.Param)
}

// ValidationError lists every violation found in one record. It matches
// [ErrInvalidSettings] via errors.Is.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, v.String())
	}
	return fmt.Sprintf("%s: %s", ErrInvalidSettings, strings.Join(parts, "; "))
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidSettings
}
