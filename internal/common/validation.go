package common

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
)

// ValidationError describes a single failed check on a named field.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

// Rule checks one value and returns the failure message, or "" when the
// value passes.
type Rule func(value string) string

// Validator accumulates field checks so callers can report every problem at
// once instead of stopping at the first.
type Validator struct {
	errs []ValidationError
}

func NewValidator() *Validator { return &Validator{} }

// Field runs every rule against value, recording one ValidationError per
// failure. Returns the validator for chaining.
func (v *Validator) Field(name, value string, rules ...Rule) *Validator {
	for _, r := range rules {
		if msg := r(value); msg != "" {
			v.errs = append(v.errs, ValidationError{Field: name, Message: msg})
		}
	}
	return v
}

func (v *Validator) Valid() bool { return len(v.errs) == 0 }

func (v *Validator) Errors() []ValidationError { return v.errs }

// Err folds the accumulated failures into a single CONFIGURATION_ERROR,
// or nil when everything passed.
func (v *Validator) Err() error {
	if len(v.errs) == 0 {
		return nil
	}
	msgs := make([]string, len(v.errs))
	for i, e := range v.errs {
		msgs[i] = e.Error()
	}
	return ConfigurationError("%s", strings.Join(msgs, "; "))
}

// Required fails on empty or whitespace-only values.
func Required(value string) string {
	if strings.TrimSpace(value) == "" {
		return "is required"
	}
	return ""
}

// Optional wraps a rule so that empty values pass.
func Optional(rule Rule) Rule {
	return func(value string) string {
		if strings.TrimSpace(value) == "" {
			return ""
		}
		return rule(value)
	}
}

// ValidUUID fails unless the value parses as a UUID.
func ValidUUID(value string) string {
	if _, err := uuid.Parse(value); err != nil {
		return "must be a valid UUID"
	}
	return ""
}

// MaxLength builds a rule failing when the value exceeds max runes.
func MaxLength(max int) Rule {
	return func(value string) string {
		if utf8.RuneCountInString(value) > max {
			return fmt.Sprintf("must be at most %d characters", max)
		}
		return ""
	}
}

// OneOf builds a rule failing unless the value is among the allowed choices.
func OneOf(allowed ...string) Rule {
	return func(value string) string {
		for _, a := range allowed {
			if value == a {
				return ""
			}
		}
		return fmt.Sprintf("must be one of %s", strings.Join(allowed, ", "))
	}
}
