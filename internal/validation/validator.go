// Package validation runs cheap static checks on user-supplied words before
// any store or index access.
package validation

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

const defaultMaxRunes = 64

// Result is the outcome of validating one input string.
type Result struct {
	IsValid bool
	Reason  string
}

// Validator applies the static rules in order and stops at the first
// violation.
type Validator struct {
	maxRunes int
}

func NewValidator() *Validator {
	return &Validator{maxRunes: defaultMaxRunes}
}

// Validate checks that input is a non-empty, reasonably sized word string
// with no control characters.
func (v *Validator) Validate(input string) Result {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return Result{IsValid: false, Reason: "empty or whitespace-only input"}
	}
	if n := utf8.RuneCountInString(trimmed); n > v.maxRunes {
		return Result{IsValid: false, Reason: fmt.Sprintf("input exceeds %d characters", v.maxRunes)}
	}
	for _, r := range trimmed {
		if unicode.IsControl(r) {
			return Result{IsValid: false, Reason: "input contains control characters"}
		}
	}
	return Result{IsValid: true, Reason: "input validated"}
}
