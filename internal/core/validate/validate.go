// Package validate provides shared validation functions.
package validate

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/hay-kot/criterio"
)

// Code validates an entry code: non-empty, letters and digits only.
func Code(code string) error {
	if code == "" {
		return fmt.Errorf("code is required")
	}
	for _, r := range code {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return fmt.Errorf("code %q may only contain letters and digits", code)
		}
	}
	return nil
}

// DialCode validates a dial code: a plus sign followed by at least one digit.
// Spaces and hyphens are allowed between digit groups.
func DialCode(dial string) error {
	rest, ok := strings.CutPrefix(dial, "+")
	if !ok {
		return fmt.Errorf("dial code %q must start with +", dial)
	}
	digits := 0
	for _, r := range rest {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == ' ' || r == '-':
		default:
			return fmt.Errorf("dial code %q contains %q", dial, r)
		}
	}
	if digits == 0 {
		return fmt.Errorf("dial code %q has no digits", dial)
	}
	return nil
}

// Name validates an entry name is non-empty after trimming whitespace.
func Name(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("name is required")
	}
	return nil
}

// CodeField returns a criterio validator for entry codes.
func CodeField(field, code string) error {
	return criterio.Run(field, code, Code)
}

// DialCodeField returns a criterio validator for dial codes.
func DialCodeField(field, dial string) error {
	return criterio.Run(field, dial, DialCode)
}

// NameField returns a criterio validator for entry names.
func NameField(field, name string) error {
	return criterio.Run(field, name, Name)
}
