// ABOUTME: Input validation for registration and login flows
// ABOUTME: License/plate format rules, password strength policy, and ValidationError

package identity

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"unicode"
)

// Regional identifier formats: a driver's license is three uppercase letters
// followed by eight digits; a plate is three uppercase letters, a hyphen,
// three digits, and two uppercase letters (e.g. ABC-123DE).
var (
	licenseRegex = regexp.MustCompile(`^[A-Z]{3}[0-9]{8}$`)
	plateRegex   = regexp.MustCompile(`^[A-Z]{3}-[0-9]{3}[A-Z]{2}$`)
)

// ValidationError reports malformed or missing input with a reason per field.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		names = append(names, f)
	}
	sort.Strings(names)

	parts := make([]string, len(names))
	for i, f := range names {
		parts[i] = fmt.Sprintf("%s: %s", f, e.Fields[f])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// fieldErrors accumulates per-field validation failures.
type fieldErrors map[string]string

// require records a "required" failure for every named field whose value is empty.
func (fe fieldErrors) require(fields map[string]string) {
	for name, value := range fields {
		if value == "" {
			fe[name] = "required"
		}
	}
}

// err returns a *ValidationError when any failure was recorded, nil otherwise.
func (fe fieldErrors) err() error {
	if len(fe) == 0 {
		return nil
	}
	return &ValidationError{Fields: fe}
}

// validLicense reports whether s matches the license format.
func validLicense(s string) bool {
	return licenseRegex.MatchString(s)
}

// validPlate reports whether s matches the plate format.
func validPlate(s string) bool {
	return plateRegex.MatchString(s)
}

// checkPasswordStrength enforces the driver password policy: at least 8
// characters with at least one lowercase letter, one uppercase letter, one
// digit, and one symbol. Returns a reason string, empty when the password
// passes.
func checkPasswordStrength(password string) string {
	if len(password) < 8 {
		return "must be at least 8 characters"
	}

	var hasLower, hasUpper, hasDigit, hasSymbol bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			hasSymbol = true
		}
	}

	switch {
	case !hasLower:
		return "must contain a lowercase letter"
	case !hasUpper:
		return "must contain an uppercase letter"
	case !hasDigit:
		return "must contain a digit"
	case !hasSymbol:
		return "must contain a symbol"
	}
	return ""
}
