package profile

import "regexp"

var keyPattern = regexp.MustCompile(`^\w+$`)

// IsValidKey reports whether candidate is an acceptable variable name:
// one or more letters, digits or underscores.
func IsValidKey(candidate string) bool {
	return keyPattern.MatchString(candidate)
}

// ValidateKey is IsValidKey as an error for prompt validators.
func ValidateKey(candidate string) error {
	if !IsValidKey(candidate) {
		return newError(KindValidation, "invalid key %q: use letters, digits and underscores", candidate)
	}
	return nil
}

// ValidateValue rejects empty values.
func ValidateValue(value string) error {
	if value == "" {
		return newError(KindValidation, "value must not be empty")
	}
	return nil
}
