package errors

import (
	"strings"
	"unicode"
)

// ValidateElementID validates a diagram element identifier.
//
// The rules are intentionally conservative:
//   - No empty identifiers
//   - Letters, digits and underscores only
//   - Maximum length of 256 characters
//
// Identifiers appear verbatim in generated text and XML attributes, so
// anything that could break quoting is rejected up front.
func ValidateElementID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidID, "element id cannot be empty")
	}

	if len(id) > 256 {
		return New(ErrCodeInvalidID, "element id too long (max 256 characters)")
	}

	for _, r := range id {
		if r == '_' {
			continue
		}
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return New(ErrCodeInvalidID, "element id %q contains invalid character %q", id, r)
		}
	}

	return nil
}

// ValidateName validates a display name for an element or diagram.
// Names end up inside double quotes in the generated output, so control
// characters and raw quotes are rejected.
func ValidateName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidInput, "name cannot be empty")
	}

	for _, r := range name {
		if unicode.IsControl(r) && r != '\n' {
			return New(ErrCodeInvalidInput, "name contains invalid control characters")
		}
	}

	if strings.Contains(name, `"`) {
		return New(ErrCodeInvalidInput, "name cannot contain double quotes")
	}

	return nil
}

// ValidateOutputPath validates a user-supplied output file path.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "output path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "output path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "output path contains invalid characters")
		}
	}

	return nil
}
