package errors

import (
	"math"
	"strings"
	"unicode"
)

// MaxUnitIDLength bounds unit identifiers accepted from external input.
const MaxUnitIDLength = 128

// ValidateUnitID validates a unit identifier received from outside the
// process (snapshot files, HTTP requests).
//
// The rules are intentionally conservative:
//   - No empty ids
//   - No control characters or null bytes
//   - No surrounding whitespace
//   - Maximum length of [MaxUnitIDLength] characters
func ValidateUnitID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidUnitID, "unit id cannot be empty")
	}

	if len(id) > MaxUnitIDLength {
		return New(ErrCodeInvalidUnitID, "unit id too long (max %d characters)", MaxUnitIDLength)
	}

	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidUnitID, "unit id contains invalid control characters")
		}
	}

	if strings.TrimSpace(id) != id {
		return New(ErrCodeInvalidUnitID, "unit id has leading or trailing whitespace: %q", id)
	}

	return nil
}

// ValidateRect validates raw rectangle fields: every value must be finite
// and non-negative. Alignment and size limits are not checked here; the
// layout engine enforces those when a session ends.
func ValidateRect(top, left, width, height float64) error {
	fields := [...]struct {
		name string
		v    float64
	}{
		{"top", top},
		{"left", left},
		{"width", width},
		{"height", height},
	}
	for _, f := range fields {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return New(ErrCodeInvalidRect, "%s must be a finite number", f.name)
		}
		if f.v < 0 {
			return New(ErrCodeInvalidRect, "%s cannot be negative (got %g)", f.name, f.v)
		}
	}
	return nil
}

// ValidatePath validates a snapshot file path given on the command line.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 4096 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if strings.TrimSpace(path) == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 4096
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	return nil
}
