// Package patch holds the apply rules shared by the partial-update types of
// every record. A nil pointer always means "field absent, leave untouched".
package patch

import "strings"

// SetNonBlank overwrites dst with the trimmed value only when v is present
// and not blank. Used for fields that may never be cleared by an update.
func SetNonBlank(dst *string, v *string) {
	if v == nil {
		return
	}

	trimmed := strings.TrimSpace(*v)
	if trimmed == "" {
		return
	}

	*dst = trimmed
}

// SetPresent overwrites dst with the trimmed value whenever v is present.
// An explicit empty string clears the field.
func SetPresent(dst *string, v *string) {
	if v == nil {
		return
	}

	*dst = strings.TrimSpace(*v)
}

// SetNonZero overwrites dst when v is present and not the zero value.
func SetNonZero[T comparable](dst *T, v *T) {
	var zero T

	if v == nil || *v == zero {
		return
	}

	*dst = *v
}

// SetAny overwrites dst whenever v is present, zero values included.
func SetAny[T any](dst *T, v *T) {
	if v == nil {
		return
	}

	*dst = *v
}
