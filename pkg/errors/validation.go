package errors

import (
	"strings"
	"unicode"
)

// ValidateScreenID validates a screen identifier.
//
// The validation rules are intentionally conservative:
//   - No empty ids
//   - No control characters or whitespace
//   - Maximum length of 64 characters
//
// Screen ids are static configuration, not user input; validation catches
// malformed TOML tables at load time rather than deep inside a layout pass.
func ValidateScreenID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidScreen, "screen id cannot be empty")
	}

	if len(id) > 64 {
		return New(ErrCodeInvalidScreen, "screen id too long (max 64 characters)")
	}

	for _, r := range id {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return New(ErrCodeInvalidScreen, "screen id %q contains invalid characters", id)
		}
	}

	return nil
}

// ValidateWidgetID validates a widget identifier within a screen.
// The same rules as screen ids apply, plus a ban on the comma used as the
// separator in CLI --expanded lists.
func ValidateWidgetID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidWidget, "widget id cannot be empty")
	}

	if len(id) > 64 {
		return New(ErrCodeInvalidWidget, "widget id too long (max 64 characters)")
	}

	if strings.Contains(id, ",") {
		return New(ErrCodeInvalidWidget, "widget id %q cannot contain commas", id)
	}

	for _, r := range id {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return New(ErrCodeInvalidWidget, "widget id %q contains invalid characters", id)
		}
	}

	return nil
}
