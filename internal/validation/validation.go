package validation

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	flagerrors "github.com/reeflective/opts/internal/errors"
)

// shortcutsTag is the rule enforced on shortcut tables: each key is a
// single character, and each key is mapped to a non-empty canonical key.
const shortcutsTag = "dive,keys,len=1,endkeys,required"

// ValidateFunc is the core validation function type, checking a whole shortcut table.
type ValidateFunc func(shortcuts map[string]string) error

// NewDefault returns a shortcut table validation function
// backed by a default go-playground/validator instance.
func NewDefault() ValidateFunc {
	return NewWith(validator.New())
}

// NewWith returns a shortcut table validation function backed by the given
// validator, which might have custom validations registered. If nil, a
// default validator is used.
func NewWith(validate *validator.Validate) ValidateFunc {
	if validate == nil {
		validate = validator.New()
	}

	return func(shortcuts map[string]string) error {
		err := validate.Var(shortcuts, shortcutsTag)
		if err == nil {
			return nil
		}

		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
			return fmt.Errorf("%w: %w", flagerrors.ErrInvalidShortcut, err)
		}

		// Only report the first faulty entry.
		return fmt.Errorf("%w: %w", flagerrors.ErrInvalidShortcut, newInvalidVarError(fieldErrs[0]))
	}
}
