package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// retag matches the part of a validator error containing the tag name.
var retag = regexp.MustCompile(`the '.*' tag`)

// invalidVarError wraps an error raised by validator on a shortcut entry,
// and automatically modifies the error string for more efficient ones.
type invalidVarError struct {
	fieldName    string // The shortcut key, without brackets
	fieldValue   string // This is the string representation of the value
	tag          string
	validatorErr error
}

func newInvalidVarError(fieldErr validator.FieldError) *invalidVarError {
	return &invalidVarError{
		fieldName:    strings.Trim(fieldErr.Field(), "[]"),
		fieldValue:   fmt.Sprint(fieldErr.Value()),
		tag:          fieldErr.Tag(),
		validatorErr: fieldErr,
	}
}

// Error implements the Error interface, but replacing some identifiable
// validation errors with more efficient messages, more adapted to CLI.
func (err *invalidVarError) Error() string {
	switch err.tag {
	case "len":
		return fmt.Sprintf("`%s` is not a single character", err.fieldValue)
	case "required":
		return fmt.Sprintf("`%s` is mapped to an empty key", err.fieldName)
	}

	// Match the part containing the tag name
	matched := retag.FindString(err.validatorErr.Error())
	if matched != "" {
		parts := strings.Split(matched, " ")
		if len(parts) > 1 {
			return fmt.Sprintf("`%s` is not a valid %s", err.fieldValue, strings.Trim(parts[1], "'"))
		}
	}

	// Or simply replace the empty key with the field name.
	return strings.ReplaceAll(err.validatorErr.Error(), "''", fmt.Sprintf("'%s'", err.fieldName))
}

// Unwrap returns the underlying validator error.
func (err *invalidVarError) Unwrap() error {
	return err.validatorErr
}
