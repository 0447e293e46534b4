package validation

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	flagerrors "github.com/reeflective/opts/internal/errors"
)

func TestNewDefault(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		shortcuts map[string]string
		expErr    string
	}{
		{
			name:      "Empty table",
			shortcuts: map[string]string{},
		},
		{
			name:      "Valid table",
			shortcuts: map[string]string{"v": "verbose", "o": "output_file", "é": "accent"},
		},
		{
			name:      "Key too long",
			shortcuts: map[string]string{"vv": "verbose"},
			expErr:    "`vv` is not a single character",
		},
		{
			name:      "Empty key",
			shortcuts: map[string]string{"": "verbose"},
			expErr:    "is not a single character",
		},
		{
			name:      "Empty target",
			shortcuts: map[string]string{"v": ""},
			expErr:    "`v` is mapped to an empty key",
		},
	}

	validate := NewDefault()

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			err := validate(test.shortcuts)
			if test.expErr == "" {
				require.NoError(t, err)

				return
			}

			require.ErrorIs(t, err, flagerrors.ErrInvalidShortcut)
			assert.Contains(t, err.Error(), test.expErr)
		})
	}
}

func TestNewWith(t *testing.T) {
	t.Parallel()

	validate := NewWith(validator.New())
	require.NoError(t, validate(map[string]string{"x": "extract"}))
	require.Error(t, validate(map[string]string{"xy": "extract"}))

	// A nil validator falls back on a default one.
	validate = NewWith(nil)
	require.Error(t, validate(map[string]string{"xy": "extract"}))
}

func TestInvalidVarError_Fallback(t *testing.T) {
	t.Parallel()

	err := &invalidVarError{
		fieldName:    "v",
		fieldValue:   "value",
		tag:          "custom",
		validatorErr: assert.AnError,
	}

	assert.Equal(t, assert.AnError.Error(), err.Error())
	assert.ErrorIs(t, err, assert.AnError)
}
