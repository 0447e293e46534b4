package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	flagerrors "github.com/reeflective/opts/internal/errors"
)

func TestReadShortcuts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		exp    map[string]string
		expErr error
	}{
		{
			name:  "Valid table",
			input: "[shortcuts]\nv = \"verbose\"\no = \"output_file\"\n",
			exp:   map[string]string{"v": "verbose", "o": "output_file"},
		},
		{
			name:  "Empty file",
			input: "",
			exp:   map[string]string{},
		},
		{
			name:   "Unknown key",
			input:  "usage = \"text\"\n",
			expErr: flagerrors.ErrConfig,
		},
		{
			name:   "Invalid TOML",
			input:  "[shortcuts\n",
			expErr: flagerrors.ErrConfig,
		},
		{
			name:   "Non-string target",
			input:  "[shortcuts]\nv = 1\n",
			expErr: flagerrors.ErrConfig,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			table, err := ReadShortcuts(strings.NewReader(test.input))
			if test.expErr != nil {
				require.ErrorIs(t, err, test.expErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, test.exp, table)
		})
	}
}

func TestReadShortcuts_Nil(t *testing.T) {
	t.Parallel()

	_, err := ReadShortcuts(nil)
	require.ErrorIs(t, err, flagerrors.ErrNilObject)
}

func TestLoadShortcuts(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "shortcuts.toml")
	require.NoError(t, os.WriteFile(path, []byte("[shortcuts]\nd = \"dry_run\"\n"), 0o600))

	table, err := LoadShortcuts(path)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"d": "dry_run"}, table)

	_, err = LoadShortcuts(filepath.Join(t.TempDir(), "missing.toml"))
	require.ErrorIs(t, err, flagerrors.ErrConfig)
}
