// Package config loads shortcut tables from TOML files, so that the
// short option keys of a program can be remapped without recompiling it.
//
// The expected format is a single table:
//
//	[shortcuts]
//	v = "verbose"
//	o = "output_file"
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"

	flagerrors "github.com/reeflective/opts/internal/errors"
)

// File is the structure of a shortcuts file.
type File struct {
	Shortcuts map[string]string `toml:"shortcuts"`
}

// ReadShortcuts decodes a shortcut table from r.
// An input without [shortcuts] table yields an empty table.
func ReadShortcuts(r io.Reader) (map[string]string, error) {
	if r == nil {
		return nil, flagerrors.ErrNilObject
	}

	var file File

	meta, err := toml.NewDecoder(r).Decode(&file)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", flagerrors.ErrConfig, err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%w: unknown key %q", flagerrors.ErrConfig, undecoded[0].String())
	}

	if file.Shortcuts == nil {
		file.Shortcuts = make(map[string]string)
	}

	return file.Shortcuts, nil
}

// LoadShortcuts reads the shortcut table stored in the file at path.
func LoadShortcuts(path string) (map[string]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", flagerrors.ErrConfig, err)
	}
	defer file.Close()

	return ReadShortcuts(file)
}
