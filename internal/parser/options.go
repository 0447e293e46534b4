package parser

import (
	"io"
	"log/slog"
)

// ValidateFunc describes a validation func, that takes the shortcut table
// the parser has been configured with, and returns an error if the table
// is not acceptable. It is called once, before any argument is classified.
type ValidateFunc func(shortcuts map[string]string) error

// OptFunc sets values in Opts structure.
type OptFunc func(opt *Opts)

// Opts specifies different parsing options.
type Opts struct {
	// Shortcuts maps one-character short option keys to canonical keys.
	Shortcuts map[string]string

	// Usage is printed verbatim when help is requested.
	Usage string

	// HasUsage is true when a usage text, even empty, has been set.
	HasUsage bool

	// Validator is the validation function for the shortcut table.
	Validator ValidateFunc

	// Logger receives a debug record for each classified word.
	Logger *slog.Logger
}

// DefOpts returns the default parsing options.
func DefOpts() *Opts {
	return &Opts{
		Shortcuts: make(map[string]string),
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// Apply applies the given options to the current options.
func (o *Opts) Apply(optFuncs ...OptFunc) *Opts {
	for _, f := range optFuncs {
		(f)(o)
	}

	return o
}

// CopyOpts returns a copy of the given options.
func CopyOpts(opts *Opts) OptFunc {
	return func(opt *Opts) {
		*opt = *opts
		opt.Shortcuts = make(map[string]string, len(opts.Shortcuts))
		for k, v := range opts.Shortcuts {
			opt.Shortcuts[k] = v
		}
	}
}

// Shortcuts adds all entries of the table to the shortcuts, overwriting existing keys.
func Shortcuts(table map[string]string) OptFunc {
	return func(opt *Opts) {
		if opt.Shortcuts == nil {
			opt.Shortcuts = make(map[string]string, len(table))
		}
		for short, key := range table {
			opt.Shortcuts[short] = key
		}
	}
}

// Shortcut remaps the short option key short to key.
func Shortcut(short, key string) OptFunc {
	return Shortcuts(map[string]string{short: key})
}

// Usage sets the text printed when help is requested.
func Usage(val string) OptFunc {
	return func(opt *Opts) {
		opt.Usage = val
		opt.HasUsage = true
	}
}

// Validator sets validator function for the shortcut table.
func Validator(val ValidateFunc) OptFunc {
	return func(opt *Opts) { opt.Validator = val }
}

// Logger sets the logger used to trace classification. A nil logger is ignored.
func Logger(val *slog.Logger) OptFunc {
	return func(opt *Opts) {
		if val != nil {
			opt.Logger = val
		}
	}
}
