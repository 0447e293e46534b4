// Package opts is a small and permissive command-line classifier. Given the
// words of a command-line, it separates options from positional arguments,
// without any flag declaration:
//
//   - `--name` stores the key name with the boolean value true.
//   - `--name=value` stores the string "value". Dashes in the name become
//     underscores, so --output-file=out.txt is stored under output_file.
//   - `-x` stores true under the key x, and `-xvalue` stores "value". The
//     key x can be remapped to a longer key with a shortcut table.
//   - `-h` and `--help` request the usage text given by the caller.
//   - Any other word is a positional argument.
//
// Parsing never fails on malformed input. The result can also be bound to
// spf13/cobra commands, exported onto spf13/pflag flag sets, and completed
// with carapace: see Command, Bind and BindFlags.
package opts

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/go-playground/validator/v10"

	"github.com/reeflective/opts/internal/config"
	flagerrors "github.com/reeflective/opts/internal/errors"
	"github.com/reeflective/opts/internal/parser"
	"github.com/reeflective/opts/internal/validation"
	"github.com/reeflective/opts/internal/values"
)

// === Primary Entry Points ===

// Options is the result of a parse: the options found on the command-line,
// indexed by canonical key, and the positional arguments in order.
// It is never modified once returned.
type Options = parser.Options

// Value is the value of an option: either the boolean True,
// for options given without value, or a string.
type Value = values.Value

// True is the value stored for options given without value.
var True = values.True

// String returns a string Value, mostly for use as default in Options.OptionOrDefault.
func String(s string) Value { return values.String(s) }

// Parse classifies all words in args (usually os.Args[1:]).
//
// When a help trigger is found, Parse stops and returns an error matching
// ErrHelp, which can be converted to a *HelpError with errors.As in order
// to print the usage. Other errors can only be returned by a shortcut
// validator (see WithValidation).
func Parse(args []string, opts ...Option) (*Options, error) {
	return parser.Parse(args, toInternalOpts(opts)...)
}

// MustParse is like Parse, but handles help by printing the usage on
// stdout (if any was given) and exiting with status 0. Any other error
// is printed on stderr and makes the program exit with status 2.
func MustParse(args []string, opts ...Option) *Options {
	return mustParse(args, os.Stdout, os.Stderr, os.Exit, opts...)
}

func mustParse(args []string, stdout, stderr io.Writer, exit func(int), opts ...Option) *Options {
	res, err := Parse(args, opts...)
	if err == nil {
		return res
	}

	var help *HelpError
	if errors.As(err, &help) {
		if werr := help.WriteUsage(stdout); werr != nil {
			fmt.Fprintln(stderr, werr)
		}

		exit(0)

		return nil
	}

	fmt.Fprintln(stderr, err)
	exit(2)

	return nil
}

// LoadShortcuts reads a shortcut table from a TOML file, holding a
// single [shortcuts] table of one-character keys mapped to their keys.
func LoadShortcuts(path string) (map[string]string, error) {
	return config.LoadShortcuts(path)
}

// ReadShortcuts is like LoadShortcuts, but reads the table from r.
func ReadShortcuts(r io.Reader) (map[string]string, error) {
	return config.ReadShortcuts(r)
}

// === Configuration (Functional Options) ===

// Option is a functional option for configuring the parser.
type Option func(o *parser.Opts)

func toInternalOpts(opts []Option) []parser.OptFunc {
	internalOpts := make([]parser.OptFunc, len(opts))
	for i, opt := range opts {
		internalOpts[i] = parser.OptFunc(opt)
	}

	return internalOpts
}

// WithShortcuts remaps one-character short option keys: with {"v": "verbose"},
// -v is stored under the key verbose. Can be used several times.
func WithShortcuts(table map[string]string) Option {
	return Option(parser.Shortcuts(table))
}

// WithShortcut remaps a single short option key.
func WithShortcut(short, key string) Option {
	return Option(parser.Shortcut(short, key))
}

// WithUsage sets the text printed verbatim when help is requested.
func WithUsage(usage string) Option {
	return Option(parser.Usage(usage))
}

// WithLogger sets a logger receiving a debug record for each classified word.
func WithLogger(logger *slog.Logger) Option {
	return Option(parser.Logger(logger))
}

// === Validation ===

// ValidateFunc is the validation function type for shortcut tables.
type ValidateFunc = validation.ValidateFunc

// WithValidation checks, before parsing, that each shortcut key is a
// single character and is mapped to a non-empty key. This makes use of
// go-playground/validator internally.
func WithValidation() Option {
	return Option(parser.Validator(parser.ValidateFunc(validation.NewDefault())))
}

// WithValidator is like WithValidation, but uses the given validator,
// on which custom validations might have been registered.
func WithValidator(v *validator.Validate) Option {
	return Option(parser.Validator(parser.ValidateFunc(validation.NewWith(v))))
}

// === Public Errors ===

// HelpError is the error returned when help is requested.
// Its WriteUsage method prints the usage like MustParse does.
type HelpError = flagerrors.HelpError

var (
	// ErrHelp is matched by the error returned when -h or --help is found.
	ErrHelp = flagerrors.ErrHelp

	// ErrParse is a general error used to wrap more specific parsing errors,
	// like when setting a flag from an option value fails.
	ErrParse = flagerrors.ErrParse

	// ErrInvalidShortcut indicates that the shortcut table has been rejected.
	ErrInvalidShortcut = flagerrors.ErrInvalidShortcut

	// ErrConfig indicates that a shortcuts file could not be read or decoded.
	ErrConfig = flagerrors.ErrConfig

	// ErrNilObject indicates that an object is nil although it should not.
	ErrNilObject = flagerrors.ErrNilObject
)
