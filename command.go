package opts

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/reeflective/opts/internal/gen/completions"
	"github.com/reeflective/opts/internal/gen/flags"
	"github.com/reeflective/opts/internal/parser"
)

// RunFunc is the implementation of a command whose words are classified by
// the parser. Flags declared on the command have already been set from the
// matching options when it is called.
type RunFunc = flags.RunFunc

// Command creates a new *cobra.Command, whose words are all passed to the
// parser instead of being parsed by cobra. Help triggers print the usage set
// with WithUsage on the command output. Shell completions are generated and
// attached automatically.
func Command(use string, run RunFunc, opts ...Option) *cobra.Command {
	cmd := flags.Generate(use, run, toInternalOpts(opts)...)

	completions.Generate(cmd, shortcuts(opts), nil)

	return cmd
}

// Bind is like Command, but for an existing command. Its current run
// functions are replaced, and its flags will only be set from options.
func Bind(cmd *cobra.Command, run RunFunc, opts ...Option) error {
	if err := flags.Bind(cmd, run, toInternalOpts(opts)...); err != nil {
		return fmt.Errorf("failed to bind command: %w", err)
	}

	completions.Generate(cmd, shortcuts(opts), nil)

	return nil
}

// BindFlags sets all flags in fs for which an option has been parsed.
// Options are matched by flag name (the key output_file sets --output-file)
// or by shorthand. Options that match no flag are ignored. When a name and a
// shorthand option both match a flag, the name option wins.
func BindFlags(fs *pflag.FlagSet, opts *Options) error {
	if fs == nil {
		return ErrNilObject
	}

	return flags.Apply(fs, opts)
}

// ShortcutsFromFlags returns a shortcut table mapping each shorthand
// declared in fs to the key of its flag: -d for --dry-run gives d: dry_run.
func ShortcutsFromFlags(fs *pflag.FlagSet) map[string]string {
	if fs == nil {
		return make(map[string]string)
	}

	return flags.Shortcuts(fs)
}

// shortcuts returns the explicit shortcut table. Declared shorthands
// are looked up by the completers themselves, when completing.
func shortcuts(opts []Option) map[string]string {
	return parser.DefOpts().Apply(toInternalOpts(opts)...).Shortcuts
}
