package flags

import (
	"errors"

	"github.com/spf13/cobra"

	flagerrors "github.com/reeflective/opts/internal/errors"
	"github.com/reeflective/opts/internal/parser"
)

// RunFunc is the implementation of a command bound to the parser:
// it receives the command and the options classified from its words.
type RunFunc func(cmd *cobra.Command, opts *parser.Options) error

// Generate creates a new command named after use, whose arguments are
// classified by the parser before being passed to run.
func Generate(use string, run RunFunc, optFuncs ...parser.OptFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:          use,
		SilenceUsage: true,
	}

	bind(cmd, run, optFuncs...)

	return cmd
}

// Bind makes cmd hand its raw words to the parser instead of parsing flags
// itself, and sets run as its implementation. Flags declared on the command
// are still useful: their shorthands are used as shortcuts, and they are set
// with the values of the matching options before run is called.
func Bind(cmd *cobra.Command, run RunFunc, optFuncs ...parser.OptFunc) error {
	if cmd == nil {
		return flagerrors.ErrNilObject
	}

	bind(cmd, run, optFuncs...)

	return nil
}

func bind(cmd *cobra.Command, run RunFunc, optFuncs ...parser.OptFunc) {
	// cobra would otherwise consume -h/--help and any declared flag.
	cmd.DisableFlagParsing = true
	cmd.Args = cobra.ArbitraryArgs

	// Neither `help` nor `completion` may be dispatched to cobra
	// once a subcommand (like the carapace one) is added.
	cmd.CompletionOptions.DisableDefaultCmd = true
	cmd.SetHelpCommand(&cobra.Command{Use: "_carapace_help", Hidden: true})

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return execute(cmd, args, run, optFuncs...)
	}
}

// execute parses the command words and runs the command implementation,
// unless help has been requested, in which case the usage is printed.
func execute(cmd *cobra.Command, args []string, run RunFunc, optFuncs ...parser.OptFunc) error {
	// Declared shorthands come first, so that explicit shortcuts override them.
	scanOpts := append([]parser.OptFunc{parser.Shortcuts(Shortcuts(cmd.Flags()))}, optFuncs...)

	opts, err := parser.Parse(args, scanOpts...)

	var help *flagerrors.HelpError
	if errors.As(err, &help) {
		return help.WriteUsage(cmd.OutOrStdout())
	}

	if err != nil {
		return err
	}

	if err := Apply(cmd.Flags(), opts); err != nil {
		return err
	}

	if run == nil {
		return nil
	}

	return run(cmd, opts)
}
