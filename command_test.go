package opts

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommand(t *testing.T) {
	var (
		dryRun bool
		got    *Options
	)

	cmd := Command("deploy", func(_ *cobra.Command, opts *Options) error {
		got = opts
		return nil
	}, WithShortcut("e", "env"), WithUsage("Usage: deploy [-d] [-eENV] TARGETS"))

	cmd.Flags().BoolVarP(&dryRun, "dry-run", "d", false, "do nothing")

	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"web", "-d", "-eprod", "db"})
	require.NoError(t, cmd.Execute())

	require.NotNil(t, got)
	assert.True(t, dryRun)
	assert.Equal(t, "prod", got.StringOr("env", ""))
	assert.Equal(t, []string{"web", "db"}, got.PositionalArgs())

	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetArgs([]string{"web", "--help"})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "Usage: deploy [-d] [-eENV] TARGETS\n", out.String())
}

func TestBind(t *testing.T) {
	require.ErrorIs(t, Bind(nil, nil), ErrNilObject)

	var got []string
	cmd := &cobra.Command{Use: "list"}
	require.NoError(t, Bind(cmd, func(_ *cobra.Command, opts *Options) error {
		got = opts.PositionalArgs()
		return nil
	}))

	cmd.SetArgs([]string{"a", "--all", "b"})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, []string{"a", "b"}, got)
}

func TestCommand_CobraCommandWords(t *testing.T) {
	for _, first := range []string{"help", "completion"} {
		var got []string

		cmd := Command("prog", func(_ *cobra.Command, opts *Options) error {
			got = opts.PositionalArgs()
			return nil
		}, WithUsage("Usage: prog"))

		out := &bytes.Buffer{}
		cmd.SetOut(out)
		cmd.SetArgs([]string{first, "file.txt"})
		require.NoError(t, cmd.Execute())

		assert.Equal(t, []string{first, "file.txt"}, got, "first word %q", first)
		assert.Empty(t, out.String())
	}
}

func TestBindFlags(t *testing.T) {
	t.Parallel()

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	output := fs.StringP("output-file", "o", "", "output file")
	verbose := fs.BoolP("verbose", "v", false, "verbose")

	res, err := Parse([]string{"-v", "--output-file=out.txt"}, WithShortcuts(ShortcutsFromFlags(fs)))
	require.NoError(t, err)

	require.NoError(t, BindFlags(fs, res))
	assert.Equal(t, "out.txt", *output)
	assert.True(t, *verbose)

	require.ErrorIs(t, BindFlags(nil, res), ErrNilObject)
	assert.Equal(t, map[string]string{"o": "output_file", "v": "verbose"}, ShortcutsFromFlags(fs))
	assert.Empty(t, ShortcutsFromFlags(nil))
}

func TestBindFlags_LongNamePrecedence(t *testing.T) {
	t.Parallel()

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	output := fs.StringP("output", "o", "", "output file")

	// Without shortcuts, -o is stored under o, and --output under output:
	// both set the same flag, and the long name wins whatever the order.
	for _, args := range [][]string{
		{"--output=long", "-oshort"},
		{"-oshort", "--output=long"},
	} {
		res, err := Parse(args)
		require.NoError(t, err)

		require.NoError(t, BindFlags(fs, res))
		assert.Equal(t, "long", *output, "args %v", args)
	}
}
