package flags

import (
	"fmt"

	"github.com/spf13/pflag"

	flagerrors "github.com/reeflective/opts/internal/errors"
	"github.com/reeflective/opts/internal/parser"
)

// helpFlag is added by cobra to all commands, and never set from options.
const helpFlag = "help"

// flagSet describes interface,
// that's implemented by pflag library and required by flags.
type flagSet interface {
	Lookup(name string) *pflag.Flag
	ShorthandLookup(name string) *pflag.Flag
	Set(name, value string) error
	VisitAll(fn func(*pflag.Flag))
}

var _ flagSet = (*pflag.FlagSet)(nil)

// Apply sets each flag of dst for which an option has been parsed. Options
// are matched against flag names (output_file matches --output-file), then
// against one-character shorthands. Options matching no flag are ignored.
//
// When both a name and a shorthand option match the same flag, as with
// --output=a -ob when no shortcut maps o to output, the name option wins
// regardless of the order of the words.
func Apply(dst flagSet, opts *parser.Options) error {
	if dst == nil || opts == nil {
		return flagerrors.ErrNilObject
	}

	var byName, byShorthand []string

	for _, key := range opts.Keys() {
		flag, isName := lookup(dst, key)
		if flag == nil || flag.Name == helpFlag {
			continue
		}

		if isName {
			byName = append(byName, key)
		} else {
			byShorthand = append(byShorthand, key)
		}
	}

	// Name matches are set last, so they override shorthands.
	for _, key := range append(byShorthand, byName...) {
		if err := set(dst, key, opts); err != nil {
			return err
		}
	}

	return nil
}

func set(dst flagSet, key string, opts *parser.Options) error {
	flag, _ := lookup(dst, key)
	val, _ := opts.Option(key)
	arg := val.String()

	if val.IsBool() {
		if flag.NoOptDefVal == "" {
			return fmt.Errorf("%w: flag --%s needs an argument", flagerrors.ErrParse, flag.Name)
		}

		arg = flag.NoOptDefVal
	}

	if err := dst.Set(flag.Name, arg); err != nil {
		return fmt.Errorf("%w: flag --%s: %w", flagerrors.ErrParse, flag.Name, err)
	}

	return nil
}

// Shortcuts returns a shortcut table made of all shorthands declared in
// src, each mapped to the canonical key of its flag: -d for --dry-run
// gives d: dry_run.
func Shortcuts(src flagSet) map[string]string {
	table := make(map[string]string)
	if src == nil {
		return table
	}

	src.VisitAll(func(flag *pflag.Flag) {
		if flag.Shorthand == "" || flag.Name == helpFlag {
			return
		}

		table[flag.Shorthand] = parser.LongKey(flag.Name)
	})

	return table
}

// lookup returns the flag matching key, and true if it matched by name.
func lookup(src flagSet, key string) (*pflag.Flag, bool) {
	if flag := src.Lookup(parser.FlagName(key)); flag != nil {
		return flag, true
	}

	if flag := src.Lookup(key); flag != nil {
		return flag, true
	}

	// pflag panics on shorthands longer than one byte.
	if len(key) == 1 {
		return src.ShorthandLookup(key), false
	}

	return nil, false
}
