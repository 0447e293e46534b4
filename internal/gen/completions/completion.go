package completions

import (
	"strings"

	"github.com/carapace-sh/carapace"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/reeflective/opts/internal/parser"
)

const (
	longPrefix  = "--"
	shortPrefix = "-"
)

// Generate registers completions for a command whose words are classified by the
// parser. Since cobra does not parse its flags, all words are completed as
// positionals: option-looking words with the declared flags and the shortcut
// table, others with files.
func Generate(cmd *cobra.Command, shortcuts map[string]string, comps *carapace.Carapace) *carapace.Carapace {
	if comps == nil {
		comps = carapace.Gen(cmd)
	}

	handler := func(ctx carapace.Context) carapace.Action {
		switch {
		case strings.HasPrefix(ctx.Value, longPrefix):
			return longOptions(cmd.Flags(), shortcuts).Invoke(ctx).Filter(ctx.Args...).ToA()
		case strings.HasPrefix(ctx.Value, shortPrefix):
			return shortOptions(cmd.Flags(), shortcuts).Invoke(ctx).Filter(ctx.Args...).ToA()
		default:
			return carapace.ActionFiles()
		}
	}

	comps.PositionalAnyCompletion(carapace.ActionCallback(handler))

	return comps
}

// longOptions completes --name words. Flags taking a value are
// completed with their separator, without a trailing space.
func longOptions(flags *pflag.FlagSet, shortcuts map[string]string) carapace.Action {
	switches := []string{longPrefix + "help", "show usage"}
	withValue := make([]string, 0)
	seen := map[string]bool{"help": true}

	flags.VisitAll(func(flag *pflag.Flag) {
		if flag.Hidden || seen[flag.Name] {
			return
		}
		seen[flag.Name] = true

		if flag.NoOptDefVal != "" {
			switches = append(switches, longPrefix+flag.Name, flag.Usage)
		} else {
			withValue = append(withValue, longPrefix+flag.Name+"=", flag.Usage)
		}
	})

	for short, key := range shortcuts {
		name := parser.FlagName(key)
		if seen[name] {
			continue
		}
		seen[name] = true

		switches = append(switches, longPrefix+name, "shortcut "+shortPrefix+short)
	}

	return carapace.Batch(
		carapace.ActionValuesDescribed(switches...),
		carapace.ActionValuesDescribed(withValue...).NoSpace('='),
	).ToA()
}

// shortOptions completes -x words, with the declared shorthands and shortcut keys.
func shortOptions(flags *pflag.FlagSet, shortcuts map[string]string) carapace.Action {
	vals := []string{shortPrefix + "h", "show usage"}
	seen := map[string]bool{"h": true}

	for short, key := range shortcuts {
		if seen[short] {
			continue
		}
		seen[short] = true

		vals = append(vals, shortPrefix+short, longPrefix+parser.FlagName(key))
	}

	flags.VisitAll(func(flag *pflag.Flag) {
		if flag.Hidden || flag.Shorthand == "" || seen[flag.Shorthand] {
			return
		}
		seen[flag.Shorthand] = true

		vals = append(vals, shortPrefix+flag.Shorthand, flag.Usage)
	})

	return carapace.ActionValuesDescribed(vals...)
}
