package parser

import (
	"fmt"
	"log/slog"

	"github.com/reeflective/opts/internal/errors"
	"github.com/reeflective/opts/internal/values"
)

// Parse classifies each word of args, in order, either as an option or as a
// positional argument, and returns the fully built result. No word can make
// the parse fail: anything that is not an option is a positional.
//
// If a help trigger (-h or --help) is found, classification stops there and
// Parse returns a nil result along with an *errors.HelpError, which matches
// errors.ErrHelp. The only other errors come from the shortcut validator.
func Parse(args []string, optFuncs ...OptFunc) (*Options, error) {
	opt := DefOpts().Apply(optFuncs...)

	if opt.Validator != nil {
		if err := opt.Validator(opt.Shortcuts); err != nil {
			return nil, err
		}
	}

	res := &Options{
		opts: make(map[string]values.Value),
		args: make([]string, 0, len(args)),
	}

	for index, word := range args {
		if isHelp(word) {
			opt.Logger.Debug("help requested", slog.Int("index", index), slog.String("word", word))

			return nil, &errors.HelpError{
				Usage:    opt.Usage,
				HasUsage: opt.HasUsage,
				Trigger:  word,
			}
		}

		res.classify(index, word, opt)
	}

	return res, nil
}

// classify stores a single command-line word in the options or in the positionals.
func (o *Options) classify(index int, word string, opt *Opts) {
	switch {
	case isLong(word):
		key, value, hasValue := splitLong(word[len(longPrefix):])
		key = LongKey(key)

		if hasValue {
			o.set(key, values.String(value))
		} else {
			o.set(key, values.True)
		}

		opt.Logger.Debug("long option", slog.Int("index", index), slog.String("key", key), slog.Any("value", o.opts[key]))

	case isShort(word):
		key, value := splitShort(word[len(shortPrefix):])
		if mapped, found := opt.Shortcuts[key]; found {
			key = mapped
		}

		if value != "" {
			o.set(key, values.String(value))
		} else {
			o.set(key, values.True)
		}

		opt.Logger.Debug("short option", slog.Int("index", index), slog.String("key", key), slog.Any("value", o.opts[key]))

	default:
		o.args = append(o.args, word)

		opt.Logger.Debug("positional", slog.Int("index", index), slog.String("word", word))
	}
}

// set overwrites any previous value for key: the last occurrence wins.
func (o *Options) set(key string, val values.Value) {
	o.opts[key] = val
}

// String implements fmt.Stringer, mostly for debugging purposes.
func (o *Options) String() string {
	return fmt.Sprintf("options: %v, args: %v", o.opts, o.args)
}
