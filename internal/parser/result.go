package parser

import (
	"maps"
	"slices"

	"github.com/reeflective/opts/internal/values"
)

// Options is the result of a successful parse: the options found on the
// command-line, indexed by their canonical key, and the positional words in
// the order they were given. It is never modified once Parse has returned,
// and all accessors return copies, so it is safe for concurrent reads.
type Options struct {
	opts map[string]values.Value
	args []string
}

// HasOption returns true if the option key has been given.
func (o *Options) HasOption(key string) bool {
	_, found := o.opts[key]

	return found
}

// Option returns the value stored for key, and false if it was not given.
func (o *Options) Option(key string) (values.Value, bool) {
	val, found := o.opts[key]

	return val, found
}

// OptionOrDefault returns the value stored for key if the option was
// given, or def otherwise. The test is on the key presence only.
func (o *Options) OptionOrDefault(key string, def values.Value) values.Value {
	if val, found := o.opts[key]; found {
		return val
	}

	return def
}

// StringOr returns the string form of the value stored for key, or def.
// Options given without a value yield "true".
func (o *Options) StringOr(key, def string) string {
	if val, found := o.opts[key]; found {
		return val.String()
	}

	return def
}

// PositionalArgs returns all positional words, in command-line order.
func (o *Options) PositionalArgs() []string {
	return slices.Clone(o.args)
}

// Keys returns the keys of all options given, sorted.
func (o *Options) Keys() []string {
	return slices.Sorted(maps.Keys(o.opts))
}

// Len returns the number of distinct options given.
func (o *Options) Len() int {
	return len(o.opts)
}

// Map returns a copy of all options.
func (o *Options) Map() map[string]values.Value {
	return maps.Clone(o.opts)
}
