package parser

import (
	"strings"
	"unicode/utf8"
)

const (
	longPrefix  = "--"
	shortPrefix = "-"
	valueSep    = "="
	keyDivider  = "-"
	keyJoiner   = "_"
)

// LongKey transforms a long option name into its canonical key: flag-case
// words are joined with underscores, so that --output-file is output_file.
func LongKey(name string) string {
	return strings.ReplaceAll(name, keyDivider, keyJoiner)
}

// FlagName is the reverse of LongKey, used to find a flag declared as output-file.
func FlagName(key string) string {
	return strings.ReplaceAll(key, keyJoiner, keyDivider)
}

// splitLong splits the name of a long option (without its leading dashes)
// around its value separator. The value is what lies between the first
// and the second separator: anything after a second '=' is dropped, so
// that "filter=a=b" yields "filter" and "a".
func splitLong(name string) (key, value string, hasValue bool) {
	key, rest, hasValue := strings.Cut(name, valueSep)
	if !hasValue {
		return key, "", false
	}

	value, _, _ = strings.Cut(rest, valueSep)

	return key, value, true
}

// splitShort splits a short option word (without its leading dash) into its
// one-character key and the remaining inline value.
func splitShort(word string) (key, value string) {
	_, size := utf8.DecodeRuneInString(word)

	return word[:size], word[size:]
}

// isHelp returns true if the word is one of the help triggers.
func isHelp(word string) bool {
	return word == "-h" || word == "--help"
}

// isLong returns true for words starting with two dashes, including "--" itself.
func isLong(word string) bool {
	return strings.HasPrefix(word, longPrefix)
}

// isShort returns true for words starting with a single dash followed by at
// least one character. A lone "-" is not an option.
func isShort(word string) bool {
	return strings.HasPrefix(word, shortPrefix) && len(word) > len(shortPrefix)
}
