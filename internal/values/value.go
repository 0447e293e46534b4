// Package values holds the value type stored for each option found on a command-line.
package values

import "strconv"

// Value is the value stored for an option: either the boolean constant
// "present" (set by a flag given without value, like -v or --verbose),
// or the string given inline (-ofile.txt or --output=file.txt).
// The zero Value is neither, and is what lookups return for absent keys.
type Value struct {
	str     string
	present bool
	isBool  bool
}

// True is the value of an option given without any inline value.
var True = Value{present: true, isBool: true}

// String returns a value holding the inline string s.
func String(s string) Value {
	return Value{str: s, present: true}
}

// IsBool returns true if the option was given without an inline value.
func (v Value) IsBool() bool { return v.isBool }

// IsZero returns true for the zero value, which is never stored for an option.
func (v Value) IsZero() bool { return !v.present }

// Text returns the inline string, and false if the value is not a string.
func (v Value) Text() (string, bool) {
	if v.isBool || !v.present {
		return "", false
	}

	return v.str, true
}

// String returns the string form of the value: "true" for boolean options,
// the inline value for string ones, and an empty string for the zero value.
func (v Value) String() string {
	if v.isBool {
		return strconv.FormatBool(true)
	}

	return v.str
}

// Type returns the kind of value, in the same spirit as pflag.Value.Type.
func (v Value) Type() string {
	switch {
	case v.isBool:
		return "bool"
	case v.present:
		return "string"
	default:
		return ""
	}
}
