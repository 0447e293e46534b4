package errors

import (
	"errors"
	"io"
	"strings"
)

var (
	// ErrHelp is returned when the command-line contains a help trigger
	// (-h or --help). It is an outcome rather than a failure: the caller is
	// expected to print the usage and exit successfully.
	ErrHelp = errors.New("help requested")

	// ErrParse is a general error used to wrap more specific parsing errors.
	ErrParse = errors.New("parse error")

	// ErrInvalidShortcut indicates that a shortcut table entry has been rejected
	// by the validator (key longer than one character, empty target, etc).
	ErrInvalidShortcut = errors.New("invalid shortcut")

	// ErrConfig indicates that a shortcut file could not be read or decoded.
	ErrConfig = errors.New("invalid shortcuts configuration")

	// ErrNilObject indicates that an object is nil although it should not.
	ErrNilObject = errors.New("object cannot be nil")
)

// HelpError is the concrete error returned along with ErrHelp.
// It carries the usage text given to the parser, if any.
type HelpError struct {
	// Usage is the verbatim usage text.
	Usage string

	// HasUsage is false when no usage was configured, in which
	// case nothing should be printed at all.
	HasUsage bool

	// Trigger is the word that requested help (-h or --help).
	Trigger string
}

// Error implements the error interface.
func (e *HelpError) Error() string {
	return ErrHelp.Error() + " (" + e.Trigger + ")"
}

// Is makes errors.Is(err, ErrHelp) true for any *HelpError.
func (e *HelpError) Is(target error) bool {
	return target == ErrHelp
}

// WriteUsage writes the usage text to w, followed by a newline if it does
// not already end with one. Nothing is written when no usage was set.
func (e *HelpError) WriteUsage(w io.Writer) error {
	if !e.HasUsage || w == nil {
		return nil
	}

	text := e.Usage
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}

	_, err := io.WriteString(w, text)

	return err
}
