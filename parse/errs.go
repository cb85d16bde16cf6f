package parse

import (
	"errors"
	"fmt"
)

var (
	ErrParse            = errors.New("parse error")
	ErrIndentation      = fmt.Errorf("%w: bad indentation", ErrParse)
	ErrMalformedKey     = fmt.Errorf("%w: missing key separator", ErrParse)
	ErrMalformedElement = fmt.Errorf("%w: expected sequence element", ErrParse)
	ErrDuplicateKey     = fmt.Errorf("%w: duplicate key", ErrParse)
	ErrQuote            = fmt.Errorf("%w: unterminated or trailing text after quoted scalar", ErrParse)

	// ErrLineNotFound is not a parse error: it marks an absent line and
	// readers turn it into an absent value.
	ErrLineNotFound = errors.New("line not found")
)

// LineError locates an error in the input.  Line is zero based.
type LineError struct {
	Err  error
	File string
	Line int
	Text string
}

func (e *LineError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("%s:%d: %v: %q", e.File, e.Line+1, e.Err, e.Text)
	}
	return fmt.Sprintf("%v at line %d: %q", e.Err, e.Line+1, e.Text)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

func lineError(l Line, err error) error {
	return &LineError{Err: err, Line: l.number, Text: l.text}
}
