package hijrah

import (
	"errors"
	"fmt"
)

// Sentinel errors. Errors returned by this package match at least one of them
// via errors.Is; a ParseError caused by an invalid field matches both ErrParse
// and ErrInvalidField.
var (
	ErrInvalidField    = errors.New("hijrah: invalid field value")
	ErrInvalidArgument = errors.New("hijrah: invalid argument")
	ErrParse           = errors.New("hijrah: cannot parse text")
	ErrInvalidPattern  = errors.New("hijrah: invalid pattern")
)

// FieldError reports a field value that violates calendar validity.
type FieldError struct {
	Field  Field
	Value  int64
	Reason string
}

func (e *FieldError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("hijrah: invalid value for %s: %d", e.Field, e.Value)
	}
	return fmt.Sprintf("hijrah: invalid value for %s: %d (%s)", e.Field, e.Value, e.Reason)
}

// Is reports whether target is ErrInvalidField.
func (e *FieldError) Is(target error) bool { return target == ErrInvalidField }

func fieldError(f Field, v int64, format string, args ...any) error {
	return &FieldError{Field: f, Value: v, Reason: fmt.Sprintf(format, args...)}
}

func fmtArgError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

func checkRange(f Field, v, lo, hi int64) error {
	if v < lo || v > hi {
		return fieldError(f, v, "valid range is %d..%d", lo, hi)
	}
	return nil
}

// ParseError reports text that could not be parsed. Pos is the byte offset
// in Text at which parsing failed.
type ParseError struct {
	Text string
	Pos  int
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("hijrah: cannot parse %q at position %d: %v", e.Text, e.Pos, e.Err)
}

// Is reports whether target is ErrParse.
func (e *ParseError) Is(target error) bool { return target == ErrParse }

func (e *ParseError) Unwrap() error { return e.Err }

// PatternError reports a malformed formatter pattern.
type PatternError struct {
	Pattern string
	Pos     int
	Msg     string
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("hijrah: invalid pattern %q at position %d: %s", e.Pattern, e.Pos, e.Msg)
}

// Is reports whether target is ErrInvalidPattern.
func (e *PatternError) Is(target error) bool { return target == ErrInvalidPattern }
