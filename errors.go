package typedflags

import (
	"github.com/cockroachdb/errors"
)

// ErrParse is in the chain of every parse failure. Callers that don't care about the cause
// only need errors.Is(err, ErrParse), with either the stdlib or cockroachdb errors package.
var ErrParse = errors.New("parse failed")

var (
	// ErrMalformedFlag is returned for a flag name token shorter than 2 chars or not starting with "-"
	ErrMalformedFlag = errors.New("malformed flag")
	ErrUnknownFlag   = errors.New("unknown flag")
	// ErrMissingValue is returned when the input ends right after a flag that needs a value
	ErrMissingValue = errors.New("missing flag value")
	ErrInvalidValue = errors.New("invalid flag value")
)

var ErrInvalidSchema = errors.New("invalid schema")
var ErrFlagRedefined = errors.New("flag redefined")
var ErrIsRequired = errors.New("flag is required")

// parseError reports ErrParse in addition to its wrapped cause
type parseError struct {
	cause error
}

func (e *parseError) Error() string {
	return e.cause.Error()
}

func (e *parseError) Unwrap() error {
	return e.cause
}

func (e *parseError) Is(target error) bool {
	return target == ErrParse
}

// markParseErr makes err match ErrParse. The cockroachdb mark keeps the match
// after the error has been encoded and decoded.
func markParseErr(err error) error {
	return &parseError{cause: errors.Mark(err, ErrParse)}
}

// newParseErr wraps one of the cause sentinels with the token position and marks it with ErrParse
func newParseErr(cause error, pos int, format string, args ...any) error {
	return markParseErr(errors.Wrapf(cause, "token %d: "+format, append([]any{pos}, args...)...))
}
