package customerr

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrFetchFailed     = errors.New("fetch failed")
	ErrParseFailed     = errors.New("parse failed")
	ErrRateNotFound    = errors.New("rate not found")
	ErrDivideByZero    = errors.New("divide by zero")
)

// SourceError is a provider failure. It matches its Kind with errors.Is
// and unwraps to the underlying cause.
type SourceError struct {
	Kind   error
	Source string
	Err    error
}

func (e *SourceError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Source, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %s", e.Source, e.Kind, e.Err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

func (e *SourceError) Is(target error) bool {
	return target == e.Kind
}

func FetchFailed(source string, err error) error {
	return &SourceError{Kind: ErrFetchFailed, Source: source, Err: err}
}

func ParseFailed(source string, err error) error {
	return &SourceError{Kind: ErrParseFailed, Source: source, Err: err}
}

// RateNotFound reports a missing path between two currencies.
func RateNotFound(from, to string) error {
	return errors.Wrapf(ErrRateNotFound, "%s/%s", from, to)
}

// DivideByZero reports a zero anchor rate used as divisor.
func DivideByZero(anchor, code string) error {
	return errors.Wrapf(ErrDivideByZero, "%s/%s rate is zero", anchor, code)
}

// InvalidArgument reports a blank or malformed argument.
func InvalidArgument(msg string) error {
	return errors.Wrap(ErrInvalidArgument, msg)
}
