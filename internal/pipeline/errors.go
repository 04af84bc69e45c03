package pipeline

import (
	"errors"
	"fmt"
)

// Validation errors. Callers map them to 400.
var (
	ErrEmptyQuery      = errors.New("query must not be empty")
	ErrLimitOutOfRange = fmt.Errorf("limit must be between %d and %d", MinLimit, MaxLimit)
)

// ResolutionError reports that a query could not be mapped to a symbol.
type ResolutionError struct {
	Query string
	Err   error
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("resolve %q: %v", e.Query, e.Err)
}

func (e *ResolutionError) Unwrap() error { return e.Err }

// FetchError reports a failure after resolution: news retrieval, scoring
// or cancellation.
type FetchError struct {
	Symbol string
	Err    error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch sentiment for %s: %v", e.Symbol, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// IsValidation reports whether err is a caller input error.
func IsValidation(err error) bool {
	return errors.Is(err, ErrEmptyQuery) || errors.Is(err, ErrLimitOutOfRange)
}

// IsUpstream reports whether err is a resolution or fetch failure.
func IsUpstream(err error) bool {
	var re *ResolutionError
	var fe *FetchError
	return errors.As(err, &re) || errors.As(err, &fe)
}
