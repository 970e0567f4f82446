package errs

import (
	"errors"
	"fmt"
)

var ErrAggregationFailed = errors.New("aggregation failed")

// AggregationFailedError aborts a dashboard build. Aggregator names the
// component that rejected its input.
//
// Unlike the other error types it unwraps to both the sentinel and the cause,
// so errors.Is(err, ErrValueIsInvalid) still works for a wrapped validation error.
type AggregationFailedError struct {
	Aggregator string
	Cause      error
}

func NewAggregationFailedError(aggregator string) *AggregationFailedError {
	return &AggregationFailedError{Aggregator: aggregator}
}

func NewAggregationFailedErrorWithCause(aggregator string, cause error) *AggregationFailedError {
	return &AggregationFailedError{Aggregator: aggregator, Cause: cause}
}

func (e *AggregationFailedError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrAggregationFailed, e.Aggregator), e.Cause)
}

func (e *AggregationFailedError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrAggregationFailed}
	}
	return []error{ErrAggregationFailed, e.Cause}
}
