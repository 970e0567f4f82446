// Package errs provides standardized error types for the bakery application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes error types for common validation scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ValueIsOutOfRangeError: For when a value falls outside its bounds
//   - ObjectNotFoundError: For when an object cannot be found
//
// And the order lifecycle / dashboard taxonomy:
//   - IllegalTransitionError: the requested state change is not in the transition table
//   - ForbiddenError: the acting role may not perform a legal transition
//   - ConcurrentModificationError: a transition lost a race on the same order
//   - AggregationFailedError: a dashboard aggregator met malformed input
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is matches the sentinel
package errs
