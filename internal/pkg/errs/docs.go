// Package errs provides standardized error types for the order service.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// The package includes error types for the expected failure outcomes:
//   - ObjectNotFoundError: an order or partner could not be located
//   - ObjectAlreadyExistsError: a uniqueness rule was violated
//   - ValueIsRequiredError: a mandatory value is missing
//   - ValueIsInvalidError: a value fails a validation rule
//
// Each error type follows the same pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is can classify against the sentinel
//
// The HTTP layer maps these classifications to status codes; anything that
// does not unwrap to one of the sentinels is treated as an internal error
// and surfaced opaquely.
package errs
