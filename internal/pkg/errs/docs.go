// Package errs provides standardized error types for the delivery query service.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ValueIsOutOfRangeError: For when a value falls outside its allowed bounds
//   - ObjectNotFoundError: For when an object cannot be found
//   - ObjectExistsError: For when an object with the same identifier is already stored
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// The three validation errors additionally belong to the ErrInvalidArgument kind,
// so callers that only care about "the caller passed something wrong" can test
// for it with a single errors.Is check:
//
//	if errors.Is(err, errs.ErrInvalidArgument) {
//	    // respond with 400 Bad Request
//	}
package errs
