// Package errs provides the standardized error types used throughout the
// cherry logistics application.
//
// Three error kinds cover the whole API surface:
//   - ValueIsRequiredError: a required value is missing or empty
//   - ValueIsInvalidError: a supplied value is not acceptable
//   - ObjectNotFoundError: an object cannot be located
//
// Each kind follows the same pattern: a sentinel error variable (e.g.
// ErrValueIsInvalid), a struct carrying the offending parameter and an
// optional cause, constructors with and without cause, and Unwrap support so
// callers can classify with errors.Is. The HTTP adapter relies on the
// sentinels to pick response status codes (required/invalid -> 400,
// not found -> 404); anything that does not unwrap to one of them is treated
// as a persistence or gateway failure and surfaces as a 500.
package errs
