// Package errs provides the standardized error types of the dispatch service.
//
// Each error scenario follows the same pattern:
//   - a sentinel error variable (e.g. ErrValueIsRequired) for errors.Is checks
//   - a struct type carrying the error details
//   - constructor functions with and without an underlying cause
//   - Error() for formatting and Unwrap() returning the sentinel
//
// The available types cover missing values (ValueIsRequiredError), invalid
// values (ValueIsInvalidError), bounded values (ValueIsOutOfRangeError),
// storage lookups (ObjectNotFoundError) and aggregate version conflicts
// (VersionIsInvalidError).
package errs
