// Package errs define custom error types and utilities.
//
// Its purpose is to create specific error structures
// (e.g. FieldError for request payloads or HTTPError for API responses)
// so the client receives meaningful, actionable and consistent
// error messages.
package errs
