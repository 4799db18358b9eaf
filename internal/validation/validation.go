// Package validation contains the logic for validating
// request data.
//
// It reads untyped values (decoded JSON or YAML) against a fixed
// shape, uses the `validator` library to enforce rules (like
// email formats or enum membership) defined in struct tags, and
// collects every problem into Violations that the client can
// understand.
package validation
