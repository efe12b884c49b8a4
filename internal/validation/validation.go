// Package validation contains the logic for validating
// request data.
//
// It uses the `validator` library to enforce rules defined in struct
// tags (including the custom `basic_email` rule) and converts failures
// into *errs.HTTPError values the client can understand.
package validation
