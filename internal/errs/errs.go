// Package errs defines the error types returned to API clients.
//
// Every failure that reaches the HTTP layer is converted into an
// HTTPError so clients always receive the same JSON shape: an "error"
// message, a machine readable "code" and, for validation failures,
// per-field "errors".
package errs
