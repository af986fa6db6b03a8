// Package validation binds request data and validates it.
//
// Rules live in `validate` struct tags checked by go-playground/validator;
// failures are turned into field errors the client can act on.
package validation
