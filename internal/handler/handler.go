// Package handler is the HTTP layer between the router and the services.
//
// Handlers bind and validate request input through the validation
// package, call the matching service and write the result.
package handler
