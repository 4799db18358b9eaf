// Package handler is the first layer after the router.
//
// It binds requests, hands validation to the validation
// package and calls the appropriate service. It is the
// interface between the HTTP request and the business logic.
package handler
