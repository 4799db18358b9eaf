// Package service contains the business logic.
//
// It sits behind the handler layer and receives requests that
// have already passed validation.
package service
