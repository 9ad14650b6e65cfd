// Package errors defines error types for the toolwire SDK.
//
// This package provides sentinel errors for client state violations and
// structured error types for construction and argument failures. All error
// types support error unwrapping and can be checked using errors.Is and
// errors.As.
package errors
