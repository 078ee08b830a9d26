// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

// Package errors provides typed errors for the unit engine and the calc command.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Type identifies the category of error
type Type string

const (
	// TypeParsing indicates a malformed definition line
	TypeParsing Type = "PARSING_ERROR"

	// TypeNotFound indicates a unit name missing from the registry
	TypeNotFound Type = "NOT_FOUND"

	// TypeConfig indicates a configuration error
	TypeConfig Type = "CONFIG_ERROR"

	// TypeStorage indicates a history database error
	TypeStorage Type = "STORAGE_ERROR"

	// TypeInput indicates a bad command line argument
	TypeInput Type = "INPUT_ERROR"
)

// Error represents a domain error with context
type Error struct {
	Type    Type
	Message string
	Cause   error
	Context map[string]interface{}
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is checks if the error is of a specific type
func (e *Error) Is(t Type) bool {
	return e.Type == t
}

// WithContext adds context to the error
func (e *Error) WithContext(key string, value interface{}) *Error {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

func New(errType Type, message string) *Error {
	return &Error{Type: errType, Message: message}
}

func Newf(errType Type, format string, args ...interface{}) *Error {
	return New(errType, fmt.Sprintf(format, args...))
}

func Wrap(errType Type, cause error, message string) *Error {
	return &Error{Type: errType, Message: message, Cause: cause}
}

// IsType reports whether err, or anything it wraps, is an *Error of type t.
func IsType(err error, t Type) bool {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Is(t)
	}
	return false
}

func IsNotFound(err error) bool {
	return IsType(err, TypeNotFound)
}
