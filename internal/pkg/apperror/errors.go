// Package apperror holds the error taxonomy shared by services and the HTTP layer.
package apperror

import (
	"errors"
	"fmt"
)

// ValidationError means the input was rejected before any collaborator was called.
type ValidationError struct {
	Message string
	Field   string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidation(message string) *ValidationError {
	return &ValidationError{Message: message}
}

func NewFieldValidation(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// PersistenceError wraps a selection store read or write failure.
// It is always recovered locally and never reaches a visitor.
type PersistenceError struct {
	Op  string
	Key string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("selection store %s %q: %v", e.Op, e.Key, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// SubmissionError means a downstream collaborator (record-keeper or notifier) failed.
// Message is safe to show to a visitor; Err carries the cause for logs.
type SubmissionError struct {
	Stage    string
	Message  string
	RecordId string
	Err      error
}

func (e *SubmissionError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *SubmissionError) Unwrap() error {
	return e.Err
}

func NewSubmission(stage, message string, err error) *SubmissionError {
	return &SubmissionError{Stage: stage, Message: message, Err: err}
}

// NotFoundError is returned by catalog lookups.
type NotFoundError struct {
	Resource string
	Id       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.Id)
}

func NewNotFound(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, Id: id}
}

func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

func IsSubmission(err error) bool {
	var s *SubmissionError
	return errors.As(err, &s)
}

func IsNotFound(err error) bool {
	var n *NotFoundError
	return errors.As(err, &n)
}
