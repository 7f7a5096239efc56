// Package apperr provides the typed application errors shared by the HTTP
// layer, the repository and the speech-to-text clients, with their HTTP
// status mapping.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an application error.
type Kind int

const (
	// KindValidation covers missing or malformed request input.
	KindValidation Kind = iota + 1
	// KindConfiguration covers missing credentials or connection settings.
	KindConfiguration
	// KindTranscription covers failures of the external speech-to-text call.
	KindTranscription
	// KindPersistence covers datastore failures.
	KindPersistence
	// KindNotFound covers lookups of records that do not exist.
	KindNotFound
)

// Error is an application error with a client-safe message. The underlying
// cause is kept for server-side logging and never reaches the response body.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Cause }

// HTTPStatus returns the status code this error maps to.
func (e *Error) HTTPStatus() int {
	switch e.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Validation creates an error for missing or malformed request input.
func Validation(msg string) *Error {
	return &Error{Kind: KindValidation, Message: msg}
}

// Configuration creates an error for missing credentials or settings.
func Configuration(msg string) *Error {
	return &Error{Kind: KindConfiguration, Message: msg}
}

// Transcription creates an error for a failed speech-to-text call.
func Transcription(msg string, cause error) *Error {
	return &Error{Kind: KindTranscription, Message: msg, Cause: cause}
}

// Persistence creates an error for a failed datastore operation.
func Persistence(msg string, cause error) *Error {
	return &Error{Kind: KindPersistence, Message: msg, Cause: cause}
}

// NotFound creates an error for a record that does not exist.
func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

// IsKind reports whether err is an application error of the given kind.
func IsKind(err error, kind Kind) bool {
	var ae *Error
	return errors.As(err, &ae) && ae.Kind == kind
}
