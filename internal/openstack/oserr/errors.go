// Package oserr defines the error taxonomy of the composite client and the
// failure envelope handed back to collaborators.
package oserr

import (
	"errors"
	"fmt"

	"github.com/gophercloud/gophercloud/v2"
)

type Kind int

const (
	// KindConfiguration: a required credential is missing at construction.
	KindConfiguration Kind = iota + 1
	// KindAuthentication: the identity service rejected the credentials or
	// returned a malformed token response.
	KindAuthentication
	// KindPrimaryResource: the mandatory server lookup failed.
	KindPrimaryResource
)

func (k Kind) String() string {
	switch k {
	case KindConfiguration:
		return "configuration"
	case KindAuthentication:
		return "authentication"
	case KindPrimaryResource:
		return "primary-resource"
	}
	return "unknown"
}

// Error is a fatal client error. Secondary lookup failures never produce
// one; they degrade the affected field instead.
type Error struct {
	Kind       Kind
	Message    string
	HTTPStatus int
	Details    map[string]any
}

func (e *Error) Error() string {
	if e.HTTPStatus != 0 {
		return fmt.Sprintf("%s: %s (HTTP %d)", e.Kind, e.Message, e.HTTPStatus)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func Configuration(format string, args ...any) *Error {
	return &Error{Kind: KindConfiguration, Message: fmt.Sprintf(format, args...)}
}

func Authentication(message string) *Error {
	return &Error{Kind: KindAuthentication, Message: message}
}

// Wrap converts an error from a gophercloud request into a typed Error,
// lifting the HTTP status and raw body out of unexpected-response errors.
func Wrap(kind Kind, message string, err error) *Error {
	e := &Error{Kind: kind, Message: message}
	var respErr gophercloud.ErrUnexpectedResponseCode
	if errors.As(err, &respErr) {
		e.Message = fmt.Sprintf("%s: %d %s", message, respErr.Actual, string(respErr.Body))
		e.HTTPStatus = respErr.Actual
		e.Details = map[string]any{"body": string(respErr.Body)}
	} else if err != nil {
		e.Message = fmt.Sprintf("%s: %s", message, err)
	}
	return e
}

// Envelope is the uniform failure shape returned to the calling collaborator.
type Envelope struct {
	Error ErrorBody `json:"error"`
}

type ErrorBody struct {
	Type       string         `json:"type"`
	Message    string         `json:"message"`
	HTTPStatus *int           `json:"http_status"`
	Details    map[string]any `json:"details"`
}

// NewEnvelope maps any error onto the envelope: typed client errors become
// "ClientError" with their HTTP status, everything else "UnexpectedError".
func NewEnvelope(err error) Envelope {
	var ce *Error
	if errors.As(err, &ce) {
		body := ErrorBody{Type: "ClientError", Message: ce.Message, Details: ce.Details}
		if ce.HTTPStatus != 0 {
			status := ce.HTTPStatus
			body.HTTPStatus = &status
		}
		return Envelope{Error: body}
	}
	return Envelope{Error: ErrorBody{Type: "UnexpectedError", Message: err.Error()}}
}
