package apierr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies failures so callers can branch without string matching.
type Kind int

const (
	KindUnknown Kind = iota
	// KindNetwork: the request failed before reaching the server, or no
	// response arrived.
	KindNetwork
	// KindValidation: a required field is missing; caught before any network
	// call is made.
	KindValidation
	// KindAuth: 401/403. Handled globally by the gateway hook, never locally.
	KindAuth
	// KindNotFound: 404, e.g. a price lookup for an unconfigured pair.
	KindNotFound
	// KindServer: any other 4xx/5xx with a message body.
	KindServer
)

// Error carries a failure kind, the upstream HTTP status when there was one,
// and the upstream message verbatim where available.
type Error struct {
	Kind    Kind
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "request failed"
}

func (e *Error) Unwrap() error { return e.Err }

func Network(err error) *Error {
	return &Error{Kind: KindNetwork, Message: "no response from server", Err: err}
}

func Validation(msg string) *Error {
	return &Error{Kind: KindValidation, Status: http.StatusBadRequest, Message: msg}
}

func Auth(status int, msg string) *Error {
	return &Error{Kind: KindAuth, Status: status, Message: msg}
}

func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Status: http.StatusNotFound, Message: msg}
}

func Server(status int, msg string) *Error {
	return &Error{Kind: KindServer, Status: status, Message: msg}
}

// Wrap attaches a context message while preserving the kind.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	var ae *Error
	if errors.As(err, &ae) {
		return &Error{Kind: ae.Kind, Status: ae.Status, Message: fmt.Sprintf("%s: %s", msg, ae.Error()), Err: err}
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// KindOf reports the kind of err, or KindUnknown for foreign errors.
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return KindUnknown
}

func IsNotFound(err error) bool   { return KindOf(err) == KindNotFound }
func IsAuth(err error) bool       { return KindOf(err) == KindAuth }
func IsValidation(err error) bool { return KindOf(err) == KindValidation }
