package paystack

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind classifies a client error.
type ErrorKind int

const (
	// KindConfiguration means the client could not be constructed, e.g. no
	// secret key was supplied and none was found in the environment.
	KindConfiguration ErrorKind = iota + 1
	// KindRequest means the request could not be prepared. Nothing was sent.
	KindRequest
	// KindResponse means the request was sent and either the exchange failed
	// or the API answered with a non-success status.
	KindResponse
)

// String returns the kind name.
func (k ErrorKind) String() string {
	switch k {
	case KindConfiguration:
		return "configuration error"
	case KindRequest:
		return "request error"
	case KindResponse:
		return "response error"
	default:
		return "unknown error"
	}
}

// Error is the single error type returned by every client operation.
type Error struct {
	Kind ErrorKind
	// Detail is a human-readable message.
	Detail string
	// Status is the HTTP status, or 0 when none is known.
	Status int
	// Code is the provider error code, or "" when none is known.
	Code string
	// Cause is the original failure. It is only set for KindResponse, where
	// it is a *APIError carrying the provider's diagnostic payload.
	Cause error
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e.Status != 0 && e.Code != "":
		return fmt.Sprintf("paystack: %s (HTTP %d, code: %s): %s", e.Kind, e.Status, e.Code, e.Detail)
	case e.Status != 0:
		return fmt.Sprintf("paystack: %s (HTTP %d): %s", e.Kind, e.Status, e.Detail)
	default:
		return fmt.Sprintf("paystack: %s: %s", e.Kind, e.Detail)
	}
}

// Unwrap returns the wrapped cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

// APIError is a failed exchange with the API as seen by the transport: a
// non-success response, an undecodable response body, or a network failure
// after the request was handed to the network.
type APIError struct {
	// StatusCode is the HTTP status, or 0 when no response was received.
	StatusCode int
	// Message is the provider message, or a description of the failure.
	Message string
	// Code is the provider error code ("code" in the error body).
	Code string
	// Type is the provider error type ("type" in the error body).
	Type string
	// Meta is the provider diagnostic block ("meta" in the error body).
	Meta Value
	// Body is the raw response body.
	Body []byte
	// Err is the underlying network or decoding error.
	Err error
}

// Error implements the error interface.
func (e *APIError) Error() string {
	message := e.Message
	if message == "" && e.StatusCode != 0 {
		message = http.StatusText(e.StatusCode)
	}

	if e.StatusCode == 0 {
		return message
	}

	return fmt.Sprintf("%s (status: %d)", message, e.StatusCode)
}

// Unwrap returns the underlying error.
func (e *APIError) Unwrap() error {
	return e.Err
}

// Static errors for err113 compliance.
var (
	ErrSecretKeyRequired   = errors.New("secret key is required")
	ErrUnsupportedMethod   = errors.New("unsupported HTTP method")
	ErrQueryNotObject      = errors.New("query must encode to a JSON object")
	ErrReferenceRequired   = errors.New("reference is required")
	ErrIDRequired          = errors.New("identifier is required")
	ErrDomainNameRequired  = errors.New("domain name is required")
	ErrCustomerCodeMissing = errors.New("customer code or email is required")
)

func kindOf(err error) ErrorKind {
	e := &Error{}
	if errors.As(err, &e) {
		return e.Kind
	}

	return 0
}

// IsConfigurationError reports whether err is a configuration error.
func IsConfigurationError(err error) bool {
	return kindOf(err) == KindConfiguration
}

// IsRequestError reports whether err is a request preparation error.
func IsRequestError(err error) bool {
	return kindOf(err) == KindRequest
}

// IsResponseError reports whether err is a response or exchange error.
func IsResponseError(err error) bool {
	return kindOf(err) == KindResponse
}

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	e := &Error{}
	if errors.As(err, &e) {
		return e.Status
	}

	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}

	return 0
}

// IsNotFound checks if the error is a not found error.
func IsNotFound(err error) bool {
	return StatusCode(err) == http.StatusNotFound
}

// IsUnauthorized checks if the error is an unauthorized error.
func IsUnauthorized(err error) bool {
	return StatusCode(err) == http.StatusUnauthorized
}

// ProviderError returns the provider's diagnostic payload attached to err.
func ProviderError(err error) (*APIError, bool) {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr, true
	}

	return nil, false
}
