package paystack

import (
	"fmt"
	"net/http"

	"go.opentelemetry.io/otel/trace"
)

// Method is an HTTP verb accepted by the API.
//
// GET and DELETE requests carry only query parameters; POST, PUT and PATCH
// requests carry only a JSON body. Whatever is passed in the other slot is
// dropped.
type Method string

// Supported methods.
const (
	MethodGet    Method = http.MethodGet
	MethodPost   Method = http.MethodPost
	MethodPut    Method = http.MethodPut
	MethodPatch  Method = http.MethodPatch
	MethodDelete Method = http.MethodDelete
)

// Valid reports whether m is one of the supported methods.
func (m Method) Valid() bool {
	switch m {
	case MethodGet, MethodPost, MethodPut, MethodPatch, MethodDelete:
		return true
	default:
		return false
	}
}

// HasBody reports whether requests with this method carry a body.
func (m Method) HasBody() bool {
	return m == MethodPost || m == MethodPut || m == MethodPatch
}

// Response is the envelope every successful call is normalized into. Keys
// inside Data and Meta are in the library's lowerCamelCase convention.
type Response struct {
	StatusCode int    `json:"statusCode"     yaml:"statusCode"`
	Status     bool   `json:"status"         yaml:"status"`
	Message    string `json:"message"        yaml:"message"`
	Data       Value  `json:"data"           yaml:"-"`
	Meta       Value  `json:"meta,omitempty" yaml:"-"`
}

// DecodeData decodes the envelope's data into a T.
func DecodeData[T any](resp *Response) (*T, error) {
	if resp == nil {
		return nil, ErrNoData
	}

	var out T

	err := DecodeValue(resp.Data, &out)
	if err != nil {
		return nil, fmt.Errorf("parsing response data: %w", err)
	}

	return &out, nil
}

// DecodeMeta decodes the envelope's pagination block.
func DecodeMeta(resp *Response) (*Meta, error) {
	if resp == nil || resp.Meta == nil {
		return nil, ErrNoData
	}

	var meta Meta

	err := DecodeValue(resp.Meta, &meta)
	if err != nil {
		return nil, fmt.Errorf("parsing response meta: %w", err)
	}

	return &meta, nil
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a paystack.Client.
//
// # Secret key resolution
//
// SecretKey is used when set. Otherwise the key is read once, at
// construction, from the PAYSTACK_SECRET_KEY environment variable. When
// neither yields a key, construction fails with a KindConfiguration error
// and no request is ever made. The key is never re-read afterwards.
type Config struct {
	// SecretKey: the API secret key sent as a Bearer token.
	SecretKey string
	// BaseURL: overrides https://api.paystack.co, mostly for tests.
	BaseURL string
	// UserAgent: overrides the default User-Agent header.
	UserAgent string
	// Debug: enables request/response logging when a Logger is provided.
	Debug bool
	// Logger: optional structured logger used by the HTTP layer.
	Logger Logger
	// TracerProvider: records one client span per request. Defaults to the
	// global OpenTelemetry provider.
	TracerProvider trace.TracerProvider
}
