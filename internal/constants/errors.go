package constants

import "errors"

// Transport errors.
var (
	ErrInvalidBaseURL     = errors.New("invalid base URL")
	ErrUnsupportedQuery   = errors.New("unsupported query parameter value")
	ErrEmptyEndpoint      = errors.New("endpoint is required")
	ErrUndecodableBody    = errors.New("response body is not valid JSON")
	ErrExchangeFailed     = errors.New("request could not be completed")
	ErrNonSuccessResponse = errors.New("request failed")
)

// CLI errors.
var (
	ErrInvalidQueryFormat = errors.New("invalid query parameter, expected key=value")
	ErrInvalidDataFile    = errors.New("invalid data file path")
	ErrUnknownOutput      = errors.New("unknown output format")
	ErrEmptySecretKey     = errors.New("secret key must not be empty")
	ErrUnknownConfigKey   = errors.New("unknown configuration key")
)
