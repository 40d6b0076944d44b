package psclient

import (
	"strings"

	"github.com/fivetwenty-io/paystack/internal/client"
	"github.com/fivetwenty-io/paystack/pkg/paystack"
)

// New creates a Paystack API client.
//
// The secret key is taken from config.SecretKey or, when that is empty, from
// the PAYSTACK_SECRET_KEY environment variable. Without either, New returns
// a *paystack.Error of kind paystack.KindConfiguration and no client.
func New(config *paystack.Config) (paystack.Client, error) {
	if config == nil {
		config = &paystack.Config{}
	}

	normalized := *config
	normalized.BaseURL = normalizeBaseURL(config.BaseURL)

	c, err := client.New(&normalized)
	if err != nil {
		return nil, err
	}

	return c, nil
}

// NewWithSecretKey creates a client with an explicit secret key.
func NewWithSecretKey(secretKey string) (paystack.Client, error) {
	return New(&paystack.Config{
		SecretKey: secretKey,
	})
}

// NewFromEnv creates a client whose secret key comes from the
// PAYSTACK_SECRET_KEY environment variable.
func NewFromEnv() (paystack.Client, error) {
	return New(&paystack.Config{})
}

// normalizeBaseURL trims a trailing slash and defaults the scheme to https.
func normalizeBaseURL(baseURL string) string {
	if baseURL == "" {
		return ""
	}

	baseURL = strings.TrimSuffix(baseURL, "/")
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		baseURL = "https://" + baseURL
	}

	return baseURL
}
