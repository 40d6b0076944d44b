package client

import (
	"context"

	"github.com/fivetwenty-io/paystack/pkg/paystack"
)

const applePayDomainPath = "/apple-pay/domain"

// ApplePayClient implements paystack.ApplePayClient.
type ApplePayClient struct {
	core *Core
}

// NewApplePayClient creates a new Apple Pay client.
func NewApplePayClient(core *Core) *ApplePayClient {
	return &ApplePayClient{
		core: core,
	}
}

// RegisterDomain implements paystack.ApplePayClient.RegisterDomain.
func (c *ApplePayClient) RegisterDomain(ctx context.Context, domainName string) (*paystack.Response, error) {
	if domainName == "" {
		return nil, fromRequestFailure(paystack.ErrDomainNameRequired)
	}

	request := &paystack.ApplePayDomainRequest{DomainName: domainName}

	return c.core.Call(ctx, applePayDomainPath, paystack.MethodPost, request, nil)
}

// ListDomains implements paystack.ApplePayClient.ListDomains.
func (c *ApplePayClient) ListDomains(ctx context.Context) (*paystack.Response, error) {
	return c.core.Call(ctx, applePayDomainPath, paystack.MethodGet, nil, nil)
}

// UnregisterDomain implements paystack.ApplePayClient.UnregisterDomain.
// DELETE carries no body, so the domain goes in the query string.
func (c *ApplePayClient) UnregisterDomain(ctx context.Context, domainName string) (*paystack.Response, error) {
	if domainName == "" {
		return nil, fromRequestFailure(paystack.ErrDomainNameRequired)
	}

	query := &paystack.ApplePayDomainRequest{DomainName: domainName}

	return c.core.Call(ctx, applePayDomainPath, paystack.MethodDelete, nil, query)
}
