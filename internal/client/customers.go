package client

import (
	"context"
	"net/url"

	"github.com/fivetwenty-io/paystack/pkg/paystack"
)

// CustomersClient implements paystack.CustomersClient.
type CustomersClient struct {
	core *Core
}

// NewCustomersClient creates a new customers client.
func NewCustomersClient(core *Core) *CustomersClient {
	return &CustomersClient{
		core: core,
	}
}

// Create implements paystack.CustomersClient.Create.
func (c *CustomersClient) Create(ctx context.Context, request *paystack.CustomerCreateRequest) (*paystack.Response, error) {
	return c.core.Call(ctx, "/customer", paystack.MethodPost, request, nil)
}

// List implements paystack.CustomersClient.List.
func (c *CustomersClient) List(ctx context.Context, params *paystack.ListParams) (*paystack.Response, error) {
	return c.core.Call(ctx, "/customer", paystack.MethodGet, nil, params)
}

// Fetch implements paystack.CustomersClient.Fetch. The API accepts either
// the customer's email or its customer code.
func (c *CustomersClient) Fetch(ctx context.Context, emailOrCode string) (*paystack.Response, error) {
	if emailOrCode == "" {
		return nil, fromRequestFailure(paystack.ErrCustomerCodeMissing)
	}

	return c.core.Call(ctx, "/customer/"+url.PathEscape(emailOrCode), paystack.MethodGet, nil, nil)
}

// Update implements paystack.CustomersClient.Update.
func (c *CustomersClient) Update(ctx context.Context, code string, request *paystack.CustomerUpdateRequest) (*paystack.Response, error) {
	if code == "" {
		return nil, fromRequestFailure(paystack.ErrCustomerCodeMissing)
	}

	return c.core.Call(ctx, "/customer/"+url.PathEscape(code), paystack.MethodPut, request, nil)
}
