package client

import (
	"context"
	"net/url"

	"github.com/fivetwenty-io/paystack/pkg/paystack"
)

// RefundsClient implements paystack.RefundsClient.
type RefundsClient struct {
	core *Core
}

// NewRefundsClient creates a new refunds client.
func NewRefundsClient(core *Core) *RefundsClient {
	return &RefundsClient{
		core: core,
	}
}

// Create implements paystack.RefundsClient.Create.
func (c *RefundsClient) Create(ctx context.Context, request *paystack.RefundCreateRequest) (*paystack.Response, error) {
	return c.core.Call(ctx, "/refund", paystack.MethodPost, request, nil)
}

// List implements paystack.RefundsClient.List.
func (c *RefundsClient) List(ctx context.Context, params *paystack.RefundListParams) (*paystack.Response, error) {
	return c.core.Call(ctx, "/refund", paystack.MethodGet, nil, params)
}

// Fetch implements paystack.RefundsClient.Fetch.
func (c *RefundsClient) Fetch(ctx context.Context, id string) (*paystack.Response, error) {
	if id == "" {
		return nil, fromRequestFailure(paystack.ErrIDRequired)
	}

	return c.core.Call(ctx, "/refund/"+url.PathEscape(id), paystack.MethodGet, nil, nil)
}
