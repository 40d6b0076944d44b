package client

import (
	"context"
	"net/url"

	"github.com/fivetwenty-io/paystack/pkg/paystack"
)

// TransactionsClient implements paystack.TransactionsClient.
type TransactionsClient struct {
	core *Core
}

// NewTransactionsClient creates a new transactions client.
func NewTransactionsClient(core *Core) *TransactionsClient {
	return &TransactionsClient{
		core: core,
	}
}

// Initialize implements paystack.TransactionsClient.Initialize.
func (c *TransactionsClient) Initialize(ctx context.Context, request *paystack.TransactionInitializeRequest) (*paystack.Response, error) {
	return c.core.Call(ctx, "/transaction/initialize", paystack.MethodPost, request, nil)
}

// Verify implements paystack.TransactionsClient.Verify.
func (c *TransactionsClient) Verify(ctx context.Context, reference string) (*paystack.Response, error) {
	if reference == "" {
		return nil, fromRequestFailure(paystack.ErrReferenceRequired)
	}

	return c.core.Call(ctx, "/transaction/verify/"+url.PathEscape(reference), paystack.MethodGet, nil, nil)
}

// List implements paystack.TransactionsClient.List.
func (c *TransactionsClient) List(ctx context.Context, params *paystack.TransactionListParams) (*paystack.Response, error) {
	return c.core.Call(ctx, "/transaction", paystack.MethodGet, nil, params)
}

// Fetch implements paystack.TransactionsClient.Fetch.
func (c *TransactionsClient) Fetch(ctx context.Context, id string) (*paystack.Response, error) {
	if id == "" {
		return nil, fromRequestFailure(paystack.ErrIDRequired)
	}

	return c.core.Call(ctx, "/transaction/"+url.PathEscape(id), paystack.MethodGet, nil, nil)
}

// ChargeAuthorization implements paystack.TransactionsClient.ChargeAuthorization.
func (c *TransactionsClient) ChargeAuthorization(ctx context.Context, request *paystack.ChargeAuthorizationRequest) (*paystack.Response, error) {
	return c.core.Call(ctx, "/transaction/charge_authorization", paystack.MethodPost, request, nil)
}

// Totals implements paystack.TransactionsClient.Totals.
func (c *TransactionsClient) Totals(ctx context.Context, params *paystack.TransactionTotalsParams) (*paystack.Response, error) {
	return c.core.Call(ctx, "/transaction/totals", paystack.MethodGet, nil, params)
}
