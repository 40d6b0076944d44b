package client

import (
	"context"

	"github.com/fivetwenty-io/paystack/pkg/paystack"
)

// MiscellaneousClient implements paystack.MiscellaneousClient.
type MiscellaneousClient struct {
	core *Core
}

// NewMiscellaneousClient creates a new miscellaneous client.
func NewMiscellaneousClient(core *Core) *MiscellaneousClient {
	return &MiscellaneousClient{
		core: core,
	}
}

// ListBanks implements paystack.MiscellaneousClient.ListBanks.
func (c *MiscellaneousClient) ListBanks(ctx context.Context, params *paystack.BankListParams) (*paystack.Response, error) {
	return c.core.Call(ctx, "/bank", paystack.MethodGet, nil, params)
}

// ListCountries implements paystack.MiscellaneousClient.ListCountries.
func (c *MiscellaneousClient) ListCountries(ctx context.Context) (*paystack.Response, error) {
	return c.core.Call(ctx, "/country", paystack.MethodGet, nil, nil)
}

// ResolveAccount implements paystack.MiscellaneousClient.ResolveAccount.
func (c *MiscellaneousClient) ResolveAccount(ctx context.Context, params *paystack.ResolveAccountParams) (*paystack.Response, error) {
	return c.core.Call(ctx, "/bank/resolve", paystack.MethodGet, nil, params)
}
