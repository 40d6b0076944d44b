package client

import (
	"context"
	"net/url"

	"github.com/fivetwenty-io/paystack/pkg/paystack"
)

// ChargesClient implements paystack.ChargesClient.
type ChargesClient struct {
	core *Core
}

// NewChargesClient creates a new charges client.
func NewChargesClient(core *Core) *ChargesClient {
	return &ChargesClient{
		core: core,
	}
}

// Create implements paystack.ChargesClient.Create.
func (c *ChargesClient) Create(ctx context.Context, request *paystack.ChargeRequest) (*paystack.Response, error) {
	return c.core.Call(ctx, "/charge", paystack.MethodPost, request, nil)
}

// SubmitPIN implements paystack.ChargesClient.SubmitPIN.
func (c *ChargesClient) SubmitPIN(ctx context.Context, request *paystack.SubmitPINRequest) (*paystack.Response, error) {
	return c.core.Call(ctx, "/charge/submit_pin", paystack.MethodPost, request, nil)
}

// SubmitOTP implements paystack.ChargesClient.SubmitOTP.
//
// It posts to the submit_pin endpoint, as existing integrations do.
// TODO: confirm with the API owners whether this should be
// /charge/submit_otp and switch once they answer.
func (c *ChargesClient) SubmitOTP(ctx context.Context, request *paystack.SubmitOTPRequest) (*paystack.Response, error) {
	return c.core.Call(ctx, "/charge/submit_pin", paystack.MethodPost, request, nil)
}

// SubmitPhone implements paystack.ChargesClient.SubmitPhone.
func (c *ChargesClient) SubmitPhone(ctx context.Context, request *paystack.SubmitPhoneRequest) (*paystack.Response, error) {
	return c.core.Call(ctx, "/charge/submit_phone", paystack.MethodPost, request, nil)
}

// SubmitBirthday implements paystack.ChargesClient.SubmitBirthday.
func (c *ChargesClient) SubmitBirthday(ctx context.Context, request *paystack.SubmitBirthdayRequest) (*paystack.Response, error) {
	return c.core.Call(ctx, "/charge/submit_birthday", paystack.MethodPost, request, nil)
}

// CheckPending implements paystack.ChargesClient.CheckPending.
func (c *ChargesClient) CheckPending(ctx context.Context, reference string) (*paystack.Response, error) {
	if reference == "" {
		return nil, fromRequestFailure(paystack.ErrReferenceRequired)
	}

	return c.core.Call(ctx, "/charge/"+url.PathEscape(reference), paystack.MethodGet, nil, nil)
}
