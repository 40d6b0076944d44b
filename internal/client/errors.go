package client

import (
	"errors"

	"github.com/fivetwenty-io/paystack/pkg/paystack"
)

// fromRequestFailure reports a failure that happened before anything was
// sent. No cause is attached.
func fromRequestFailure(err error) *paystack.Error {
	return &paystack.Error{
		Kind:   paystack.KindRequest,
		Detail: err.Error(),
	}
}

// fromResponseFailure reports a failed exchange and keeps the transport
// error as the cause, so the provider's code, type and meta stay reachable.
func fromResponseFailure(err error) *paystack.Error {
	domainErr := &paystack.Error{
		Kind:   paystack.KindResponse,
		Detail: err.Error(),
		Cause:  err,
	}

	apiErr := &paystack.APIError{}
	if errors.As(err, &apiErr) {
		domainErr.Status = apiErr.StatusCode
		domainErr.Code = apiErr.Code

		if apiErr.Message != "" {
			domainErr.Detail = apiErr.Message
		}
	}

	return domainErr
}
