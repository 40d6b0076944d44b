package client

import (
	"github.com/fivetwenty-io/paystack/internal/constants"
	"github.com/fivetwenty-io/paystack/pkg/paystack"
)

// normalizeResponse maps a decoded payload onto the response envelope.
// A missing or non-boolean status reads as false and a missing message
// stays empty. Data and meta are passed through as they are.
func normalizeResponse(statusCode int, payload paystack.Value) *paystack.Response {
	resp := &paystack.Response{StatusCode: statusCode}

	obj, ok := payload.(paystack.Object)
	if !ok {
		return resp
	}

	resp.Status, _ = paystack.AsBool(obj[constants.KeyStatus])
	resp.Message, _ = paystack.AsString(obj[constants.KeyMessage])
	resp.Data = obj[constants.KeyData]
	resp.Meta = obj[constants.KeyMeta]

	return resp
}
