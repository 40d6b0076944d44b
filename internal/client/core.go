package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/paystack/internal/http"
	"github.com/fivetwenty-io/paystack/internal/naming"
	"github.com/fivetwenty-io/paystack/pkg/paystack"
)

// Core is the single call path shared by every resource client:
// encode -> send -> decode -> normalize. It holds no per-call state.
type Core struct {
	httpClient *http.Client
	names      *naming.Transformer
}

// NewCore creates a core that sends through httpClient and converts keys
// with naming.Default.
func NewCore(httpClient *http.Client) *Core {
	return &Core{
		httpClient: httpClient,
		names:      naming.Default,
	}
}

// Call implements paystack.Caller.Call.
func (c *Core) Call(ctx context.Context, endpoint string, method paystack.Method, body, query interface{}) (*paystack.Response, error) {
	req, err := c.encode(endpoint, method, body, query)
	if err != nil {
		return nil, fromRequestFailure(err)
	}

	raw, err := c.httpClient.Do(ctx, req)
	if err != nil {
		if http.IsRequestError(err) {
			return nil, fromRequestFailure(err)
		}

		return nil, fromResponseFailure(err)
	}

	return normalizeResponse(raw.StatusCode, c.names.ToLocal(raw.Payload)), nil
}

// encode builds the transport request. Only the slot the method uses is
// encoded; the other is dropped without being looked at.
func (c *Core) encode(endpoint string, method paystack.Method, body, query interface{}) (*http.Request, error) {
	if !method.Valid() {
		return nil, &http.RequestError{
			Op:  "validate method",
			Err: fmt.Errorf("%w: %q", paystack.ErrUnsupportedMethod, method),
		}
	}

	req := &http.Request{Method: method, Path: endpoint}

	if method.HasBody() {
		value, err := paystack.ValueOf(body)
		if err != nil {
			return nil, &http.RequestError{Op: "encode body", Err: err}
		}

		req.Body = c.names.ToWire(value)

		return req, nil
	}

	value, err := paystack.ValueOf(query)
	if err != nil {
		return nil, &http.RequestError{Op: "encode query", Err: err}
	}

	switch typed := c.names.ToWire(value).(type) {
	case nil, paystack.Null:
	case paystack.Object:
		req.Query = typed
	default:
		return nil, &http.RequestError{Op: "encode query", Err: paystack.ErrQueryNotObject}
	}

	return req, nil
}
