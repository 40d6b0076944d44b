package http

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/fivetwenty-io/paystack/pkg/paystack"
)

const (
	tracerName = "github.com/fivetwenty-io/paystack/internal/http"
	spanName   = "paystack.request"
)

// Span attribute keys.
const (
	AttrMethod     = "http.request.method"
	AttrPath       = "url.path"
	AttrStatusCode = "http.response.status_code"
	AttrErrorCode  = "paystack.error.code"
)

func (c *Client) startSpan(ctx context.Context, req *Request) (context.Context, trace.Span) {
	opts := []trace.SpanStartOption{trace.WithSpanKind(trace.SpanKindClient)}

	if req != nil {
		opts = append(opts, trace.WithAttributes(
			attribute.String(AttrMethod, string(req.Method)),
			attribute.String(AttrPath, req.Path),
		))
	}

	return c.tracer.Start(ctx, spanName, opts...)
}

// finishSpan records the outcome of a call. The span never sees request
// bodies or credentials.
func finishSpan(span trace.Span, resp *Response, err error) {
	if resp != nil {
		span.SetAttributes(attribute.Int(AttrStatusCode, resp.StatusCode))
	}

	if err == nil {
		span.SetStatus(codes.Ok, "")

		return
	}

	apiErr := &paystack.APIError{}
	if errors.As(err, &apiErr) && apiErr.Code != "" {
		span.SetAttributes(attribute.String(AttrErrorCode, apiErr.Code))
	}

	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
