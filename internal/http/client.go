// Package http is the transport shared by every resource client: it builds
// authenticated JSON requests, sends them exactly once, and reports raw
// results and failures.
package http

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	cleanhttp "github.com/hashicorp/go-cleanhttp"
	retryablehttp "github.com/hashicorp/go-retryablehttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/fivetwenty-io/paystack/internal/auth"
	"github.com/fivetwenty-io/paystack/internal/constants"
	"github.com/fivetwenty-io/paystack/pkg/paystack"
)

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Client sends requests to the API. Its configuration is fixed at
// construction, so one Client can serve any number of concurrent calls.
type Client struct {
	httpClient *retryablehttp.Client
	baseClient *http.Client
	baseURL    string
	credential auth.Credential
	userAgent  string
	logger     Logger
	debug      bool
	tracer     trace.Tracer
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger.
func WithLogger(logger Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request and response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		if userAgent != "" {
			c.userAgent = userAgent
		}
	}
}

// WithHTTPClient sets the underlying *http.Client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.baseClient = httpClient
		}
	}
}

// WithTracerProvider sets where request spans are recorded. The global
// provider is used otherwise.
func WithTracerProvider(provider trace.TracerProvider) Option {
	return func(c *Client) {
		if provider != nil {
			c.tracer = provider.Tracer(tracerName)
		}
	}
}

// Request is a single API call.
//
// GET and DELETE send Query and ignore Body; POST, PUT and PATCH send Body
// and ignore Query.
type Request struct {
	Method paystack.Method
	Path   string
	Body   paystack.Value
	Query  paystack.Object
}

// Response is a successful (2xx) response with its decoded payload.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
	Payload    paystack.Value
}

// RequestError is a failure while preparing a request. Nothing was sent.
type RequestError struct {
	Op  string
	Err error
}

// Error implements the error interface.
func (e *RequestError) Error() string {
	return fmt.Sprintf("preparing request: %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error.
func (e *RequestError) Unwrap() error {
	return e.Err
}

// NewClient creates a client for baseURL authenticating with credential.
func NewClient(baseURL string, credential auth.Credential, opts ...Option) *Client {
	client := &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		credential: credential,
		userAgent:  constants.DefaultUserAgent,
	}

	for _, opt := range opts {
		opt(client)
	}

	if client.baseClient == nil {
		client.baseClient = cleanhttp.DefaultPooledClient()
	}

	if client.tracer == nil {
		client.tracer = otel.GetTracerProvider().Tracer(tracerName)
	}

	client.httpClient = client.newRetryableClient()

	return client
}

// newRetryableClient configures go-retryablehttp for a single attempt: the
// API is a plain request/response endpoint and failures go straight back
// to the caller.
func (c *Client) newRetryableClient() *retryablehttp.Client {
	client := retryablehttp.NewClient()
	client.HTTPClient = c.baseClient
	client.RetryMax = 0
	client.CheckRetry = neverRetry
	client.ErrorHandler = retryablehttp.PassthroughErrorHandler
	client.Logger = nil

	if c.logger != nil && c.debug {
		client.RequestLogHook = func(_ retryablehttp.Logger, req *http.Request, _ int) {
			c.logger.Debug("HTTP Request", map[string]interface{}{
				"method": req.Method,
				"path":   req.URL.Path,
				"query":  req.URL.RawQuery,
			})
		}
		client.ResponseLogHook = func(_ retryablehttp.Logger, resp *http.Response) {
			c.logger.Debug("HTTP Response", map[string]interface{}{
				"method":      resp.Request.Method,
				"path":        resp.Request.URL.Path,
				"status_code": resp.StatusCode,
			})
		}
	}

	return client
}

func neverRetry(_ context.Context, _ *http.Response, _ error) (bool, error) {
	return false, nil
}

// Do sends req once. Preparation failures are returned as *RequestError;
// network failures, non-2xx statuses and undecodable bodies as
// *paystack.APIError. The Response is returned alongside an APIError
// whenever one was received.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	ctx, span := c.startSpan(ctx, req)
	defer span.End()

	resp, err := c.send(ctx, req)
	finishSpan(span, resp, err)

	return resp, err
}

func (c *Client) send(ctx context.Context, req *Request) (*Response, error) {
	httpReq, err := c.buildRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.logFailure(req, 0, err)

		return nil, &paystack.APIError{
			Message: fmt.Sprintf("%s: %v", constants.ErrExchangeFailed, err),
			Err:     err,
		}
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logFailure(req, resp.StatusCode, err)

		return nil, &paystack.APIError{
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("reading response body: %v", err),
			Err:        err,
		}
	}

	response := &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       body,
	}

	payload, parseErr := paystack.ParseValue(body)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		apiErr := newAPIError(resp.StatusCode, body, payload)
		c.logFailure(req, resp.StatusCode, apiErr)

		return response, apiErr
	}

	if parseErr != nil {
		c.logFailure(req, resp.StatusCode, parseErr)

		return response, &paystack.APIError{
			StatusCode: resp.StatusCode,
			Message:    constants.ErrUndecodableBody.Error(),
			Body:       body,
			Err:        parseErr,
		}
	}

	response.Payload = payload

	return response, nil
}

// Get sends a GET request with query parameters.
func (c *Client) Get(ctx context.Context, path string, query paystack.Object) (*Response, error) {
	return c.Do(ctx, &Request{Method: paystack.MethodGet, Path: path, Query: query})
}

// Delete sends a DELETE request with query parameters.
func (c *Client) Delete(ctx context.Context, path string, query paystack.Object) (*Response, error) {
	return c.Do(ctx, &Request{Method: paystack.MethodDelete, Path: path, Query: query})
}

// Post sends a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body paystack.Value) (*Response, error) {
	return c.Do(ctx, &Request{Method: paystack.MethodPost, Path: path, Body: body})
}

// Put sends a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body paystack.Value) (*Response, error) {
	return c.Do(ctx, &Request{Method: paystack.MethodPut, Path: path, Body: body})
}

// Patch sends a PATCH request with a JSON body.
func (c *Client) Patch(ctx context.Context, path string, body paystack.Value) (*Response, error) {
	return c.Do(ctx, &Request{Method: paystack.MethodPatch, Path: path, Body: body})
}

func (c *Client) buildRequest(ctx context.Context, req *Request) (*retryablehttp.Request, error) {
	if req == nil || req.Path == "" {
		return nil, &RequestError{Op: "resolve endpoint", Err: constants.ErrEmptyEndpoint}
	}

	if !req.Method.Valid() {
		return nil, &RequestError{Op: "validate method", Err: fmt.Errorf("%w: %q", paystack.ErrUnsupportedMethod, req.Method)}
	}

	target, err := c.resolveURL(req.Path)
	if err != nil {
		return nil, &RequestError{Op: "resolve endpoint", Err: err}
	}

	var body interface{}

	if req.Method.HasBody() {
		if _, isNull := req.Body.(paystack.Null); req.Body != nil && !isNull {
			data, err := req.Body.MarshalJSON()
			if err != nil {
				return nil, &RequestError{Op: "encode body", Err: err}
			}

			body = data
		}
	} else {
		values, err := EncodeQuery(req.Query)
		if err != nil {
			return nil, &RequestError{Op: "encode query", Err: err}
		}

		merged := target.Query()
		for key, vals := range values {
			for _, val := range vals {
				merged.Add(key, val)
			}
		}

		target.RawQuery = merged.Encode()
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, string(req.Method), target.String(), body)
	if err != nil {
		return nil, &RequestError{Op: "create request", Err: err}
	}

	if !c.credential.IsZero() {
		httpReq.Header.Set("Authorization", c.credential.Bearer())
	}

	httpReq.Header.Set("Accept", constants.ContentTypeJSON)
	httpReq.Header.Set("Content-Type", constants.ContentTypeJSON)
	httpReq.Header.Set("User-Agent", c.userAgent)

	return httpReq, nil
}

func (c *Client) resolveURL(path string) (*url.URL, error) {
	raw := c.baseURL + "/" + strings.TrimPrefix(path, "/")

	target, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", constants.ErrInvalidBaseURL, err)
	}

	if target.Scheme == "" || target.Host == "" {
		return nil, fmt.Errorf("%w: %q", constants.ErrInvalidBaseURL, c.baseURL)
	}

	return target, nil
}

func (c *Client) logFailure(req *Request, statusCode int, err error) {
	if c.logger == nil {
		return
	}

	c.logger.Error("HTTP Request Failed", map[string]interface{}{
		"method":      string(req.Method),
		"path":        req.Path,
		"status_code": statusCode,
		"error":       err.Error(),
	})
}

// newAPIError builds the error for a non-2xx response from the provider's
// error body ({"status": false, "message": ..., "code": ..., "type": ...}).
func newAPIError(statusCode int, body []byte, payload paystack.Value) *paystack.APIError {
	apiErr := &paystack.APIError{
		StatusCode: statusCode,
		Body:       body,
		Err:        constants.ErrNonSuccessResponse,
	}

	if obj, ok := payload.(paystack.Object); ok {
		apiErr.Message, _ = paystack.AsString(obj[constants.KeyMessage])
		apiErr.Code, _ = paystack.AsString(obj[constants.KeyCode])
		apiErr.Type, _ = paystack.AsString(obj[constants.KeyType])
		apiErr.Meta = obj[constants.KeyMeta]
	}

	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(statusCode)
	}

	return apiErr
}

// EncodeQuery renders query parameters. Strings and numbers are sent as
// text, booleans as true/false, arrays as repeated keys, nested objects as
// compact JSON; nulls are skipped.
func EncodeQuery(query paystack.Object) (url.Values, error) {
	values := url.Values{}

	for key, value := range query {
		switch typed := value.(type) {
		case paystack.Array:
			for _, elem := range typed {
				text, ok, err := queryText(elem)
				if err != nil {
					return nil, fmt.Errorf("%w: %s: %w", constants.ErrUnsupportedQuery, key, err)
				}

				if ok {
					values.Add(key, text)
				}
			}
		default:
			text, ok, err := queryText(typed)
			if err != nil {
				return nil, fmt.Errorf("%w: %s: %w", constants.ErrUnsupportedQuery, key, err)
			}

			if ok {
				values.Add(key, text)
			}
		}
	}

	return values, nil
}

func queryText(value paystack.Value) (string, bool, error) {
	switch typed := value.(type) {
	case nil, paystack.Null:
		return "", false, nil
	case paystack.String:
		return string(typed), true, nil
	case paystack.Number:
		return string(typed), true, nil
	case paystack.Bool:
		return strconv.FormatBool(bool(typed)), true, nil
	default:
		data, err := typed.MarshalJSON()
		if err != nil {
			return "", false, err
		}

		return string(data), true, nil
	}
}

// IsRequestError reports whether err happened before the request was sent.
func IsRequestError(err error) bool {
	reqErr := &RequestError{}

	return errors.As(err, &reqErr)
}
