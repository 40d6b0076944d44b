package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/paystack/internal/auth"
	"github.com/fivetwenty-io/paystack/internal/constants"
	"github.com/fivetwenty-io/paystack/internal/http"
	"github.com/fivetwenty-io/paystack/pkg/paystack"
)

// Client implements the paystack.Client interface.
type Client struct {
	core    *Core
	baseURL string
	logger  paystack.Logger

	// Resource clients
	transactions  paystack.TransactionsClient
	customers     paystack.CustomersClient
	charges       paystack.ChargesClient
	applePay      paystack.ApplePayClient
	refunds       paystack.RefundsClient
	miscellaneous paystack.MiscellaneousClient
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *paystack.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.TracerProvider != nil {
		httpOpts = append(httpOpts, http.WithTracerProvider(config.TracerProvider))
	}

	return httpOpts
}

// New creates a client. The secret key is resolved here, once: an empty
// Config.SecretKey falls back to the PAYSTACK_SECRET_KEY environment
// variable, and when both are empty a KindConfiguration error is returned
// before any request is made.
func New(config *paystack.Config) (*Client, error) {
	if config == nil {
		config = &paystack.Config{}
	}

	credential, err := auth.Resolve(config.SecretKey)
	if err != nil {
		return nil, &paystack.Error{
			Kind:   paystack.KindConfiguration,
			Detail: fmt.Sprintf("%v: set Config.SecretKey or %s", paystack.ErrSecretKeyRequired, constants.EnvSecretKey),
		}
	}

	return NewWithCredential(config, credential), nil
}

// NewWithCredential creates a client from an already resolved credential.
func NewWithCredential(config *paystack.Config, credential auth.Credential) *Client {
	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = constants.DefaultBaseURL
	}

	httpClient := http.NewClient(baseURL, credential, createHTTPClientOptions(config)...)

	client := &Client{
		core:    NewCore(httpClient),
		baseURL: baseURL,
		logger:  config.Logger,
	}

	// Initialize resource clients
	client.initializeResourceClients()

	if client.logger != nil {
		client.logger.Debug("Paystack client created", map[string]interface{}{
			"base_url":   baseURL,
			"secret_key": credential.String(),
		})
	}

	return client
}

// initializeResourceClients hands every resource client the same core, and
// with it the same transport and credential.
func (c *Client) initializeResourceClients() {
	c.transactions = NewTransactionsClient(c.core)
	c.customers = NewCustomersClient(c.core)
	c.charges = NewChargesClient(c.core)
	c.applePay = NewApplePayClient(c.core)
	c.refunds = NewRefundsClient(c.core)
	c.miscellaneous = NewMiscellaneousClient(c.core)
}

// BaseURL returns the API address the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Call implements paystack.Caller.Call.
func (c *Client) Call(ctx context.Context, endpoint string, method paystack.Method, body, query interface{}) (*paystack.Response, error) {
	return c.core.Call(ctx, endpoint, method, body, query)
}

// Transactions implements paystack.ResourceClients.Transactions.
func (c *Client) Transactions() paystack.TransactionsClient {
	return c.transactions
}

// Customers implements paystack.ResourceClients.Customers.
func (c *Client) Customers() paystack.CustomersClient {
	return c.customers
}

// Charges implements paystack.ResourceClients.Charges.
func (c *Client) Charges() paystack.ChargesClient {
	return c.charges
}

// ApplePay implements paystack.ResourceClients.ApplePay.
func (c *Client) ApplePay() paystack.ApplePayClient {
	return c.applePay
}

// Refunds implements paystack.ResourceClients.Refunds.
func (c *Client) Refunds() paystack.RefundsClient {
	return c.refunds
}

// Miscellaneous implements paystack.ResourceClients.Miscellaneous.
func (c *Client) Miscellaneous() paystack.MiscellaneousClient {
	return c.miscellaneous
}
