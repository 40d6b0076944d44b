package paystack

import (
	"context"
)

// Caller issues a single API call. It is the one entry point every resource
// client delegates to.
//
// endpoint is a path relative to the base URL, e.g. "/transaction/verify/ref".
// body and query may be any value that encodes to JSON (structs, maps, or a
// Value); their keys are converted to the API's snake_case convention, and
// the keys of the returned envelope are converted back to lowerCamelCase.
// query must encode to a JSON object.
type Caller interface {
	Call(ctx context.Context, endpoint string, method Method, body, query interface{}) (*Response, error)
}

// TransactionsClient accepts and inspects payments.
type TransactionsClient interface {
	Initialize(ctx context.Context, request *TransactionInitializeRequest) (*Response, error)
	Verify(ctx context.Context, reference string) (*Response, error)
	List(ctx context.Context, params *TransactionListParams) (*Response, error)
	Fetch(ctx context.Context, id string) (*Response, error)
	ChargeAuthorization(ctx context.Context, request *ChargeAuthorizationRequest) (*Response, error)
	Totals(ctx context.Context, params *TransactionTotalsParams) (*Response, error)
}

// CustomersClient manages customers.
type CustomersClient interface {
	Create(ctx context.Context, request *CustomerCreateRequest) (*Response, error)
	List(ctx context.Context, params *ListParams) (*Response, error)
	Fetch(ctx context.Context, emailOrCode string) (*Response, error)
	Update(ctx context.Context, code string, request *CustomerUpdateRequest) (*Response, error)
}

// ChargesClient drives the charge flow and its follow-up steps.
type ChargesClient interface {
	Create(ctx context.Context, request *ChargeRequest) (*Response, error)
	SubmitPIN(ctx context.Context, request *SubmitPINRequest) (*Response, error)
	SubmitOTP(ctx context.Context, request *SubmitOTPRequest) (*Response, error)
	SubmitPhone(ctx context.Context, request *SubmitPhoneRequest) (*Response, error)
	SubmitBirthday(ctx context.Context, request *SubmitBirthdayRequest) (*Response, error)
	CheckPending(ctx context.Context, reference string) (*Response, error)
}

// ApplePayClient manages the domains registered for Apple Pay.
type ApplePayClient interface {
	RegisterDomain(ctx context.Context, domainName string) (*Response, error)
	ListDomains(ctx context.Context) (*Response, error)
	UnregisterDomain(ctx context.Context, domainName string) (*Response, error)
}

// RefundsClient manages refunds.
type RefundsClient interface {
	Create(ctx context.Context, request *RefundCreateRequest) (*Response, error)
	List(ctx context.Context, params *RefundListParams) (*Response, error)
	Fetch(ctx context.Context, id string) (*Response, error)
}

// MiscellaneousClient exposes reference data and account resolution.
type MiscellaneousClient interface {
	ListBanks(ctx context.Context, params *BankListParams) (*Response, error)
	ListCountries(ctx context.Context) (*Response, error)
	ResolveAccount(ctx context.Context, params *ResolveAccountParams) (*Response, error)
}

// ResourceClients provides access to all resource-specific clients. They all
// share the client's single authenticated transport.
type ResourceClients interface {
	Transactions() TransactionsClient
	Customers() CustomersClient
	Charges() ChargesClient
	ApplePay() ApplePayClient
	Refunds() RefundsClient
	Miscellaneous() MiscellaneousClient
}

// Client is a Paystack API client.
type Client interface {
	Caller
	ResourceClients
}
