package paystack

// Request and query types use the library's lowerCamelCase keys; they are
// converted to snake_case on the way out. Models decode response data that
// has already been converted back to lowerCamelCase.

// ListParams holds the common pagination and date-range filters.
type ListParams struct {
	PerPage int    `json:"perPage,omitempty" yaml:"perPage,omitempty"`
	Page    int    `json:"page,omitempty"    yaml:"page,omitempty"`
	From    string `json:"from,omitempty"    yaml:"from,omitempty"`
	To      string `json:"to,omitempty"      yaml:"to,omitempty"`
}

// Meta is the pagination block returned by list endpoints.
type Meta struct {
	Total     int `json:"total"     yaml:"total"`
	Skipped   int `json:"skipped"   yaml:"skipped"`
	PerPage   int `json:"perPage"   yaml:"perPage"`
	Page      int `json:"page"      yaml:"page"`
	PageCount int `json:"pageCount" yaml:"pageCount"`
}

// Transactions

// TransactionInitializeRequest starts a payment. Amount is in the currency's
// subunit (kobo, pesewas, cents).
type TransactionInitializeRequest struct {
	Email             string                 `json:"email"`
	Amount            int64                  `json:"amount"`
	Currency          string                 `json:"currency,omitempty"`
	Reference         string                 `json:"reference,omitempty"`
	CallbackURL       string                 `json:"callbackUrl,omitempty"`
	Plan              string                 `json:"plan,omitempty"`
	InvoiceLimit      int                    `json:"invoiceLimit,omitempty"`
	Channels          []string               `json:"channels,omitempty"`
	SplitCode         string                 `json:"splitCode,omitempty"`
	Subaccount        string                 `json:"subaccount,omitempty"`
	TransactionCharge int64                  `json:"transactionCharge,omitempty"`
	Bearer            string                 `json:"bearer,omitempty"`
	Metadata          map[string]interface{} `json:"metadata,omitempty"`
}

// TransactionListParams filters a transaction listing.
type TransactionListParams struct {
	ListParams

	Customer string `json:"customer,omitempty"`
	Status   string `json:"status,omitempty"`
	Amount   int64  `json:"amount,omitempty"`
}

// TransactionTotalsParams filters the totals query.
type TransactionTotalsParams = ListParams

// ChargeAuthorizationRequest charges a previously saved authorization.
type ChargeAuthorizationRequest struct {
	Email             string                 `json:"email"`
	Amount            int64                  `json:"amount"`
	AuthorizationCode string                 `json:"authorizationCode"`
	Reference         string                 `json:"reference,omitempty"`
	Currency          string                 `json:"currency,omitempty"`
	Metadata          map[string]interface{} `json:"metadata,omitempty"`
}

// TransactionAuthorization is returned by Initialize.
type TransactionAuthorization struct {
	AuthorizationURL string `json:"authorizationUrl" yaml:"authorizationUrl"`
	AccessCode       string `json:"accessCode"       yaml:"accessCode"`
	Reference        string `json:"reference"        yaml:"reference"`
}

// Authorization is a reusable card or bank authorization.
type Authorization struct {
	AuthorizationCode string `json:"authorizationCode" yaml:"authorizationCode"`
	Bin               string `json:"bin"               yaml:"bin"`
	Last4             string `json:"last4"             yaml:"last4"`
	ExpMonth          string `json:"expMonth"          yaml:"expMonth"`
	ExpYear           string `json:"expYear"           yaml:"expYear"`
	Channel           string `json:"channel"           yaml:"channel"`
	CardType          string `json:"cardType"          yaml:"cardType"`
	Bank              string `json:"bank"              yaml:"bank"`
	CountryCode       string `json:"countryCode"       yaml:"countryCode"`
	Brand             string `json:"brand"             yaml:"brand"`
	Reusable          bool   `json:"reusable"          yaml:"reusable"`
	Signature         string `json:"signature"         yaml:"signature"`
}

// Transaction is a payment attempt.
type Transaction struct {
	ID              int64          `json:"id"              yaml:"id"`
	Domain          string         `json:"domain"          yaml:"domain"`
	Status          string         `json:"status"          yaml:"status"`
	Reference       string         `json:"reference"       yaml:"reference"`
	Amount          int64          `json:"amount"          yaml:"amount"`
	GatewayResponse string         `json:"gatewayResponse" yaml:"gatewayResponse"`
	PaidAt          string         `json:"paidAt"          yaml:"paidAt"`
	CreatedAt       string         `json:"createdAt"       yaml:"createdAt"`
	Channel         string         `json:"channel"         yaml:"channel"`
	Currency        string         `json:"currency"        yaml:"currency"`
	IPAddress       string         `json:"ipAddress"       yaml:"ipAddress"`
	Fees            int64          `json:"fees"            yaml:"fees"`
	Metadata        interface{}    `json:"metadata"        yaml:"metadata"`
	Customer        *Customer      `json:"customer"        yaml:"customer"`
	Authorization   *Authorization `json:"authorization"   yaml:"authorization"`
}

// Customers

// CustomerCreateRequest creates a customer.
type CustomerCreateRequest struct {
	Email     string                 `json:"email"`
	FirstName string                 `json:"firstName,omitempty"`
	LastName  string                 `json:"lastName,omitempty"`
	Phone     string                 `json:"phone,omitempty"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
}

// CustomerUpdateRequest updates a customer.
type CustomerUpdateRequest struct {
	FirstName string                 `json:"firstName,omitempty"`
	LastName  string                 `json:"lastName,omitempty"`
	Phone     string                 `json:"phone,omitempty"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
}

// Customer is a payer known to the integration.
type Customer struct {
	ID           int64       `json:"id"           yaml:"id"`
	FirstName    string      `json:"firstName"    yaml:"firstName"`
	LastName     string      `json:"lastName"     yaml:"lastName"`
	Email        string      `json:"email"        yaml:"email"`
	Phone        string      `json:"phone"        yaml:"phone"`
	CustomerCode string      `json:"customerCode" yaml:"customerCode"`
	RiskAction   string      `json:"riskAction"   yaml:"riskAction"`
	Metadata     interface{} `json:"metadata"     yaml:"metadata"`
}

// Charges

// ChargeBank identifies the bank account to debit.
type ChargeBank struct {
	Code          string `json:"code"`
	AccountNumber string `json:"accountNumber"`
}

// ChargeUSSD selects a USSD channel.
type ChargeUSSD struct {
	Type string `json:"type"`
}

// ChargeMobileMoney selects a mobile money wallet.
type ChargeMobileMoney struct {
	Phone    string `json:"phone"`
	Provider string `json:"provider"`
}

// ChargeRequest starts a charge on a bank account, USSD, mobile money
// wallet, or saved authorization.
type ChargeRequest struct {
	Email             string                 `json:"email"`
	Amount            int64                  `json:"amount"`
	Reference         string                 `json:"reference,omitempty"`
	AuthorizationCode string                 `json:"authorizationCode,omitempty"`
	Pin               string                 `json:"pin,omitempty"`
	Bank              *ChargeBank            `json:"bank,omitempty"`
	USSD              *ChargeUSSD            `json:"ussd,omitempty"`
	MobileMoney       *ChargeMobileMoney     `json:"mobileMoney,omitempty"`
	Birthday          string                 `json:"birthday,omitempty"`
	DeviceID          string                 `json:"deviceId,omitempty"`
	Metadata          map[string]interface{} `json:"metadata,omitempty"`
}

// SubmitPINRequest supplies the PIN requested by a pending charge.
type SubmitPINRequest struct {
	Pin       string `json:"pin"`
	Reference string `json:"reference"`
}

// SubmitOTPRequest supplies the OTP requested by a pending charge.
type SubmitOTPRequest struct {
	OTP       string `json:"otp"`
	Reference string `json:"reference"`
}

// SubmitPhoneRequest supplies the phone number requested by a pending charge.
type SubmitPhoneRequest struct {
	Phone     string `json:"phone"`
	Reference string `json:"reference"`
}

// SubmitBirthdayRequest supplies the birthday requested by a pending charge.
type SubmitBirthdayRequest struct {
	Birthday  string `json:"birthday"`
	Reference string `json:"reference"`
}

// Charge is the state of a charge and the next step it expects.
type Charge struct {
	Reference   string `json:"reference"   yaml:"reference"`
	Status      string `json:"status"      yaml:"status"`
	DisplayText string `json:"displayText" yaml:"displayText"`
	Amount      int64  `json:"amount"      yaml:"amount"`
	Message     string `json:"message"     yaml:"message"`
}

// Apple Pay

// ApplePayDomainRequest registers or unregisters a domain. The API expects
// the domainName key verbatim, so it is never converted to snake_case.
type ApplePayDomainRequest struct {
	DomainName string `json:"domainName"`
}

// ApplePayDomains lists the registered domains.
type ApplePayDomains struct {
	DomainNames []string `json:"domainNames" yaml:"domainNames"`
}

// Refunds

// RefundCreateRequest refunds all or part of a transaction.
type RefundCreateRequest struct {
	Transaction  string `json:"transaction"`
	Amount       int64  `json:"amount,omitempty"`
	Currency     string `json:"currency,omitempty"`
	CustomerNote string `json:"customerNote,omitempty"`
	MerchantNote string `json:"merchantNote,omitempty"`
}

// RefundListParams filters a refund listing.
type RefundListParams struct {
	ListParams

	Reference string `json:"reference,omitempty"`
	Currency  string `json:"currency,omitempty"`
}

// Refund is a refund of a transaction.
type Refund struct {
	ID             int64  `json:"id"             yaml:"id"`
	Amount         int64  `json:"amount"         yaml:"amount"`
	Currency       string `json:"currency"       yaml:"currency"`
	Status         string `json:"status"         yaml:"status"`
	Channel        string `json:"channel"        yaml:"channel"`
	CustomerNote   string `json:"customerNote"   yaml:"customerNote"`
	MerchantNote   string `json:"merchantNote"   yaml:"merchantNote"`
	DeductedAmount int64  `json:"deductedAmount" yaml:"deductedAmount"`
	RefundedAt     string `json:"refundedAt"     yaml:"refundedAt"`
}

// Miscellaneous

// BankListParams filters the bank listing.
type BankListParams struct {
	Country             string `json:"country,omitempty"`
	UseCursor           bool   `json:"useCursor,omitempty"`
	PerPage             int    `json:"perPage,omitempty"`
	PayWithBankTransfer bool   `json:"payWithBankTransfer,omitempty"`
	PayWithBank         bool   `json:"payWithBank,omitempty"`
	Next                string `json:"next,omitempty"`
	Previous            string `json:"previous,omitempty"`
	Gateway             string `json:"gateway,omitempty"`
	Type                string `json:"type,omitempty"`
	Currency            string `json:"currency,omitempty"`
}

// Bank is a bank supported by the API.
type Bank struct {
	ID          int64  `json:"id"          yaml:"id"`
	Name        string `json:"name"        yaml:"name"`
	Slug        string `json:"slug"        yaml:"slug"`
	Code        string `json:"code"        yaml:"code"`
	Longcode    string `json:"longcode"    yaml:"longcode"`
	PayWithBank bool   `json:"payWithBank" yaml:"payWithBank"`
	Active      bool   `json:"active"      yaml:"active"`
	Country     string `json:"country"     yaml:"country"`
	Currency    string `json:"currency"    yaml:"currency"`
	Type        string `json:"type"        yaml:"type"`
}

// Country is a country supported by the API.
type Country struct {
	ID                  int64  `json:"id"                  yaml:"id"`
	Name                string `json:"name"                yaml:"name"`
	ISOCode             string `json:"isoCode"             yaml:"isoCode"`
	DefaultCurrencyCode string `json:"defaultCurrencyCode" yaml:"defaultCurrencyCode"`
}

// ResolveAccountParams identifies a bank account to resolve.
type ResolveAccountParams struct {
	AccountNumber string `json:"accountNumber"`
	BankCode      string `json:"bankCode"`
}

// AccountResolution is the name on a resolved bank account.
type AccountResolution struct {
	AccountNumber string `json:"accountNumber" yaml:"accountNumber"`
	AccountName   string `json:"accountName"   yaml:"accountName"`
	BankID        int64  `json:"bankId"        yaml:"bankId"`
}
