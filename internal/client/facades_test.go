package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/paystack/pkg/paystack"
)

type facadeCall func(ctx context.Context, c *Client) (*paystack.Response, error)

//nolint:funlen,maintidx // Test functions can be longer for comprehensive testing
func TestFacades_Requests(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		call       facadeCall
		wantMethod string
		wantPath   string
		wantQuery  string
		wantBody   string
	}{
		{
			name: "transactions initialize",
			call: func(ctx context.Context, c *Client) (*paystack.Response, error) {
				return c.Transactions().Initialize(ctx, &paystack.TransactionInitializeRequest{
					Email:       "ada@example.com",
					Amount:      20000,
					CallbackURL: "https://example.com/cb",
					Metadata:    map[string]interface{}{"cartId": 398},
				})
			},
			wantMethod: "POST",
			wantPath:   "/transaction/initialize",
			wantBody:   `{"email":"ada@example.com","amount":20000,"callback_url":"https://example.com/cb","metadata":{"cart_id":398}}`,
		},
		{
			name: "transactions verify",
			call: func(ctx context.Context, c *Client) (*paystack.Response, error) {
				return c.Transactions().Verify(ctx, "ref 1/2")
			},
			wantMethod: "GET",
			wantPath:   "/transaction/verify/ref 1/2",
		},
		{
			name: "transactions list",
			call: func(ctx context.Context, c *Client) (*paystack.Response, error) {
				return c.Transactions().List(ctx, &paystack.TransactionListParams{
					ListParams: paystack.ListParams{PerPage: 20, Page: 2},
					Status:     "success",
				})
			},
			wantMethod: "GET",
			wantPath:   "/transaction",
			wantQuery:  "page=2&per_page=20&status=success",
		},
		{
			name: "transactions list without params",
			call: func(ctx context.Context, c *Client) (*paystack.Response, error) {
				return c.Transactions().List(ctx, nil)
			},
			wantMethod: "GET",
			wantPath:   "/transaction",
		},
		{
			name: "transactions fetch",
			call: func(ctx context.Context, c *Client) (*paystack.Response, error) {
				return c.Transactions().Fetch(ctx, "4099260516")
			},
			wantMethod: "GET",
			wantPath:   "/transaction/4099260516",
		},
		{
			name: "transactions charge authorization",
			call: func(ctx context.Context, c *Client) (*paystack.Response, error) {
				return c.Transactions().ChargeAuthorization(ctx, &paystack.ChargeAuthorizationRequest{
					Email:             "ada@example.com",
					Amount:            5000,
					AuthorizationCode: "AUTH_72btv547",
				})
			},
			wantMethod: "POST",
			wantPath:   "/transaction/charge_authorization",
			wantBody:   `{"email":"ada@example.com","amount":5000,"authorization_code":"AUTH_72btv547"}`,
		},
		{
			name: "transactions totals",
			call: func(ctx context.Context, c *Client) (*paystack.Response, error) {
				return c.Transactions().Totals(ctx, &paystack.TransactionTotalsParams{From: "2024-01-01"})
			},
			wantMethod: "GET",
			wantPath:   "/transaction/totals",
			wantQuery:  "from=2024-01-01",
		},
		{
			name: "customers create",
			call: func(ctx context.Context, c *Client) (*paystack.Response, error) {
				return c.Customers().Create(ctx, &paystack.CustomerCreateRequest{Email: "ada@example.com", FirstName: "Ada"})
			},
			wantMethod: "POST",
			wantPath:   "/customer",
			wantBody:   `{"email":"ada@example.com","first_name":"Ada"}`,
		},
		{
			name: "customers list",
			call: func(ctx context.Context, c *Client) (*paystack.Response, error) {
				return c.Customers().List(ctx, &paystack.ListParams{PerPage: 5})
			},
			wantMethod: "GET",
			wantPath:   "/customer",
			wantQuery:  "per_page=5",
		},
		{
			name: "customers fetch",
			call: func(ctx context.Context, c *Client) (*paystack.Response, error) {
				return c.Customers().Fetch(ctx, "CUS_xnxdt6s1zg1f4nx")
			},
			wantMethod: "GET",
			wantPath:   "/customer/CUS_xnxdt6s1zg1f4nx",
		},
		{
			name: "customers update",
			call: func(ctx context.Context, c *Client) (*paystack.Response, error) {
				return c.Customers().Update(ctx, "CUS_xnxdt6s1zg1f4nx", &paystack.CustomerUpdateRequest{LastName: "Lovelace"})
			},
			wantMethod: "PUT",
			wantPath:   "/customer/CUS_xnxdt6s1zg1f4nx",
			wantBody:   `{"last_name":"Lovelace"}`,
		},
		{
			name: "charges create",
			call: func(ctx context.Context, c *Client) (*paystack.Response, error) {
				return c.Charges().Create(ctx, &paystack.ChargeRequest{
					Email:  "ada@example.com",
					Amount: 10000,
					Bank:   &paystack.ChargeBank{Code: "057", AccountNumber: "0000000000"},
				})
			},
			wantMethod: "POST",
			wantPath:   "/charge",
			wantBody:   `{"email":"ada@example.com","amount":10000,"bank":{"code":"057","account_number":"0000000000"}}`,
		},
		{
			name: "charges submit pin",
			call: func(ctx context.Context, c *Client) (*paystack.Response, error) {
				return c.Charges().SubmitPIN(ctx, &paystack.SubmitPINRequest{Pin: "1234", Reference: "5bwib5v6anhe9xa"})
			},
			wantMethod: "POST",
			wantPath:   "/charge/submit_pin",
			wantBody:   `{"pin":"1234","reference":"5bwib5v6anhe9xa"}`,
		},
		{
			name: "charges submit otp uses the submit_pin endpoint",
			call: func(ctx context.Context, c *Client) (*paystack.Response, error) {
				return c.Charges().SubmitOTP(ctx, &paystack.SubmitOTPRequest{OTP: "123456", Reference: "5bwib5v6anhe9xa"})
			},
			wantMethod: "POST",
			wantPath:   "/charge/submit_pin",
			wantBody:   `{"otp":"123456","reference":"5bwib5v6anhe9xa"}`,
		},
		{
			name: "charges submit phone",
			call: func(ctx context.Context, c *Client) (*paystack.Response, error) {
				return c.Charges().SubmitPhone(ctx, &paystack.SubmitPhoneRequest{Phone: "08012345678", Reference: "r"})
			},
			wantMethod: "POST",
			wantPath:   "/charge/submit_phone",
			wantBody:   `{"phone":"08012345678","reference":"r"}`,
		},
		{
			name: "charges submit birthday",
			call: func(ctx context.Context, c *Client) (*paystack.Response, error) {
				return c.Charges().SubmitBirthday(ctx, &paystack.SubmitBirthdayRequest{Birthday: "1961-09-21", Reference: "r"})
			},
			wantMethod: "POST",
			wantPath:   "/charge/submit_birthday",
			wantBody:   `{"birthday":"1961-09-21","reference":"r"}`,
		},
		{
			name: "charges check pending",
			call: func(ctx context.Context, c *Client) (*paystack.Response, error) {
				return c.Charges().CheckPending(ctx, "5bwib5v6anhe9xa")
			},
			wantMethod: "GET",
			wantPath:   "/charge/5bwib5v6anhe9xa",
		},
		{
			name: "apple pay register keeps domainName",
			call: func(ctx context.Context, c *Client) (*paystack.Response, error) {
				return c.ApplePay().RegisterDomain(ctx, "example.com")
			},
			wantMethod: "POST",
			wantPath:   "/apple-pay/domain",
			wantBody:   `{"domainName":"example.com"}`,
		},
		{
			name: "apple pay list",
			call: func(ctx context.Context, c *Client) (*paystack.Response, error) {
				return c.ApplePay().ListDomains(ctx)
			},
			wantMethod: "GET",
			wantPath:   "/apple-pay/domain",
		},
		{
			name: "apple pay unregister",
			call: func(ctx context.Context, c *Client) (*paystack.Response, error) {
				return c.ApplePay().UnregisterDomain(ctx, "example.com")
			},
			wantMethod: "DELETE",
			wantPath:   "/apple-pay/domain",
			wantQuery:  "domainName=example.com",
		},
		{
			name: "refunds create",
			call: func(ctx context.Context, c *Client) (*paystack.Response, error) {
				return c.Refunds().Create(ctx, &paystack.RefundCreateRequest{Transaction: "1641", MerchantNote: "duplicate"})
			},
			wantMethod: "POST",
			wantPath:   "/refund",
			wantBody:   `{"transaction":"1641","merchant_note":"duplicate"}`,
		},
		{
			name: "refunds list",
			call: func(ctx context.Context, c *Client) (*paystack.Response, error) {
				return c.Refunds().List(ctx, &paystack.RefundListParams{Currency: "NGN"})
			},
			wantMethod: "GET",
			wantPath:   "/refund",
			wantQuery:  "currency=NGN",
		},
		{
			name: "refunds fetch",
			call: func(ctx context.Context, c *Client) (*paystack.Response, error) {
				return c.Refunds().Fetch(ctx, "1")
			},
			wantMethod: "GET",
			wantPath:   "/refund/1",
		},
		{
			name: "banks list",
			call: func(ctx context.Context, c *Client) (*paystack.Response, error) {
				return c.Miscellaneous().ListBanks(ctx, &paystack.BankListParams{Country: "nigeria", PayWithBankTransfer: true})
			},
			wantMethod: "GET",
			wantPath:   "/bank",
			wantQuery:  "country=nigeria&pay_with_bank_transfer=true",
		},
		{
			name: "countries list",
			call: func(ctx context.Context, c *Client) (*paystack.Response, error) {
				return c.Miscellaneous().ListCountries(ctx)
			},
			wantMethod: "GET",
			wantPath:   "/country",
		},
		{
			name: "resolve account",
			call: func(ctx context.Context, c *Client) (*paystack.Response, error) {
				return c.Miscellaneous().ResolveAccount(ctx, &paystack.ResolveAccountParams{AccountNumber: "0022728151", BankCode: "063"})
			},
			wantMethod: "GET",
			wantPath:   "/bank/resolve",
			wantQuery:  "account_number=0022728151&bank_code=063",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			server, rec := newTestServer(t, http.StatusOK, `{"status":true,"message":"ok","data":{}}`)
			client := NewTestClient(t, server.URL)

			resp, err := testCase.call(context.Background(), client)
			require.NoError(t, err)
			assert.True(t, resp.Status)

			last := rec.Last(t)
			assert.Equal(t, testCase.wantMethod, last.Method)
			assert.Equal(t, testCase.wantPath, last.Path)
			assert.Equal(t, testCase.wantQuery, last.RawQuery)

			if testCase.wantBody == "" {
				assert.Empty(t, last.Body)
			} else {
				assert.JSONEq(t, testCase.wantBody, string(last.Body))
			}
		})
	}
}

func TestFacades_RequiredArguments(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		call    facadeCall
		wantErr error
	}{
		{
			name: "verify without reference",
			call: func(ctx context.Context, c *Client) (*paystack.Response, error) {
				return c.Transactions().Verify(ctx, "")
			},
			wantErr: paystack.ErrReferenceRequired,
		},
		{
			name: "fetch transaction without id",
			call: func(ctx context.Context, c *Client) (*paystack.Response, error) {
				return c.Transactions().Fetch(ctx, "")
			},
			wantErr: paystack.ErrIDRequired,
		},
		{
			name: "fetch customer without code",
			call: func(ctx context.Context, c *Client) (*paystack.Response, error) {
				return c.Customers().Fetch(ctx, "")
			},
			wantErr: paystack.ErrCustomerCodeMissing,
		},
		{
			name: "update customer without code",
			call: func(ctx context.Context, c *Client) (*paystack.Response, error) {
				return c.Customers().Update(ctx, "", &paystack.CustomerUpdateRequest{})
			},
			wantErr: paystack.ErrCustomerCodeMissing,
		},
		{
			name: "check pending without reference",
			call: func(ctx context.Context, c *Client) (*paystack.Response, error) {
				return c.Charges().CheckPending(ctx, "")
			},
			wantErr: paystack.ErrReferenceRequired,
		},
		{
			name: "register empty domain",
			call: func(ctx context.Context, c *Client) (*paystack.Response, error) {
				return c.ApplePay().RegisterDomain(ctx, "")
			},
			wantErr: paystack.ErrDomainNameRequired,
		},
		{
			name: "unregister empty domain",
			call: func(ctx context.Context, c *Client) (*paystack.Response, error) {
				return c.ApplePay().UnregisterDomain(ctx, "")
			},
			wantErr: paystack.ErrDomainNameRequired,
		},
		{
			name: "fetch refund without id",
			call: func(ctx context.Context, c *Client) (*paystack.Response, error) {
				return c.Refunds().Fetch(ctx, "")
			},
			wantErr: paystack.ErrIDRequired,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			server, rec := newTestServer(t, http.StatusOK, `{"status":true}`)
			client := NewTestClient(t, server.URL)

			resp, err := testCase.call(context.Background(), client)
			assert.Nil(t, resp)

			domainErr := requireDomainError(t, err, paystack.KindRequest)
			assert.Equal(t, testCase.wantErr.Error(), domainErr.Detail)
			assert.Zero(t, rec.Count())
		})
	}
}

func TestFacades_DecodeTypedData(t *testing.T) {
	t.Parallel()

	server, _ := newTestServer(t, http.StatusOK, `{
		"status": true,
		"message": "Verification successful",
		"data": {
			"id": 4099260516,
			"status": "success",
			"reference": "re4lyvq3s3",
			"amount": 40333,
			"gateway_response": "Successful",
			"paid_at": "2024-08-22T09:15:02.000Z",
			"ip_address": "197.210.54.33",
			"metadata": "",
			"customer": {"id": 181873746, "customer_code": "CUS_1rkzaqsv4rrhqo6", "email": "demo@test.com"},
			"authorization": {"authorization_code": "AUTH_uh8bcl3zbn", "last4": "4081", "exp_month": "12", "reusable": true}
		}
	}`)
	client := NewTestClient(t, server.URL)

	resp, err := client.Transactions().Verify(context.Background(), "re4lyvq3s3")
	require.NoError(t, err)

	txn, err := paystack.DecodeData[paystack.Transaction](resp)
	require.NoError(t, err)
	assert.Equal(t, int64(4099260516), txn.ID)
	assert.Equal(t, "Successful", txn.GatewayResponse)
	assert.Equal(t, "2024-08-22T09:15:02.000Z", txn.PaidAt)
	assert.Equal(t, "197.210.54.33", txn.IPAddress)
	require.NotNil(t, txn.Customer)
	assert.Equal(t, "CUS_1rkzaqsv4rrhqo6", txn.Customer.CustomerCode)
	require.NotNil(t, txn.Authorization)
	assert.Equal(t, "AUTH_uh8bcl3zbn", txn.Authorization.AuthorizationCode)
	assert.Equal(t, "12", txn.Authorization.ExpMonth)
	assert.True(t, txn.Authorization.Reusable)
}
