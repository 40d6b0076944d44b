package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/paystack/pkg/paystack"
)

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestCore_Call(t *testing.T) {
	t.Parallel()

	t.Run("converts keys both ways", func(t *testing.T) {
		t.Parallel()

		server, rec := newTestServer(t, http.StatusOK,
			`{"status":true,"message":"Customer created","data":{"customer_code":"CUS_1","first_name":"Ada","meta_data":{"last_seen_at":"now"}}}`)
		client := NewTestClient(t, server.URL)

		body := map[string]interface{}{
			"firstName": "Ada",
			"metadata":  map[string]interface{}{"referredBy": "Grace"},
		}

		resp, err := client.Call(context.Background(), "/customer", paystack.MethodPost, body, nil)
		require.NoError(t, err)

		assert.JSONEq(t, `{"first_name":"Ada","metadata":{"referred_by":"Grace"}}`, string(rec.Last(t).Body))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.True(t, resp.Status)
		assert.Equal(t, "Customer created", resp.Message)
		assert.Equal(t, paystack.Object{
			"customerCode": paystack.String("CUS_1"),
			"firstName":    paystack.String("Ada"),
			"metaData":     paystack.Object{"lastSeenAt": paystack.String("now")},
		}, resp.Data)
	})

	t.Run("missing status flag reads as false", func(t *testing.T) {
		t.Parallel()

		server, _ := newTestServer(t, http.StatusOK, `{"data":[1,2]}`)
		client := NewTestClient(t, server.URL)

		resp, err := client.Call(context.Background(), "/bank", paystack.MethodGet, nil, nil)
		require.NoError(t, err)
		assert.False(t, resp.Status)
		assert.Empty(t, resp.Message)
		assert.Equal(t, paystack.Array{paystack.Number("1"), paystack.Number("2")}, resp.Data)
	})

	t.Run("GET sends query and never a body", func(t *testing.T) {
		t.Parallel()

		server, rec := newTestServer(t, http.StatusOK, `{"status":true}`)
		client := NewTestClient(t, server.URL)

		_, err := client.Call(context.Background(), "/bank", paystack.MethodGet,
			map[string]string{"ignored": "yes"},
			map[string]interface{}{"perPage": 10, "payWithBankTransfer": true})
		require.NoError(t, err)

		last := rec.Last(t)
		assert.Equal(t, "pay_with_bank_transfer=true&per_page=10", last.RawQuery)
		assert.Empty(t, last.Body)
	})

	t.Run("DELETE sends query and never a body", func(t *testing.T) {
		t.Parallel()

		server, rec := newTestServer(t, http.StatusOK, `{"status":true}`)
		client := NewTestClient(t, server.URL)

		_, err := client.Call(context.Background(), "/apple-pay/domain", paystack.MethodDelete,
			map[string]string{"domainName": "body.example.com"},
			map[string]string{"domainName": "query.example.com"})
		require.NoError(t, err)

		last := rec.Last(t)
		assert.Equal(t, "domainName=query.example.com", last.RawQuery)
		assert.Empty(t, last.Body)
	})

	t.Run("POST, PUT and PATCH never send query parameters", func(t *testing.T) {
		t.Parallel()

		for _, method := range []paystack.Method{paystack.MethodPost, paystack.MethodPut, paystack.MethodPatch} {
			server, rec := newTestServer(t, http.StatusOK, `{"status":true}`)
			client := NewTestClient(t, server.URL)

			_, err := client.Call(context.Background(), "/customer/CUS_1", method,
				map[string]string{"firstName": "Ada"},
				map[string]string{"perPage": "5"})
			require.NoError(t, err)

			last := rec.Last(t)
			assert.Equal(t, string(method), last.Method)
			assert.Empty(t, last.RawQuery, method)
			assert.JSONEq(t, `{"first_name":"Ada"}`, string(last.Body))
		}
	})

	t.Run("sends fixed headers", func(t *testing.T) {
		t.Parallel()

		server, rec := newTestServer(t, http.StatusOK, `{"status":true}`)
		client := NewTestClient(t, server.URL)

		_, err := client.Call(context.Background(), "/country", paystack.MethodGet, nil, nil)
		require.NoError(t, err)

		header := rec.Last(t).Header
		assert.Equal(t, "Bearer "+testSecret, header.Get("Authorization"))
		assert.Equal(t, "application/json", header.Get("Accept"))
		assert.Equal(t, "application/json", header.Get("Content-Type"))
		assert.NotEmpty(t, header.Get("User-Agent"))
	})
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestCore_Call_Errors(t *testing.T) {
	t.Parallel()

	t.Run("unsupported method is a request error and sends nothing", func(t *testing.T) {
		t.Parallel()

		server, rec := newTestServer(t, http.StatusOK, `{"status":true}`)
		client := NewTestClient(t, server.URL)

		resp, err := client.Call(context.Background(), "/bank", paystack.Method("HEAD"), nil, nil)
		assert.Nil(t, resp)

		domainErr := requireDomainError(t, err, paystack.KindRequest)
		assert.NoError(t, domainErr.Cause)
		assert.Zero(t, domainErr.Status)
		assert.Contains(t, domainErr.Detail, paystack.ErrUnsupportedMethod.Error())
		assert.Zero(t, rec.Count())
	})

	t.Run("query that is not an object is a request error", func(t *testing.T) {
		t.Parallel()

		server, rec := newTestServer(t, http.StatusOK, `{"status":true}`)
		client := NewTestClient(t, server.URL)

		_, err := client.Call(context.Background(), "/bank", paystack.MethodGet, nil, []string{"a", "b"})

		domainErr := requireDomainError(t, err, paystack.KindRequest)
		assert.NoError(t, domainErr.Cause)
		assert.Contains(t, domainErr.Detail, paystack.ErrQueryNotObject.Error())
		assert.Zero(t, rec.Count())
	})

	t.Run("unencodable body is a request error", func(t *testing.T) {
		t.Parallel()

		server, rec := newTestServer(t, http.StatusOK, `{"status":true}`)
		client := NewTestClient(t, server.URL)

		_, err := client.Call(context.Background(), "/charge", paystack.MethodPost, map[string]interface{}{"c": make(chan int)}, nil)

		requireDomainError(t, err, paystack.KindRequest)
		assert.Zero(t, rec.Count())
	})

	t.Run("provider rejection is a response error with cause", func(t *testing.T) {
		t.Parallel()

		server, _ := newTestServer(t, http.StatusUnauthorized,
			`{"status":false,"message":"Invalid key","code":"invalid_Key","type":"validation_error"}`)
		client := NewTestClient(t, server.URL)

		resp, err := client.Call(context.Background(), "/transaction", paystack.MethodGet, nil, nil)
		assert.Nil(t, resp)

		domainErr := requireDomainError(t, err, paystack.KindResponse)
		assert.Equal(t, http.StatusUnauthorized, domainErr.Status)
		assert.Equal(t, "invalid_Key", domainErr.Code)
		assert.Equal(t, "Invalid key", domainErr.Detail)
		require.Error(t, domainErr.Cause)
		assert.True(t, paystack.IsUnauthorized(err))

		apiErr, ok := paystack.ProviderError(err)
		require.True(t, ok)
		assert.Equal(t, "validation_error", apiErr.Type)
	})

	t.Run("server error without JSON body", func(t *testing.T) {
		t.Parallel()

		server, _ := newTestServer(t, http.StatusInternalServerError, `oops`)
		client := NewTestClient(t, server.URL)

		_, err := client.Call(context.Background(), "/transaction", paystack.MethodGet, nil, nil)

		domainErr := requireDomainError(t, err, paystack.KindResponse)
		assert.Equal(t, http.StatusInternalServerError, domainErr.Status)
		assert.Equal(t, "Internal Server Error", domainErr.Detail)
		assert.Empty(t, domainErr.Code)
		assert.Error(t, domainErr.Cause)
	})

	t.Run("network failure is a response error with cause", func(t *testing.T) {
		t.Parallel()

		server, _ := newTestServer(t, http.StatusOK, `{}`)
		url := server.URL
		server.Close()

		client := NewTestClient(t, url)

		_, err := client.Call(context.Background(), "/bank", paystack.MethodGet, nil, nil)

		domainErr := requireDomainError(t, err, paystack.KindResponse)
		assert.Zero(t, domainErr.Status)
		assert.Error(t, domainErr.Cause)
	})
}
