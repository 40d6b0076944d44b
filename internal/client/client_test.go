package client

import (
	"context"
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/paystack/internal/constants"
	"github.com/fivetwenty-io/paystack/pkg/paystack"
)

//nolint:paralleltest // Subtests modify the process environment
func TestNew(t *testing.T) {
	t.Run("requires a secret key", func(t *testing.T) {
		t.Setenv(constants.EnvSecretKey, "")

		client, err := New(&paystack.Config{})
		assert.Nil(t, client)

		domainErr := requireDomainError(t, err, paystack.KindConfiguration)
		assert.Contains(t, domainErr.Detail, constants.EnvSecretKey)
		assert.True(t, paystack.IsConfigurationError(err))
	})

	t.Run("nil config reads the environment", func(t *testing.T) {
		t.Setenv(constants.EnvSecretKey, "sk_test_env")

		client, err := New(nil)
		require.NoError(t, err)
		assert.Equal(t, constants.DefaultBaseURL, client.BaseURL())
	})

	t.Run("explicit key wins over the environment", func(t *testing.T) {
		t.Setenv(constants.EnvSecretKey, "sk_test_env")

		server, rec := newTestServer(t, http.StatusOK, `{"status":true}`)

		client, err := New(&paystack.Config{SecretKey: "sk_test_explicit", BaseURL: server.URL})
		require.NoError(t, err)

		_, err = client.Miscellaneous().ListCountries(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "Bearer sk_test_explicit", rec.Last(t).Header.Get("Authorization"))
	})

	t.Run("key is read once at construction", func(t *testing.T) {
		t.Setenv(constants.EnvSecretKey, "sk_test_first")

		server, rec := newTestServer(t, http.StatusOK, `{"status":true}`)

		client, err := New(&paystack.Config{BaseURL: server.URL})
		require.NoError(t, err)

		t.Setenv(constants.EnvSecretKey, "sk_test_second")

		_, err = client.Call(context.Background(), "/bank", paystack.MethodGet, nil, nil)
		require.NoError(t, err)
		assert.Equal(t, "Bearer sk_test_first", rec.Last(t).Header.Get("Authorization"))
	})

	t.Run("custom user agent", func(t *testing.T) {
		server, rec := newTestServer(t, http.StatusOK, `{"status":true}`)

		client, err := New(&paystack.Config{SecretKey: "sk_test_x", BaseURL: server.URL, UserAgent: "shop/3.1"})
		require.NoError(t, err)

		_, err = client.Call(context.Background(), "/bank", paystack.MethodGet, nil, nil)
		require.NoError(t, err)
		assert.Equal(t, "shop/3.1", rec.Last(t).Header.Get("User-Agent"))
	})
}

func TestClient_SharedCore(t *testing.T) {
	t.Parallel()

	client := NewTestClient(t, "https://api.paystack.co")

	assert.Same(t, client.core, client.Transactions().(*TransactionsClient).core)
	assert.Same(t, client.core, client.Customers().(*CustomersClient).core)
	assert.Same(t, client.core, client.Charges().(*ChargesClient).core)
	assert.Same(t, client.core, client.ApplePay().(*ApplePayClient).core)
	assert.Same(t, client.core, client.Refunds().(*RefundsClient).core)
	assert.Same(t, client.core, client.Miscellaneous().(*MiscellaneousClient).core)
}

func TestClient_ConcurrentCalls(t *testing.T) {
	t.Parallel()

	server, rec := newTestServer(t, http.StatusOK, `{"status":true,"data":{"is_ok":true}}`)
	client := NewTestClient(t, server.URL)

	const calls = 20

	var wg sync.WaitGroup

	errs := make(chan error, calls)

	for range calls {
		wg.Add(1)

		go func() {
			defer wg.Done()

			resp, err := client.Call(context.Background(), "/bank", paystack.MethodGet, nil, map[string]int{"perPage": 1})
			if err == nil && !resp.Status {
				err = paystack.ErrNoData
			}

			errs <- err
		}()
	}

	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	assert.Equal(t, calls, rec.Count())
}

func TestClient_ImplementsInterface(t *testing.T) {
	t.Parallel()

	var _ paystack.Client = NewTestClient(t, "https://api.paystack.co")
}
