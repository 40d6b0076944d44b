package client

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/paystack/internal/auth"
	"github.com/fivetwenty-io/paystack/pkg/paystack"
)

const testSecret = "sk_test_0123456789abcdef"

// recordedRequest is what the test server saw.
type recordedRequest struct {
	Method   string
	Path     string
	RawQuery string
	Header   http.Header
	Body     []byte
}

// recorder captures requests made against a test server.
type recorder struct {
	mu       sync.Mutex
	requests []recordedRequest
}

func (r *recorder) add(req recordedRequest) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.requests = append(r.requests, req)
}

// Last returns the most recent request.
func (r *recorder) Last(t *testing.T) recordedRequest {
	t.Helper()

	r.mu.Lock()
	defer r.mu.Unlock()

	require.NotEmpty(t, r.requests, "no request reached the server")

	return r.requests[len(r.requests)-1]
}

// Count returns the number of requests seen.
func (r *recorder) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.requests)
}

// newTestServer answers every request with status and body and records it.
func newTestServer(t *testing.T, status int, body string) (*httptest.Server, *recorder) {
	t.Helper()

	rec := &recorder{}

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		raw, _ := io.ReadAll(request.Body)

		rec.add(recordedRequest{
			Method:   request.Method,
			Path:     request.URL.Path,
			RawQuery: request.URL.RawQuery,
			Header:   request.Header.Clone(),
			Body:     raw,
		})

		writer.Header().Set("Content-Type", "application/json")
		writer.WriteHeader(status)
		_, _ = io.WriteString(writer, body)
	}))
	t.Cleanup(server.Close)

	return server, rec
}

// NewTestClient creates a client against baseURL with a fixed test key.
func NewTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()

	credential, err := auth.ResolveWith(testSecret, nil)
	require.NoError(t, err)

	return NewWithCredential(&paystack.Config{BaseURL: baseURL}, credential)
}

// requireDomainError asserts err is a *paystack.Error of the given kind.
func requireDomainError(t *testing.T, err error, kind paystack.ErrorKind) *paystack.Error {
	t.Helper()

	require.Error(t, err)

	domainErr := &paystack.Error{}
	require.ErrorAs(t, err, &domainErr)
	require.Equal(t, kind, domainErr.Kind)

	return domainErr
}
