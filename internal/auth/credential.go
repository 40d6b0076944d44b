package auth

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/fivetwenty-io/paystack/internal/constants"
)

// Static errors for err113 compliance.
var (
	ErrCredentialMissing = errors.New("no secret key configured")
)

// LookupFunc reads a named value from the environment.
type LookupFunc func(key string) (string, bool)

// Credential is the secret key sent with every request. The zero value holds
// no key. It is never printed in full.
type Credential struct {
	secret string
}

// Resolve returns the credential for a client: explicit when non-empty,
// otherwise the PAYSTACK_SECRET_KEY environment variable.
func Resolve(explicit string) (Credential, error) {
	return ResolveWith(explicit, os.LookupEnv)
}

// ResolveWith is Resolve with a custom environment lookup.
func ResolveWith(explicit string, lookup LookupFunc) (Credential, error) {
	if explicit != "" {
		return Credential{secret: explicit}, nil
	}

	if lookup != nil {
		if value, ok := lookup(constants.EnvSecretKey); ok && value != "" {
			return Credential{secret: value}, nil
		}
	}

	return Credential{}, fmt.Errorf("%w: pass a secret key or set %s", ErrCredentialMissing, constants.EnvSecretKey)
}

// IsZero reports whether the credential holds no key.
func (c Credential) IsZero() bool {
	return c.secret == ""
}

// Bearer returns the Authorization header value.
func (c Credential) Bearer() string {
	return "Bearer " + c.secret
}

// String implements fmt.Stringer without revealing the key.
func (c Credential) String() string {
	return Mask(c.secret)
}

// GoString implements fmt.GoStringer without revealing the key.
func (c Credential) GoString() string {
	return "auth.Credential{" + Mask(c.secret) + "}"
}

// Mask hides all but the key prefix ("sk_test_") and the last four
// characters.
func Mask(secret string) string {
	if secret == "" {
		return ""
	}

	const visible = 4

	prefix := ""

	if idx := strings.LastIndex(secret, "_"); idx >= 0 && idx < len(secret)-1 {
		prefix = secret[:idx+1]
		secret = secret[idx+1:]
	}

	if len(secret) <= visible {
		return prefix + strings.Repeat("*", len(secret))
	}

	return prefix + strings.Repeat("*", len(secret)-visible) + secret[len(secret)-visible:]
}
