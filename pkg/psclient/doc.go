// Package psclient provides the primary entry point for constructing a
// Paystack API client that implements the paystack.Client interface.
//
// It resolves the secret key, builds the shared HTTP transport, and wires
// the resource clients defined in the paystack package on top of it. Most
// applications should import psclient to build a client, then use the
// returned paystack.Client to call Transactions(), Customers(), Charges(),
// and the other resource clients, or Call for endpoints they do not cover.
//
// Quick start
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/fivetwenty-io/paystack/pkg/paystack"
//	  "github.com/fivetwenty-io/paystack/pkg/psclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//
//	  // Secret key from PAYSTACK_SECRET_KEY:
//	  cli, err := psclient.NewFromEnv()
//	  if err != nil { log.Fatal(err) }
//
//	  // Or explicitly:
//	  cli, err = psclient.NewWithSecretKey("sk_test_...")
//	  if err != nil { log.Fatal(err) }
//
//	  resp, err := cli.Transactions().Initialize(ctx, &paystack.TransactionInitializeRequest{
//	    Email:  "customer@example.com",
//	    Amount: 500000, // kobo
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  auth, err := paystack.DecodeData[paystack.TransactionAuthorization](resp)
//	  if err != nil { log.Fatal(err) }
//	  log.Println(auth.AuthorizationURL)
//	}
//
// # Secret key resolution
//
// The key is resolved exactly once, when the client is built. An explicit
// key always wins; the environment is consulted only when none is given.
// Changing the environment afterwards has no effect on an existing client.
//
// # Helpers
//
// NewWithSecretKey and NewFromEnv wrap New with the matching configuration.
package psclient
