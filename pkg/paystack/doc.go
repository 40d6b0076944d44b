// Package paystack provides types, interfaces, and helpers for working with
// the Paystack HTTP API.
//
// # Overview
//
// The paystack package defines the response envelope, the error type, the
// JSON Value union, request and model types (e.g., Transaction, Customer,
// Bank), and the interfaces for resource-oriented clients (e.g.,
// TransactionsClient, CustomersClient). A concrete implementation is
// provided by the psclient package, which wires the secret key, transport,
// and key-naming conversion. Most consumers should import psclient to
// construct a client and then use the interfaces exposed here.
//
// Getting a client
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
//	  cli, err := psclient.New(&paystack.Config{}) // reads PAYSTACK_SECRET_KEY
//	  if err != nil { log.Fatal(err) }
//
//	  resp, err := cli.Transactions().Verify(ctx, "ref-123")
//	  if err != nil { log.Fatal(err) }
//
//	  txn, err := paystack.DecodeData[paystack.Transaction](resp)
//	  if err != nil { log.Fatal(err) }
//	  _ = txn
//	}
//
// # Key naming
//
// The library speaks lowerCamelCase; the API speaks snake_case. Request
// bodies and query parameters are converted on the way out and response
// payloads on the way back, at every nesting depth. Only keys are touched,
// never values. A small fixed set of keys (currently "domainName") is sent
// verbatim because the API expects it that way.
//
// # Responses
//
// Every successful call yields a Response envelope with the HTTP status,
// the API's boolean status flag (false when absent), its message, and the
// data and meta blocks as Values. DecodeData and DecodeMeta turn them into
// typed structs.
//
// # Errors
//
// Every failure is an *Error. Its Kind tells configuration problems
// (missing secret key), request preparation problems (nothing was sent),
// and response problems (the API rejected the call or the exchange failed)
// apart. Response errors wrap an *APIError carrying the provider's error
// code, type, and meta; use ProviderError or errors.As to reach it.
package paystack
