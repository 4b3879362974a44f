// Package api contains the HTTP gateway to the DemoBank REST API.
//
// # Overview
//
// The package provides:
//  1. Client — the single point of outbound HTTP. Requests are rooted at a
//     fixed base URL, carry an X-Request-ID, and carry the stored access
//     token as an Authorization bearer header when one is present.
//     Unauthenticated endpoints simply proceed without the header.
//  2. Transparent token refresh: a 401 triggers one refresh-token exchange
//     and a single replay of the original request.
//  3. Envelope normalization (NormalizeList) for list endpoints that answer
//     either with a bare array or a paged {results: [...]} wrapper.
//
// # Error Handling
//
// Failures map to a uniform surface callers can match with errors.Is and
// errors.As: ErrUnauthorized (401 after the refresh attempt), ErrUnreachable
// (no response at all), and *RemoteError carrying the status code and the
// server-provided message for other non-2xx answers.
//
// Concurrency & Contexts
//
// Client is safe for concurrent use. All operations accept context.Context
// and honor cancellation/timeouts; the overall request timeout comes from
// the injected *http.Client.
package api
