// Package services contains the typed facades over the DemoBank API
// gateway, one per resource group: authentication/profile, accounts, and
// transactions.
//
// Each operation maps 1:1 to one remote endpoint plus response-envelope
// normalization, so paging details never leak to callers. The facades are
// stateless beyond their use of the token store and the gateway; nothing is
// cached. Client-side validation (transfer amounts, picture type and size)
// happens here, before any request is dispatched, and is reported as
// common.ErrValidation.
package services
