// Package cli provides the interactive DemoBank command-line client.
//
// It wires configuration, the local token store, the API gateway and the
// domain services into an interactive REPL. Typical flow: rehydrate the
// session from a previously stored token, then execute user commands.
//
// Key features:
//   - Login / Register / Logout
//   - List and open accounts, check balances, download statements
//   - Transfer money, browse transaction history
//   - Manage beneficiaries
//   - View and update the profile, including the profile picture
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
