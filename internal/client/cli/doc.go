// Package cli provides the interactive credkeeper command-line client.
//
// It wires configuration, the HTTP API client, and an interactive REPL.
// Typical flow: register or log in, then inspect the authenticated identity.
//
// Key features:
//   - Register / Login / Logout
//   - Whoami (resolve the current bearer token)
//   - Status (server reachability probe)
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
