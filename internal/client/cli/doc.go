// Package cli provides the interactive MCP Care command-line client.
//
// App wires configuration, the HTTP API client and an interactive REPL.
// Commands: signup, login, profile, logout, help, exit. Passwords are read
// without echo; the session token lives only in memory.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
