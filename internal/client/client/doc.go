// Package client talks to the MCP Care HTTP API.
//
// HTTPClient maps non-2xx responses to *APIError, which carries the status
// code and the server's message. 401 responses also match ErrUnauthorized and
// transport failures match ErrUnavailable, so callers can branch with
// errors.Is without parsing messages.
package client
