// Package mcp provides an MCP (Model Context Protocol) server adapter for keycalc.
// It lets AI assistants drive independent calculator sessions key by key.
package mcp

import "errors"

// ErrMissingSessionService is returned when the session service is not provided.
var ErrMissingSessionService = errors.New("mcp: session service is required")
