package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// uriScheme is the custom URI scheme for keycalc resources.
	uriScheme = "keycalc://"
)

// keyReference documents the tokens calculator_press accepts.
const keyReference = `Digits: 0-9, or a run such as 12.5 (one key per character)
Decimal point: . or decimal
Operators: + - * / ^ or add subtract multiply divide pow
Equals: = enter equals
Editing: backspace, clear (or delete)
Unary: sqrt, percent (or %)
Power entry point: power (raises the pending operand to the input)
`

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource describing the key vocabulary.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "keys",
		Name:        "keys",
		Description: "Keys accepted by calculator_press",
		MIMEType:    "text/plain",
	}, s.handleKeysResource)

	// Template for session state.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "sessions/{sessionId}",
		Name:        "session-state",
		Description: "State of a calculator session",
		MIMEType:    "application/json",
	}, s.handleSessionResource)
}

// handleKeysResource returns the key reference.
func (s *Server) handleKeysResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "text/plain",
			Text:     keyReference,
		}},
	}, nil
}

// handleSessionResource returns the state of one session as JSON.
func (s *Server) handleSessionResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	id := extractSessionID(req.Params.URI)
	if id == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	st, err := s.ports.Sessions.State(id)
	if err != nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	data, err := json.MarshalIndent(toStateOutput(id, st), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling session: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractSessionID extracts the session ID from a URI like keycalc://sessions/{sessionId}.
func extractSessionID(uri string) string {
	const prefix = uriScheme + "sessions/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	id := strings.TrimPrefix(uri, prefix)
	if strings.Contains(id, "/") {
		return ""
	}
	return id
}
