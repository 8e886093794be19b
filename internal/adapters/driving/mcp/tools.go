package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/keycalc/internal/adapters/driving/keys"
	"github.com/custodia-labs/keycalc/internal/core/domain"
)

// NewSessionInput is the input schema for the calculator_new_session tool.
type NewSessionInput struct{}

// SessionInput identifies an existing calculator session.
type SessionInput struct {
	SessionID string `json:"session_id" jsonschema:"the id returned by calculator_new_session"`
}

// PressInput is the input schema for the calculator_press tool.
type PressInput struct {
	SessionID string   `json:"session_id" jsonschema:"the id returned by calculator_new_session"`
	Keys      []string `json:"keys" jsonschema:"keys to press in order, e.g. 12.5 + 3 = or sqrt clear backspace"`
}

// StateOutput describes a calculator session after a tool call.
type StateOutput struct {
	SessionID  string `json:"session_id"`
	Display    string `json:"display"`
	Current    string `json:"current"`
	Operator   string `json:"operator,omitempty"`
	Operand    string `json:"operand,omitempty"`
	HasOperand bool   `json:"has_operand"`
	Phase      string `json:"phase"`
}

// CloseOutput is the output schema for the calculator_close_session tool.
type CloseOutput struct {
	SessionID string `json:"session_id"`
	Closed    bool   `json:"closed"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "calculator_new_session",
		Description: "Start a new calculator session and return its id",
	}, s.handleNewSession)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "calculator_press",
		Description: "Press keys on a calculator session and return the display and state",
	}, s.handlePress)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "calculator_state",
		Description: "Return the display and state of a calculator session",
	}, s.handleState)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "calculator_close_session",
		Description: "Close a calculator session",
	}, s.handleCloseSession)
}

// handleNewSession handles the calculator_new_session tool invocation.
func (s *Server) handleNewSession(
	_ context.Context,
	_ *mcp.CallToolRequest,
	_ NewSessionInput,
) (*mcp.CallToolResult, StateOutput, error) {
	id := s.ports.Sessions.Create()
	st, err := s.ports.Sessions.State(id)
	if err != nil {
		return nil, StateOutput{}, err
	}
	return nil, toStateOutput(id, st), nil
}

// handlePress handles the calculator_press tool invocation.
// Keys are validated before any is applied.
func (s *Server) handlePress(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input PressInput,
) (*mcp.CallToolResult, StateOutput, error) {
	actions, err := keys.ParseAll(input.Keys)
	if err != nil {
		return nil, StateOutput{}, fmt.Errorf("parsing keys: %w", err)
	}

	st, err := s.ports.Sessions.Apply(input.SessionID, actions...)
	if err != nil {
		return nil, StateOutput{}, err
	}
	return nil, toStateOutput(input.SessionID, st), nil
}

// handleState handles the calculator_state tool invocation.
func (s *Server) handleState(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input SessionInput,
) (*mcp.CallToolResult, StateOutput, error) {
	st, err := s.ports.Sessions.State(input.SessionID)
	if err != nil {
		return nil, StateOutput{}, err
	}
	return nil, toStateOutput(input.SessionID, st), nil
}

// handleCloseSession handles the calculator_close_session tool invocation.
func (s *Server) handleCloseSession(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input SessionInput,
) (*mcp.CallToolResult, CloseOutput, error) {
	if err := s.ports.Sessions.Close(input.SessionID); err != nil {
		return nil, CloseOutput{}, err
	}
	return nil, CloseOutput{SessionID: input.SessionID, Closed: true}, nil
}

func toStateOutput(id string, st domain.State) StateOutput {
	return StateOutput{
		SessionID:  id,
		Display:    st.Display,
		Current:    st.Current,
		Operator:   st.OperatorToken(),
		Operand:    st.Operand,
		HasOperand: st.HasOperand,
		Phase:      string(st.Phase()),
	}
}
