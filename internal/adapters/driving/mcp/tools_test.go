package mcp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/keycalc/internal/adapters/driving/keys"
	"github.com/custodia-labs/keycalc/internal/core/services"
)

func TestServer_handleNewSession(t *testing.T) {
	ctx := context.Background()
	server := newTestServer(t)

	_, output, err := server.handleNewSession(ctx, nil, NewSessionInput{})

	require.NoError(t, err)
	assert.NotEmpty(t, output.SessionID)
	assert.Equal(t, "", output.Display)
	assert.Equal(t, "empty", output.Phase)
	assert.Equal(t, 1, server.ports.Sessions.Count())
}

func TestServer_handlePress(t *testing.T) {
	ctx := context.Background()

	t.Run("computes a chain", func(t *testing.T) {
		server := newTestServer(t)
		_, created, err := server.handleNewSession(ctx, nil, NewSessionInput{})
		require.NoError(t, err)

		_, output, err := server.handlePress(ctx, nil, PressInput{
			SessionID: created.SessionID,
			Keys:      []string{"12.5", "+", "7.5", "="},
		})

		require.NoError(t, err)
		assert.Equal(t, "20", output.Display)
		assert.Equal(t, "20", output.Current)
		assert.Equal(t, "", output.Operator)
		assert.Equal(t, "entering", output.Phase)
	})

	t.Run("reports pending operator", func(t *testing.T) {
		server := newTestServer(t)
		_, created, _ := server.handleNewSession(ctx, nil, NewSessionInput{})

		_, output, err := server.handlePress(ctx, nil, PressInput{
			SessionID: created.SessionID,
			Keys:      []string{"6", "multiply"},
		})

		require.NoError(t, err)
		assert.Equal(t, "multiply", output.Operator)
		assert.Equal(t, "6", output.Operand)
		assert.True(t, output.HasOperand)
		assert.Equal(t, "pending", output.Phase)
	})

	t.Run("divide by zero shows error", func(t *testing.T) {
		server := newTestServer(t)
		_, created, _ := server.handleNewSession(ctx, nil, NewSessionInput{})

		_, output, err := server.handlePress(ctx, nil, PressInput{
			SessionID: created.SessionID,
			Keys:      []string{"5", "/", "0", "enter"},
		})

		require.NoError(t, err)
		assert.Equal(t, "Error", output.Display)
		assert.Equal(t, "error", output.Phase)
	})

	t.Run("unknown key applies nothing", func(t *testing.T) {
		server := newTestServer(t)
		_, created, _ := server.handleNewSession(ctx, nil, NewSessionInput{})

		_, _, err := server.handlePress(ctx, nil, PressInput{
			SessionID: created.SessionID,
			Keys:      []string{"1", "banana"},
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, keys.ErrUnknownKey)

		_, state, err := server.handleState(ctx, nil, SessionInput{SessionID: created.SessionID})
		require.NoError(t, err)
		assert.Equal(t, "", state.Display)
	})

	t.Run("unknown session", func(t *testing.T) {
		server := newTestServer(t)

		_, _, err := server.handlePress(ctx, nil, PressInput{SessionID: "missing", Keys: []string{"1"}})

		assert.ErrorIs(t, err, services.ErrSessionNotFound)
	})
}

func TestServer_SessionsAreIndependent(t *testing.T) {
	ctx := context.Background()
	server := newTestServer(t)
	_, a, _ := server.handleNewSession(ctx, nil, NewSessionInput{})
	_, b, _ := server.handleNewSession(ctx, nil, NewSessionInput{})

	_, _, err := server.handlePress(ctx, nil, PressInput{SessionID: a.SessionID, Keys: []string{"11"}})
	require.NoError(t, err)
	_, _, err = server.handlePress(ctx, nil, PressInput{SessionID: b.SessionID, Keys: []string{"22"}})
	require.NoError(t, err)

	_, stateA, err := server.handleState(ctx, nil, SessionInput{SessionID: a.SessionID})
	require.NoError(t, err)
	_, stateB, err := server.handleState(ctx, nil, SessionInput{SessionID: b.SessionID})
	require.NoError(t, err)

	assert.Equal(t, "11", stateA.Display)
	assert.Equal(t, "22", stateB.Display)
}

func TestServer_handleCloseSession(t *testing.T) {
	ctx := context.Background()
	server := newTestServer(t)
	_, created, _ := server.handleNewSession(ctx, nil, NewSessionInput{})

	_, output, err := server.handleCloseSession(ctx, nil, SessionInput{SessionID: created.SessionID})

	require.NoError(t, err)
	assert.True(t, output.Closed)
	assert.Equal(t, 0, server.ports.Sessions.Count())

	_, _, err = server.handleCloseSession(ctx, nil, SessionInput{SessionID: created.SessionID})
	assert.ErrorIs(t, err, services.ErrSessionNotFound)

	_, _, err = server.handleState(ctx, nil, SessionInput{SessionID: created.SessionID})
	assert.ErrorIs(t, err, services.ErrSessionNotFound)
}
