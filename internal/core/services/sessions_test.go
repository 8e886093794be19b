package services

import (
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/keycalc/internal/core/domain"
	"github.com/custodia-labs/keycalc/internal/core/ports/driving"
)

func mustDigits(t *testing.T, s string) []domain.Action {
	t.Helper()
	actions := make([]domain.Action, 0, len(s))
	for _, r := range s {
		a, err := domain.DigitAction(string(r))
		require.NoError(t, err)
		actions = append(actions, a)
	}
	return actions
}

func TestSessionRegistry_Create(t *testing.T) {
	r := NewSessionRegistry(nil)

	id := r.Create()

	_, err := uuid.Parse(id)
	assert.NoError(t, err)
	assert.Equal(t, 1, r.Count())
}

func TestSessionRegistry_Apply(t *testing.T) {
	r := NewSessionRegistry(nil)
	id := r.Create()

	actions := mustDigits(t, "3")
	actions = append(actions, domain.Action{Kind: domain.ActionOperator, Operator: domain.OperatorAdd})
	actions = append(actions, mustDigits(t, "4")...)
	actions = append(actions, domain.Simple(domain.ActionCompute))

	state, err := r.Apply(id, actions...)

	require.NoError(t, err)
	assert.Equal(t, "7", state.Display)
	assert.Equal(t, "7", state.Current)
}

func TestSessionRegistry_SessionsAreIndependent(t *testing.T) {
	r := NewSessionRegistry(nil)
	a := r.Create()
	b := r.Create()

	_, err := r.Apply(a, mustDigits(t, "11")...)
	require.NoError(t, err)
	_, err = r.Apply(b, mustDigits(t, "22")...)
	require.NoError(t, err)

	stateA, err := r.State(a)
	require.NoError(t, err)
	stateB, err := r.State(b)
	require.NoError(t, err)
	assert.Equal(t, "11", stateA.Current)
	assert.Equal(t, "22", stateB.Current)
}

func TestSessionRegistry_Factory(t *testing.T) {
	r := NewSessionRegistry(func() driving.Calculator {
		return NewEngine(WithMaxInputLength(2))
	})
	id := r.Create()

	state, err := r.Apply(id, mustDigits(t, "12345")...)

	require.NoError(t, err)
	assert.Equal(t, "12", state.Current)
}

func TestSessionRegistry_UnknownSession(t *testing.T) {
	r := NewSessionRegistry(nil)

	_, err := r.State("missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	_, err = r.Apply("missing", domain.Simple(domain.ActionClear))
	assert.ErrorIs(t, err, ErrSessionNotFound)

	assert.ErrorIs(t, r.Close("missing"), ErrSessionNotFound)
}

func TestSessionRegistry_Close(t *testing.T) {
	r := NewSessionRegistry(nil)
	id := r.Create()

	require.NoError(t, r.Close(id))

	assert.Equal(t, 0, r.Count())
	_, err := r.State(id)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionRegistry_ConcurrentApply(t *testing.T) {
	r := NewSessionRegistry(func() driving.Calculator {
		return NewEngine(WithMaxInputLength(64))
	})
	id := r.Create()
	one := mustDigits(t, "1")

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := r.Apply(id, one...)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	state, err := r.State(id)
	require.NoError(t, err)
	assert.Equal(t, "11111111111111111111", state.Current)
}

func TestSessionRegistry_ApplyRejectsInvalidBatch(t *testing.T) {
	r := NewSessionRegistry(nil)
	id := r.Create()

	actions := append(mustDigits(t, "5"), domain.Action{Kind: domain.ActionDigit, Digit: "x"})
	_, err := r.Apply(id, actions...)

	require.ErrorIs(t, err, domain.ErrInvalidDigit)
	st, err := r.State(id)
	require.NoError(t, err)
	assert.Equal(t, "", st.Display, "no action from a rejected batch is applied")
}
