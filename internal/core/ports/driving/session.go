package driving

import "github.com/custodia-labs/keycalc/internal/core/domain"

// SessionService hosts independent calculators for remote clients.
// Calls against one session are serialised; sessions never share state.
type SessionService interface {
	// Create starts a new calculator session and returns its ID.
	Create() string

	// Apply runs actions against a session in order and returns the resulting state.
	Apply(id string, actions ...domain.Action) (domain.State, error)

	// State returns the state of a session.
	State(id string) (domain.State, error)

	// Close removes a session.
	Close(id string) error

	// Count returns the number of open sessions.
	Count() int
}
