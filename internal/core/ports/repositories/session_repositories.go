package repositories

import (
	"context"

	"github.com/hongbao-tally/hongbao_tally_app/internal/core/domain"
)

// SessionReader defines read operations for the tally session.
type SessionReader interface {
	// Snapshot returns a deep copy of the current sheet and session state.
	// Callers may mutate the returned values freely.
	Snapshot(ctx context.Context) (domain.TallySheet, domain.SessionState, error)
}

// SessionWriter defines write operations for the tally session.
type SessionWriter interface {
	// Replace atomically swaps in a new sheet and session state snapshot.
	// Readers never observe a partially applied mutation.
	Replace(ctx context.Context, sheet domain.TallySheet, session domain.SessionState) error
}

// SessionRepositoryFacade combines all session repository interfaces.
type SessionRepositoryFacade interface {
	SessionReader
	SessionWriter
}
