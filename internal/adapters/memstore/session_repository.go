// Package memstore provides the in-memory session repository. The tally is a
// single-session tool with no persistence across runs, so the whole store is
// one guarded snapshot: mutations replace the snapshot wholesale and readers
// always get a deep copy, never a partially applied update.
package memstore

import (
	"context"
	"sync"

	"github.com/hongbao-tally/hongbao_tally_app/internal/core/domain"
)

// SessionRepository is a mutex-guarded in-memory implementation of the
// session repository port.
type SessionRepository struct {
	mu      sync.RWMutex
	sheet   domain.TallySheet
	session domain.SessionState
}

// NewSessionRepository creates an empty session repository.
// Callers seed the initial sheet (the service's ResetAll does this at startup).
func NewSessionRepository() *SessionRepository {
	return &SessionRepository{}
}

// Snapshot returns a deep copy of the current sheet and session state.
func (r *SessionRepository) Snapshot(ctx context.Context) (domain.TallySheet, domain.SessionState, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sheet.Clone(), r.session.Clone(), nil
}

// Replace atomically swaps in a new snapshot. The stored copy is cloned so the
// caller cannot alias the repository's internal state afterwards.
func (r *SessionRepository) Replace(ctx context.Context, sheet domain.TallySheet, session domain.SessionState) error {
	cloned := sheet.Clone()
	clonedSession := session.Clone()

	r.mu.Lock()
	defer r.mu.Unlock()
	r.sheet = cloned
	r.session = clonedSession
	return nil
}
