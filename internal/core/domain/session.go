package domain

import "time"

// Notification is a transient, auto-expiring message surfaced to the user.
type Notification struct {
	Message   string    `json:"message"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Expired reports whether the notification should no longer be shown at now.
func (n Notification) Expired(now time.Time) bool {
	return !now.Before(n.ExpiresAt)
}

// SessionState holds the transient UI state that lives next to the sheet.
// Each field has a single owner and a clearing rule:
//   - ActiveRowID routes quick-add actions; cleared when that row is deleted.
//   - ArmedDeleteRowID is the row pending a confirming second delete; arming
//     another row or performing any other mutation disarms it.
//   - Notification is superseded by newer notifications and filtered out once
//     expired.
type SessionState struct {
	ActiveRowID      string        `json:"activeRowID,omitempty"`
	ArmedDeleteRowID string        `json:"armedDeleteRowID,omitempty"`
	Notification     *Notification `json:"notification,omitempty"`
}

// Clone returns a deep copy of the session state.
func (s SessionState) Clone() SessionState {
	out := SessionState{
		ActiveRowID:      s.ActiveRowID,
		ArmedDeleteRowID: s.ArmedDeleteRowID,
	}
	if s.Notification != nil {
		n := *s.Notification
		out.Notification = &n
	}
	return out
}
