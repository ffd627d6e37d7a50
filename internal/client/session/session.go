// Package session tracks the client's in-memory record of who is signed in.
//
// The session is an explicit object injected into services and the UI, not
// a package-level global. It lives only for the process: nothing is
// persisted, and logout simply resets it.
package session

import "campusfind/internal/client/models"

// State is the position in the authentication flow.
type State int

const (
	// StateLoggedOut: no identity, login or register forms apply.
	StateLoggedOut State = iota
	// StateAwaitingMFA: password accepted, waiting for the MFA code.
	StateAwaitingMFA
	// StateLoggedIn: a user is bound and the dashboard is available.
	StateLoggedIn
)

// Session is the client-side authentication state machine:
//
//	LoggedOut --BeginMFA--> AwaitingMFA --Establish--> LoggedIn
//
// A failed MFA attempt stays in AwaitingMFA (no lockout, no retry limit);
// Clear returns to LoggedOut from anywhere. The session is used from a
// single UI event loop, so no locking is needed.
type Session struct {
	state       State
	pendingUser string
	user        models.User
}

func New() *Session {
	return &Session{state: StateLoggedOut}
}

// State returns the current flow position.
func (s *Session) State() State { return s.state }

// LoggedIn reports whether a user is bound.
func (s *Session) LoggedIn() bool { return s.state == StateLoggedIn }

// BeginMFA records the username whose password step succeeded and moves to
// AwaitingMFA. Any previously bound user is discarded, not merged.
func (s *Session) BeginMFA(username string) {
	s.state = StateAwaitingMFA
	s.pendingUser = username
	s.user = models.User{}
}

// PendingUser returns the username held between login and MFA confirmation.
func (s *Session) PendingUser() string { return s.pendingUser }

// Establish binds the server-returned user as the session identity.
func (s *Session) Establish(u models.User) {
	s.state = StateLoggedIn
	s.user = u
	s.pendingUser = ""
}

// User returns the bound identity. The second value is false unless the
// session is in StateLoggedIn.
func (s *Session) User() (models.User, bool) {
	if s.state != StateLoggedIn {
		return models.User{}, false
	}
	return s.user, true
}

// Clear tears the session down (logout).
func (s *Session) Clear() {
	*s = Session{state: StateLoggedOut}
}
