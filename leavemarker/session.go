package leavemarker

import (
	"context"
	"sync"
)

// SessionState is the lifecycle state of the session store.
type SessionState int

const (
	// StateUnknown means the session has not been checked yet.
	StateUnknown SessionState = iota
	// StateAnonymous means no valid identity is present.
	StateAnonymous
	// StateAuthenticated means an Identity is present.
	StateAuthenticated
)

func (s SessionState) String() string {
	switch s {
	case StateAnonymous:
		return "anonymous"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// SessionStore owns the single Identity value and its lifecycle; it is the
// only writer of that value. Any component may read it.
type SessionStore struct {
	client *Client

	mu       sync.RWMutex
	state    SessionState
	identity *Identity

	listenerMu sync.Mutex
	listeners  []func(*Identity)
}

// NewSessionStore builds a store in the unknown state. A 401 outside logout
// drops the identity immediately; the client separately handles the redirect.
func NewSessionStore(client *Client) *SessionStore {
	s := &SessionStore{client: client, state: StateUnknown}
	client.OnAuthLost(func() {
		s.setIdentity(nil)
	})
	return s
}

// State returns the current session state.
func (s *SessionStore) State() SessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Identity returns the active identity, or nil when anonymous or unknown.
func (s *SessionStore) Identity() *Identity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.identity == nil {
		return nil
	}
	ident := *s.identity
	return &ident
}

// OnIdentityChange registers a listener invoked whenever the store settles a
// state, including settling into anonymous. The entitlement store hangs off
// this.
func (s *SessionStore) OnIdentityChange(fn func(*Identity)) {
	s.listenerMu.Lock()
	s.listeners = append(s.listeners, fn)
	s.listenerMu.Unlock()
}

func (s *SessionStore) setIdentity(ident *Identity) {
	s.mu.Lock()
	s.identity = ident
	if ident != nil {
		s.state = StateAuthenticated
	} else {
		s.state = StateAnonymous
	}
	s.mu.Unlock()

	s.listenerMu.Lock()
	listeners := make([]func(*Identity), len(s.listeners))
	copy(listeners, s.listeners)
	s.listenerMu.Unlock()
	for _, fn := range listeners {
		fn(ident)
	}
}

// VerifySession settles the store on load. Cookie mode asks the server
// whether the session cookie is still good; bearer mode restores the
// persisted identity. Always terminates into anonymous or authenticated,
// never back into unknown, and is safe to call repeatedly.
func (s *SessionStore) VerifySession(ctx context.Context) SessionState {
	if s.client.mode == CredentialsBearer {
		token, ident, err := s.client.tokens.Load()
		if err != nil || token == "" || ident == nil {
			s.setIdentity(nil)
			return StateAnonymous
		}
		s.client.setToken(token)
		s.client.endLogout()
		s.setIdentity(ident)
		return StateAuthenticated
	}

	ident, err := s.client.Auth().VerifySession(ctx)
	if err != nil {
		// Expected when no session exists; the store still settles.
		s.setIdentity(nil)
		return StateAnonymous
	}
	s.client.endLogout()
	s.setIdentity(ident)
	return StateAuthenticated
}

// Login exchanges credentials for a session. On failure the state is left
// unchanged and the server's message is surfaced through the returned error.
func (s *SessionStore) Login(ctx context.Context, email, password string) error {
	res, err := s.client.Auth().Login(ctx, email, password)
	if err != nil {
		return err
	}
	ident := &Identity{
		ID:        res.UserID,
		Email:     email,
		FullName:  res.FullName,
		Role:      res.Role,
		CompanyID: res.CompanyID,
	}
	s.storeCredentials(res.AccessToken, ident)
	s.client.endLogout()
	s.setIdentity(ident)
	s.navigate(RouteDashboard)
	return nil
}

// Signup registers a company plus its first admin; same contract as Login.
func (s *SessionStore) Signup(ctx context.Context, req SignupRequest) error {
	res, err := s.client.Auth().Signup(ctx, req)
	if err != nil {
		return err
	}
	ident := &Identity{
		ID:        res.UserID,
		Email:     res.Email,
		FullName:  res.FullName,
		Role:      res.Role,
		CompanyID: res.CompanyID,
	}
	s.storeCredentials(res.AccessToken, ident)
	s.client.endLogout()
	s.setIdentity(ident)
	s.navigate(RouteDashboard)
	return nil
}

// Logout is race-safe against the 401 interceptor: the logout flag is raised
// first so a 401 tripped by the logout call itself is ignored, the identity
// clears before the network call settles, and the server call is best-effort.
func (s *SessionStore) Logout(ctx context.Context) {
	s.client.beginLogout()
	s.setIdentity(nil)

	if s.client.mode == CredentialsBearer {
		s.client.setToken("")
		_ = s.client.tokens.Clear()
	} else if err := s.client.Auth().Logout(ctx); err != nil {
		// Logout is never rolled back; the server session expires on its own.
		s.client.log.Debug().Err(err).Msg("server logout failed, continuing")
	}
	s.navigate(RouteLanding)
}

func (s *SessionStore) storeCredentials(token string, ident *Identity) {
	if s.client.mode != CredentialsBearer {
		return
	}
	s.client.setToken(token)
	if err := s.client.tokens.Save(token, ident); err != nil {
		s.client.log.Warn().Err(err).Msg("persist credentials failed")
	}
}

func (s *SessionStore) navigate(path string) {
	if s.client.nav != nil {
		s.client.nav.Navigate(path)
	}
}
