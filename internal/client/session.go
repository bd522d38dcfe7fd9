package client

import (
	"context"
	"sync"
)

// AuthState is the client's read-only snapshot of the server-side session.
// IsLoading is true only until the first probe resolves.
type AuthState struct {
	IsAuthenticated bool
	IsAdmin         bool
	IsLoading       bool
}

// LoginResult is what Login hands back to the caller. It never surfaces as
// an error; a failed login is a normal outcome.
type LoginResult struct {
	Success bool
	Message string
	// RedirectTo is the path the guard captured before sending the user to
	// the login view, if any. Empty means "go to the default admin view".
	RedirectTo string
}

// SessionManager owns the auth snapshot. It is constructed once and passed
// to whatever needs gating; there is no ambient global state. It mutates
// nothing but its own snapshot, and navigation is always the caller's job.
type SessionManager struct {
	api *Client

	mu         sync.Mutex
	state      AuthState
	returnPath string
}

func NewSessionManager(api *Client) *SessionManager {
	return &SessionManager{
		api:   api,
		state: AuthState{IsLoading: true},
	}
}

type checkAuthResp struct {
	IsAuthenticated bool `json:"isAuthenticated"`
	IsAdmin         bool `json:"isAdmin"`
}

// CheckAuthStatus probes the server session and replaces the snapshot.
// Any failure, transport or otherwise, resolves to logged-out: the probe
// fails closed. Re-invoke on window focus to catch sessions expired
// elsewhere (another tab logging out, TTL running off).
func (m *SessionManager) CheckAuthStatus(ctx context.Context) AuthState {
	var resp checkAuthResp
	err := m.api.getJSON(ctx, "/api/auth/check-auth", nil, &resp)

	m.mu.Lock()
	defer m.mu.Unlock()

	if err != nil {
		m.state = AuthState{}
	} else {
		m.state = AuthState{
			IsAuthenticated: resp.IsAuthenticated,
			IsAdmin:         resp.IsAuthenticated && resp.IsAdmin,
		}
	}
	return m.state
}

// State returns the current snapshot.
func (m *SessionManager) State() AuthState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Login posts credentials and re-probes on success. A login failure is
// reported in the result, never as an error; the message comes from the
// server body when it has one.
func (m *SessionManager) Login(ctx context.Context, username, password string) LoginResult {
	body := map[string]string{"username": username, "password": password}

	if err := m.api.postJSON(ctx, "/api/auth/login", body, nil); err != nil {
		return LoginResult{
			Success: false,
			Message: serverMessage(err, "Login failed"),
		}
	}

	m.CheckAuthStatus(ctx)

	return LoginResult{
		Success:    true,
		RedirectTo: m.ConsumeReturnPath(),
	}
}

// Logout posts the logout request and resets the snapshot to logged-out
// regardless of the outcome. The returned error is informational; by the
// time it is seen the local session is already gone. Navigating away is
// the caller's decision.
func (m *SessionManager) Logout(ctx context.Context) error {
	err := m.api.postJSON(ctx, "/api/auth/logout", nil, nil)

	m.mu.Lock()
	m.state = AuthState{}
	m.mu.Unlock()

	return err
}

func (m *SessionManager) setReturnPath(path string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.returnPath = path
}

// ConsumeReturnPath hands out the captured pre-login path once.
func (m *SessionManager) ConsumeReturnPath() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	p := m.returnPath
	m.returnPath = ""
	return p
}
