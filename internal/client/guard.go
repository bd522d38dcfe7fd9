package client

// LoginRoute is where the guard sends anyone who is not an authenticated
// admin.
const LoginRoute = "/admin"

// GuardDecision tells the view layer what to do with a protected route.
// Exactly one of ShowLoading, Redirect, Render is set.
type GuardDecision struct {
	// ShowLoading: the initial probe has not resolved; render a neutral
	// loading indicator so no protected content leaks.
	ShowLoading bool
	// Redirect: send the user to RedirectTo (the login route).
	Redirect   bool
	RedirectTo string
	// Render: the wrapped content may be shown.
	Render bool
}

// Guard decides what a protected view should do given the current auth
// snapshot. Pure apart from capturing the requested path for the
// post-login round-trip; it performs no navigation itself.
func (m *SessionManager) Guard(requestedPath string) GuardDecision {
	state := m.State()

	if state.IsLoading {
		return GuardDecision{ShowLoading: true}
	}

	if !state.IsAuthenticated || !state.IsAdmin {
		if requestedPath != "" && requestedPath != LoginRoute {
			m.setReturnPath(requestedPath)
		}
		return GuardDecision{Redirect: true, RedirectTo: LoginRoute}
	}

	return GuardDecision{Render: true}
}
