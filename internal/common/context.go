package common

import "context"

type contextKey string

const SessionKey contextKey = "session"

const RoleAdmin = "admin"

// Session carries the authenticated caller's claims for the duration of one
// request. It is provided by the identity provider and never persisted.
type Session struct {
	Subject    string `json:"sub"`
	Role       string `json:"role"`
	ClientSlug string `json:"clientSlug"`
}

// IsAdmin reports whether the session carries the admin role.
func (s *Session) IsAdmin() bool {
	return s.Role == RoleAdmin
}

// CanAccessClient implements the tenant guard: admins reach every client,
// everyone else only the client their session is scoped to.
func (s *Session) CanAccessClient(slug string) bool {
	return s.IsAdmin() || s.ClientSlug == slug
}

// WithSession stores the session in the request context.
func WithSession(ctx context.Context, session *Session) context.Context {
	return context.WithValue(ctx, SessionKey, session)
}

// GetSessionFromContext extracts the session from the request context.
func GetSessionFromContext(ctx context.Context) (*Session, bool) {
	session, ok := ctx.Value(SessionKey).(*Session)
	return session, ok
}
