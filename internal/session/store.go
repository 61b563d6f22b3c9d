package session

import "context"

// Session is the single authoritative session object: the backend
// bearer token plus the username it was issued to. Every component
// that needs the credential receives it through here; there is one
// update path on login/logout/expiry.
type Session struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

// Store persists sessions keyed by the console-issued session ID. Get
// returns domain.ErrNotFound for unknown or expired IDs.
type Store interface {
	Put(ctx context.Context, id string, s Session) error
	Get(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) error
	Ping(ctx context.Context) error
}
