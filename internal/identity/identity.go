package identity

import "context"

// Identity is the opaque user reference supplied by the auth service.
// The cart and catalog services only ever check it for presence and
// compare it by ID; they never derive anything from its contents.
type Identity struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
}

// Gate exposes the current-session identity and sign-out, backed by the
// external auth service.
type Gate interface {
	// CurrentUser returns the identity for the session token carried in ctx,
	// or nil when no valid session exists.
	CurrentUser(ctx context.Context) (*Identity, error)
	// SignOut invalidates the current session on the auth service.
	SignOut(ctx context.Context) error
}

type contextKey string

const identityKey contextKey = "identity"

// WithIdentity returns a context carrying the given identity
func WithIdentity(ctx context.Context, id *Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// FromContext extracts the identity previously stored by the auth
// middleware. The second return value is false for anonymous requests.
func FromContext(ctx context.Context) (*Identity, bool) {
	id, ok := ctx.Value(identityKey).(*Identity)
	if !ok || id == nil {
		return nil, false
	}
	return id, true
}
