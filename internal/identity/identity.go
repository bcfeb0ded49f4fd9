package identity

import "context"

type contextKey struct{}

var userKey = contextKey{}

// User is the request-scoped authenticated caller. It is populated by the
// HTTP layer from the verified bearer token and passed explicitly to any
// service operation that needs the caller's identity.
type User struct {
	ID    int64
	Name  string
	Email string
	Role  string
}

// WithUser returns a context carrying the authenticated user.
func WithUser(ctx context.Context, user *User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// FromContext returns the authenticated user carried by ctx, or nil when the
// request carried no valid token.
func FromContext(ctx context.Context) *User {
	user, _ := ctx.Value(userKey).(*User)
	return user
}
