package auth

import (
	"context"
	"errors"
)

type ctxKey struct{}

// ErrNoIdentity means no authentication middleware ran before the caller.
// That is a route-wiring defect, not a request-time condition.
var ErrNoIdentity = errors.New("identity not in context")

// WithIdentity stores the verified identity in ctx for downstream stages.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// IdentityFrom retrieves the identity injected by RequireAuth.
func IdentityFrom(ctx context.Context) (Identity, error) {
	if id, ok := ctx.Value(ctxKey{}).(Identity); ok {
		return id, nil
	}
	return Identity{}, ErrNoIdentity
}
