package auth

import (
	"context"

	"todo-backend/internal/errors"
)

// Resolver yields the owner identity for a request context. Implementations
// are external to the core: session handling, OAuth, or anything else that
// can turn a context into an owner ID.
type Resolver interface {
	// Resolve returns the caller's owner ID, or an unauthenticated error
	// when the context carries no identity.
	Resolve(ctx context.Context) (string, error)
}

// StaticResolver always resolves to a fixed owner ID. Useful for tests and
// single-user tooling.
type StaticResolver struct {
	OwnerID string
}

// Resolve implements Resolver
func (r StaticResolver) Resolve(ctx context.Context) (string, error) {
	if r.OwnerID == "" {
		return "", errors.NewUnauthenticatedError()
	}
	return r.OwnerID, nil
}

type ownerKey struct{}

// WithOwner returns a context carrying the given owner identity.
func WithOwner(ctx context.Context, ownerID string) context.Context {
	return context.WithValue(ctx, ownerKey{}, ownerID)
}

// ContextResolver resolves the owner identity placed on the context by
// WithOwner. An absent or empty identity is unauthenticated.
type ContextResolver struct{}

// Resolve implements Resolver
func (ContextResolver) Resolve(ctx context.Context) (string, error) {
	ownerID, ok := ctx.Value(ownerKey{}).(string)
	if !ok || ownerID == "" {
		return "", errors.NewUnauthenticatedError()
	}
	return ownerID, nil
}
