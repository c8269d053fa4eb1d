package api

import (
	"context"

	"github.com/jmfierro/portfolio-site-backend/auth"
)

type keyType string

const identityKey keyType = "identity"

// ctxWithIdentity adds a verified admin identity to the context
func ctxWithIdentity(ctx context.Context, identity auth.Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

// ctxIdentity retrieves the verified identity set by the auth middleware
func ctxIdentity(ctx context.Context) (auth.Identity, bool) {
	identity, ok := ctx.Value(identityKey).(auth.Identity)
	return identity, ok
}
