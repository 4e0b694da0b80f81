package utils

import (
	"context"
)

type contextKey string

const (
	ActorKey contextKey = "actor"
	AdminKey contextKey = "admin"
)

// GetActorFromContext mendapatkan actor label dari context
func GetActorFromContext(ctx context.Context) (string, bool) {
	actorVal := ctx.Value(ActorKey)
	if actorVal == nil {
		return "", false
	}

	actor, ok := actorVal.(string)
	if !ok || actor == "" {
		return "", false
	}

	return actor, true
}

// IsAdminFromContext reports the privilege flag carried by the claims.
func IsAdminFromContext(ctx context.Context) bool {
	adminVal := ctx.Value(AdminKey)
	if adminVal == nil {
		return false
	}

	admin, ok := adminVal.(bool)
	return ok && admin
}

func SetActorContext(ctx context.Context, actor string, admin bool) context.Context {
	ctx = context.WithValue(ctx, ActorKey, actor)
	ctx = context.WithValue(ctx, AdminKey, admin)
	return ctx
}
