package service

import (
	"context"

	"storefront/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ctxKey string

const (
	ctxUserIDKey ctxKey = "userID"
	ctxRoleKey   ctxKey = "role"
)

func WithUserID(ctx context.Context, id primitive.ObjectID) context.Context {
	return context.WithValue(ctx, ctxUserIDKey, id)
}

func UserIDFromContext(ctx context.Context) (primitive.ObjectID, bool) {
	v, ok := ctx.Value(ctxUserIDKey).(primitive.ObjectID)
	return v, ok && !v.IsZero()
}

func WithRole(ctx context.Context, r models.Role) context.Context {
	return context.WithValue(ctx, ctxRoleKey, r)
}

func RoleFromContext(ctx context.Context) (models.Role, bool) {
	v, ok := ctx.Value(ctxRoleKey).(models.Role)
	return v, ok
}

// WithIdentity attaches both the caller id and role.
func WithIdentity(ctx context.Context, id primitive.ObjectID, r models.Role) context.Context {
	return WithRole(WithUserID(ctx, id), r)
}

func requireAuth(ctx context.Context) (primitive.ObjectID, models.Role, error) {
	uid, ok := UserIDFromContext(ctx)
	if !ok {
		return primitive.NilObjectID, "", ErrUnauthorized
	}
	role, ok := RoleFromContext(ctx)
	if !ok {
		role = models.RoleUser
	}
	return uid, role, nil
}

func requireAdmin(ctx context.Context) (primitive.ObjectID, error) {
	uid, role, err := requireAuth(ctx)
	if err != nil {
		return primitive.NilObjectID, err
	}
	if role != models.RoleAdmin {
		return primitive.NilObjectID, ErrForbidden
	}
	return uid, nil
}
