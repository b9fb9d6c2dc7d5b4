package middleware

import (
	"context"

	"github.com/google/uuid"
)

type contextKey string

const (
	ctxMemberID contextKey = "member_id"
	ctxIsAdmin  contextKey = "is_admin"
)

func MemberIDFromContext(ctx context.Context) uuid.UUID {
	if ctx == nil {
		return uuid.Nil
	}
	if v, ok := ctx.Value(ctxMemberID).(uuid.UUID); ok {
		return v
	}
	return uuid.Nil
}

func IsAdminFromContext(ctx context.Context) bool {
	if ctx == nil {
		return false
	}
	if v, ok := ctx.Value(ctxIsAdmin).(bool); ok {
		return v
	}
	return false
}

// WithMember injects the authenticated member's identity into the context.
func WithMember(ctx context.Context, memberID uuid.UUID, isAdmin bool) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = context.WithValue(ctx, ctxMemberID, memberID)
	return context.WithValue(ctx, ctxIsAdmin, isAdmin)
}
