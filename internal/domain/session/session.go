// Package session carries the signed-in operator through context.Context so
// usecases and the backend client can act on their behalf.
package session

import (
	"context"

	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/domain/entity"
)

type contextKey struct{}

// WithSession returns a new context carrying s.
func WithSession(ctx context.Context, s *entity.Session) context.Context {
	return context.WithValue(ctx, contextKey{}, s)
}

// FromContext extracts the session, if any.
func FromContext(ctx context.Context) (*entity.Session, bool) {
	s, ok := ctx.Value(contextKey{}).(*entity.Session)

	return s, ok && s != nil
}

// AccessToken returns the backend token of the current session or "".
func AccessToken(ctx context.Context) string {
	if s, ok := FromContext(ctx); ok {
		return s.AccessToken
	}

	return ""
}
