package session

import (
	"context"
	"testing"

	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestSessionRoundTrip(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, AccessToken(ctx))

	_, ok := FromContext(ctx)
	assert.False(t, ok)

	ctx = WithSession(ctx, &entity.Session{AdminID: "a1", AccessToken: "backend-token"})

	s, ok := FromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "a1", s.AdminID)
	assert.Equal(t, "backend-token", AccessToken(ctx))
}
