package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raghu62-rp/OSM-main/internal/domain"
	"github.com/raghu62-rp/OSM-main/internal/store"
)

func TestToken_MissingKey(t *testing.T) {
	p := NewProvider(store.NewMemoryStore())

	_, ok := p.Token(context.Background())

	assert.False(t, ok)
}

func TestToken_RoundTrip(t *testing.T) {
	p := NewProvider(store.NewMemoryStore())
	ctx := context.Background()

	require.NoError(t, p.SetToken(ctx, "jwt-abc"))

	token, ok := p.Token(ctx)
	require.True(t, ok)
	assert.Equal(t, "jwt-abc", token)
}

func TestToken_MalformedValueReadsAsSignedOut(t *testing.T) {
	s := store.NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, s.Write(ctx, store.KeyToken, []byte("{not-a-string")))
	p := NewProvider(s)

	_, ok := p.Token(ctx)

	assert.False(t, ok)
}

func TestCurrentUser(t *testing.T) {
	p := NewProvider(store.NewMemoryStore())
	ctx := context.Background()

	_, ok := p.CurrentUser(ctx)
	assert.False(t, ok)

	require.NoError(t, p.SetUser(ctx, domain.User{ID: "u1", Name: "Ravi", Email: "ravi@example.com"}))

	user, ok := p.CurrentUser(ctx)
	require.True(t, ok)
	assert.Equal(t, "Ravi", user.Name)
}
