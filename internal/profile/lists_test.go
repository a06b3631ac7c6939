package profile

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raghu62-rp/OSM-main/internal/domain"
	"github.com/raghu62-rp/OSM-main/internal/store"
)

func TestToggleWishlist_AddsThenRemoves(t *testing.T) {
	l := NewLists(store.NewMemoryStore(), zerolog.Nop())
	ctx := context.Background()
	p := domain.Product{ID: "p1", Name: "Yoga Mat"}

	added, err := l.ToggleWishlist(ctx, p)
	require.NoError(t, err)
	assert.True(t, added)
	assert.Len(t, l.Wishlist(ctx), 1)

	added, err = l.ToggleWishlist(ctx, p)
	require.NoError(t, err)
	assert.False(t, added)
	assert.Empty(t, l.Wishlist(ctx))
}

func TestWishlistAndFavoritesAreIndependent(t *testing.T) {
	l := NewLists(store.NewMemoryStore(), zerolog.Nop())
	ctx := context.Background()

	_, err := l.ToggleWishlist(ctx, domain.Product{ID: "p1"})
	require.NoError(t, err)
	_, err = l.ToggleFavorite(ctx, domain.Product{ID: "p2"})
	require.NoError(t, err)

	require.Len(t, l.Wishlist(ctx), 1)
	require.Len(t, l.Favorites(ctx), 1)
	assert.Equal(t, "p1", l.Wishlist(ctx)[0].ID)
	assert.Equal(t, "p2", l.Favorites(ctx)[0].ID)
}

func TestRemove_UnknownProductIsNoop(t *testing.T) {
	l := NewLists(store.NewMemoryStore(), zerolog.Nop())
	ctx := context.Background()
	_, err := l.ToggleFavorite(ctx, domain.Product{ID: "p1"})
	require.NoError(t, err)

	require.NoError(t, l.RemoveFromFavorites(ctx, "missing"))

	assert.Len(t, l.Favorites(ctx), 1)
}

func TestLists_MalformedValueReadsAsEmpty(t *testing.T) {
	s := store.NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, s.Write(ctx, store.KeyWishlist, []byte("not json")))
	l := NewLists(s, zerolog.Nop())

	assert.Empty(t, l.Wishlist(ctx))
}
