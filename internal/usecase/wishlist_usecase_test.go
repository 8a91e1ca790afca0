package usecase

import (
	"testing"
	"time"

	"modernshop-backend/internal/domain"
	"modernshop-backend/internal/repository/localstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWishlist(t *testing.T) (*WishlistUsecase, *localstore.WishlistRepository) {
	t.Helper()
	repo := localstore.NewWishlistRepository(localstore.NewMemoryStore())
	return NewWishlistUsecase(repo), repo
}

func TestWishlistAddRejectsDuplicates(t *testing.T) {
	wishlist, _ := newTestWishlist(t)

	assert.True(t, wishlist.AddItem(product(1, 10.00)))
	assert.False(t, wishlist.AddItem(product(1, 10.00)))
	assert.Equal(t, 1, wishlist.GetItemCount())
}

func TestWishlistRemove(t *testing.T) {
	wishlist, _ := newTestWishlist(t)
	wishlist.AddItem(product(1, 10.00))

	assert.True(t, wishlist.RemoveItem(1))
	assert.False(t, wishlist.RemoveItem(1))
	assert.True(t, wishlist.IsEmpty())
}

func TestWishlistToggle(t *testing.T) {
	wishlist, _ := newTestWishlist(t)

	assert.True(t, wishlist.ToggleItem(product(1, 10.00)))
	assert.True(t, wishlist.IsInWishlist(1))

	assert.False(t, wishlist.ToggleItem(product(1, 10.00)))
	assert.False(t, wishlist.IsInWishlist(1))
}

func TestWishlistRecentItemsNewestFirst(t *testing.T) {
	repo := localstore.NewWishlistRepository(localstore.NewMemoryStore())
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Save([]domain.WishlistItem{
		{ProductID: 1, Title: "oldest", AddedAt: base},
		{ProductID: 2, Title: "middle", AddedAt: base.Add(time.Hour)},
		{ProductID: 3, Title: "newest", AddedAt: base.Add(2 * time.Hour)},
	}))

	wishlist := NewWishlistUsecase(repo)
	recent := wishlist.RecentItems(2)
	require.Len(t, recent, 2)
	assert.Equal(t, 3, recent[0].ProductID)
	assert.Equal(t, 2, recent[1].ProductID)
}

func TestWishlistItemsByCategory(t *testing.T) {
	wishlist, _ := newTestWishlist(t)

	electronics := product(1, 10.00)
	electronics.Category = "electronics"
	footwear := product(2, 20.00)
	footwear.Category = "footwear"

	wishlist.AddItem(electronics)
	wishlist.AddItem(footwear)

	items := wishlist.ItemsByCategory("footwear")
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].ProductID)
}

func TestWishlistPersistsAcrossInstances(t *testing.T) {
	repo := localstore.NewWishlistRepository(localstore.NewMemoryStore())

	first := NewWishlistUsecase(repo)
	first.AddItem(product(7, 49.99))

	second := NewWishlistUsecase(repo)
	assert.True(t, second.IsInWishlist(7))
}

func TestWishlistSnapshotIndependence(t *testing.T) {
	wishlist, _ := newTestWishlist(t)
	wishlist.AddItem(product(1, 10.00))

	snapshot := wishlist.GetItems()
	snapshot[0].Title = "mutated"

	item, ok := wishlist.GetItem(1)
	require.True(t, ok)
	assert.NotEqual(t, "mutated", item.Title)
}

func TestWishlistClear(t *testing.T) {
	wishlist, repo := newTestWishlist(t)
	wishlist.AddItem(product(1, 10.00))

	wishlist.Clear()

	assert.True(t, wishlist.IsEmpty())
	saved, err := repo.Load()
	require.NoError(t, err)
	assert.Empty(t, saved)
}
