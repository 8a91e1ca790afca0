package localstore

import (
	"testing"
	"time"

	"modernshop-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWishlistRepoRoundTrip(t *testing.T) {
	repo := NewWishlistRepository(NewMemoryStore())

	added := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Save([]domain.WishlistItem{
		{ProductID: 4, Title: "Backpack", Price: 49.99, Category: "accessories", AddedAt: added},
	}))

	items, err := repo.Load()
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 4, items[0].ProductID)
	assert.True(t, items[0].AddedAt.Equal(added))
}

func TestWishlistRepoCorruptedSnapshotYieldsEmptyList(t *testing.T) {
	kv := NewMemoryStore()
	require.NoError(t, kv.Set(domain.StorageKeyWishlist, `garbage`))

	items, err := NewWishlistRepository(kv).Load()
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestSearchHistoryRepoRoundTrip(t *testing.T) {
	repo := NewSearchHistoryRepository(NewMemoryStore())

	require.NoError(t, repo.Save([]domain.SearchEntry{
		{Query: "headphones", Timestamp: time.Now().UTC(), Count: 3},
	}))

	entries, err := repo.Load()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "headphones", entries[0].Query)
	assert.Equal(t, 3, entries[0].Count)
}

func TestThemeRepoDefaultsToLight(t *testing.T) {
	repo := NewThemeRepository(NewMemoryStore())

	theme, err := repo.Load()
	require.NoError(t, err)
	assert.Equal(t, domain.ThemeLight, theme)
}

func TestThemeRepoRoundTrip(t *testing.T) {
	repo := NewThemeRepository(NewMemoryStore())

	require.NoError(t, repo.Save(domain.ThemeDark))
	theme, err := repo.Load()
	require.NoError(t, err)
	assert.Equal(t, domain.ThemeDark, theme)
}

func TestThemeRepoRejectsUnknownValue(t *testing.T) {
	kv := NewMemoryStore()
	require.NoError(t, kv.Set(domain.StorageKeyTheme, "solarized"))

	theme, err := NewThemeRepository(kv).Load()
	require.NoError(t, err)
	assert.Equal(t, domain.ThemeLight, theme)
}
