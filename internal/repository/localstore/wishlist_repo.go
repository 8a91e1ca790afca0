package localstore

import (
	"fmt"

	"modernshop-backend/internal/domain"
	"modernshop-backend/pkg/logger"

	"github.com/goccy/go-json"
)

type WishlistRepository struct {
	kv domain.KVStore
}

func NewWishlistRepository(kv domain.KVStore) *WishlistRepository {
	return &WishlistRepository{kv: kv}
}

func (r *WishlistRepository) Save(items []domain.WishlistItem) error {
	if items == nil {
		items = []domain.WishlistItem{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("wishlist repo marshal: %w", err)
	}
	return r.kv.Set(domain.StorageKeyWishlist, string(data))
}

func (r *WishlistRepository) Load() ([]domain.WishlistItem, error) {
	value, ok, err := r.kv.Get(domain.StorageKeyWishlist)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	var items []domain.WishlistItem
	if err := json.Unmarshal([]byte(value), &items); err != nil {
		logger.Warn().Err(err).Msg("Discarding unparseable wishlist snapshot")
		return nil, nil
	}
	return items, nil
}
