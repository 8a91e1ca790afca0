package usecase

import (
	"sort"
	"sync"
	"time"

	"modernshop-backend/internal/domain"
	"modernshop-backend/pkg/logger"
)

// WishlistUsecase owns the wishlist: at most one entry per product,
// insertion ordered, persisted on every mutation like the cart.
type WishlistUsecase struct {
	mu    sync.RWMutex
	items []domain.WishlistItem
	repo  domain.WishlistRepository
}

func NewWishlistUsecase(repo domain.WishlistRepository) *WishlistUsecase {
	u := &WishlistUsecase{repo: repo}
	items, err := repo.Load()
	if err != nil {
		logger.Warn().Err(err).Msg("Could not load saved wishlist, starting empty")
		items = nil
	}
	u.items = items
	return u
}

// AddItem puts product on the wishlist, recording when it was added.
// Returns false when the product was already listed.
func (u *WishlistUsecase) AddItem(product domain.Product) bool {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.indexOf(product.ID) >= 0 {
		return false
	}
	u.items = append(u.items, domain.WishlistItem{
		ProductID: product.ID,
		Title:     product.Title,
		Price:     product.Price,
		Image:     product.Image,
		Category:  product.Category,
		AddedAt:   time.Now().UTC(),
	})
	u.persistLocked()
	return true
}

// RemoveItem drops the product from the wishlist. Returns false when it
// was not listed.
func (u *WishlistUsecase) RemoveItem(productID int) bool {
	u.mu.Lock()
	defer u.mu.Unlock()

	i := u.indexOf(productID)
	if i < 0 {
		return false
	}
	u.items = append(u.items[:i], u.items[i+1:]...)
	u.persistLocked()
	return true
}

// ToggleItem adds the product when absent and removes it when present.
// Returns true when the product ends up on the wishlist.
func (u *WishlistUsecase) ToggleItem(product domain.Product) bool {
	if u.IsInWishlist(product.ID) {
		u.RemoveItem(product.ID)
		return false
	}
	u.AddItem(product)
	return true
}

func (u *WishlistUsecase) GetItem(productID int) (domain.WishlistItem, bool) {
	u.mu.RLock()
	defer u.mu.RUnlock()
	if i := u.indexOf(productID); i >= 0 {
		return u.items[i], true
	}
	return domain.WishlistItem{}, false
}

// GetItems returns an independent snapshot in insertion order.
func (u *WishlistUsecase) GetItems() []domain.WishlistItem {
	u.mu.RLock()
	defer u.mu.RUnlock()
	snapshot := make([]domain.WishlistItem, len(u.items))
	copy(snapshot, u.items)
	return snapshot
}

func (u *WishlistUsecase) GetItemCount() int {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return len(u.items)
}

func (u *WishlistUsecase) IsEmpty() bool {
	return u.GetItemCount() == 0
}

func (u *WishlistUsecase) IsInWishlist(productID int) bool {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.indexOf(productID) >= 0
}

func (u *WishlistUsecase) Clear() {
	u.mu.Lock()
	u.items = nil
	u.persistLocked()
	u.mu.Unlock()
}

// RecentItems returns up to limit items, most recently added first.
func (u *WishlistUsecase) RecentItems(limit int) []domain.WishlistItem {
	items := u.GetItems()
	sort.SliceStable(items, func(i, j int) bool { return items[i].AddedAt.After(items[j].AddedAt) })
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items
}

func (u *WishlistUsecase) ItemsByCategory(category string) []domain.WishlistItem {
	var out []domain.WishlistItem
	for _, item := range u.GetItems() {
		if item.Category == category {
			out = append(out, item)
		}
	}
	return out
}

func (u *WishlistUsecase) indexOf(productID int) int {
	for i, item := range u.items {
		if item.ProductID == productID {
			return i
		}
	}
	return -1
}

func (u *WishlistUsecase) persistLocked() {
	if err := u.repo.Save(u.items); err != nil {
		logger.Warn().Err(err).Msg("Wishlist save failed, state is in-memory only")
	}
}
