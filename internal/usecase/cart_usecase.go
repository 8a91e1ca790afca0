package usecase

import (
	"sync"

	"modernshop-backend/internal/domain"
	"modernshop-backend/pkg/logger"

	"github.com/shopspring/decimal"
)

// CartConfig carries the checkout display rules and business limits.
type CartConfig struct {
	TaxRate               float64
	FreeShippingThreshold float64
	ShippingFee           float64
	MaxQuantity           int
}

// CartUsecase is the single authoritative owner of cart contents. All
// reads and writes of cart state go through it. Every mutation runs to
// completion under the lock, including the mirror write to the local
// store, so the uniqueness and quantity invariants hold at every
// observable point. Change subscribers fire after the lock is released.
type CartUsecase struct {
	mu    sync.RWMutex
	lines []domain.CartLine
	repo  domain.CartRepository

	maxQuantity  int
	taxRate      decimal.Decimal
	freeShipping decimal.Decimal
	shippingFee  decimal.Decimal

	subscribers []func()
}

// NewCartUsecase rehydrates the cart from the repository. A load
// failure starts an empty cart rather than failing startup.
func NewCartUsecase(repo domain.CartRepository, cfg CartConfig) *CartUsecase {
	u := &CartUsecase{
		repo:         repo,
		maxQuantity:  cfg.MaxQuantity,
		taxRate:      decimal.NewFromFloat(cfg.TaxRate),
		freeShipping: decimal.NewFromFloat(cfg.FreeShippingThreshold),
		shippingFee:  decimal.NewFromFloat(cfg.ShippingFee),
	}
	lines, err := repo.Load()
	if err != nil {
		logger.Warn().Err(err).Msg("Could not load saved cart, starting empty")
		lines = nil
	}
	u.lines = lines
	return u
}

// OnChange registers a callback invoked synchronously after every
// completed mutation, so a rendering layer can re-derive its view.
func (u *CartUsecase) OnChange(fn func()) {
	u.mu.Lock()
	u.subscribers = append(u.subscribers, fn)
	u.mu.Unlock()
}

// AddItem adds quantity units of product to the cart, snapshotting
// title, price, image and category at add time. An existing line for
// the same product has its quantity incremented instead.
func (u *CartUsecase) AddItem(product domain.Product, quantity int) {
	if quantity < 1 {
		return
	}
	u.mu.Lock()
	if i := u.indexOf(product.ID); i >= 0 {
		u.lines[i].Quantity = u.capQuantity(u.lines[i].Quantity + quantity)
	} else {
		u.lines = append(u.lines, domain.CartLine{
			ProductID: product.ID,
			Title:     product.Title,
			Price:     decimal.NewFromFloat(product.Price),
			Image:     product.Image,
			Category:  product.Category,
			Quantity:  u.capQuantity(quantity),
		})
	}
	u.persistLocked()
	u.mu.Unlock()
	u.notify()
}

// RemoveItem deletes the line for productID. Removing an absent product
// is a no-op, not an error.
func (u *CartUsecase) RemoveItem(productID int) {
	u.mu.Lock()
	i := u.indexOf(productID)
	if i < 0 {
		u.mu.Unlock()
		return
	}
	u.lines = append(u.lines[:i], u.lines[i+1:]...)
	u.persistLocked()
	u.mu.Unlock()
	u.notify()
}

// UpdateQuantity sets the line's quantity. A quantity of zero or less
// removes the line entirely; a line never persists with quantity 0.
// Unknown product IDs are no-ops.
func (u *CartUsecase) UpdateQuantity(productID, quantity int) {
	if quantity <= 0 {
		u.RemoveItem(productID)
		return
	}
	u.mu.Lock()
	i := u.indexOf(productID)
	if i < 0 {
		u.mu.Unlock()
		return
	}
	u.lines[i].Quantity = u.capQuantity(quantity)
	u.persistLocked()
	u.mu.Unlock()
	u.notify()
}

// IncreaseQuantity bumps the line's quantity by one.
func (u *CartUsecase) IncreaseQuantity(productID int) {
	u.mu.Lock()
	i := u.indexOf(productID)
	if i < 0 {
		u.mu.Unlock()
		return
	}
	u.lines[i].Quantity = u.capQuantity(u.lines[i].Quantity + 1)
	u.persistLocked()
	u.mu.Unlock()
	u.notify()
}

// DecreaseQuantity lowers the line's quantity by one, removing the line
// when it reaches zero.
func (u *CartUsecase) DecreaseQuantity(productID int) {
	u.mu.Lock()
	i := u.indexOf(productID)
	if i < 0 {
		u.mu.Unlock()
		return
	}
	if u.lines[i].Quantity > 1 {
		u.lines[i].Quantity--
	} else {
		u.lines = append(u.lines[:i], u.lines[i+1:]...)
	}
	u.persistLocked()
	u.mu.Unlock()
	u.notify()
}

// Clear empties the cart with a single persistence write.
func (u *CartUsecase) Clear() {
	u.mu.Lock()
	u.lines = nil
	u.persistLocked()
	u.mu.Unlock()
	u.notify()
}

// GetItem returns the line for productID and whether it exists.
func (u *CartUsecase) GetItem(productID int) (domain.CartLine, bool) {
	u.mu.RLock()
	defer u.mu.RUnlock()
	if i := u.indexOf(productID); i >= 0 {
		return u.lines[i], true
	}
	return domain.CartLine{}, false
}

// GetItems returns an independent snapshot of the lines in insertion
// order. Mutating the returned slice never affects store state.
func (u *CartUsecase) GetItems() []domain.CartLine {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.snapshotLocked()
}

func (u *CartUsecase) IsEmpty() bool {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return len(u.lines) == 0
}

func (u *CartUsecase) IsInCart(productID int) bool {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.indexOf(productID) >= 0
}

// GetItemCount returns the sum of all line quantities (the badge count).
func (u *CartUsecase) GetItemCount() int {
	u.mu.RLock()
	defer u.mu.RUnlock()
	count := 0
	for _, l := range u.lines {
		count += l.Quantity
	}
	return count
}

// GetTotal returns the exact sum of price * quantity across all lines.
// Rounding happens only at presentation, never during accumulation.
func (u *CartUsecase) GetTotal() decimal.Decimal {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.totalLocked()
}

// GetCartSummary derives the checkout figures from current state. It is
// a pure read: subtotal, tax on the subtotal, flat-fee shipping waived
// above the free-shipping threshold, and the sum of the three, each
// rounded to cents for display.
func (u *CartUsecase) GetCartSummary() domain.CartSummary {
	u.mu.RLock()
	defer u.mu.RUnlock()

	subtotal := u.totalLocked().Round(2)
	tax := subtotal.Mul(u.taxRate).Round(2)
	shipping := decimal.Zero
	if !subtotal.GreaterThan(u.freeShipping) {
		shipping = u.shippingFee
	}

	count := 0
	for _, l := range u.lines {
		count += l.Quantity
	}

	return domain.CartSummary{
		Items:     u.snapshotLocked(),
		ItemCount: count,
		Subtotal:  subtotal,
		Tax:       tax,
		Shipping:  shipping,
		Total:     subtotal.Add(tax).Add(shipping),
	}
}

func (u *CartUsecase) indexOf(productID int) int {
	for i, l := range u.lines {
		if l.ProductID == productID {
			return i
		}
	}
	return -1
}

func (u *CartUsecase) snapshotLocked() []domain.CartLine {
	snapshot := make([]domain.CartLine, len(u.lines))
	copy(snapshot, u.lines)
	return snapshot
}

func (u *CartUsecase) totalLocked() decimal.Decimal {
	total := decimal.Zero
	for _, l := range u.lines {
		total = total.Add(l.Subtotal())
	}
	return total
}

func (u *CartUsecase) capQuantity(quantity int) int {
	if u.maxQuantity > 0 && quantity > u.maxQuantity {
		return u.maxQuantity
	}
	return quantity
}

// persistLocked mirrors current state to the local store. A write
// failure is logged and the in-memory state stays authoritative for the
// rest of the process lifetime; it just will not survive a restart.
func (u *CartUsecase) persistLocked() {
	if err := u.repo.Save(u.snapshotLocked()); err != nil {
		logger.Warn().Err(err).Msg("Cart save failed, state is in-memory only")
	}
}

func (u *CartUsecase) notify() {
	u.mu.RLock()
	subs := make([]func(), len(u.subscribers))
	copy(subs, u.subscribers)
	u.mu.RUnlock()
	for _, fn := range subs {
		fn()
	}
}
