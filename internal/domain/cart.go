package domain

import "github.com/shopspring/decimal"

// CartLine is one product's entry in the cart. Title, price, image and
// category are snapshotted at add time: later catalog changes never
// retroactively affect items already in the cart.
type CartLine struct {
	ProductID int             `json:"id"`
	Title     string          `json:"title"`
	Price     decimal.Decimal `json:"price"`
	Image     string          `json:"image"`
	Category  string          `json:"category"`
	Quantity  int             `json:"quantity"`
}

// Subtotal returns price * quantity for this line.
func (l CartLine) Subtotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// CartSummary is a pure derivation of current cart state for checkout
// display. Monetary fields are rounded to cents at this point and not
// before.
type CartSummary struct {
	Items     []CartLine      `json:"items"`
	ItemCount int             `json:"itemCount"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	Tax       decimal.Decimal `json:"tax"`
	Shipping  decimal.Decimal `json:"shipping"`
	Total     decimal.Decimal `json:"total"`
}

// CartRepository mirrors cart state into the durable local store.
type CartRepository interface {
	// Save overwrites the stored snapshot with the full line list.
	Save(lines []CartLine) error
	// Load returns the previously saved lines. A missing or unparseable
	// snapshot yields an empty list and a nil error.
	Load() ([]CartLine, error)
}
