package localstore

import (
	"fmt"

	"modernshop-backend/internal/domain"
	"modernshop-backend/pkg/logger"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"
)

// cartLineRecord is the stored shape of one cart line. Price is a plain
// JSON number so snapshots stay interchangeable with the web UI's
// localStorage entries.
type cartLineRecord struct {
	ID       int     `json:"id"`
	Title    string  `json:"title"`
	Price    float64 `json:"price"`
	Image    string  `json:"image"`
	Category string  `json:"category"`
	Quantity int     `json:"quantity"`
}

type CartRepository struct {
	kv domain.KVStore
}

func NewCartRepository(kv domain.KVStore) *CartRepository {
	return &CartRepository{kv: kv}
}

func (r *CartRepository) Save(lines []domain.CartLine) error {
	records := make([]cartLineRecord, 0, len(lines))
	for _, l := range lines {
		records = append(records, cartLineRecord{
			ID:       l.ProductID,
			Title:    l.Title,
			Price:    l.Price.InexactFloat64(),
			Image:    l.Image,
			Category: l.Category,
			Quantity: l.Quantity,
		})
	}
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("cart repo marshal: %w", err)
	}
	return r.kv.Set(domain.StorageKeyCart, string(data))
}

// Load returns the saved cart lines. A missing key or a snapshot that
// fails to parse hydrates as an empty cart, never as an error: startup
// must not crash on corrupted state.
func (r *CartRepository) Load() ([]domain.CartLine, error) {
	value, ok, err := r.kv.Get(domain.StorageKeyCart)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	var records []cartLineRecord
	if err := json.Unmarshal([]byte(value), &records); err != nil {
		logger.Warn().Err(err).Msg("Discarding unparseable cart snapshot")
		return nil, nil
	}

	lines := make([]domain.CartLine, 0, len(records))
	for _, rec := range records {
		if rec.Quantity < 1 {
			// Quantity-zero lines should never have been persisted;
			// drop them on the way in.
			continue
		}
		lines = append(lines, domain.CartLine{
			ProductID: rec.ID,
			Title:     rec.Title,
			Price:     decimal.NewFromFloat(rec.Price),
			Image:     rec.Image,
			Category:  rec.Category,
			Quantity:  rec.Quantity,
		})
	}
	return lines, nil
}
