package domain

import "time"

type WishlistItem struct {
	ProductID int       `json:"id"`
	Title     string    `json:"title"`
	Price     float64   `json:"price"`
	Image     string    `json:"image"`
	Category  string    `json:"category"`
	AddedAt   time.Time `json:"dateAdded"`
}

type WishlistRepository interface {
	Save(items []WishlistItem) error
	Load() ([]WishlistItem, error)
}
