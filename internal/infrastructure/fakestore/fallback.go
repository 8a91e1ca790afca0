package fakestore

import "modernshop-backend/internal/domain"

// FallbackProducts returns the built-in catalog shown when the remote
// endpoint cannot be reached, so the storefront stays usable offline.
func FallbackProducts() []domain.Product {
	return []domain.Product{
		{
			ID:          1,
			Title:       "Premium Wireless Headphones",
			Price:       99.99,
			Description: "High-quality wireless headphones with noise cancellation",
			Category:    "electronics",
			Image:       "https://images.pexels.com/photos/3394650/pexels-photo-3394650.jpeg?auto=compress&cs=tinysrgb&w=400",
			Rating:      &domain.Rating{Rate: 4.5, Count: 120},
		},
		{
			ID:          2,
			Title:       "Smart Fitness Watch",
			Price:       199.99,
			Description: "Advanced fitness tracking with heart rate monitor",
			Category:    "electronics",
			Image:       "https://images.pexels.com/photos/437037/pexels-photo-437037.jpeg?auto=compress&cs=tinysrgb&w=400",
			Rating:      &domain.Rating{Rate: 4.3, Count: 89},
		},
		{
			ID:          3,
			Title:       "Comfortable Running Shoes",
			Price:       79.99,
			Description: "Lightweight running shoes for daily training",
			Category:    "footwear",
			Image:       "https://images.pexels.com/photos/2529148/pexels-photo-2529148.jpeg?auto=compress&cs=tinysrgb&w=400",
			Rating:      &domain.Rating{Rate: 4.7, Count: 156},
		},
		{
			ID:          4,
			Title:       "Stylish Backpack",
			Price:       49.99,
			Description: "Durable backpack perfect for work and travel",
			Category:    "accessories",
			Image:       "https://images.pexels.com/photos/2905238/pexels-photo-2905238.jpeg?auto=compress&cs=tinysrgb&w=400",
			Rating:      &domain.Rating{Rate: 4.2, Count: 73},
		},
	}
}
