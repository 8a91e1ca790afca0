package domain

import "time"

// SearchEntry is one remembered query in the search history.
type SearchEntry struct {
	Query     string    `json:"query"`
	Timestamp time.Time `json:"timestamp"`
	Count     int       `json:"count"`
}

type SearchHistoryRepository interface {
	Save(entries []SearchEntry) error
	Load() ([]SearchEntry, error)
}
