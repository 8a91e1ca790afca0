package localstore

import (
	"fmt"

	"modernshop-backend/internal/domain"
	"modernshop-backend/pkg/logger"

	"github.com/goccy/go-json"
)

type SearchHistoryRepository struct {
	kv domain.KVStore
}

func NewSearchHistoryRepository(kv domain.KVStore) *SearchHistoryRepository {
	return &SearchHistoryRepository{kv: kv}
}

func (r *SearchHistoryRepository) Save(entries []domain.SearchEntry) error {
	if entries == nil {
		entries = []domain.SearchEntry{}
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("search repo marshal: %w", err)
	}
	return r.kv.Set(domain.StorageKeySearchHistory, string(data))
}

func (r *SearchHistoryRepository) Load() ([]domain.SearchEntry, error) {
	value, ok, err := r.kv.Get(domain.StorageKeySearchHistory)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	var entries []domain.SearchEntry
	if err := json.Unmarshal([]byte(value), &entries); err != nil {
		logger.Warn().Err(err).Msg("Discarding unparseable search history")
		return nil, nil
	}
	return entries, nil
}
