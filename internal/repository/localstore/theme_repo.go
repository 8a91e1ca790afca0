package localstore

import (
	"modernshop-backend/internal/domain"
	"modernshop-backend/pkg/logger"
)

// ThemeRepository stores the theme preference as a bare string value,
// not JSON, matching the frontend's localStorage entry.
type ThemeRepository struct {
	kv domain.KVStore
}

func NewThemeRepository(kv domain.KVStore) *ThemeRepository {
	return &ThemeRepository{kv: kv}
}

func (r *ThemeRepository) Save(theme domain.Theme) error {
	return r.kv.Set(domain.StorageKeyTheme, string(theme))
}

func (r *ThemeRepository) Load() (domain.Theme, error) {
	value, ok, err := r.kv.Get(domain.StorageKeyTheme)
	if err != nil {
		return domain.ThemeLight, err
	}
	if !ok {
		return domain.ThemeLight, nil
	}
	theme := domain.Theme(value)
	if !theme.Valid() {
		logger.Warn().Str("value", value).Msg("Discarding unknown theme preference")
		return domain.ThemeLight, nil
	}
	return theme, nil
}
