package usecase

import (
	"sync"

	"modernshop-backend/internal/domain"
	"modernshop-backend/pkg/logger"
)

// ThemeUsecase owns the light/dark preference, persisted under its own
// key and independent of the cart.
type ThemeUsecase struct {
	mu      sync.RWMutex
	current domain.Theme
	repo    domain.ThemeRepository
}

func NewThemeUsecase(repo domain.ThemeRepository) *ThemeUsecase {
	u := &ThemeUsecase{repo: repo, current: domain.ThemeLight}
	theme, err := repo.Load()
	if err != nil {
		logger.Warn().Err(err).Msg("Could not load theme preference, defaulting to light")
		theme = domain.ThemeLight
	}
	u.current = theme
	return u
}

func (u *ThemeUsecase) Current() domain.Theme {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.current
}

// Set stores the preference. Unknown theme names are ignored.
func (u *ThemeUsecase) Set(theme domain.Theme) {
	if !theme.Valid() {
		return
	}
	u.mu.Lock()
	u.current = theme
	u.persistLocked()
	u.mu.Unlock()
}

// Toggle flips light to dark and back, returning the new theme.
func (u *ThemeUsecase) Toggle() domain.Theme {
	u.mu.Lock()
	if u.current == domain.ThemeDark {
		u.current = domain.ThemeLight
	} else {
		u.current = domain.ThemeDark
	}
	theme := u.current
	u.persistLocked()
	u.mu.Unlock()
	return theme
}

func (u *ThemeUsecase) persistLocked() {
	if err := u.repo.Save(u.current); err != nil {
		logger.Warn().Err(err).Msg("Theme save failed, preference is in-memory only")
	}
}
