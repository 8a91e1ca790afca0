package v1

import (
	"net/http"

	"modernshop-backend/internal/domain"
	"modernshop-backend/internal/usecase"
	"modernshop-backend/pkg/utils"

	"github.com/goccy/go-json"
)

// PrefsHandler serves UI preferences. Currently that is only the
// light/dark theme.
type PrefsHandler struct {
	theme *usecase.ThemeUsecase
}

func NewPrefsHandler(theme *usecase.ThemeUsecase) *PrefsHandler {
	return &PrefsHandler{theme: theme}
}

func (h *PrefsHandler) GetTheme(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, map[string]string{"theme": string(h.theme.Current())})
}

type themeRequest struct {
	Theme string `json:"theme"`
}

func (h *PrefsHandler) SetTheme(w http.ResponseWriter, r *http.Request) {
	var req themeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	theme := domain.Theme(req.Theme)
	if !theme.Valid() {
		utils.WriteError(w, http.StatusBadRequest, `theme must be "light" or "dark"`)
		return
	}

	h.theme.Set(theme)
	utils.WriteJSON(w, http.StatusOK, map[string]string{"theme": string(h.theme.Current())})
}

func (h *PrefsHandler) ToggleTheme(w http.ResponseWriter, r *http.Request) {
	theme := h.theme.Toggle()
	utils.WriteJSON(w, http.StatusOK, map[string]string{"theme": string(theme)})
}
