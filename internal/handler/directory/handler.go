package directory

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/civishield/civi-shield/backend/internal/model/alert"
	"github.com/civishield/civi-shield/backend/internal/model/directory"
	"github.com/civishield/civi-shield/backend/pkg/utils"
)

// Handler serves the static reference data: emergency numbers, alert strip
// entries, and chat quick prompts.
type Handler struct{}

// New creates the directory handler.
func New() *Handler {
	return &Handler{}
}

// RegisterRoutes mounts the reference data endpoints.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/emergency/numbers", h.handleNumbers)
	r.Get("/alerts", h.handleAlerts)
	r.Get("/prompts", h.handlePrompts)
}

func (h *Handler) handleNumbers(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"national":     directory.NationalNumbers(),
		"stateSpecial": directory.StateSpecialNumbers(),
	})
}

func (h *Handler) handleAlerts(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, alert.Seed())
}

func (h *Handler) handlePrompts(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, alert.QuickPrompts())
}
