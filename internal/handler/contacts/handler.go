package contacts

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	contactstore "github.com/civishield/civi-shield/backend/internal/store/contacts"
	"github.com/civishield/civi-shield/backend/pkg/utils"
)

// Handler exposes CRUD over the family contact store.
type Handler struct {
	store *contactstore.Store
}

// New creates the contacts handler.
func New(store *contactstore.Store) *Handler {
	return &Handler{store: store}
}

// RegisterRoutes mounts the contact endpoints.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/contacts", func(cr chi.Router) {
		cr.Get("/", h.handleList)
		cr.Post("/", h.handleAdd)
		cr.Put("/{contactID}", h.handleUpdate)
		cr.Delete("/{contactID}", h.handleDelete)
	})
}

type contactPayload struct {
	Name         string `json:"name"`
	Number       string `json:"number"`
	Relationship string `json:"relationship,omitempty"`
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.store.List())
}

func (h *Handler) handleAdd(w http.ResponseWriter, r *http.Request) {
	var payload contactPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	added, err := h.store.Add(payload.Name, payload.Number, payload.Relationship)
	if err != nil {
		utils.RespondError(w, h.statusFor(err), err.Error())
		return
	}

	utils.RespondJSON(w, http.StatusCreated, added)
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	contactID := chi.URLParam(r, "contactID")

	var payload contactPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.store.Update(contactID, payload.Name, payload.Number, payload.Relationship)
	if err != nil {
		utils.RespondError(w, h.statusFor(err), err.Error())
		return
	}

	utils.RespondJSON(w, http.StatusOK, updated)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Delete(chi.URLParam(r, "contactID")); err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *Handler) statusFor(err error) int {
	switch {
	case errors.Is(err, contactstore.ErrNameRequired), errors.Is(err, contactstore.ErrNumberRequired):
		return http.StatusBadRequest
	case errors.Is(err, contactstore.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
