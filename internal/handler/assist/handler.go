package assist

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/civishield/civi-shield/backend/internal/service/ai"
	assistservice "github.com/civishield/civi-shield/backend/internal/service/assist"
	"github.com/civishield/civi-shield/backend/pkg/utils"
)

// Handler exposes the conversation turn loop over HTTP.
type Handler struct {
	assistSvc *assistservice.Service
}

// New creates the assist handler.
func New(assistSvc *assistservice.Service) *Handler {
	return &Handler{assistSvc: assistSvc}
}

// RegisterRoutes mounts the assist endpoints.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/assist/messages", h.handleSubmit)
	r.Get("/assist/transcript", h.handleTranscript)
}

type submitPayload struct {
	Text      string `json:"text"`
	ImageData string `json:"imageData,omitempty"` // base64
	ImageMIME string `json:"imageMime,omitempty"`
}

func (h *Handler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	var payload submitPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var image *ai.InlineImage
	if payload.ImageData != "" {
		data, err := base64.StdEncoding.DecodeString(payload.ImageData)
		if err != nil {
			utils.RespondError(w, http.StatusBadRequest, "invalid image encoding")
			return
		}
		mime := payload.ImageMIME
		if mime == "" {
			mime = "image/jpeg"
		}
		image = &ai.InlineImage{MIMEType: mime, Data: data}
	}

	turn, err := h.assistSvc.Submit(r.Context(), payload.Text, image)
	switch {
	case errors.Is(err, assistservice.ErrEmptySubmission):
		utils.RespondError(w, http.StatusBadRequest, err.Error())
		return
	case errors.Is(err, assistservice.ErrTurnPending):
		utils.RespondError(w, http.StatusConflict, err.Error())
		return
	case err != nil:
		utils.RespondError(w, http.StatusInternalServerError, "submission failed")
		return
	}

	utils.RespondJSON(w, http.StatusCreated, turn)
}

func (h *Handler) handleTranscript(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"messages": h.assistSvc.Transcript(),
		"pending":  h.assistSvc.Pending(),
	})
}
