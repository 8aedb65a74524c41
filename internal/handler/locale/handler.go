package locale

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/civishield/civi-shield/backend/internal/bus"
	"github.com/civishield/civi-shield/backend/internal/i18n"
	"github.com/civishield/civi-shield/backend/internal/model/location"
	"github.com/civishield/civi-shield/backend/internal/service/geo"
	"github.com/civishield/civi-shield/backend/pkg/utils"
)

const defaultDetectTimeout = 15 * time.Second

// Handler exposes language selection and location state.
type Handler struct {
	state *bus.Broadcaster
	geo   *geo.Service
}

// New creates the locale handler.
func New(state *bus.Broadcaster, geoService *geo.Service) *Handler {
	return &Handler{state: state, geo: geoService}
}

// RegisterRoutes mounts the language and location endpoints.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/languages", func(lr chi.Router) {
		lr.Get("/", h.handleListLanguages)
		lr.Put("/current", h.handleSelectLanguage)
	})

	r.Get("/translations", h.handleTranslate)

	r.Route("/locations", func(lr chi.Router) {
		lr.Get("/cities", h.handleListCities)
		lr.Get("/current", h.handleCurrentLocation)
		lr.Put("/current", h.handleSelectCity)
		lr.Post("/detect", h.handleDetect)
	})
}

func (h *Handler) handleListLanguages(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"languages": i18n.Languages(),
		"current":   h.state.Language(),
	})
}

type languagePayload struct {
	Code string `json:"code"`
}

func (h *Handler) handleSelectLanguage(w http.ResponseWriter, r *http.Request) {
	var payload languagePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if !i18n.IsSupported(payload.Code) {
		utils.RespondError(w, http.StatusBadRequest, "unsupported language code")
		return
	}

	h.state.SetLanguage(payload.Code)
	utils.RespondJSON(w, http.StatusOK, map[string]string{"current": payload.Code})
}

func (h *Handler) handleTranslate(w http.ResponseWriter, r *http.Request) {
	text := r.URL.Query().Get("text")
	if text == "" {
		utils.RespondError(w, http.StatusBadRequest, "text query parameter is required")
		return
	}

	code := r.URL.Query().Get("lang")
	if code == "" {
		code = h.state.Language()
	}

	utils.RespondJSON(w, http.StatusOK, map[string]string{
		"text":       text,
		"lang":       code,
		"translated": i18n.Translate(text, code),
	})
}

func (h *Handler) handleListCities(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, location.Cities())
}

func (h *Handler) handleCurrentLocation(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.state.Location())
}

type cityPayload struct {
	Name string `json:"name"`
}

func (h *Handler) handleSelectCity(w http.ResponseWriter, r *http.Request) {
	var payload cityPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	for _, city := range location.Cities() {
		if city.Name == payload.Name {
			utils.RespondJSON(w, http.StatusOK, h.geo.Select(city))
			return
		}
	}
	utils.RespondError(w, http.StatusNotFound, "unknown city")
}

type detectPayload struct {
	Lat *float64 `json:"lat,omitempty"`
	Lng *float64 `json:"lng,omitempty"`
}

// handleDetect resolves the device location. When the client supplies a
// position fix it is reverse-geocoded directly; otherwise the server-side
// locator is asked for one.
func (h *Handler) handleDetect(w http.ResponseWriter, r *http.Request) {
	var payload detectPayload
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			utils.RespondError(w, http.StatusBadRequest, "invalid request body")
			return
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), defaultDetectTimeout)
	defer cancel()

	if payload.Lat != nil && payload.Lng != nil {
		loc := h.geo.DetectFromPosition(ctx, geo.Position{Lat: *payload.Lat, Lng: *payload.Lng})
		utils.RespondJSON(w, http.StatusOK, loc)
		return
	}

	loc, err := h.geo.DetectLocation(ctx)
	if err != nil {
		if errors.Is(err, geo.ErrUnsupported) {
			utils.RespondError(w, http.StatusServiceUnavailable, "location detection is not available")
			return
		}
		utils.RespondError(w, http.StatusBadGateway, err.Error())
		return
	}
	utils.RespondJSON(w, http.StatusOK, loc)
}
