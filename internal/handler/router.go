package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/civishield/civi-shield/backend/internal/bus"
	assistHandler "github.com/civishield/civi-shield/backend/internal/handler/assist"
	contactsHandler "github.com/civishield/civi-shield/backend/internal/handler/contacts"
	directoryHandler "github.com/civishield/civi-shield/backend/internal/handler/directory"
	localeHandler "github.com/civishield/civi-shield/backend/internal/handler/locale"
	speechHandler "github.com/civishield/civi-shield/backend/internal/handler/speech"
	voiceHandler "github.com/civishield/civi-shield/backend/internal/handler/voice"
	middlewarePkg "github.com/civishield/civi-shield/backend/internal/middleware"
	assistService "github.com/civishield/civi-shield/backend/internal/service/assist"
	geoService "github.com/civishield/civi-shield/backend/internal/service/geo"
	"github.com/civishield/civi-shield/backend/internal/speech/input"
	"github.com/civishield/civi-shield/backend/internal/speech/output"
	contactStore "github.com/civishield/civi-shield/backend/internal/store/contacts"
)

// Deps collects everything the HTTP surface needs.
type Deps struct {
	State      *bus.Broadcaster
	Assist     *assistService.Service
	Geo        *geoService.Service
	Contacts   *contactStore.Store
	Speech     *output.Adapter
	Directives *output.DirectiveSynthesizer
	Voice      *input.Adapter
	Recognizer *input.PushRecognizer
}

// NewRouter wires HTTP routes to core services.
func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS)

	r.Route("/api", func(api chi.Router) {
		assistHandler.New(deps.Assist).RegisterRoutes(api)
		directoryHandler.New().RegisterRoutes(api)
		contactsHandler.New(deps.Contacts).RegisterRoutes(api)
		localeHandler.New(deps.State, deps.Geo).RegisterRoutes(api)

		if deps.Speech != nil && deps.Directives != nil {
			speechHandler.New(deps.Speech, deps.Directives).RegisterRoutes(api)
		}

		if deps.Voice != nil && deps.Recognizer != nil {
			voiceHandler.New(deps.Voice, deps.Recognizer).RegisterRoutes(api)
		}
	})

	return r
}
