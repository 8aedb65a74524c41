package speech

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/civishield/civi-shield/backend/internal/speech/output"
	"github.com/civishield/civi-shield/backend/pkg/utils"
)

// Handler streams playback directives to the page and accepts playback
// control plus long-text confirmations back from it.
type Handler struct {
	adapter *output.Adapter
	synth   *output.DirectiveSynthesizer

	mu      sync.Mutex
	pending map[string]pendingConfirm
}

type pendingConfirm struct {
	text    string
	proceed func(accept bool)
}

// New creates the speech handler and wires the long-text confirmation flow
// into the adapter.
func New(adapter *output.Adapter, synth *output.DirectiveSynthesizer) *Handler {
	h := &Handler{
		adapter: adapter,
		synth:   synth,
		pending: make(map[string]pendingConfirm),
	}
	adapter.SetLongTextDecider(h.askLongText)
	return h
}

// RegisterRoutes mounts the speech endpoints.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/speech", func(sr chi.Router) {
		sr.Get("/directives", h.handleDirectives)
		sr.Get("/status", h.handleStatus)
		sr.Post("/voices", h.handleVoices)
		sr.Post("/pause", h.handlePause)
		sr.Post("/resume", h.handleResume)
		sr.Post("/stop", h.handleStop)
		sr.Post("/toggle", h.handleToggle)
		sr.Post("/finished", h.handleFinished)
		sr.Post("/confirm", h.handleConfirm)
	})
}

// handleDirectives is the SSE stream of playback directives. Long-text
// confirmation requests ride the same stream as "confirm" events.
func (h *Handler) handleDirectives(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		utils.RespondError(w, http.StatusInternalServerError, "streaming unsupported")
		return
	}

	utils.SetupSSEHeaders(w)
	flusher.Flush()

	directives, cancel := h.synth.Subscribe()
	defer cancel()

	heartbeat := time.NewTicker(30 * time.Second)
	defer heartbeat.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case directive := <-directives:
			utils.SendSSEEvent(w, flusher, "directive", directive)
		case <-heartbeat.C:
			utils.SendSSEChunk(w, flusher, map[string]string{"event": "heartbeat"})
		}
	}
}

func (h *Handler) handleStatus(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"supported": h.adapter.Supported(),
		"enabled":   h.adapter.Enabled(),
		"state":     stateLabel(h.adapter.State()),
	})
}

type voicesPayload struct {
	Voices []string `json:"voices"`
}

// handleVoices receives the voice list the page discovered.
func (h *Handler) handleVoices(w http.ResponseWriter, r *http.Request) {
	var payload voicesPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	h.synth.SetVoices(payload.Voices)
	utils.RespondJSON(w, http.StatusOK, map[string]int{"count": len(payload.Voices)})
}

func (h *Handler) handlePause(w http.ResponseWriter, r *http.Request) {
	h.adapter.Pause()
	h.respondState(w)
}

func (h *Handler) handleResume(w http.ResponseWriter, r *http.Request) {
	h.adapter.Resume()
	h.respondState(w)
}

func (h *Handler) handleStop(w http.ResponseWriter, r *http.Request) {
	h.adapter.Stop()
	h.respondState(w)
}

func (h *Handler) handleToggle(w http.ResponseWriter, r *http.Request) {
	enabled := h.adapter.ToggleEnabled()
	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"enabled": enabled,
		"state":   stateLabel(h.adapter.State()),
	})
}

// handleFinished is reported by the page when an utterance played to the end.
func (h *Handler) handleFinished(w http.ResponseWriter, r *http.Request) {
	h.adapter.PlaybackFinished()
	h.respondState(w)
}

type confirmPayload struct {
	ID     string `json:"id"`
	Accept bool   `json:"accept"`
}

// handleConfirm resolves a pending long-text confirmation.
func (h *Handler) handleConfirm(w http.ResponseWriter, r *http.Request) {
	var payload confirmPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	h.mu.Lock()
	ask, ok := h.pending[payload.ID]
	delete(h.pending, payload.ID)
	h.mu.Unlock()

	if !ok {
		utils.RespondError(w, http.StatusNotFound, "unknown confirmation id")
		return
	}

	ask.proceed(payload.Accept)
	utils.RespondJSON(w, http.StatusOK, map[string]bool{"accepted": payload.Accept})
}

// askLongText registers a pending confirmation and asks the page over the
// directive stream. Narration waits until /speech/confirm answers.
func (h *Handler) askLongText(text string, proceed func(accept bool)) {
	id := uuid.New().String()

	h.mu.Lock()
	h.pending[id] = pendingConfirm{text: text, proceed: proceed}
	h.mu.Unlock()

	h.synth.AskConfirm(id, len([]rune(text)))
}

func (h *Handler) respondState(w http.ResponseWriter) {
	utils.RespondJSON(w, http.StatusOK, map[string]string{"state": stateLabel(h.adapter.State())})
}

func stateLabel(s output.State) string {
	switch s {
	case output.Speaking:
		return "speaking"
	case output.Paused:
		return "paused"
	default:
		return "idle"
	}
}
