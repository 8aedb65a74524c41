// Package voice bridges the browser's speech-recognition capability to the
// listening state machine over a WebSocket. The page pushes recognition
// deltas up; the server streams transcript snapshots back and reports when
// the session ends.
package voice

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/civishield/civi-shield/backend/internal/speech/input"
	"github.com/civishield/civi-shield/backend/pkg/utils"
)

// Handler owns the voice WebSocket and the listening adapter it feeds.
type Handler struct {
	adapter    *input.Adapter
	recognizer *input.PushRecognizer
	upgrader   websocket.Upgrader
}

// New creates the voice handler.
func New(adapter *input.Adapter, recognizer *input.PushRecognizer) *Handler {
	return &Handler{
		adapter:    adapter,
		recognizer: recognizer,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// RegisterRoutes mounts the voice endpoints.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/voice/status", h.handleStatus)
	r.Get("/voice/ws", h.handleWebSocket)
}

func (h *Handler) handleStatus(w http.ResponseWriter, r *http.Request) {
	transcript, interim, listening := h.adapter.Snapshot()
	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"supported":  h.adapter.Supported(),
		"listening":  listening,
		"transcript": transcript,
		"interim":    interim,
	})
}

type inboundMessage struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// ResultMessage carries one recognition delta from the page.
type ResultMessage struct {
	Text  string `json:"text"`
	Final bool   `json:"final"`
}

// ConfigMessage tunes the next listening session.
type ConfigMessage struct {
	Locale string `json:"locale"`
}

type outgoingMessage struct {
	Type      string      `json:"type"`
	Data      interface{} `json:"data,omitempty"`
	Timestamp int64       `json:"timestamp"`
}

// wsConn serializes writes to one connection. The read loop, the ping loop,
// and the adapter's end callback all send on it; gorilla/websocket allows
// only one concurrent writer.
type wsConn struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (c *wsConn) writeJSON(v interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteJSON(v)
}

func (c *wsConn) ping() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteMessage(websocket.PingMessage, nil)
}

func (h *Handler) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[voice] upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	log.Printf("[voice] new connection from %s", r.RemoteAddr)

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	c := &wsConn{conn: conn}
	go h.pingLoop(ctx, c)

	// A closed session reports its transcript to whichever page is wired
	// in. Only one voice connection is expected at a time.
	h.adapter.OnEnd(func(transcript string) {
		h.send(c, "end", map[string]any{"transcript": transcript})
	})
	defer h.adapter.OnEnd(nil)

	h.send(c, "connected", map[string]any{
		"supported": h.adapter.Supported(),
	})

	for {
		select {
		case <-ctx.Done():
			return
		default:
			var msg inboundMessage
			if err := conn.ReadJSON(&msg); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
					log.Printf("[voice] read error: %v", err)
				}
				h.adapter.Stop()
				return
			}

			conn.SetReadDeadline(time.Now().Add(60 * time.Second))
			h.handleMessage(ctx, c, &msg)
		}
	}
}

func (h *Handler) handleMessage(ctx context.Context, c *wsConn, msg *inboundMessage) {
	switch msg.Type {
	case "start":
		if err := h.adapter.Start(ctx); err != nil {
			h.sendError(c, "start failed: "+err.Error())
			return
		}
		h.sendSnapshot(c)
	case "stop":
		h.adapter.Stop()
	case "result":
		h.handleResult(c, msg.Data)
	case "end":
		h.recognizer.End()
	case "config":
		h.handleConfig(c, msg.Data)
	default:
		h.sendError(c, "unsupported message type: "+msg.Type)
	}
}

func (h *Handler) handleResult(c *wsConn, raw json.RawMessage) {
	var result ResultMessage
	if err := json.Unmarshal(raw, &result); err != nil {
		h.sendError(c, "invalid result payload")
		return
	}

	folded := h.adapter.NextChange()
	if h.recognizer.Push(input.Result{Text: result.Text, Final: result.Final}) {
		// Wait for the delta to fold in before the snapshot goes back
		// down. Dropped deltas answer immediately.
		select {
		case <-folded:
		case <-time.After(time.Second):
		}
	}
	h.sendSnapshot(c)
}

func (h *Handler) handleConfig(c *wsConn, raw json.RawMessage) {
	var cfg ConfigMessage
	if err := json.Unmarshal(raw, &cfg); err != nil {
		h.sendError(c, "invalid config payload")
		return
	}

	h.adapter.SetLocale(cfg.Locale)
	log.Printf("[voice] locale set to %s", cfg.Locale)
	h.send(c, "config", map[string]string{"locale": cfg.Locale})
}

func (h *Handler) sendSnapshot(c *wsConn) {
	transcript, interim, listening := h.adapter.Snapshot()
	h.send(c, "snapshot", map[string]any{
		"transcript": transcript,
		"interim":    interim,
		"listening":  listening,
	})
}

func (h *Handler) send(c *wsConn, msgType string, data interface{}) {
	msg := outgoingMessage{
		Type:      msgType,
		Data:      data,
		Timestamp: time.Now().Unix(),
	}
	if err := c.writeJSON(msg); err != nil {
		log.Printf("[voice] write failed: %v", err)
	}
}

func (h *Handler) sendError(c *wsConn, message string) {
	h.send(c, "error", map[string]string{"message": message})
}

func (h *Handler) pingLoop(ctx context.Context, c *wsConn) {
	ticker := time.NewTicker(54 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := c.ping(); err != nil {
				return
			}
		}
	}
}
