package assist

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/civishield/civi-shield/backend/internal/bus"
	"github.com/civishield/civi-shield/backend/internal/service/ai"
	assistservice "github.com/civishield/civi-shield/backend/internal/service/assist"
)

type fakeClient struct {
	response string
	err      error
}

func (f *fakeClient) Complete(ctx context.Context, prompt string, image *ai.InlineImage) (string, error) {
	return f.response, f.err
}

func setupRouter(client ai.Client) *chi.Mux {
	svc := assistservice.NewService(client, bus.New())
	handler := New(svc)

	r := chi.NewRouter()
	handler.RegisterRoutes(r)
	return r
}

func postMessage(t *testing.T, r http.Handler, body map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	payload, _ := json.Marshal(body)

	req := httptest.NewRequest(http.MethodPost, "/assist/messages", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)
	return resp
}

func TestSubmitMessage(t *testing.T) {
	r := setupRouter(&fakeClient{response: "Stay indoors and call 112."})

	resp := postMessage(t, r, map[string]string{"text": "cyclone warning"})
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.Code)
	}

	var turn assistservice.Turn
	if err := json.Unmarshal(resp.Body.Bytes(), &turn); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if turn.Assistant.Text != "Stay indoors and call 112." {
		t.Fatalf("unexpected answer %q", turn.Assistant.Text)
	}
	if turn.Fallback {
		t.Fatal("expected completion answer")
	}
}

func TestSubmitEmptyMessage(t *testing.T) {
	r := setupRouter(&fakeClient{response: "ok"})

	resp := postMessage(t, r, map[string]string{"text": "   "})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestSubmitInvalidImageEncoding(t *testing.T) {
	r := setupRouter(&fakeClient{response: "ok"})

	resp := postMessage(t, r, map[string]string{"text": "look", "imageData": "!!!not-base64!!!"})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestSubmitFallsBackWhenCompletionFails(t *testing.T) {
	r := setupRouter(nil)

	resp := postMessage(t, r, map[string]string{"text": "fire"})
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.Code)
	}

	var turn assistservice.Turn
	if err := json.Unmarshal(resp.Body.Bytes(), &turn); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !turn.Fallback {
		t.Fatal("expected fallback answer without a client")
	}
}

func TestTranscript(t *testing.T) {
	r := setupRouter(&fakeClient{response: "ok"})
	postMessage(t, r, map[string]string{"text": "hello"})

	req := httptest.NewRequest(http.MethodGet, "/assist/transcript", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var body struct {
		Messages []json.RawMessage `json:"messages"`
		Pending  bool              `json:"pending"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(body.Messages) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(body.Messages))
	}
	if body.Pending {
		t.Fatal("no turn should be pending")
	}
}
