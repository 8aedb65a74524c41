// Package assist drives the conversational turn loop: user submission,
// completion call, offline fallback, and optional narration.
package assist

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/civishield/civi-shield/backend/internal/bus"
	"github.com/civishield/civi-shield/backend/internal/model/chat"
	"github.com/civishield/civi-shield/backend/internal/model/location"
	"github.com/civishield/civi-shield/backend/internal/service/ai"
)

// aiConfidence is attached to every endpoint-produced answer; the endpoint
// exposes no real confidence signal.
const aiConfidence = 0.95

var (
	ErrEmptySubmission = errors.New("text or image is required")
	ErrTurnPending     = errors.New("a response is already pending")
)

// Narrator speaks assistant answers aloud. The speech output adapter decides
// whether and how to play them.
type Narrator interface {
	Narrate(text string)
}

// Turn is one completed user/assistant exchange.
type Turn struct {
	User      chat.Message `json:"user"`
	Assistant chat.Message `json:"assistant"`
	Fallback  bool         `json:"fallback"`
}

// Service owns the conversation transcript and the turn state machine. At
// most one completion request is outstanding at a time.
type Service struct {
	mu       sync.Mutex
	client   ai.Client
	state    *bus.Broadcaster
	narrator Narrator
	messages []chat.Message
	pending  bool
}

// NewService creates the orchestrator. client may be nil, in which case every
// turn answers from the offline fallback.
func NewService(client ai.Client, state *bus.Broadcaster) *Service {
	return &Service{
		client:   client,
		state:    state,
		messages: make([]chat.Message, 0, 16),
	}
}

// SetNarrator wires the speech output adapter after construction.
func (s *Service) SetNarrator(n Narrator) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.narrator = n
}

// Submit runs one conversation turn. The user message is appended
// immediately; the assistant answer comes from the completion endpoint or,
// on any failure, from the deterministic keyword fallback. Failures are
// never surfaced into the transcript.
func (s *Service) Submit(ctx context.Context, text string, image *ai.InlineImage) (Turn, error) {
	text = strings.TrimSpace(text)
	if text == "" && image == nil {
		return Turn{}, ErrEmptySubmission
	}

	languageCode := s.state.Language()
	loc := s.state.Location()

	userMsg := chat.Message{
		ID:        uuid.NewString(),
		Text:      text,
		Sender:    chat.SenderUser,
		Timestamp: time.Now().UTC(),
		Language:  languageCode,
	}
	if image != nil {
		userMsg.ImageRef = image.MIMEType
	}

	s.mu.Lock()
	if s.pending {
		s.mu.Unlock()
		return Turn{}, ErrTurnPending
	}
	s.pending = true
	s.messages = append(s.messages, userMsg)
	s.mu.Unlock()

	responseText, confidence, usedFallback := s.answer(ctx, text, languageCode, loc, image)

	assistantMsg := chat.Message{
		ID:         uuid.NewString(),
		Text:       responseText,
		Sender:     chat.SenderAssistant,
		Timestamp:  time.Now().UTC(),
		Language:   languageCode,
		Confidence: confidence,
	}

	s.mu.Lock()
	s.pending = false
	s.messages = append(s.messages, assistantMsg)
	narrator := s.narrator
	s.mu.Unlock()

	if narrator != nil {
		narrator.Narrate(responseText)
	}

	return Turn{User: userMsg, Assistant: assistantMsg, Fallback: usedFallback}, nil
}

func (s *Service) answer(ctx context.Context, text, languageCode string, loc location.Data, image *ai.InlineImage) (string, float64, bool) {
	if s.client != nil {
		prompt := buildPrompt(text, languageCode, loc)
		responseText, err := s.client.Complete(ctx, prompt, image)
		if err == nil {
			return responseText, aiConfidence, false
		}
		log.Printf("[assist] completion failed, using offline fallback: %v", err)
	}

	answer := Fallback(text, languageCode, loc)
	return answer.Text, answer.Confidence, true
}

// Transcript returns a copy of the conversation so far.
func (s *Service) Transcript() []chat.Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := make([]chat.Message, len(s.messages))
	copy(copied, s.messages)
	return copied
}

// Pending reports whether a completion request is outstanding.
func (s *Service) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending
}
