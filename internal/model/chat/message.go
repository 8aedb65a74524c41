package chat

import "time"

// Sender values for Message.
const (
	SenderUser      = "user"
	SenderAssistant = "assistant"
)

// Message is one half of a conversation turn. Messages are append-only and
// never mutated after creation; confidence is only set on assistant messages.
type Message struct {
	ID         string    `json:"id"`
	Text       string    `json:"text"`
	Sender     string    `json:"sender"`
	Timestamp  time.Time `json:"timestamp"`
	Language   string    `json:"language,omitempty"`
	Confidence float64   `json:"confidence,omitempty"`
	ImageRef   string    `json:"imageRef,omitempty"`
}
