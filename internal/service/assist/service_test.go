package assist

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/civishield/civi-shield/backend/internal/bus"
	"github.com/civishield/civi-shield/backend/internal/model/chat"
	"github.com/civishield/civi-shield/backend/internal/service/ai"
)

type fakeClient struct {
	response string
	err      error
	started  chan struct{}
	release  chan struct{}
	prompts  []string
}

func (f *fakeClient) Complete(ctx context.Context, prompt string, image *ai.InlineImage) (string, error) {
	f.prompts = append(f.prompts, prompt)
	if f.started != nil {
		close(f.started)
	}
	if f.release != nil {
		<-f.release
	}
	return f.response, f.err
}

type fakeNarrator struct {
	spoken []string
}

func (f *fakeNarrator) Narrate(text string) {
	f.spoken = append(f.spoken, text)
}

func TestSubmitRejectsEmpty(t *testing.T) {
	svc := NewService(nil, bus.New())

	if _, err := svc.Submit(context.Background(), "   ", nil); !errors.Is(err, ErrEmptySubmission) {
		t.Fatalf("expected ErrEmptySubmission, got %v", err)
	}
	if len(svc.Transcript()) != 0 {
		t.Fatal("empty submission must not touch the transcript")
	}
}

func TestSubmitImageOnlyAllowed(t *testing.T) {
	client := &fakeClient{response: "I can see the image."}
	svc := NewService(client, bus.New())

	turn, err := svc.Submit(context.Background(), "", &ai.InlineImage{MIMEType: "image/png", Data: []byte{1}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if turn.Assistant.Text != "I can see the image." {
		t.Fatalf("unexpected answer %q", turn.Assistant.Text)
	}
}

func TestSubmitUsesCompletion(t *testing.T) {
	client := &fakeClient{response: "Stay calm and call 112."}
	svc := NewService(client, bus.New())

	turn, err := svc.Submit(context.Background(), "what should I do", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if turn.Fallback {
		t.Fatal("expected a completion answer, got fallback")
	}
	if turn.Assistant.Confidence != 0.95 {
		t.Fatalf("expected confidence 0.95, got %v", turn.Assistant.Confidence)
	}
	if turn.Assistant.Sender != chat.SenderAssistant {
		t.Fatalf("unexpected sender %q", turn.Assistant.Sender)
	}

	messages := svc.Transcript()
	if len(messages) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(messages))
	}
	if messages[0].Sender != chat.SenderUser || messages[1].Sender != chat.SenderAssistant {
		t.Fatal("transcript order must be user then assistant")
	}
}

func TestSubmitFallsBackOnFailure(t *testing.T) {
	client := &fakeClient{err: errors.New("endpoint down")}
	state := bus.New()
	svc := NewService(client, state)

	turn, err := svc.Submit(context.Background(), "fire in the building", nil)
	if err != nil {
		t.Fatalf("completion failure must not surface: %v", err)
	}

	if !turn.Fallback {
		t.Fatal("expected fallback answer")
	}
	if turn.Assistant.Confidence != 0.9 {
		t.Fatalf("expected matched confidence 0.9, got %v", turn.Assistant.Confidence)
	}
	if !strings.Contains(turn.Assistant.Text, "Call 101") {
		t.Fatalf("expected fire guidance, got %q", turn.Assistant.Text)
	}
}

func TestSubmitWithoutClientUsesFallback(t *testing.T) {
	svc := NewService(nil, bus.New())

	turn, err := svc.Submit(context.Background(), "random question", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !turn.Fallback || turn.Assistant.Confidence != 0.7 {
		t.Fatalf("expected generic fallback, got fallback=%v confidence=%v", turn.Fallback, turn.Assistant.Confidence)
	}
}

func TestSubmitRejectsConcurrentTurn(t *testing.T) {
	client := &fakeClient{response: "ok", started: make(chan struct{}), release: make(chan struct{})}
	svc := NewService(client, bus.New())

	done := make(chan struct{})
	go func() {
		defer close(done)
		if _, err := svc.Submit(context.Background(), "first", nil); err != nil {
			t.Errorf("first submit failed: %v", err)
		}
	}()

	<-client.started

	if _, err := svc.Submit(context.Background(), "second", nil); !errors.Is(err, ErrTurnPending) {
		t.Fatalf("expected ErrTurnPending, got %v", err)
	}

	close(client.release)
	<-done

	if svc.Pending() {
		t.Fatal("pending must clear after the turn completes")
	}
}

func TestSubmitUsesSelectedLanguage(t *testing.T) {
	state := bus.New()
	state.SetLanguage("hi")
	svc := NewService(nil, state)

	turn, err := svc.Submit(context.Background(), "fire", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if turn.Assistant.Language != "hi" {
		t.Fatalf("expected hi answer language, got %q", turn.Assistant.Language)
	}
	if !strings.Contains(turn.Assistant.Text, "101 पर कॉल करें") {
		t.Fatalf("expected hindi template, got %q", turn.Assistant.Text)
	}
}

func TestSubmitNarratesAnswer(t *testing.T) {
	client := &fakeClient{response: "Move to safety."}
	narrator := &fakeNarrator{}
	svc := NewService(client, bus.New())
	svc.SetNarrator(narrator)

	if _, err := svc.Submit(context.Background(), "earthquake", nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(narrator.spoken) != 1 || narrator.spoken[0] != "Move to safety." {
		t.Fatalf("expected narration of the answer, got %v", narrator.spoken)
	}
}

func TestPromptCarriesLanguageAndLocation(t *testing.T) {
	client := &fakeClient{response: "ok"}
	state := bus.New()
	state.SetLanguage("ta")
	svc := NewService(client, state)

	if _, err := svc.Submit(context.Background(), "flood near me", nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(client.prompts) != 1 {
		t.Fatalf("expected 1 prompt, got %d", len(client.prompts))
	}
	prompt := client.prompts[0]
	if !strings.Contains(prompt, "flood near me") {
		t.Fatalf("prompt missing query: %q", prompt)
	}
	if !strings.Contains(prompt, "Tamil") {
		t.Fatalf("prompt missing language instruction: %q", prompt)
	}
}
