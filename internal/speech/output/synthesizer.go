package output

import "sync"

// NoopSynthesizer stands in when no synthesis capability is present; every
// adapter operation silently degrades to a no-op.
type NoopSynthesizer struct{}

func (NoopSynthesizer) Supported() bool  { return false }
func (NoopSynthesizer) Voices() []string { return nil }
func (NoopSynthesizer) Speak(Utterance)  {}
func (NoopSynthesizer) Pause()           {}
func (NoopSynthesizer) Resume()          {}
func (NoopSynthesizer) Cancel()          {}

// Directive is one playback instruction streamed to the page, which owns the
// actual audio device. The confirm type carries an ID the page answers with
// and the length of the narration being held.
type Directive struct {
	Type      string     `json:"type"` // speak, pause, resume, cancel, confirm
	Utterance *Utterance `json:"utterance,omitempty"`
	ConfirmID string     `json:"confirmId,omitempty"`
	Length    int        `json:"length,omitempty"`
}

// DirectiveSynthesizer implements Synthesizer by broadcasting playback
// directives to subscribed listeners (the speech SSE stream). The browser
// reports its available voices back through SetVoices.
type DirectiveSynthesizer struct {
	mu     sync.Mutex
	voices []string
	subs   []chan Directive
}

// NewDirectiveSynthesizer creates a synthesizer with no listeners yet.
func NewDirectiveSynthesizer() *DirectiveSynthesizer {
	return &DirectiveSynthesizer{}
}

func (d *DirectiveSynthesizer) Supported() bool { return true }

// SetVoices replaces the voice list reported by the client.
func (d *DirectiveSynthesizer) SetVoices(voices []string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.voices = append([]string(nil), voices...)
}

func (d *DirectiveSynthesizer) Voices() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]string(nil), d.voices...)
}

// Subscribe registers a listener for playback directives. The returned
// cancel function must be called when the listener goes away.
func (d *DirectiveSynthesizer) Subscribe() (<-chan Directive, func()) {
	ch := make(chan Directive, 8)

	d.mu.Lock()
	d.subs = append(d.subs, ch)
	d.mu.Unlock()

	cancel := func() {
		d.mu.Lock()
		defer d.mu.Unlock()
		for i, sub := range d.subs {
			if sub == ch {
				d.subs = append(d.subs[:i], d.subs[i+1:]...)
				break
			}
		}
	}
	return ch, cancel
}

func (d *DirectiveSynthesizer) Speak(u Utterance) {
	d.broadcast(Directive{Type: "speak", Utterance: &u})
}

func (d *DirectiveSynthesizer) Pause()  { d.broadcast(Directive{Type: "pause"}) }
func (d *DirectiveSynthesizer) Resume() { d.broadcast(Directive{Type: "resume"}) }
func (d *DirectiveSynthesizer) Cancel() { d.broadcast(Directive{Type: "cancel"}) }

// AskConfirm asks the page whether a long narration should be read aloud.
func (d *DirectiveSynthesizer) AskConfirm(id string, length int) {
	d.broadcast(Directive{Type: "confirm", ConfirmID: id, Length: length})
}

func (d *DirectiveSynthesizer) broadcast(directive Directive) {
	d.mu.Lock()
	subs := append([]chan Directive(nil), d.subs...)
	d.mu.Unlock()

	for _, sub := range subs {
		select {
		case sub <- directive:
		default:
			// Slow listeners miss directives rather than stall playback.
		}
	}
}
