// Package output wraps a speech-synthesis capability into the playback state
// machine used to narrate assistant answers: cancel-before-speak, pause and
// resume, an enabled toggle, and a confirmation policy for long text.
package output

import (
	"log"
	"strings"
	"sync"
)

// State of the playback machine.
type State int

const (
	Idle State = iota
	Speaking
	Paused
)

// Utterance is one synthesis request.
type Utterance struct {
	Text   string  `json:"text"`
	Voice  string  `json:"voice,omitempty"`
	Rate   float64 `json:"rate"`
	Pitch  float64 `json:"pitch"`
	Volume float64 `json:"volume"`
}

// Synthesizer abstracts the speech-synthesis capability. Cancel, Pause and
// Resume act on whatever utterance is current; playback completion is
// reported back through Adapter.PlaybackFinished.
type Synthesizer interface {
	Supported() bool
	Voices() []string
	Speak(u Utterance)
	Pause()
	Resume()
	Cancel()
}

// femaleVoiceHints select a preferred voice, best-effort only.
var femaleVoiceHints = []string{"female", "woman"}

// Options tune every utterance the adapter produces.
type Options struct {
	Rate   float64
	Pitch  float64
	Volume float64
	// LongTextThreshold is the narration length above which the adapter asks
	// before speaking. Zero disables the policy.
	LongTextThreshold int
}

// LongTextDecider answers the "read this long text aloud?" question without
// blocking; proceed may be called from any goroutine, once.
type LongTextDecider func(text string, proceed func(accept bool))

// Adapter is the idle/speaking/paused machine over a Synthesizer.
type Adapter struct {
	synth Synthesizer
	opts  Options

	mu       sync.Mutex
	enabled  bool
	state    State
	lastText string
	decider  LongTextDecider
}

// NewAdapter creates an enabled, idle adapter.
func NewAdapter(synth Synthesizer, opts Options) *Adapter {
	return &Adapter{
		synth:   synth,
		opts:    opts,
		enabled: true,
	}
}

// Supported reports whether the underlying capability exists.
func (a *Adapter) Supported() bool {
	return a.synth != nil && a.synth.Supported()
}

// Enabled reports the global speech-output toggle.
func (a *Adapter) Enabled() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.enabled
}

// State returns the current playback state.
func (a *Adapter) State() State {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state
}

// SetLongTextDecider wires the non-blocking confirmation used by Narrate.
func (a *Adapter) SetLongTextDecider(d LongTextDecider) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.decider = d
}

// Speak starts playback of text. No-op when unsupported, disabled, or text
// is blank. Any in-flight utterance is cancelled first so audio never
// overlaps.
func (a *Adapter) Speak(text string) {
	if !a.Supported() || strings.TrimSpace(text) == "" {
		return
	}

	a.mu.Lock()
	if !a.enabled {
		a.mu.Unlock()
		return
	}
	a.lastText = text
	a.state = Speaking
	a.mu.Unlock()

	a.synth.Cancel()
	a.synth.Speak(Utterance{
		Text:   text,
		Voice:  a.chooseVoice(),
		Rate:   a.opts.Rate,
		Pitch:  a.opts.Pitch,
		Volume: a.opts.Volume,
	})
}

// Pause suspends the current utterance. Only acts while speaking.
func (a *Adapter) Pause() {
	a.mu.Lock()
	if a.state != Speaking {
		a.mu.Unlock()
		return
	}
	a.state = Paused
	a.mu.Unlock()

	a.synth.Pause()
}

// Resume continues a paused utterance. With nothing paused but a previous
// text cached, the utterance restarts from the beginning — the capability
// offers no position control, so this is the documented behavior rather
// than a true seek.
func (a *Adapter) Resume() {
	a.mu.Lock()
	switch a.state {
	case Paused:
		a.state = Speaking
		a.mu.Unlock()
		a.synth.Resume()
	case Idle:
		text := a.lastText
		a.mu.Unlock()
		if text != "" {
			a.Speak(text)
		}
	default:
		a.mu.Unlock()
	}
}

// Stop cancels playback and returns to idle. The last text stays cached for
// Resume.
func (a *Adapter) Stop() {
	a.mu.Lock()
	a.state = Idle
	a.mu.Unlock()

	a.synth.Cancel()
}

// ToggleEnabled flips the speech-output flag. Disabling while speaking or
// paused force-stops playback immediately.
func (a *Adapter) ToggleEnabled() bool {
	a.mu.Lock()
	a.enabled = !a.enabled
	enabled := a.enabled
	active := a.state != Idle
	a.mu.Unlock()

	if !enabled && active {
		a.Stop()
	}
	return enabled
}

// PlaybackFinished is called by the capability binding when an utterance
// completes naturally.
func (a *Adapter) PlaybackFinished() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.state = Idle
}

// Narrate speaks an assistant answer, asking first when the text exceeds the
// long-text threshold. Without a decider wired, long text is skipped.
func (a *Adapter) Narrate(text string) {
	if !a.Supported() || !a.Enabled() {
		return
	}

	threshold := a.opts.LongTextThreshold
	if threshold <= 0 || len([]rune(text)) <= threshold {
		a.Speak(text)
		return
	}

	a.mu.Lock()
	decider := a.decider
	a.mu.Unlock()

	if decider == nil {
		log.Printf("[speech] skipping narration of %d chars, no confirmation channel", len(text))
		return
	}

	decider(text, func(accept bool) {
		if accept {
			a.Speak(text)
		}
	})
}

func (a *Adapter) chooseVoice() string {
	voices := a.synth.Voices()
	for _, voice := range voices {
		lowered := strings.ToLower(voice)
		for _, hint := range femaleVoiceHints {
			if strings.Contains(lowered, hint) {
				return voice
			}
		}
	}
	return ""
}
