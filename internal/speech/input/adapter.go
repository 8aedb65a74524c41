// Package input turns a raw speech-recognition capability into the listening
// state machine used for voice queries: a permanent finalized transcript, a
// replace-on-update interim preview, and silence-based auto-stop.
package input

import (
	"context"
	"log"
	"sync"
	"time"
)

// Result is one incremental recognition update. Final text is appended to
// the transcript permanently; interim text replaces the previous preview.
type Result struct {
	Text  string `json:"text"`
	Final bool   `json:"final"`
}

// Session is one live recognition stream. Results closes when the session
// ends, whether stopped explicitly or by the capability itself.
type Session interface {
	Results() <-chan Result
	Stop()
}

// Recognizer abstracts the speech-recognition capability. Unsupported
// environments return false from Supported and the adapter degrades to a
// no-op.
type Recognizer interface {
	Supported() bool
	Start(ctx context.Context, locale string) (Session, error)
}

// Adapter is the idle/listening state machine over a Recognizer.
type Adapter struct {
	recognizer    Recognizer
	silenceWindow time.Duration

	mu           sync.Mutex
	locale       string
	listening    bool
	transcript   string
	interim      string
	changed      chan struct{}
	session      Session
	silenceTimer *time.Timer
	onEnd        func(transcript string)
}

// NewAdapter creates an idle adapter. silenceWindow bounds how long the
// adapter keeps listening without a new result.
func NewAdapter(recognizer Recognizer, silenceWindow time.Duration) *Adapter {
	return &Adapter{
		recognizer:    recognizer,
		silenceWindow: silenceWindow,
		locale:        "en-IN",
	}
}

// Supported reports whether the underlying capability exists.
func (a *Adapter) Supported() bool {
	return a.recognizer != nil && a.recognizer.Supported()
}

// SetLocale stores the locale hint. It takes effect on the next Start;
// an in-flight session is not affected.
func (a *Adapter) SetLocale(locale string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if locale != "" {
		a.locale = locale
	}
}

// OnEnd registers fn, called with the finalized transcript every time a
// listening session ends.
func (a *Adapter) OnEnd(fn func(transcript string)) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.onEnd = fn
}

// Start begins listening. It is a no-op when the capability is unsupported
// or a session is already live. Both accumulators reset on start.
func (a *Adapter) Start(ctx context.Context) error {
	if !a.Supported() {
		return nil
	}

	a.mu.Lock()
	if a.listening {
		a.mu.Unlock()
		return nil
	}
	locale := a.locale
	a.mu.Unlock()

	session, err := a.recognizer.Start(ctx, locale)
	if err != nil {
		return err
	}

	a.mu.Lock()
	a.listening = true
	a.transcript = ""
	a.interim = ""
	a.session = session
	a.mu.Unlock()

	go a.consume(session)
	return nil
}

// Stop cancels the silence timer and asks the capability to halt. The state
// transition to idle happens when the session's result stream closes.
func (a *Adapter) Stop() {
	a.mu.Lock()
	session := a.session
	if a.silenceTimer != nil {
		a.silenceTimer.Stop()
		a.silenceTimer = nil
	}
	a.mu.Unlock()

	if session != nil {
		session.Stop()
	}
}

// Snapshot returns the current transcript, interim preview, and whether the
// adapter is listening.
func (a *Adapter) Snapshot() (transcript, interim string, listening bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.transcript, a.interim, a.listening
}

// NextChange returns a channel closed after the next state change, letting a
// feeder wait for its own push to fold in before reading a snapshot. Grab
// the channel before pushing.
func (a *Adapter) NextChange() <-chan struct{} {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.changed == nil {
		a.changed = make(chan struct{})
	}
	return a.changed
}

func (a *Adapter) notifyChangeLocked() {
	if a.changed != nil {
		close(a.changed)
		a.changed = nil
	}
}

func (a *Adapter) consume(session Session) {
	for result := range session.Results() {
		a.mu.Lock()
		if result.Final {
			a.transcript += result.Text
			a.interim = ""
		} else {
			a.interim = result.Text
		}
		a.notifyChangeLocked()
		a.resetSilenceTimerLocked(session)
		a.mu.Unlock()
	}

	// Session ended: drop the preview, keep the finalized transcript.
	a.mu.Lock()
	a.interim = ""
	a.listening = false
	a.session = nil
	if a.silenceTimer != nil {
		a.silenceTimer.Stop()
		a.silenceTimer = nil
	}
	a.notifyChangeLocked()
	transcript := a.transcript
	onEnd := a.onEnd
	a.mu.Unlock()

	log.Printf("[voice] listening ended, transcript length=%d", len(transcript))
	if onEnd != nil {
		onEnd(transcript)
	}
}

func (a *Adapter) resetSilenceTimerLocked(session Session) {
	if a.silenceTimer != nil {
		a.silenceTimer.Stop()
	}
	a.silenceTimer = time.AfterFunc(a.silenceWindow, session.Stop)
}
