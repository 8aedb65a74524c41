package input

import (
	"context"
	"sync"
)

// NoopRecognizer stands in when no recognition capability is present. The
// adapter silently degrades: Start never produces a session.
type NoopRecognizer struct{}

func (NoopRecognizer) Supported() bool { return false }

func (NoopRecognizer) Start(context.Context, string) (Session, error) {
	return nil, nil
}

// PushRecognizer is fed recognition results from outside — in production by
// the browser client over the voice WebSocket, in tests directly.
type PushRecognizer struct {
	mu      sync.Mutex
	session *pushSession
}

// NewPushRecognizer creates an externally-fed recognizer.
func NewPushRecognizer() *PushRecognizer {
	return &PushRecognizer{}
}

func (r *PushRecognizer) Supported() bool { return true }

// Start opens a session. Only one session is live at a time; starting again
// ends the previous one.
func (r *PushRecognizer) Start(ctx context.Context, locale string) (Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.session != nil {
		r.session.Stop()
	}

	s := &pushSession{
		results: make(chan Result, 16),
	}
	s.stopOnce = sync.OnceFunc(func() { close(s.results) })
	r.session = s
	return s, nil
}

// Push delivers one recognition result into the live session and reports
// whether a session accepted it. Results pushed while no session is live are
// dropped.
func (r *PushRecognizer) Push(result Result) bool {
	r.mu.Lock()
	session := r.session
	r.mu.Unlock()

	if session == nil {
		return false
	}
	return session.push(result)
}

// End closes the live session, as when the remote capability reports onend.
func (r *PushRecognizer) End() {
	r.mu.Lock()
	session := r.session
	r.session = nil
	r.mu.Unlock()

	if session != nil {
		session.Stop()
	}
}

type pushSession struct {
	mu       sync.Mutex
	results  chan Result
	stopped  bool
	stopOnce func()
}

func (s *pushSession) Results() <-chan Result { return s.results }

func (s *pushSession) Stop() {
	s.mu.Lock()
	s.stopped = true
	s.mu.Unlock()
	s.stopOnce()
}

func (s *pushSession) push(result Result) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return false
	}
	select {
	case s.results <- result:
		return true
	default:
		// Drop rather than block the feeder when the consumer stalls.
		return false
	}
}
