// Package bus holds the page-wide shared state: the selected language and the
// current location. Writes are last-write-wins and every registered listener
// is notified synchronously on the writer's goroutine.
package bus

import (
	"sync"

	"github.com/civishield/civi-shield/backend/internal/model/location"
)

// LanguageListener receives the new language code after a change.
type LanguageListener func(code string)

// LocationListener receives the new location after a change.
type LocationListener func(loc location.Data)

// Broadcaster fans language and location changes out to the services that
// depend on them.
type Broadcaster struct {
	mu           sync.RWMutex
	language     string
	location     location.Data
	langSubs     []LanguageListener
	locationSubs []LocationListener
}

// New returns a Broadcaster seeded with English and the default city.
func New() *Broadcaster {
	return &Broadcaster{
		language: "en",
		location: location.Default(),
	}
}

// Language returns the currently selected language code.
func (b *Broadcaster) Language() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.language
}

// Location returns the current location value.
func (b *Broadcaster) Location() location.Data {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.location
}

// SetLanguage stores code and notifies language subscribers.
func (b *Broadcaster) SetLanguage(code string) {
	b.mu.Lock()
	b.language = code
	subs := append([]LanguageListener(nil), b.langSubs...)
	b.mu.Unlock()

	for _, fn := range subs {
		fn(code)
	}
}

// SetLocation stores loc and notifies location subscribers.
func (b *Broadcaster) SetLocation(loc location.Data) {
	b.mu.Lock()
	b.location = loc
	subs := append([]LocationListener(nil), b.locationSubs...)
	b.mu.Unlock()

	for _, fn := range subs {
		fn(loc)
	}
}

// OnLanguageChange registers fn for future language changes.
func (b *Broadcaster) OnLanguageChange(fn LanguageListener) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.langSubs = append(b.langSubs, fn)
}

// OnLocationChange registers fn for future location changes.
func (b *Broadcaster) OnLocationChange(fn LocationListener) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.locationSubs = append(b.locationSubs, fn)
}
