// Package contacts persists the user's family emergency contacts. The whole
// list is written as one JSON value under one durable key on every mutation;
// the list is small and the single key keeps reads and rollbacks trivial.
package contacts

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/civishield/civi-shield/backend/internal/model/contact"
)

const storageKey = "familyEmergencyContacts"

var (
	ErrNameRequired   = errors.New("contact name is required")
	ErrNumberRequired = errors.New("contact number is required")
	ErrNotFound       = errors.New("contact not found")
)

// Store is the durable, ordered contact collection. Single writer; no
// uniqueness constraints beyond the generated id.
type Store struct {
	mu       sync.Mutex
	db       *sql.DB
	contacts []contact.FamilyContact
}

// Open creates or opens the store at path and loads the persisted list.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open contact store: %w", err)
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS kv (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("init contact store: %w", err)
	}

	s := &Store{db: db}
	if err := s.load(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close releases the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// List returns a copy of the contact list in insertion order.
func (s *Store) List() []contact.FamilyContact {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]contact.FamilyContact(nil), s.contacts...)
}

// Add appends a new contact. Name and number must be non-empty; duplicates
// are allowed.
func (s *Store) Add(name, number, relationship string) (contact.FamilyContact, error) {
	name = strings.TrimSpace(name)
	number = strings.TrimSpace(number)
	if name == "" {
		return contact.FamilyContact{}, ErrNameRequired
	}
	if number == "" {
		return contact.FamilyContact{}, ErrNumberRequired
	}

	c := contact.FamilyContact{
		ID:           uuid.NewString(),
		Name:         name,
		Number:       number,
		Relationship: strings.TrimSpace(relationship),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.contacts = append(s.contacts, c)
	if err := s.persistLocked(); err != nil {
		s.contacts = s.contacts[:len(s.contacts)-1]
		return contact.FamilyContact{}, err
	}
	return c, nil
}

// Update replaces the named fields of the contact with the given id.
func (s *Store) Update(id, name, number, relationship string) (contact.FamilyContact, error) {
	name = strings.TrimSpace(name)
	number = strings.TrimSpace(number)
	if name == "" {
		return contact.FamilyContact{}, ErrNameRequired
	}
	if number == "" {
		return contact.FamilyContact{}, ErrNumberRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.contacts {
		if s.contacts[i].ID != id {
			continue
		}
		previous := s.contacts[i]
		s.contacts[i].Name = name
		s.contacts[i].Number = number
		s.contacts[i].Relationship = strings.TrimSpace(relationship)
		if err := s.persistLocked(); err != nil {
			s.contacts[i] = previous
			return contact.FamilyContact{}, err
		}
		return s.contacts[i], nil
	}
	return contact.FamilyContact{}, ErrNotFound
}

// Delete removes the contact with the given id. Deleting an unknown id is
// not an error.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.contacts {
		if s.contacts[i].ID != id {
			continue
		}
		previous := append([]contact.FamilyContact(nil), s.contacts...)
		s.contacts = append(s.contacts[:i:i], s.contacts[i+1:]...)
		if err := s.persistLocked(); err != nil {
			s.contacts = previous
			return err
		}
		return nil
	}
	return nil
}

func (s *Store) load() error {
	var raw string
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, storageKey).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		s.contacts = nil
		return nil
	}
	if err != nil {
		return fmt.Errorf("load contacts: %w", err)
	}

	var contacts []contact.FamilyContact
	if err := json.Unmarshal([]byte(raw), &contacts); err != nil {
		return fmt.Errorf("decode contacts: %w", err)
	}
	s.contacts = contacts
	return nil
}

func (s *Store) persistLocked() error {
	payload, err := json.Marshal(s.contacts)
	if err != nil {
		return fmt.Errorf("encode contacts: %w", err)
	}

	_, err = s.db.Exec(
		`INSERT INTO kv(key, value) VALUES(?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		storageKey, string(payload),
	)
	if err != nil {
		return fmt.Errorf("persist contacts: %w", err)
	}
	return nil
}
