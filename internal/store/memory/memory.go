// Package memory holds an in-process RecordStore used by tests and by
// importctl's dry-run mode.
package memory

import (
	"context"
	"sync"

	"caseimport-service/internal/store"
)

type Store struct {
	mu      sync.Mutex
	firms   map[string]string // userID -> firmID
	clients map[string][]store.Client
	cases   []store.CaseRecord

	// FailInsert, when set, is consulted before every insert; a non-nil
	// return rejects the record the way a constraint violation would.
	FailInsert func(rec store.CaseRecord) error
}

func New() *Store {
	return &Store{
		firms:   make(map[string]string),
		clients: make(map[string][]store.Client),
	}
}

func (s *Store) AddTeamMember(userID, firmID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.firms[userID] = firmID
}

func (s *Store) AddClient(c store.Client) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clients[c.FirmID] = append(s.clients[c.FirmID], c)
}

func (s *Store) FirmForUser(_ context.Context, userID string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	firmID, ok := s.firms[userID]
	if !ok {
		return "", store.ErrNoFirm
	}
	return firmID, nil
}

func (s *Store) ClientsByFirm(_ context.Context, firmID string) ([]store.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]store.Client, len(s.clients[firmID]))
	copy(out, s.clients[firmID])
	return out, nil
}

func (s *Store) InsertCase(_ context.Context, rec store.CaseRecord) error {
	s.mu.Lock()
	fail := s.FailInsert
	s.mu.Unlock()
	if fail != nil {
		if err := fail(rec); err != nil {
			return err
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cases = append(s.cases, rec)
	return nil
}

// Cases returns a copy of everything inserted so far.
func (s *Store) Cases() []store.CaseRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]store.CaseRecord, len(s.cases))
	copy(out, s.cases)
	return out
}
