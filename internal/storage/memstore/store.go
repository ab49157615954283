// Package memstore is the zero-dependency Catalog Store used when no
// DATABASE_URL is configured. Property records and the inquiry log live for
// the process lifetime.
package memstore

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"

	"smarthjem/internal/domain"
)

type Store struct {
	mu        sync.RWMutex
	order     []string // insertion order, so listings are stable
	props     map[string]domain.Property
	inquiries []domain.Inquiry
}

// New returns a store seeded with the curated property catalog.
func New() *Store {
	s := &Store{props: make(map[string]domain.Property)}
	for _, p := range seedProperties {
		s.order = append(s.order, p.ID)
		s.props[p.ID] = p
	}
	return s
}

// Empty returns a store with no seed data. Used by tests.
func Empty() *Store {
	return &Store{props: make(map[string]domain.Property)}
}

func (s *Store) Create(ctx context.Context, p domain.Property) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.props[p.ID]; ok {
		return domain.ErrConflict
	}
	s.order = append(s.order, p.ID)
	s.props[p.ID] = p
	return nil
}

func (s *Store) Upsert(ctx context.Context, p domain.Property) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.props[p.ID]; !ok {
		s.order = append(s.order, p.ID)
	}
	s.props[p.ID] = p
	return nil
}

func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.props[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.props, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

func (s *Store) List(ctx context.Context) ([]domain.Property, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Property, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.props[id])
	}
	return out, nil
}

func (s *Store) Get(ctx context.Context, id string) (domain.Property, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.props[id]
	if !ok {
		return domain.Property{}, domain.ErrNotFound
	}
	return p, nil
}

func (s *Store) AppendContact(ctx context.Context, f domain.ContactForm) (domain.Inquiry, error) {
	return s.append(domain.InquiryContact, f)
}

func (s *Store) AppendBooking(ctx context.Context, b domain.BookingRequest) (domain.Inquiry, error) {
	return s.append(domain.InquiryBooking, b)
}

func (s *Store) append(kind domain.InquiryKind, payload any) (domain.Inquiry, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return domain.Inquiry{}, err
	}
	in := domain.Inquiry{
		ID:         uuid.NewString(),
		Kind:       kind,
		Payload:    raw,
		ReceivedAt: time.Now().UTC(),
	}
	s.mu.Lock()
	s.inquiries = append(s.inquiries, in)
	s.mu.Unlock()
	return in, nil
}

// Inquiries returns a copy of the log. Used by tests and operator tooling.
func (s *Store) Inquiries() []domain.Inquiry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Inquiry, len(s.inquiries))
	copy(out, s.inquiries)
	return out
}
