// Package store owns the in-process reservation state: the active
// reservations keyed by confirmation number and the cancelled records that
// have been moved out of the active set. The two maps are disjoint by key
// at all times.
package store

import (
	"errors"
	"sync"

	"grandhorizon/internal/domain"
)

var ErrNotActive = errors.New("reservation is not in the active store")

type Store struct {
	// The lock guards the maps. Record contents are serialized by the
	// single-caller operation model, not by this lock.
	mu        sync.Mutex
	active    map[string]*domain.Reservation
	cancelled map[string]*domain.CancelledReservation
}

// New returns a store pre-seeded with the demo reservations.
func New() *Store {
	s := &Store{}
	s.Reset()
	return s
}

// Reset restores the seed data, discarding all mutations and cancellations.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.active = make(map[string]*domain.Reservation)
	s.cancelled = make(map[string]*domain.CancelledReservation)
	for _, r := range seedReservations() {
		s.active[r.Confirmation] = r
	}
}

// Get returns the live record for a canonical (uppercase) confirmation
// number. The pointer is shared with the store: caller mutations persist.
func (s *Store) Get(confirmation string) (*domain.Reservation, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.active[confirmation]
	return r, ok
}

// GetCancelled returns the cancelled record for a confirmation number.
func (s *Store) GetCancelled(confirmation string) (*domain.CancelledReservation, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.cancelled[confirmation]
	return c, ok
}

// Put inserts or replaces an active reservation.
func (s *Store) Put(r *domain.Reservation) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.active[r.Confirmation] = r
}

// Cancel atomically moves a reservation from the active map to the
// cancelled map. Both sides happen under one lock acquisition so the maps
// can never overlap or both miss the identifier.
func (s *Store) Cancel(confirmation string, rec *domain.CancelledReservation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.active[confirmation]; !ok {
		return ErrNotActive
	}
	s.cancelled[confirmation] = rec
	delete(s.active, confirmation)
	return nil
}

// ActiveCount reports the number of active reservations.
func (s *Store) ActiveCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.active)
}
