// Package inventory is the in-memory store of conferences and users.
//
// The store enforces only record-local invariants (slot bounds, duplicate
// ids). Cross-record rules and the read-check-write sequences that span the
// booking ledger belong to the coordinator, which is the sole mutator of
// conference records. The internal RWMutex exists so that unsynchronized
// readers (status, search, suggest) always see whole records, never a
// half-applied mutation.
package inventory

import (
	"sync"

	"confbook/pkg/model"
)

type Store struct {
	mu          sync.RWMutex
	conferences map[string]*model.Conference
	users       map[string]*model.User
	order       []string // conference names in registration order
}

func NewStore() *Store {
	return &Store{
		conferences: make(map[string]*model.Conference),
		users:       make(map[string]*model.User),
	}
}

func (s *Store) AddConference(c *model.Conference) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.conferences[c.Name]; ok {
		return ErrDuplicateConference
	}
	s.conferences[c.Name] = c.Clone()
	s.order = append(s.order, c.Name)
	return nil
}

func (s *Store) AddUser(u *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[u.ID]; ok {
		return ErrDuplicateUser
	}
	s.users[u.ID] = u.Clone()
	return nil
}

// ConferenceSnapshot returns a copy of the conference record. Within the
// coordinator's exclusion the snapshot is exact; outside it, it is an atomic
// per-record read.
func (s *Store) ConferenceSnapshot(name string) (*model.Conference, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.conferences[name]
	if !ok {
		return nil, ErrConferenceNotFound
	}
	return c.Clone(), nil
}

func (s *Store) User(id string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	return u.Clone(), nil
}

// Conferences returns snapshots of every conference in registration order.
func (s *Store) Conferences() []*model.Conference {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*model.Conference, 0, len(s.order))
	for _, name := range s.order {
		out = append(out, s.conferences[name].Clone())
	}
	return out
}

// AdjustSlots moves AvailableSlots by delta, rejecting any move that would
// leave the count outside [0, Capacity]. Called only under the coordinator's
// exclusion.
func (s *Store) AdjustSlots(name string, delta int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.conferences[name]
	if !ok {
		return ErrConferenceNotFound
	}
	next := c.AvailableSlots + delta
	if next < 0 || next > c.Capacity {
		return ErrSlotsOutOfRange
	}
	c.AvailableSlots = next
	return nil
}

// EnqueueWaitlist appends an entry at the tail of the conference waitlist.
func (s *Store) EnqueueWaitlist(name string, entry model.WaitlistEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.conferences[name]
	if !ok {
		return ErrConferenceNotFound
	}
	c.Waitlist = append(c.Waitlist, entry)
	return nil
}

// PopWaitlistHead removes and returns the head entry.
func (s *Store) PopWaitlistHead(name string) (model.WaitlistEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.conferences[name]
	if !ok {
		return model.WaitlistEntry{}, ErrConferenceNotFound
	}
	if len(c.Waitlist) == 0 {
		return model.WaitlistEntry{}, ErrEmptyWaitlist
	}
	head := c.Waitlist[0]
	c.Waitlist = append(c.Waitlist[:0:0], c.Waitlist[1:]...)
	return head, nil
}

// RemoveWaitlistEntry drops the entry for bookingID, if present. Reports
// whether an entry was removed.
func (s *Store) RemoveWaitlistEntry(name, bookingID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.conferences[name]
	if !ok {
		return false, ErrConferenceNotFound
	}
	for i, e := range c.Waitlist {
		if e.BookingID == bookingID {
			c.Waitlist = append(c.Waitlist[:i:i], c.Waitlist[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}
