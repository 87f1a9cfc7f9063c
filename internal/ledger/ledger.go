// Package ledger is the in-memory booking ledger. Bookings are never
// deleted; cancellation and every other lifecycle change is a status
// transition applied by the coordinator. The ledger enforces nothing across
// bookings, it only hands out records and applies status writes.
package ledger

import (
	"errors"
	"sync"

	"confbook/pkg/model"

	"github.com/google/uuid"
)

var (
	ErrNotFound = errors.New("booking not found")

	ErrInvalidStatus = errors.New("unknown booking status")
)

type Ledger struct {
	mu       sync.RWMutex
	bookings map[string]*model.Booking
	byUser   map[string][]string // user id -> booking ids, creation order
}

func NewLedger() *Ledger {
	return &Ledger{
		bookings: make(map[string]*model.Booking),
		byUser:   make(map[string][]string),
	}
}

// Create mints a booking with a fresh globally unique id.
func (l *Ledger) Create(conferenceID, userID string, status model.BookingStatus) (*model.Booking, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	b := &model.Booking{
		ID:           uuid.NewString(),
		ConferenceID: conferenceID,
		UserID:       userID,
		Status:       status,
	}
	l.bookings[b.ID] = b
	l.byUser[userID] = append(l.byUser[userID], b.ID)

	out := *b
	return &out, nil
}

func (l *Ledger) Get(id string) (*model.Booking, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	b, ok := l.bookings[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := *b
	return &out, nil
}

func (l *Ledger) SetStatus(id string, status model.BookingStatus) error {
	if !status.Valid() {
		return ErrInvalidStatus
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.bookings[id]
	if !ok {
		return ErrNotFound
	}
	b.Status = status
	return nil
}

// ConfirmedByUser returns copies of the user's confirmed bookings, the
// input to the coordinator's same-conference and overlap checks.
func (l *Ledger) ConfirmedByUser(userID string) []*model.Booking {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var out []*model.Booking
	for _, id := range l.byUser[userID] {
		if b := l.bookings[id]; b.Status == model.StatusConfirmed {
			cp := *b
			out = append(out, &cp)
		}
	}
	return out
}

// ConfirmedCount returns the number of confirmed bookings for a conference.
// Used by invariant checks in tests and the health surface.
func (l *Ledger) ConfirmedCount(conferenceID string) int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	n := 0
	for _, b := range l.bookings {
		if b.ConferenceID == conferenceID && b.Status == model.StatusConfirmed {
			n++
		}
	}
	return n
}
