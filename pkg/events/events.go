// Package events publishes booking lifecycle events. The coordinator emits
// one event per state transition; failures are logged and absorbed, they
// never fail the operation that produced them.
package events

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	BookingConfirmed  EventType = "booking.confirmed"
	BookingWaitlisted EventType = "booking.waitlisted"
	BookingCanceled   EventType = "booking.canceled"
	BookingPromoted   EventType = "booking.promoted"
	BookingDemoted    EventType = "booking.demoted"
)

type Event struct {
	ID           string    `json:"id"`
	Type         EventType `json:"type"`
	BookingID    string    `json:"booking_id"`
	ConferenceID string    `json:"conference_id"`
	UserID       string    `json:"user_id"`
	OccurredAt   time.Time `json:"occurred_at"`
}

// NewEvent stamps the event with a fresh id and the current time.
func NewEvent(t EventType, bookingID, conferenceID, userID string) Event {
	return Event{
		ID:           uuid.NewString(),
		Type:         t,
		BookingID:    bookingID,
		ConferenceID: conferenceID,
		UserID:       userID,
		OccurredAt:   time.Now().UTC(),
	}
}

type Publisher interface {
	Publish(ctx context.Context, ev Event) error
	Close() error
}

// Noop discards every event. Used when no brokers are configured and in
// unit tests.
type Noop struct{}

func (Noop) Publish(ctx context.Context, ev Event) error { return nil }
func (Noop) Close() error                                { return nil }
