package model

import "time"

// WaitlistEntry is one position in a conference's FIFO waitlist.
type WaitlistEntry struct {
	BookingID  string    `json:"booking_id"`
	UserID     string    `json:"user_id"`
	EnqueuedAt time.Time `json:"enqueued_at"`
}

// Conference holds seat inventory and the waitlist for a single event.
// The conference name doubles as its identifier. AvailableSlots stays within
// [0, Capacity]; each change pairs with exactly one booking status transition.
type Conference struct {
	Name           string          `json:"name"`
	Location       string          `json:"location"`
	Topics         []string        `json:"topics"`
	StartTime      time.Time       `json:"start_time"`
	EndTime        time.Time       `json:"end_time"`
	Capacity       int             `json:"capacity"`
	AvailableSlots int             `json:"available_slots"`
	Waitlist       []WaitlistEntry `json:"waitlist"`
}

// Overlaps reports whether the conference windows intersect, endpoints
// inclusive. Covers strict containment in either direction.
func (c *Conference) Overlaps(other *Conference) bool {
	return !c.StartTime.After(other.EndTime) && !other.StartTime.After(c.EndTime)
}

// Clone returns a deep copy safe to hand to readers outside the
// coordinator's exclusion.
func (c *Conference) Clone() *Conference {
	out := *c
	out.Topics = append([]string(nil), c.Topics...)
	out.Waitlist = append([]WaitlistEntry(nil), c.Waitlist...)
	return &out
}
