package model

// BookingStatus is the lifecycle state of a booking. Canceled is terminal.
type BookingStatus string

const (
	StatusConfirmed   BookingStatus = "confirmed"
	StatusWaitlisted  BookingStatus = "waitlisted"
	StatusConfirmable BookingStatus = "confirmable"
	StatusCanceled    BookingStatus = "canceled"
)

// Valid reports whether s is one of the known booking statuses.
func (s BookingStatus) Valid() bool {
	switch s {
	case StatusConfirmed, StatusWaitlisted, StatusConfirmable, StatusCanceled:
		return true
	}
	return false
}

// Booking records one seat request against a conference. Only Status changes
// after creation; bookings are never deleted, cancellation is a transition.
type Booking struct {
	ID           string        `json:"id"`
	ConferenceID string        `json:"conference_id"`
	UserID       string        `json:"user_id"`
	Status       BookingStatus `json:"status"`
}
