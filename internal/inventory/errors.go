package inventory

import "errors"

var (
	ErrConferenceNotFound = errors.New("conference not found")

	ErrUserNotFound = errors.New("user not found")

	ErrDuplicateConference = errors.New("conference name already registered")

	ErrDuplicateUser = errors.New("user ID already registered")

	ErrSlotsOutOfRange = errors.New("available slots out of 0..capacity range")

	ErrEmptyWaitlist = errors.New("waitlist is empty")
)
