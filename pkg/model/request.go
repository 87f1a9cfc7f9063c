package model

import "time"

// CreateConferenceRequest is the registration payload for a new conference.
// Name and Location allow only alphanumerics and spaces, matching the
// name_chars rule registered by the request validator.
type CreateConferenceRequest struct {
	Name      string    `json:"name" validate:"required,min=1,max=100,name_chars"`
	Location  string    `json:"location" validate:"required,min=1,max=100,name_chars"`
	Topics    []string  `json:"topics" validate:"required,min=1,dive,required"`
	StartTime time.Time `json:"start_time" validate:"required"`
	EndTime   time.Time `json:"end_time" validate:"required"`
	Capacity  int       `json:"capacity" validate:"required"`
}

type CreateUserRequest struct {
	UserID           string   `json:"user_id" validate:"required,min=1,max=100,name_chars"`
	InterestedTopics []string `json:"interested_topics" validate:"required,min=1,dive,required"`
}

type BookRequest struct {
	ConferenceID string `json:"conference_id" validate:"required"`
	UserID       string `json:"user_id" validate:"required"`
}
