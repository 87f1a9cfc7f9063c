package model

// User is a registered attendee. Immutable after registration.
type User struct {
	ID               string   `json:"user_id"`
	InterestedTopics []string `json:"interested_topics"`
}

// Clone returns a copy safe for unsynchronized readers.
func (u *User) Clone() *User {
	out := *u
	out.InterestedTopics = append([]string(nil), u.InterestedTopics...)
	return &out
}
