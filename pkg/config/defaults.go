package config

import "time"

const (
	DefaultPort     = "8080"
	DefaultLogLevel = "info"

	DefaultRequestTimeout = 30 * time.Second
	DefaultMaxRequestSize = 1 * 1024 * 1024 // 1MB

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second

	// DefaultConfirmationWindow is how long a promoted booking may sit in
	// confirmable before it is demoted back to the waitlist tail.
	DefaultConfirmationWindow = 1 * time.Hour

	DefaultKafkaTopic = "confbook.bookings"

	DefaultSuggestionLimit = 10
)
