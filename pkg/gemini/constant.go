package gemini

import "time"

const (
	// DefaultModel is used when Config.Model is empty.
	DefaultModel = "gemini-2.5-flash"

	// DefaultTimeout bounds one HTTP round trip.
	DefaultTimeout = 30 * time.Second
)
