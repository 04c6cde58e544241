package helpers

import (
	"time"

	"github.com/rs/zerolog/log"
)

// ParseDuration parses a duration string, returns default duration on error.
func ParseDuration(durationStr string, defaultDuration time.Duration) time.Duration {
	duration, err := time.ParseDuration(durationStr)
	if err != nil {
		log.Warn().Err(err).Str("durationStr", durationStr).Dur("defaultDuration", defaultDuration).Msg("Failed to parse duration string, using default")
		return defaultDuration
	}
	return duration
}

// FormatUTCISO renders a timestamp as RFC 3339 in UTC, the raw form the scan
// endpoints hand to clients.
func FormatUTCISO(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// FormatClock12h renders a timestamp as a 12-hour clock string ("3:04 PM")
// in the given location. A nil location means UTC.
func FormatClock12h(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format("3:04 PM")
}
