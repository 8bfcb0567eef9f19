package timezone

import (
	"errors"
	"time"

	"github.com/rs/zerolog/log"
)

const DefaultTimezone = "Asia/Jakarta"

// Layouts accepted from the booking API and from datetime-local form inputs.
var apiLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.9999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

var ErrUnparsable = errors.New("unparsable timestamp")

var (
	appLocation = time.UTC
)

// Setup loads the named IANA location and makes it the application timezone.
// An empty or unknown name keeps UTC.
func Setup(name string) {
	if name == "" {
		log.Warn().Msg("No timezone configured, using UTC as default")

		return
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Error().
			Err(err).
			Str("timezone", name).
			Msg("Failed to load timezone, falling back to UTC. Please use standard timezone names like 'Asia/Jakarta', 'UTC'")

		return
	}

	appLocation = loc
	log.Info().
		Str("timezone", name).
		Str("location", loc.String()).
		Msg("Application timezone initialized")
}

// Now returns the current time in the application timezone
func Now() time.Time {
	return time.Now().In(appLocation)
}

// ToAppTime converts a time to the application timezone
func ToAppTime(t time.Time) time.Time {
	return t.In(appLocation)
}

// GetLocation returns the current application timezone location
func GetLocation() *time.Location {
	return appLocation
}

// Parse parses a time string in the application timezone
func Parse(layout, value string) (time.Time, error) {
	return time.ParseInLocation(layout, value, appLocation)
}

// ParseAPI parses a timestamp as the booking API emits it. Values without an
// offset are read in the application timezone.
func ParseAPI(value string) (time.Time, error) {
	for _, layout := range apiLayouts {
		if t, err := time.ParseInLocation(layout, value, appLocation); err == nil {
			return t, nil
		}
	}

	return time.Time{}, ErrUnparsable
}

// Format formats a time in the application timezone
func Format(t time.Time, layout string) string {
	return ToAppTime(t).Format(layout)
}
