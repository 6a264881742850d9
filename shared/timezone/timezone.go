package timezone

import (
	"time"

	"halachi/config"
	"halachi/shared/constant"

	"github.com/rs/zerolog/log"
)

var (
	appLocation = time.UTC
	clock       = time.Now
)

// Init loads the configured IANA location, falling back to UTC.
func Init(cfg *config.Config) {
	name := cfg.App.Timezone
	if name == "" {
		log.Warn().Msg("No timezone configured, using UTC as default")

		name = "UTC"
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Error().
			Err(err).
			Str("timezone", name).
			Msg("Failed to load timezone, falling back to UTC")

		appLocation = time.UTC

		return
	}

	appLocation = loc
	log.Info().Str("timezone", loc.String()).Msg("Application timezone initialized")
}

// Now returns the current time in the application timezone.
func Now() time.Time {
	return clock().In(appLocation)
}

// Stamp formats the current time for created_at fields.
func Stamp() string {
	return Format(Now())
}

// Format renders t in the application timezone using the data file layout.
func Format(t time.Time) string {
	return t.In(appLocation).Format(constant.DateFormat)
}

// Parse accepts any RFC 3339 timestamp, with or without fractional seconds.
func Parse(value string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, value)
}

// SetClock replaces the time source and returns a function restoring the previous one.
func SetClock(fn func() time.Time) (restore func()) {
	previous := clock
	clock = fn

	return func() { clock = previous }
}

// GetLocation returns the current application timezone location.
func GetLocation() *time.Location {
	return appLocation
}
