package timezone_test

import (
	"testing"
	"time"

	"halachi/config"
	"halachi/shared/timezone"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimezoneDefaultsToUTC(t *testing.T) {
	assert.False(t, timezone.Now().IsZero())
	assert.NotNil(t, timezone.GetLocation())
}

func TestInitWithStandardLocation(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.Timezone = "Europe/Moscow"

	timezone.Init(cfg)
	defer timezone.Init(&config.Config{})

	assert.Equal(t, "Europe/Moscow", timezone.GetLocation().String())
}

func TestInitWithUnknownLocationFallsBack(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.Timezone = "Mars/Olympus"

	timezone.Init(cfg)

	assert.Equal(t, time.UTC, timezone.GetLocation())
}

func TestStampRoundTrip(t *testing.T) {
	fixed := time.Date(2026, 2, 17, 9, 30, 15, 250_000_000, time.UTC)
	restore := timezone.SetClock(func() time.Time { return fixed })
	defer restore()

	stamp := timezone.Stamp()
	assert.Equal(t, "2026-02-17T09:30:15.250Z", stamp)

	parsed, err := timezone.Parse(stamp)
	require.NoError(t, err)
	assert.True(t, parsed.Equal(fixed))
}

func TestParseAcceptsSecondsPrecision(t *testing.T) {
	parsed, err := timezone.Parse("2024-01-01T10:00:00Z")
	require.NoError(t, err)
	assert.Equal(t, 2024, parsed.Year())
}
