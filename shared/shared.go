package shared

import (
	"math"
	"strconv"
	"strings"
	"time"

	"halachi/shared/timezone"

	"github.com/google/uuid"
)

const cacheKeySeparator = ":"

// BuildCacheKey joins the non-empty parts with colons.
func BuildCacheKey(prefix string, parts ...string) string {
	key := []string{prefix}

	for _, part := range parts {
		if part != "" {
			key = append(key, part)
		}
	}

	return strings.Join(key, cacheKeySeparator)
}

// TimeToken renders t as a base36 millisecond counter, the id format of the data files.
func TimeToken(t time.Time) string {
	return strconv.FormatInt(t.UnixMilli(), 36)
}

// NewTimeID returns prefix followed by the current time token.
func NewTimeID(prefix string) string {
	return prefix + TimeToken(timezone.Now())
}

// RandomSuffix returns n hex characters taken from a random UUID.
func RandomSuffix(n int) string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	if n <= 0 || n > len(raw) {
		return raw
	}

	return raw[:n]
}

// RoundTo rounds v to the given number of decimal places.
func RoundTo(v float64, places int) float64 {
	pow := math.Pow10(places)

	return math.Round(v*pow) / pow
}
