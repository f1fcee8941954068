package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatTimestamp(t *testing.T) {
	moscow := time.FixedZone("MSK", 3*3600)

	assert.Equal(t, "2024-02-29T21:00:59Z", FormatTimestamp(time.Date(2024, 3, 1, 0, 0, 59, 999999999, moscow)))
	assert.Equal(t, "1999-12-31T23:59:59Z", FormatTimestamp(time.Date(1999, 12, 31, 23, 59, 59, 1, time.UTC)))
}

func TestClock_Timestamp(t *testing.T) {
	fixed := Clock(func() time.Time { return time.Date(2024, 1, 2, 3, 4, 5, 6, time.UTC) })
	assert.Equal(t, "2024-01-02T03:04:05Z", fixed.Timestamp())

	var system Clock
	ts, err := time.Parse(TimestampLayout, system.Timestamp())
	assert.NoError(t, err)
	assert.WithinDuration(t, time.Now().UTC(), ts, 2*time.Second)
}
