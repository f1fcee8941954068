package utils

import "time"

// TimestampLayout is the wire and storage format of every created_at value.
const TimestampLayout = "2006-01-02T15:04:05Z"

// Clock supplies wall-clock time. A nil Clock reads time.Now.
type Clock func() time.Time

// Timestamp returns the current time in UTC, truncated to whole seconds.
func (c Clock) Timestamp() string {
	now := time.Now
	if c != nil {
		now = c
	}
	return FormatTimestamp(now())
}

func FormatTimestamp(t time.Time) string {
	return t.UTC().Truncate(time.Second).Format(TimestampLayout)
}
