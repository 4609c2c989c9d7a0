package mappers

import "time"

// Persistence stores timestamps as unix milliseconds.
func millisToTime(ms int64) time.Time {
	return time.UnixMilli(ms)
}

func timeToMillis(t time.Time) int64 {
	return t.UnixMilli()
}
