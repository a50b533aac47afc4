package sqlite

import "time"

// Clock abstracts timestamp assignment so repository tests can control time.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// nowMillis returns the clock reading as epoch milliseconds, the unit all
// stored timestamps use.
func nowMillis(clock Clock) int64 {
	return clock.Now().UnixMilli()
}
