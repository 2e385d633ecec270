package roundutil

import "time"

// Clock abstracts the wall clock so hole and round timestamps can be pinned in tests.
type Clock interface {
	Now() time.Time
}

// RealClock reads the system clock in UTC.
type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now().UTC() }
