package common

import (
	"time"
)

// NowFunc returns the current time. The store takes one so visit timestamps
// can be pinned in tests.
type NowFunc func() time.Time

// NowUTC is the wall clock in UTC, the zone visits are stored in.
var NowUTC NowFunc = func() time.Time {
	return time.Now().UTC()
}
