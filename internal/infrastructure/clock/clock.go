package clock

import "time"

// System is the wall-clock implementation of output.Clock.
type System struct{}

func (System) Now() time.Time {
	return time.Now().UTC()
}
