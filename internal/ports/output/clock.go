package output

import "time"

// Clock is the current-time source. Injected so time-dependent logic
// (check-in deadlines, reminder scheduling) is testable.
type Clock interface {
	Now() time.Time
}
