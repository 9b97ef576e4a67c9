package utility

import "time"

// CurrentTimeInMilli returns the current time as Unix milliseconds.
// All persisted timestamps (createdAt, updatedAt, fecha) use this unit.
func CurrentTimeInMilli() int64 {
	return time.Now().UnixMilli()
}
