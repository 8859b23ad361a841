// Package biztime centralizes time handling so that all business
// timestamps are produced in UTC.
package biztime

import "time"

// NowUTC returns the current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}
