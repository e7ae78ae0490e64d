package models

import "time"

// UnknownPriority is shown for tasks whose priority has no row in the priorities table
const UnknownPriority = "Unknown"

// DefaultDeadlineOffset is how far ahead a new task's deadline is placed
const DefaultDeadlineOffset = 1 // months

// MaxNameLength caps task names, mirroring the form's char limit
const MaxNameLength = 255

// DefaultDeadline returns the deadline a new task starts with
func DefaultDeadline(now time.Time) time.Time {
	return now.AddDate(0, DefaultDeadlineOffset, 0).Truncate(time.Minute)
}
