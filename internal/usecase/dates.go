package usecase

import "time"

// startOfDay truncates to midnight in t's location. Truncate(24h) would cut
// at UTC midnight instead, shifting "today" for a clinic running east or
// west of it.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
