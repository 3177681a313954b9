package leave

import "time"

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// BusinessDays counts Monday to Friday dates in [start, end], both ends
// included. Holidays are not excluded. Returns 0 when end is before start.
func BusinessDays(start, end time.Time) int {
	start, end = dateOnly(start), dateOnly(end)
	if end.Before(start) {
		return 0
	}

	// end+1 day keeps the range half-open
	days := int(end.AddDate(0, 0, 1).Sub(start).Hours() / 24)
	weeks, rest := days/7, days%7
	count := weeks * 5

	wd := start.Weekday()
	for i := 0; i < rest; i++ {
		if wd != time.Saturday && wd != time.Sunday {
			count++
		}
		wd = (wd + 1) % 7
	}
	return count
}
