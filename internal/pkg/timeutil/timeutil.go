package timeutil

import "time"

// MonthBounds returns the first and last day of (month, year) in loc, both at
// midnight.
func MonthBounds(month, year int, loc *time.Location) (time.Time, time.Time) {
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, loc)
	last := first.AddDate(0, 1, -1)
	return first, last
}

// CombineDateTime anchors the wall-clock portion of clock onto date's
// calendar day in loc.
func CombineDateTime(date, clock time.Time, loc *time.Location) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(),
		clock.Hour(), clock.Minute(), clock.Second(), 0, loc)
}

// Midnight truncates t to the start of its calendar day in loc.
func Midnight(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// WeekdaySet expands an inclusive weekday range into a membership set. The
// range wraps: start=Friday end=Monday yields {Fri, Sat, Sun, Mon}.
func WeekdaySet(start, end time.Weekday) map[time.Weekday]bool {
	set := make(map[time.Weekday]bool, 7)
	d := start
	for {
		set[d] = true
		if d == end {
			break
		}
		d = (d + 1) % 7
	}
	return set
}

// DatesBetween returns every calendar day from from to to inclusive. Both
// are treated as midnight-of-day markers; an empty slice is returned when
// from is after to.
func DatesBetween(from, to time.Time) []time.Time {
	var days []time.Time
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// DateKey formats t as its canonical map key, "2006-01-02".
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}
