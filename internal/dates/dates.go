// Package dates holds the calendar arithmetic shared by the query helpers
// and the HTTP layer. All functions that depend on "now" take it as a
// parameter so callers and tests stay deterministic.
package dates

import "time"

// Weeks run Sunday through Saturday throughout the workspace.

func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999999999, t.Location())
}

func StartOfWeek(t time.Time) time.Time {
	return StartOfDay(t.AddDate(0, 0, -int(t.Weekday())))
}

func EndOfWeek(t time.Time) time.Time {
	return EndOfDay(t.AddDate(0, 0, 6-int(t.Weekday())))
}

func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

func EndOfMonth(t time.Time) time.Time {
	return EndOfDay(StartOfMonth(t).AddDate(0, 1, -1))
}

func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

// IsOverdue reports whether the end of due's day is strictly before now.
// Something due today is never overdue until the day rolls over. A nil due
// date is never overdue.
func IsOverdue(due *time.Time, now time.Time) bool {
	if due == nil {
		return false
	}
	return EndOfDay(*due).Before(now)
}

// IsDueSoon reports whether due falls within the next daysThreshold days,
// exclusive of anything already past.
func IsDueSoon(due *time.Time, now time.Time, daysThreshold int) bool {
	if due == nil {
		return false
	}
	return due.Before(now.AddDate(0, 0, daysThreshold)) && due.After(now)
}

// CalendarDays returns the full 7-column grid for a month: every day of the
// month plus the leading and trailing days of the adjacent months needed to
// complete whole weeks. The result length is always a multiple of 7.
func CalendarDays(year int, month time.Month, loc *time.Location) []time.Time {
	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	last := first.AddDate(0, 1, -1)
	cur := StartOfWeek(first)
	end := EndOfWeek(last)

	var days []time.Time
	for !cur.After(end) {
		days = append(days, cur)
		cur = cur.AddDate(0, 0, 1)
	}
	return days
}

// RelativeLabel renders a date as the timeline group heading: Today, Tomorrow,
// Yesterday, the weekday name inside the current week, "Jan 2" inside the
// current year, and the full date otherwise.
func RelativeLabel(d, now time.Time) string {
	switch {
	case SameDay(d, now):
		return "Today"
	case SameDay(d, now.AddDate(0, 0, 1)):
		return "Tomorrow"
	case SameDay(d, now.AddDate(0, 0, -1)):
		return "Yesterday"
	case !d.Before(StartOfWeek(now)) && !d.After(EndOfWeek(now)):
		return d.Format("Monday")
	case d.Year() == now.Year():
		return d.Format("Jan 2")
	default:
		return d.Format("Jan 2, 2006")
	}
}

// CombineDateTime merges a date with an HH:mm clock string. A malformed or
// empty clock leaves the date at midnight.
func CombineDateTime(d time.Time, hhmm string) time.Time {
	clock, err := time.Parse("15:04", hhmm)
	if err != nil {
		return StartOfDay(d)
	}
	return time.Date(d.Year(), d.Month(), d.Day(), clock.Hour(), clock.Minute(), 0, 0, d.Location())
}

// ParseDate interprets the date strings submitted by forms: empty means no
// date, otherwise RFC 3339 or plain "2006-01-02".
func ParseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return &t
	}
	return nil
}
