package dates

import (
	"testing"
	"time"
)

// 2026-03-11 is a Wednesday; its week runs Sun Mar 8 through Sat Mar 14.
var wed = time.Date(2026, time.March, 11, 12, 30, 0, 0, time.UTC)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDayAndWeekBounds(t *testing.T) {
	if got := StartOfDay(wed); !got.Equal(day(2026, time.March, 11)) {
		t.Errorf("StartOfDay = %v", got)
	}
	if got := EndOfDay(wed); got.Hour() != 23 || got.Minute() != 59 || got.Nanosecond() != 999999999 {
		t.Errorf("EndOfDay = %v", got)
	}
	if got := StartOfWeek(wed); !got.Equal(day(2026, time.March, 8)) {
		t.Errorf("StartOfWeek = %v, want Sunday Mar 8", got)
	}
	if got := EndOfWeek(wed); got.Day() != 14 {
		t.Errorf("EndOfWeek day = %d, want Saturday 14", got.Day())
	}
	if got := StartOfMonth(wed); !got.Equal(day(2026, time.March, 1)) {
		t.Errorf("StartOfMonth = %v", got)
	}
	if got := EndOfMonth(wed); got.Day() != 31 {
		t.Errorf("EndOfMonth day = %d", got.Day())
	}
}

func TestIsOverdue(t *testing.T) {
	yesterday := day(2026, time.March, 10)
	today := day(2026, time.March, 11)

	tests := []struct {
		name string
		due  *time.Time
		want bool
	}{
		{"nil due date", nil, false},
		{"due yesterday", &yesterday, true},
		{"due today with time already past", &today, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsOverdue(tt.due, wed); got != tt.want {
				t.Errorf("IsOverdue = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsDueSoon(t *testing.T) {
	inTwoDays := wed.AddDate(0, 0, 2)
	inTenDays := wed.AddDate(0, 0, 10)
	past := wed.AddDate(0, 0, -2)

	if !IsDueSoon(&inTwoDays, wed, 3) {
		t.Error("due in two days should be due soon with a 3-day threshold")
	}
	if IsDueSoon(&inTenDays, wed, 3) {
		t.Error("due in ten days should not be due soon")
	}
	if IsDueSoon(&past, wed, 3) {
		t.Error("a past due date is overdue, not due soon")
	}
	if IsDueSoon(nil, wed, 3) {
		t.Error("nil due date is never due soon")
	}
}

func TestCalendarDays(t *testing.T) {
	days := CalendarDays(2026, time.March, time.UTC)

	if len(days)%7 != 0 {
		t.Fatalf("grid length %d is not a multiple of 7", len(days))
	}
	// March 2026 starts on a Sunday and ends on a Tuesday: 31 days plus 4
	// trailing April days.
	if len(days) != 35 {
		t.Errorf("len = %d, want 35", len(days))
	}
	if first := days[0]; first.Weekday() != time.Sunday {
		t.Errorf("grid starts on %v, want Sunday", first.Weekday())
	}
	if last := days[len(days)-1]; last.Month() != time.April || last.Day() != 4 {
		t.Errorf("grid ends on %v, want Apr 4", last)
	}
}

func TestRelativeLabel(t *testing.T) {
	tests := []struct {
		name string
		d    time.Time
		want string
	}{
		{"same day", day(2026, time.March, 11), "Today"},
		{"next day", day(2026, time.March, 12), "Tomorrow"},
		{"previous day", day(2026, time.March, 10), "Yesterday"},
		{"within current week", day(2026, time.March, 13), "Friday"},
		{"same year", day(2026, time.March, 20), "Mar 20"},
		{"different year", day(2025, time.December, 25), "Dec 25, 2025"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RelativeLabel(tt.d, wed); got != tt.want {
				t.Errorf("RelativeLabel = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCombineDateTime(t *testing.T) {
	d := day(2026, time.March, 11)

	got := CombineDateTime(d, "09:30")
	if got.Hour() != 9 || got.Minute() != 30 {
		t.Errorf("CombineDateTime = %v", got)
	}
	if got := CombineDateTime(d, "not a time"); got.Hour() != 0 || got.Minute() != 0 {
		t.Errorf("malformed clock should fall back to midnight, got %v", got)
	}
}

func TestParseDate(t *testing.T) {
	if got := ParseDate(""); got != nil {
		t.Errorf("empty string should parse to nil, got %v", got)
	}
	if got := ParseDate("2026-03-11"); got == nil || !SameDay(*got, day(2026, time.March, 11)) {
		t.Errorf("plain date parse = %v", got)
	}
	if got := ParseDate("2026-03-11T10:00:00Z"); got == nil || got.Hour() != 10 {
		t.Errorf("RFC 3339 parse = %v", got)
	}
	if got := ParseDate("11/03/2026"); got != nil {
		t.Errorf("unsupported format should parse to nil, got %v", got)
	}
}
