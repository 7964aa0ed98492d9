package timeutils

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rooster-app/rooster/internal/utils"
)

// Times throughout the schedule are local wall-clock values in zero-padded
// 24-hour "HH:MM" form, minute granularity. The fixed format makes plain
// string comparison a valid time ordering.

// ToMinutes converts an "HH:MM" time to minutes since midnight. The input is
// expected to be well-formed; it is the caller's contract to validate first.
func ToMinutes(t string) int {
	parts := strings.SplitN(t, ":", 2)
	if len(parts) != 2 {
		return 0
	}
	hours, _ := strconv.Atoi(parts[0])
	minutes, _ := strconv.Atoi(parts[1])
	return hours*60 + minutes
}

// FromMinutes converts minutes since midnight back to an "HH:MM" time.
// Valid for 0 <= minutes < 1440.
func FromMinutes(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// RangesOverlap reports whether the half-open intervals [start1,end1) and
// [start2,end2) intersect. Touching boundaries (one range ending exactly when
// the other starts) do not count as an overlap.
func RangesOverlap(start1, end1, start2, end2 string) bool {
	return ToMinutes(start1) < ToMinutes(end2) && ToMinutes(start2) < ToMinutes(end1)
}

// Duration returns the length of the [start,end) range in minutes. The result
// is negative when end precedes start; callers enforce start < end before
// storing a range.
func Duration(start, end string) int {
	return ToMinutes(end) - ToMinutes(start)
}

// FormatForDisplay renders an "HH:MM" time in 12-hour form with an AM/PM
// suffix and no leading zero on the hour, e.g. "09:00" -> "9:00 AM" and
// "00:00" -> "12:00 AM".
func FormatForDisplay(t string) string {
	total := ToMinutes(t)
	hours := total / 60
	minutes := total % 60

	period := "AM"
	if hours >= 12 {
		period = "PM"
	}
	displayHours := hours
	switch {
	case hours == 0:
		displayHours = 12
	case hours > 12:
		displayHours = hours - 12
	}
	return fmt.Sprintf("%d:%02d %s", displayHours, minutes, period)
}

// FormatDuration renders a minute count as "Xh Ym", omitting the zero
// component. A zero duration renders as "0m".
func FormatDuration(minutes int) string {
	hours := minutes / 60
	mins := minutes % 60

	if hours == 0 {
		return fmt.Sprintf("%dm", mins)
	}
	if mins == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh %dm", hours, mins)
}

var dayNames = [7]string{"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday"}

// CurrentDayOfWeek returns the lowercase English name of the clock's current
// day, sunday through saturday.
func CurrentDayOfWeek(clock utils.Clock) string {
	return dayNames[clock.Now().Weekday()]
}

// IsInPast reports whether the given "HH:MM" time has already passed today
// according to the clock.
func IsInPast(clock utils.Clock, t string) bool {
	now := clock.Now()
	current := fmt.Sprintf("%02d:%02d", now.Hour(), now.Minute())
	return t < current
}
