package timeutils

import (
	"testing"
	"time"

	"github.com/rooster-app/rooster/internal/utils"
)

func TestToMinutes(t *testing.T) {
	tests := []struct {
		time string
		want int
	}{
		{"00:00", 0},
		{"00:01", 1},
		{"09:00", 540},
		{"12:30", 750},
		{"23:59", 1439},
	}
	for _, tt := range tests {
		if got := ToMinutes(tt.time); got != tt.want {
			t.Errorf("ToMinutes(%q) = %d, want %d", tt.time, got, tt.want)
		}
	}
}

func TestFromMinutes(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{0, "00:00"},
		{1, "00:01"},
		{540, "09:00"},
		{750, "12:30"},
		{1439, "23:59"},
	}
	for _, tt := range tests {
		if got := FromMinutes(tt.minutes); got != tt.want {
			t.Errorf("FromMinutes(%d) = %q, want %q", tt.minutes, got, tt.want)
		}
	}
}

func TestRangesOverlap(t *testing.T) {
	tests := []struct {
		name                       string
		start1, end1, start2, end2 string
		want                       bool
	}{
		{"disjoint ranges", "09:00", "10:00", "11:00", "12:00", false},
		{"touching boundary is not an overlap", "09:00", "10:00", "10:00", "11:00", false},
		{"partial overlap", "09:00", "10:30", "10:00", "11:00", true},
		{"identical ranges", "09:00", "10:00", "09:00", "10:00", true},
		{"one range inside the other", "09:00", "12:00", "10:00", "11:00", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RangesOverlap(tt.start1, tt.end1, tt.start2, tt.end2); got != tt.want {
				t.Errorf("RangesOverlap(%q, %q, %q, %q) = %v, want %v", tt.start1, tt.end1, tt.start2, tt.end2, got, tt.want)
			}
			// overlap is symmetric
			if got := RangesOverlap(tt.start2, tt.end2, tt.start1, tt.end1); got != tt.want {
				t.Errorf("RangesOverlap(%q, %q, %q, %q) = %v, want %v", tt.start2, tt.end2, tt.start1, tt.end1, got, tt.want)
			}
		})
	}
}

func TestDuration(t *testing.T) {
	if got := Duration("09:00", "10:30"); got != 90 {
		t.Errorf("Duration(09:00, 10:30) = %d, want 90", got)
	}
	if got := Duration("00:00", "23:59"); got != 1439 {
		t.Errorf("Duration(00:00, 23:59) = %d, want 1439", got)
	}
	// negative when the caller violated the start < end invariant
	if got := Duration("10:00", "09:00"); got != -60 {
		t.Errorf("Duration(10:00, 09:00) = %d, want -60", got)
	}
}

func TestFormatForDisplay(t *testing.T) {
	tests := []struct {
		time string
		want string
	}{
		{"00:00", "12:00 AM"},
		{"00:30", "12:30 AM"},
		{"09:00", "9:00 AM"},
		{"11:59", "11:59 AM"},
		{"12:00", "12:00 PM"},
		{"12:30", "12:30 PM"},
		{"13:15", "1:15 PM"},
		{"23:05", "11:05 PM"},
	}
	for _, tt := range tests {
		if got := FormatForDisplay(tt.time); got != tt.want {
			t.Errorf("FormatForDisplay(%q) = %q, want %q", tt.time, got, tt.want)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{0, "0m"},
		{45, "45m"},
		{60, "1h"},
		{90, "1h 30m"},
		{120, "2h"},
		{305, "5h 5m"},
	}
	for _, tt := range tests {
		if got := FormatDuration(tt.minutes); got != tt.want {
			t.Errorf("FormatDuration(%d) = %q, want %q", tt.minutes, got, tt.want)
		}
	}
}

func TestCurrentDayOfWeek(t *testing.T) {
	tests := []struct {
		date time.Time
		want string
	}{
		{time.Date(2025, time.March, 2, 12, 0, 0, 0, time.UTC), "sunday"},
		{time.Date(2025, time.March, 3, 12, 0, 0, 0, time.UTC), "monday"},
		{time.Date(2025, time.March, 7, 12, 0, 0, 0, time.UTC), "friday"},
		{time.Date(2025, time.March, 8, 12, 0, 0, 0, time.UTC), "saturday"},
	}
	for _, tt := range tests {
		clock := &utils.MockClock{FixedNow: tt.date}
		if got := CurrentDayOfWeek(clock); got != tt.want {
			t.Errorf("CurrentDayOfWeek(%s) = %q, want %q", tt.date.Format("2006-01-02"), got, tt.want)
		}
	}
}

func TestIsInPast(t *testing.T) {
	clock := &utils.MockClock{FixedNow: time.Date(2025, time.March, 3, 14, 30, 0, 0, time.UTC)}

	tests := []struct {
		time string
		want bool
	}{
		{"09:00", true},
		{"14:29", true},
		{"14:30", false},
		{"14:31", false},
		{"23:00", false},
	}
	for _, tt := range tests {
		if got := IsInPast(clock, tt.time); got != tt.want {
			t.Errorf("IsInPast(14:30, %q) = %v, want %v", tt.time, got, tt.want)
		}
	}
}
