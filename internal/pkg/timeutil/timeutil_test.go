package timeutil

import (
	"testing"
	"time"
)

func TestToMinutes(t *testing.T) {
	cases := []struct {
		input string
		want  int
	}{
		{"00:00", 0},
		{"09:00", 540},
		{"17:30", 1050},
		{"23:59", 1439},
	}
	for _, c := range cases {
		got := ToMinutes(c.input)
		if got != c.want {
			t.Errorf("ToMinutes(%q) = %d, want %d", c.input, got, c.want)
		}
	}
}

func TestWorkingHours(t *testing.T) {
	cases := []struct {
		in   string
		out  string
		want string
	}{
		{"09:00", "17:30", "8h 30m"},
		{"22:00", "02:00", "4h 0m"}, // overnight wrap
		{"09:15", "09:15", "0h 0m"},
		{"", "17:00", ""},
		{"09:00", "", ""},
		{"", "", ""},
	}
	for _, c := range cases {
		got := WorkingHours(c.in, c.out)
		if got != c.want {
			t.Errorf("WorkingHours(%q, %q) = %q, want %q", c.in, c.out, got, c.want)
		}
	}
}

func TestBackfillCheckIn(t *testing.T) {
	cases := []struct {
		checkOut string
		want     string
	}{
		{"17:30", "16:30"},
		{"01:15", "00:15"},
		{"00:45", "00:45"}, // floored at midnight
		{"10:05", "09:05"},
	}
	for _, c := range cases {
		got := BackfillCheckIn(c.checkOut)
		if got != c.want {
			t.Errorf("BackfillCheckIn(%q) = %q, want %q", c.checkOut, got, c.want)
		}
	}
}

func TestClock(t *testing.T) {
	at := time.Date(2025, 3, 7, 9, 5, 33, 0, time.Local)
	if got := Clock(at); got != "09:05" {
		t.Errorf("Clock = %q, want %q", got, "09:05")
	}
	if got := ISODate(at); got != "2025-03-07" {
		t.Errorf("ISODate = %q, want %q", got, "2025-03-07")
	}
}

func TestSameMonth(t *testing.T) {
	cases := []struct {
		a, b string
		want bool
	}{
		{"2025-03-01", "2025-03-31", true},
		{"2025-03-01", "2025-04-01", false},
		{"2024-03-01", "2025-03-01", false},
		{"bogus", "2025-03-01", false},
	}
	for _, c := range cases {
		if got := SameMonth(c.a, c.b); got != c.want {
			t.Errorf("SameMonth(%q, %q) = %v, want %v", c.a, c.b, got, c.want)
		}
	}
}
