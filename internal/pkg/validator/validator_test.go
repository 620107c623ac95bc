package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	date, ok := IsValidDate("2026-02-28")
	if !ok {
		t.Fatal("IsValidDate(2026-02-28) = false, want true")
	}
	if date.Year() != 2026 || date.Month() != 2 || date.Day() != 28 {
		t.Errorf("IsValidDate parsed %v, want 2026-02-28", date)
	}

	invalid := []string{"2026-13-01", "2026-02-30", "28-02-2026", "not-a-date", ""}
	for _, s := range invalid {
		if _, ok := IsValidDate(s); ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestParseClock(t *testing.T) {
	for _, s := range []string{"09:30:00", "09:30"} {
		clock, ok := ParseClock(s)
		if !ok {
			t.Fatalf("ParseClock(%q) = false, want true", s)
		}
		if clock.Hour() != 9 || clock.Minute() != 30 {
			t.Errorf("ParseClock(%q) parsed %v, want 09:30", s, clock)
		}
	}

	invalid := []string{"25:00", "09:61", "9h30", ""}
	for _, s := range invalid {
		if _, ok := ParseClock(s); ok {
			t.Errorf("ParseClock(%q) = true, want false", s)
		}
	}
}

func TestIsValidMonthYear(t *testing.T) {
	cases := []struct {
		month, year int
		want        bool
	}{
		{1, 2026, true},
		{12, 2000, true},
		{0, 2026, false},
		{13, 2026, false},
		{6, 1999, false},
	}
	for _, c := range cases {
		got := IsValidMonthYear(c.month, c.year)
		if got != c.want {
			t.Errorf("IsValidMonthYear(%d, %d) = %v, want %v", c.month, c.year, got, c.want)
		}
	}
}

func TestValidationErrors_Error(t *testing.T) {
	errs := ValidationErrors{
		{Field: "name", Message: "is required"},
		{Field: "month", Message: "must be between 1 and 12"},
	}
	want := "name: is required; month: must be between 1 and 12"
	if got := errs.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestValidationErrors_ToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "name", Message: "is required"},
		{Field: "count", Message: "must be positive"},
	}
	m := errs.ToMap()
	if len(m) != 2 {
		t.Fatalf("ToMap() returned %d entries, want 2", len(m))
	}
	if m["name"] != "is required" || m["count"] != "must be positive" {
		t.Errorf("ToMap() = %v", m)
	}
}
