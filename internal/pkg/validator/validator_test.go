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
	valid := []string{"2024-03-10", "2024-12-31", "2000-01-01"}
	invalid := []string{"2024-13-01", "2024-03-32", "10-03-2024", "2024/03/10", "2024-3-1", "", "yesterday"}
	for _, date := range valid {
		if _, ok := IsValidDate(date); !ok {
			t.Errorf("IsValidDate(%q) = false, want true", date)
		}
	}
	for _, date := range invalid {
		if _, ok := IsValidDate(date); ok {
			t.Errorf("IsValidDate(%q) = true, want false", date)
		}
	}
}

func TestIsValidClock(t *testing.T) {
	valid := []string{"00:00", "09:00", "14:30", "23:59"}
	invalid := []string{"24:00", "9:00", "09:60", "09:00:00", "0900", "", "noon"}
	for _, clock := range valid {
		if !IsValidClock(clock) {
			t.Errorf("IsValidClock(%q) = false, want true", clock)
		}
	}
	for _, clock := range invalid {
		if IsValidClock(clock) {
			t.Errorf("IsValidClock(%q) = true, want false", clock)
		}
	}
}

func TestIsValidWallClock(t *testing.T) {
	valid := []string{"2024-03-12 14:30", "2024-01-01 00:00"}
	invalid := []string{"2024-03-12", "14:30", "2024-03-12T14:30", "2024-03-12 24:00", ""}
	for _, dt := range valid {
		if !IsValidWallClock(dt) {
			t.Errorf("IsValidWallClock(%q) = false, want true", dt)
		}
	}
	for _, dt := range invalid {
		if IsValidWallClock(dt) {
			t.Errorf("IsValidWallClock(%q) = true, want false", dt)
		}
	}
}

func TestIsInSlice(t *testing.T) {
	allowed := []string{"Full day", "Half Day WFH", "Short Leave"}
	if !IsInSlice("Full day", allowed) {
		t.Error("IsInSlice should match an exact element")
	}
	if IsInSlice("full day", allowed) {
		t.Error("IsInSlice must be case-sensitive")
	}
	if IsInSlice("", allowed) {
		t.Error("IsInSlice must not match the empty string")
	}
}

func TestValidationErrorsToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "reason", Message: "reason is required"},
		{Field: "start_date", Message: "start_date must be a valid date (YYYY-MM-DD)"},
	}
	m := errs.ToMap()
	if len(m) != 2 {
		t.Fatalf("ToMap() returned %d entries, want 2", len(m))
	}
	if m["reason"] != "reason is required" {
		t.Errorf("ToMap()[reason] = %q", m["reason"])
	}
}
