package utils

import (
	"testing"
	"time"
)

func TestDateIn(t *testing.T) {
	// 23:30 UTC on the 1st is already the 2nd in Tokyo and still the 1st in New York.
	now := time.Date(2024, 3, 1, 23, 30, 0, 0, time.UTC)

	tests := []struct {
		tz   string
		want string
	}{
		{"UTC", "2024-03-01"},
		{"Asia/Tokyo", "2024-03-02"},
		{"America/New_York", "2024-03-01"},
	}
	for _, tt := range tests {
		t.Run(tt.tz, func(t *testing.T) {
			got, err := DateIn(now, tt.tz)
			if err != nil {
				t.Fatalf("DateIn() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("DateIn(%s) = %s, want %s", tt.tz, got, tt.want)
			}
		})
	}

	if _, err := DateIn(now, "Mars/Olympus"); err == nil {
		t.Error("expected error for invalid timezone")
	}
}

func TestValidateTimezone(t *testing.T) {
	for tz, want := range map[string]bool{"": true, "Local": true, "Europe/Athens": true, "Nowhere/City": false} {
		if got := ValidateTimezone(tz); got != want {
			t.Errorf("ValidateTimezone(%q) = %v, want %v", tz, got, want)
		}
	}
}

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		from, to string
		want     int
	}{
		{"2024-03-01", "2024-03-01", 0},
		{"2024-02-28", "2024-03-01", 2}, // leap year
		{"2024-03-10", "2024-03-03", -7},
		{"2023-12-31", "2024-01-01", 1},
	}
	for _, tt := range tests {
		got, err := DaysBetween(tt.from, tt.to)
		if err != nil {
			t.Fatalf("DaysBetween(%s, %s) error: %v", tt.from, tt.to, err)
		}
		if got != tt.want {
			t.Errorf("DaysBetween(%s, %s) = %d, want %d", tt.from, tt.to, got, tt.want)
		}
	}

	if _, err := DaysBetween("2024-02-30", "2024-03-01"); err == nil {
		t.Error("expected error for impossible date")
	}
}

func TestAddDays(t *testing.T) {
	got, err := AddDays("2024-02-28", 1)
	if err != nil {
		t.Fatal(err)
	}
	if got != "2024-02-29" {
		t.Errorf("AddDays() = %s, want 2024-02-29", got)
	}
	if !ValidateDate(got) || ValidateDate("2024-1-5") {
		t.Error("ValidateDate mismatch")
	}
}
