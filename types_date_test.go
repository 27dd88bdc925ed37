package ipoworth

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name      string
		str       string
		expected  Date
		expectErr bool
	}{
		{"ISO format", "1980-12-12", NewDate(1980, time.December, 12), false},
		{"permissive single digits", "2025-7-1", NewDate(2025, time.July, 1), false},
		{"not a date", "yesterday", Date{}, true},
		{"empty", "", Date{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.str)
			if (err != nil) != tt.expectErr {
				t.Fatalf("ParseDate(%q) error = %v, expectErr %v", tt.str, err, tt.expectErr)
			}
			if !tt.expectErr && got != tt.expected {
				t.Errorf("ParseDate(%q) = %s, want %s", tt.str, got, tt.expected)
			}
		})
	}
}

func TestDate_Sub(t *testing.T) {
	tests := []struct {
		name string
		d, x Date
		days int
	}{
		{"same day", NewDate(2020, time.March, 1), NewDate(2020, time.March, 1), 0},
		{"plain year", NewDate(2022, time.January, 1), NewDate(2021, time.January, 1), 365},
		{"leap year", NewDate(2021, time.January, 1), NewDate(2020, time.January, 1), 366},
		{"negative", NewDate(2020, time.January, 1), NewDate(2020, time.January, 31), -30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.d.Sub(tt.x); got != tt.days {
				t.Errorf("%s.Sub(%s) = %d, want %d", tt.d, tt.x, got, tt.days)
			}
		})
	}
}

func TestDate_Add_Normalizes(t *testing.T) {
	got := NewDate(2020, time.December, 31).Add(1)
	if want := NewDate(2021, time.January, 1); got != want {
		t.Errorf("Add(1) = %s, want %s", got, want)
	}
}

func TestDate_JSONRoundTrip(t *testing.T) {
	d := NewDate(1997, time.May, 15)
	raw, err := d.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON() unexpected error = %v", err)
	}
	if string(raw) != `"1997-05-15"` {
		t.Errorf("MarshalJSON() = %s, want %q", raw, `"1997-05-15"`)
	}
	var back Date
	if err := back.UnmarshalJSON(raw); err != nil {
		t.Fatalf("UnmarshalJSON() unexpected error = %v", err)
	}
	if back != d {
		t.Errorf("round trip = %s, want %s", back, d)
	}
}
