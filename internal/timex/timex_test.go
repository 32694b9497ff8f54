package timex

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDuration_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    time.Duration
		wantErr bool
	}{
		{`"24h"`, 24 * time.Hour, false},
		{`"45m"`, 45 * time.Minute, false},
		{`60000000000`, time.Minute, false},
		{`"bogus"`, 0, true},
		{`true`, 0, true},
	}

	for _, tc := range tests {
		var d Duration
		err := json.Unmarshal([]byte(tc.in), &d)
		if tc.wantErr {
			if err == nil {
				t.Errorf("input %s: expected error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("input %s: %v", tc.in, err)
			continue
		}
		if d.Duration != tc.want {
			t.Errorf("input %s: got %v want %v", tc.in, d.Duration, tc.want)
		}
	}
}

func TestParseDate(t *testing.T) {
	t.Parallel()

	d, err := ParseDate("2026-08-31")
	if err != nil {
		t.Fatalf("ParseDate error: %v", err)
	}
	if d.String() != "2026-08-31" {
		t.Fatalf("round trip mismatch: %q", d.String())
	}

	if _, err := ParseDate("31-08-2026"); err == nil {
		t.Fatalf("expected error for reversed date")
	}
	if _, err := ParseDate("2026-13-01"); err == nil {
		t.Fatalf("expected error for month 13")
	}
}

func TestDate_JSON(t *testing.T) {
	t.Parallel()

	d, _ := ParseDate("2026-08-31")
	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	if string(b) != `"2026-08-31"` {
		t.Fatalf("unexpected JSON: %s", b)
	}

	var zero Date
	b, err = json.Marshal(zero)
	if err != nil {
		t.Fatalf("Marshal zero error: %v", err)
	}
	if string(b) != "null" {
		t.Fatalf("zero date must marshal as null, got %s", b)
	}

	var back Date
	if err := json.Unmarshal([]byte(`"2026-08-31"`), &back); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	if !back.Equal(d.Time) {
		t.Fatalf("round trip mismatch: %v vs %v", back, d)
	}

	if err := json.Unmarshal([]byte(`null`), &back); err != nil {
		t.Fatalf("Unmarshal null error: %v", err)
	}
	if !back.IsZero() {
		t.Fatalf("null must produce the zero date")
	}
}

func TestDate_Ordering(t *testing.T) {
	t.Parallel()

	a, _ := ParseDate("2026-08-30")
	b, _ := ParseDate("2026-08-31")

	if !a.Before(b) || !b.After(a) {
		t.Fatalf("ordering broken: %v vs %v", a, b)
	}
	if a.Before(a) || a.After(a) {
		t.Fatalf("a day is not before or after itself")
	}
}

func TestNewDate_TruncatesToDay(t *testing.T) {
	t.Parallel()

	d := NewDate(time.Date(2026, 8, 31, 17, 45, 12, 999, time.UTC))
	if d.String() != "2026-08-31" {
		t.Fatalf("truncation failed: %v", d)
	}
	if d.Hour() != 0 || d.Minute() != 0 {
		t.Fatalf("time-of-day must be zeroed: %v", d)
	}
}
