package helpers

import (
	"testing"
	"time"
)

func TestFormatUTCISO(t *testing.T) {
	loc := time.FixedZone("AST", -4*60*60)
	ts := time.Date(2026, 3, 9, 8, 15, 30, 0, loc)

	if got := FormatUTCISO(ts); got != "2026-03-09T12:15:30Z" {
		t.Errorf("FormatUTCISO = %q", got)
	}
}

func TestFormatClock12h(t *testing.T) {
	ts := time.Date(2026, 3, 9, 13, 5, 0, 0, time.UTC)

	if got := FormatClock12h(ts, nil); got != "1:05 PM" {
		t.Errorf("nil location should format in UTC, got %q", got)
	}

	ast := time.FixedZone("AST", -4*60*60)
	if got := FormatClock12h(ts, ast); got != "9:05 AM" {
		t.Errorf("FormatClock12h in AST = %q", got)
	}

	morning := time.Date(2026, 3, 9, 0, 30, 0, 0, time.UTC)
	if got := FormatClock12h(morning, nil); got != "12:30 AM" {
		t.Errorf("midnight hour = %q", got)
	}
}

func TestParseDuration(t *testing.T) {
	if got := ParseDuration("90s", time.Minute); got != 90*time.Second {
		t.Errorf("ParseDuration(90s) = %v", got)
	}
	if got := ParseDuration("bogus", time.Minute); got != time.Minute {
		t.Errorf("invalid input should yield the default, got %v", got)
	}
}
