package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDateAndString(t *testing.T) {
	date, err := ParseDate("2024-01-29")
	if err != nil {
		t.Fatalf("parse date: %v", err)
	}
	if date.String() != "2024-01-29" {
		t.Fatalf("expected 2024-01-29, got %s", date)
	}

	if _, err := ParseDate("29/01/2024"); err == nil {
		t.Fatal("expected error for non-ISO input")
	}
}

func TestDateJSONRoundTrip(t *testing.T) {
	encoded, err := json.Marshal(NewDate(2024, time.February, 26))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(encoded) != `"2024-02-26"` {
		t.Fatalf("expected date-only JSON, got %s", encoded)
	}

	decoded := Date{}
	if err := json.Unmarshal(encoded, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !decoded.Equal(NewDate(2024, time.February, 26)) {
		t.Fatalf("round trip mismatch: %s", decoded)
	}
}

func TestDaysSinceCrossesMonths(t *testing.T) {
	from := NewDate(2024, time.January, 29)
	to := NewDate(2024, time.February, 26)
	if got := to.DaysSince(from); got != 28 {
		t.Fatalf("expected 28 days, got %d", got)
	}
	if got := from.DaysSince(to); got != -28 {
		t.Fatalf("expected -28 days, got %d", got)
	}
}

func TestDateOfDropsTimeOfDay(t *testing.T) {
	stamp := time.Date(2024, time.March, 5, 23, 45, 0, 0, time.UTC)
	if got := DateOf(stamp); !got.Equal(NewDate(2024, time.March, 5)) {
		t.Fatalf("expected 2024-03-05, got %s", got)
	}
}

func TestDateScanSupportsTimeAndString(t *testing.T) {
	date := Date{}
	if err := date.Scan(time.Date(2024, time.April, 2, 15, 0, 0, 0, time.UTC)); err != nil {
		t.Fatalf("scan time: %v", err)
	}
	if date.String() != "2024-04-02" {
		t.Fatalf("expected 2024-04-02, got %s", date)
	}

	if err := date.Scan("2024-05-06"); err != nil {
		t.Fatalf("scan string: %v", err)
	}
	if date.String() != "2024-05-06" {
		t.Fatalf("expected 2024-05-06, got %s", date)
	}
}
