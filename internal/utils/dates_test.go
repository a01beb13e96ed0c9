package utils

import (
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestTryNormalizeDateParsesKnownLayouts(t *testing.T) {
	cases := []struct {
		in   string
		want time.Time
	}{
		{"2026-03-15T10:30:00Z", time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)},
		{"2026-03-15", time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)},
		{"03/15/2026", time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)},
		{"2026-03-15 10:30:00", time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)},
	}
	for _, tc := range cases {
		got := TryNormalizeDate("date", tc.in)
		ts, ok := got.(time.Time)
		if !ok {
			t.Fatalf("TryNormalizeDate(%q) = %T, want time.Time", tc.in, got)
		}
		if !ts.Equal(tc.want) {
			t.Errorf("TryNormalizeDate(%q) = %v, want %v", tc.in, ts, tc.want)
		}
	}
}

func TestTryNormalizeDatePassesThroughUnparseable(t *testing.T) {
	for _, in := range []interface{}{"next tuesday", "", nil, 42, map[string]interface{}{"x": 1}} {
		got := TryNormalizeDate("date", in)
		if _, isTime := got.(time.Time); isTime {
			t.Fatalf("TryNormalizeDate(%v) parsed to a time, want passthrough", in)
		}
	}
}

func TestTryNormalizeDateKeepsTimeValues(t *testing.T) {
	now := time.Now().UTC()
	if got := TryNormalizeDate("date", now); got != now {
		t.Errorf("time.Time input changed: %v", got)
	}
	if got := TryNormalizeDate("date", &now); got != now {
		t.Errorf("*time.Time input not dereferenced: %v", got)
	}
	dt := bson.NewDateTimeFromTime(now)
	got, ok := TryNormalizeDate("date", dt).(time.Time)
	if !ok || !got.Equal(now.Truncate(time.Millisecond)) {
		t.Errorf("bson.DateTime input = %v, want %v", got, now)
	}
}

func TestNormalizeDatesOnlyTouchesNamedFields(t *testing.T) {
	doc := bson.M{
		"date":  "2026-01-02",
		"title": "2026-01-02",
		"note":  "next tuesday",
	}
	NormalizeDates(doc, "date", "note", "missing")

	if _, ok := doc["date"].(time.Time); !ok {
		t.Errorf("date not normalized: %v", doc["date"])
	}
	if doc["title"] != "2026-01-02" {
		t.Errorf("title touched: %v", doc["title"])
	}
	if doc["note"] != "next tuesday" {
		t.Errorf("unparseable note changed: %v", doc["note"])
	}
	if _, ok := doc["missing"]; ok {
		t.Error("missing field materialized")
	}
}

func TestNormalizeTicketDates(t *testing.T) {
	tickets := []interface{}{
		map[string]interface{}{"name": "Early", "salesStart": "2026-01-01", "salesEnd": "garbage"},
		"not a ticket",
	}
	NormalizeTicketDates(tickets)

	first := tickets[0].(map[string]interface{})
	if _, ok := first["salesStart"].(time.Time); !ok {
		t.Errorf("salesStart not normalized: %v", first["salesStart"])
	}
	if first["salesEnd"] != "garbage" {
		t.Errorf("unparseable salesEnd changed: %v", first["salesEnd"])
	}

	// Non-slice input is a no-op, not a panic.
	NormalizeTicketDates("nope")
	NormalizeTicketDates(nil)
}

func TestExtractTime(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	m := bson.M{
		"a": now,
		"b": bson.NewDateTimeFromTime(now),
		"c": "2026-05-01T12:00:00Z",
		"d": "not a date",
	}
	for _, key := range []string{"a", "b", "c"} {
		got, ok := ExtractTime(m, key)
		if !ok || !got.Equal(now) {
			t.Errorf("ExtractTime(%q) = %v, %v", key, got, ok)
		}
	}
	if _, ok := ExtractTime(m, "d"); ok {
		t.Error("ExtractTime parsed a non-date string")
	}
	if _, ok := ExtractTime(m, "missing"); ok {
		t.Error("ExtractTime found a missing key")
	}
}
