package dates

import (
	"errors"
	"testing"
	"time"
)

func berlin(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		t.Fatalf("failed to load zone: %v", err)
	}
	return loc
}

func strptr(s string) *string {
	return &s
}

func TestNormalize(t *testing.T) {
	loc := berlin(t)

	start, end, err := Normalize("1970-01-01 00:00", nil, loc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := start.Format(time.RFC3339); got != "1970-01-01T00:00:00+01:00" {
		t.Errorf("start = %s", got)
	}
	if got := end.Format(time.RFC3339); got != "1970-01-01T01:00:00+01:00" {
		t.Errorf("end = %s", got)
	}

	start, end, err = Normalize("2012-12-31 12:34", strptr("2013-01-01 21:43"), loc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := start.Format(time.RFC3339); got != "2012-12-31T12:34:00+01:00" {
		t.Errorf("start = %s", got)
	}
	if got := end.Format(time.RFC3339); got != "2013-01-01T21:43:00+01:00" {
		t.Errorf("end = %s", got)
	}
}

func TestNormalizeDefaultEnd(t *testing.T) {
	loc := berlin(t)
	for _, input := range []string{
		"1970-01-01 00:00",
		"2012-12-21 12:34",
		"2024-06-01 10:00",
		// crosses the spring-forward gap, still one elapsed hour
		"2024-03-31 01:30",
	} {
		start, end, err := Normalize(input, nil, loc)
		if err != nil {
			t.Fatalf("Normalize(%q) failed: %v", input, err)
		}
		if end.Sub(start) != time.Hour {
			t.Errorf("Normalize(%q): end-start = %s, want 1h", input, end.Sub(start))
		}
	}
}

func TestNormalizeSameStartAndEnd(t *testing.T) {
	loc := berlin(t)
	for _, input := range []string{"1970-01-01 00:00", "2024-02-29 00:00", "2031-07-15 19:30"} {
		start, end, err := Normalize(input, strptr(input), loc)
		if err != nil {
			t.Fatalf("Normalize(%q) failed: %v", input, err)
		}
		if !start.Equal(end) {
			t.Errorf("Normalize(%q): start %s != end %s", input, start, end)
		}
	}
}

func TestNormalizeRoundTrip(t *testing.T) {
	loc := berlin(t)
	for _, input := range []string{
		"1970-01-01 00:00",
		"2012-12-31 12:34",
		"2024-06-01 10:00",
		"2024-12-01 23:59",
	} {
		start, _, err := Normalize(input, nil, loc)
		if err != nil {
			t.Fatalf("Normalize(%q) failed: %v", input, err)
		}
		if got := start.UTC().In(loc).Format(layout); got != input {
			t.Errorf("round trip of %q through UTC = %q", input, got)
		}
	}
}

func TestNormalizeRejectsInvalidDates(t *testing.T) {
	loc := berlin(t)

	cases := []struct {
		name  string
		start string
		end   *string
		field string
	}{
		{"empty start", "", nil, "start"},
		{"not a date", "not a date", nil, "start"},
		{"trailing garbage", "1970-01-01 00:00 CET", nil, "start"},
		{"missing time", "1970-01-01", nil, "start"},
		{"empty end", "1970-01-01 00:00", strptr(""), "end"},
		{"malformed end", "1970-01-01 00:00", strptr("not a date"), "end"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, _, err := Normalize(c.start, c.end, loc)
			var parseErr *ParseError
			if !errors.As(err, &parseErr) {
				t.Fatalf("got %v, want ParseError", err)
			}
			if parseErr.Field != c.field {
				t.Errorf("ParseError field = %q, want %q", parseErr.Field, c.field)
			}
		})
	}
}

func TestNormalizeAcceptsLeapDay(t *testing.T) {
	if _, _, err := Normalize("2024-02-29 00:00", nil, berlin(t)); err != nil {
		t.Errorf("leap day rejected: %v", err)
	}
}

func TestNormalizeRejectsGapTimes(t *testing.T) {
	loc := berlin(t)
	// Berlin jumped 02:00 -> 03:00 on 2024-03-31
	for _, input := range []string{"2024-03-31 02:00", "2024-03-31 02:30", "2024-03-31 02:59"} {
		_, _, err := Normalize(input, nil, loc)
		var zoneErr *ZoneError
		if !errors.As(err, &zoneErr) {
			t.Errorf("Normalize(%q) = %v, want ZoneError", input, err)
		}
	}
	// The gap only exists as an end as well
	_, _, err := Normalize("2024-03-31 01:00", strptr("2024-03-31 02:30"), loc)
	var zoneErr *ZoneError
	if !errors.As(err, &zoneErr) {
		t.Errorf("gap end accepted: %v", err)
	}
}

func TestNormalizeAmbiguousTakesEarlierInstant(t *testing.T) {
	loc := berlin(t)
	// Berlin fell back 03:00 CEST -> 02:00 CET on 2024-10-27, 02:30 happens twice
	start, _, err := Normalize("2024-10-27 02:30", nil, loc)
	if err != nil {
		t.Fatalf("ambiguous time rejected: %v", err)
	}
	if got := start.Format(time.RFC3339); got != "2024-10-27T02:30:00+02:00" {
		t.Errorf("ambiguous time resolved to %s, want the +02:00 occurrence", got)
	}
}

func TestEventDraftValidate(t *testing.T) {
	loc := berlin(t)
	start, end, err := Normalize("2024-06-01 10:00", nil, loc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := (EventDraft{Start: start, End: end}).Validate(); err != nil {
		t.Errorf("valid draft rejected: %v", err)
	}
	if err := (EventDraft{Start: start, End: start}).Validate(); err == nil {
		t.Error("draft with end == start accepted")
	}
	if err := (EventDraft{Start: end, End: start}).Validate(); err == nil {
		t.Error("draft with end before start accepted")
	}
}
