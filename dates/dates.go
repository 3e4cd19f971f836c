// Package dates normalizes user-entered wall-clock strings into instants
// in the deployment-wide timezone.
package dates

import (
	"fmt"
	"time"
)

const layout = "2006-01-02 15:04"

// ParseError means a date string did not match the yyyy-mm-dd hh:mm grammar.
type ParseError struct {
	Field string
	Input string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("couldn't parse %s time %q, should be in the format yyyy-mm-dd hh:mm", e.Field, e.Input)
}

// ZoneError means a wall-clock time does not exist in the configured zone,
// i.e. it falls in a DST spring-forward gap.
type ZoneError struct {
	Value string
	Zone  string
}

func (e *ZoneError) Error() string {
	return fmt.Sprintf("%s does not exist in timezone %s", e.Value, e.Zone)
}

// Normalize parses a start and an optional end string in loc. A nil end
// defaults to one hour of elapsed time after start. Ordering of the two
// results is not checked here, see EventDraft.Validate.
func Normalize(start string, end *string, loc *time.Location) (time.Time, time.Time, error) {
	startDate, err := parseInZone("start", start, loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if end == nil {
		return startDate, startDate.Add(time.Hour), nil
	}
	endDate, err := parseInZone("end", *end, loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return startDate, endDate, nil
}

func parseInZone(field, value string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(layout, value, loc)
	if err != nil {
		return time.Time{}, &ParseError{Field: field, Input: value}
	}
	// In a spring-forward gap ParseInLocation shifts the wall clock past the
	// missing hour.
	if t.Format(layout) != value {
		return time.Time{}, &ZoneError{Value: value, Zone: loc.String()}
	}
	// A fall-back hour maps to two instants. If the instant an hour before
	// shows the same wall clock, the zone lookup picked the later one, take
	// the earlier instead.
	if earlier := t.Add(-time.Hour); earlier.Format(layout) == value {
		t = earlier
	}
	return t, nil
}

// EventDraft is the start/end pair of a meetup about to be created.
type EventDraft struct {
	Start time.Time
	End   time.Time
}

// Validate rejects drafts whose end does not come after their start.
func (d EventDraft) Validate() error {
	if !d.End.After(d.Start) {
		return fmt.Errorf("end time %s precedes start time %s", d.End.Format(layout), d.Start.Format(layout))
	}
	return nil
}
