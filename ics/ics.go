// Package ics turns guild scheduled events into an RFC 5545 calendar file.
package ics

import (
	"bytes"
	"io"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/bwmarrin/discordgo"
	"github.com/spf13/viper"
)

// Event is a single calendar entry. End may be nil, in which case the
// exported entry ends one hour after it starts.
type Event struct {
	UID         string
	Summary     string
	Description string
	Location    string
	Start       time.Time
	End         *time.Time
}

// FromScheduled maps a Discord scheduled event onto a calendar entry. The
// event ID doubles as the UID so repeated exports stay stable.
func FromScheduled(ev *discordgo.GuildScheduledEvent) Event {
	return Event{
		UID:         ev.ID,
		Summary:     ev.Name,
		Description: ev.Description,
		Location:    ev.EntityMetadata.Location,
		Start:       ev.ScheduledStartTime,
		End:         ev.ScheduledEndTime,
	}
}

// Encode writes a single VERSION 2.0 calendar document with one VEVENT per
// entry, in input order. All timestamps are serialized in UTC.
func Encode(w io.Writer, events []Event) error {
	cal := ical.NewCalendar()
	cal.SetProductId(viper.GetString("calendar.prodid"))
	now := time.Now().UTC()
	for _, event := range events {
		icsEvent := cal.AddEvent(event.UID)
		icsEvent.SetDtStampTime(now)
		icsEvent.SetSummary(event.Summary)
		if event.Description != "" {
			icsEvent.SetDescription(event.Description)
		}
		if event.Location != "" {
			icsEvent.SetLocation(event.Location)
		}
		icsEvent.SetStartAt(event.Start)
		if event.End != nil {
			icsEvent.SetEndAt(*event.End)
		} else {
			icsEvent.SetEndAt(event.Start.Add(time.Hour))
		}
	}
	// RFC 5545 wants CRLF, the library defaults to the OS convention
	return cal.SerializeTo(w, ical.WithNewLineWindows)
}

// EncodeBytes is Encode into a fresh buffer.
func EncodeBytes(events []Event) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, events); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
