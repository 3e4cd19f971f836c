package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/F42J/wobot/config"
	"github.com/F42J/wobot/ics"
	"github.com/Strum355/log"
	"github.com/bwmarrin/discordgo"
	"github.com/patrickmn/go-cache"
	"github.com/spf13/viper"
)

type returnEvent struct {
	Title,
	Description string
	Location string `json:",omitempty"`
	Start    int64
	End      int64 `json:",omitempty"`
}

var (
	cached  *cache.Cache
	session *discordgo.Session
)

// Run the REST API
func Run(s *discordgo.Session) {
	ttl := time.Duration(viper.GetInt("api.cache_ttl_minutes")) * time.Minute
	cached = cache.New(ttl, 2*ttl)
	session = s

	mux := http.NewServeMux()
	mux.HandleFunc("/events", getEvents)
	mux.HandleFunc("/calendar.ics", getCalendar)

	if err := http.ListenAndServe(fmt.Sprintf(":%d", viper.GetInt("api.port")), mux); err != nil {
		log.WithError(err).Error("Event feed API stopped")
	}
}

// scheduledEvents lists the scheduled events of every configured guild,
// served from cache when fresh.
func scheduledEvents() ([]*discordgo.GuildScheduledEvent, error) {
	if cachedEvents, found := cached.Get("events"); found {
		return cachedEvents.([]*discordgo.GuildScheduledEvent), nil
	}
	events := []*discordgo.GuildScheduledEvent{}
	for _, guild := range config.EventGuilds() {
		guildEvents, err := session.GuildScheduledEvents(guild, false)
		if err != nil {
			return nil, err
		}
		events = append(events, guildEvents...)
	}
	cached.Set("events", events, cache.DefaultExpiration)
	return events, nil
}

func getEvents(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	limit := viper.GetInt("api.event_query_limit")
	queryAmount, exists := query["q"]
	if !exists || len(query) == 0 {
		http.Error(w, "Please add the parameter 'q'", http.StatusForbidden)
		return
	}
	amount, err := strconv.Atoi(queryAmount[0])
	if err != nil || amount < 0 || amount > limit {
		http.Error(w, "Please provide an int as 'q's value", http.StatusForbidden)
		return
	}

	events, err := scheduledEvents()
	if err != nil {
		log.WithError(err).Error("Failed to list scheduled events")
		http.Error(w, "Failed to query events", http.StatusInternalServerError)
		return
	}
	if amount < len(events) {
		events = events[:amount]
	}

	returnEvents := make([]returnEvent, 0, len(events))
	for _, event := range events {
		entry := returnEvent{
			Title:       event.Name,
			Description: event.Description,
			Location:    event.EntityMetadata.Location,
			Start:       event.ScheduledStartTime.Unix(),
		}
		if event.ScheduledEndTime != nil {
			entry.End = event.ScheduledEndTime.Unix()
		}
		returnEvents = append(returnEvents, entry)
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(returnEvents); err != nil {
		log.WithError(err).Error("Failed to encode events feed")
	}
}

func getCalendar(w http.ResponseWriter, r *http.Request) {
	if data, found := cached.Get("calendar"); found {
		w.Header().Set("Content-Type", "text/calendar")
		w.Write(data.([]byte))
		return
	}

	events, err := scheduledEvents()
	if err != nil {
		log.WithError(err).Error("Failed to list scheduled events")
		http.Error(w, "Failed to query events", http.StatusInternalServerError)
		return
	}
	entries := make([]ics.Event, 0, len(events))
	for _, event := range events {
		entries = append(entries, ics.FromScheduled(event))
	}
	data, err := ics.EncodeBytes(entries)
	if err != nil {
		log.WithError(err).Error("Failed to encode calendar")
		http.Error(w, "Failed to encode calendar", http.StatusInternalServerError)
		return
	}
	cached.Set("calendar", data, cache.DefaultExpiration)

	w.Header().Set("Content-Type", "text/calendar")
	w.Write(data)
}
