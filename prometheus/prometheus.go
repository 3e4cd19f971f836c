package prometheus

import (
	"fmt"
	"net/http"

	"github.com/F42J/wobot/config"
	"github.com/Strum355/log"
	"github.com/bwmarrin/discordgo"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/viper"
)

var (
	commandInvocations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "command_invocations_total",
		Help: "The total number of command invocations, per command",
	},
		[]string{
			"command",
		})
	eventsExported = promauto.NewCounter(prometheus.CounterOpts{
		Name: "events_exported_total",
		Help: "The total number of events written to calendar exports",
	})
	scheduledEventCount = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "scheduled_event_count",
		Help: "The number of scheduled events currently on each guild",
	},
		[]string{
			"guild",
		})
)

// CommandInvocation is called whenever a command is dispatched
func CommandInvocation(command string) {
	commandInvocations.WithLabelValues(command).Inc()
}

// EventsExported is called after a calendar export with the entry count
func EventsExported(count int) {
	eventsExported.Add(float64(count))
}

// RefreshEventCount polls the scheduled events of every configured guild
// and updates the gauge.
func RefreshEventCount(s *discordgo.Session) {
	for _, guild := range config.EventGuilds() {
		events, err := s.GuildScheduledEvents(guild, false)
		if err != nil {
			log.WithError(err).WithFields(log.Fields{"guild_id": guild}).Error("Failed to list scheduled events")
			continue
		}
		scheduledEventCount.WithLabelValues(guild).Set(float64(len(events)))
	}
}

// CreateExporter should be called when the bot is starting
// to serve the prometheus exporter http endpoint
func CreateExporter(s *discordgo.Session) {
	RefreshEventCount(s)
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	if err := http.ListenAndServe(fmt.Sprintf(":%d", viper.GetInt("prom.port")), mux); err != nil {
		log.WithError(err).Error("Prometheus exporter stopped")
	}
}
