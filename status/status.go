package status

import (
	"time"

	"github.com/F42J/wobot/config"
	"github.com/Strum355/log"
	"github.com/bwmarrin/discordgo"
	"github.com/matryer/try"
	"github.com/spf13/viper"
)

// Status updates the bot presence with the next upcoming meetup
func Status(s *discordgo.Session) {
	for {
		nextEvent(s)
		wait := time.After(10 * time.Minute)
		<-wait
	}
}

func nextEvent(s *discordgo.Session) {
	var next *discordgo.GuildScheduledEvent
	err := try.Do(func(attempt int) (bool, error) {
		var err error
		next, err = fetchNext(s)
		if err != nil {
			time.Sleep(time.Duration(attempt) * time.Second)
		}
		return attempt < 3, err
	})
	if err != nil {
		log.Error("Failed to query scheduled events: " + err.Error())
		return
	}
	if next == nil {
		s.UpdateGameStatus(0, "version "+viper.GetString("bot.version"))
		return
	}
	s.UpdateGameStatus(0, "Next: "+next.Name)
}

func fetchNext(s *discordgo.Session) (*discordgo.GuildScheduledEvent, error) {
	var next *discordgo.GuildScheduledEvent
	for _, guild := range config.EventGuilds() {
		events, err := s.GuildScheduledEvents(guild, false)
		if err != nil {
			return nil, err
		}
		for _, event := range events {
			if next == nil || event.ScheduledStartTime.Before(next.ScheduledStartTime) {
				next = event
			}
		}
	}
	return next, nil
}
