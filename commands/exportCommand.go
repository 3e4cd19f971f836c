package commands

import (
	"bytes"
	"context"

	"github.com/F42J/wobot/ics"
	"github.com/F42J/wobot/prometheus"
	"github.com/Strum355/log"
	"github.com/bwmarrin/discordgo"
	"github.com/spf13/viper"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// exportEvents replies with all scheduled events of the guild as an ICS file.
func exportEvents(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.GuildID == "" {
		InteractionResponseError(s, i, "This command can only be used in a server", true)
		return
	}

	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	})
	if err != nil {
		log.WithContext(ctx).WithError(err).Error("Failed to defer interaction response")
		return
	}

	scheduled, err := s.GuildScheduledEvents(i.GuildID, false)
	if err != nil {
		log.WithContext(ctx).WithError(err).Error("Failed to list scheduled events")
		editResponse(s, i, "Failed to list scheduled events: "+err.Error())
		return
	}

	entries := make([]ics.Event, 0, len(scheduled))
	for _, event := range scheduled {
		entries = append(entries, ics.FromScheduled(event))
	}
	data, err := ics.EncodeBytes(entries)
	if err != nil {
		log.WithContext(ctx).WithError(err).Error("Failed to encode calendar")
		editResponse(s, i, "Failed to encode calendar: "+err.Error())
		return
	}

	p := message.NewPrinter(language.English)
	content := p.Sprintf("Exported %d events", len(entries))
	_, err = s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Content: &content,
		Files: []*discordgo.File{
			{
				Name:        viper.GetString("calendar.filename"),
				ContentType: "text/calendar",
				Reader:      bytes.NewReader(data),
			},
		},
	})
	if err != nil {
		log.WithContext(ctx).WithError(err).Error("Failed to send calendar file")
		return
	}
	prometheus.EventsExported(len(entries))
}
