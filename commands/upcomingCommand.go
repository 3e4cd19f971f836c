package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/F42J/wobot/embed"
	"github.com/Strum355/log"
	"github.com/bwmarrin/discordgo"
	"github.com/spf13/viper"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func upcomingEvent(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.GuildID == "" {
		InteractionResponseError(s, i, "This command can only be used in a server", true)
		return
	}
	eventEmbeds, err := upcomingEventEmbeds(ctx, s, i.GuildID, -1)
	if err != nil {
		log.WithContext(ctx).WithError(err).Error("Failed to build upcoming event embeds")
		InteractionResponseError(s, i, err.Error(), true)
		return
	}

	err = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: eventEmbeds,
		},
	})
	if err != nil {
		log.WithContext(ctx).WithError(err).Error("Failed to respond with upcoming events")
	}
}

func upcomingEventEmbeds(ctx context.Context, s *discordgo.Session, guildID string, limit int) (eventEmbeds []*discordgo.MessageEmbed, err error) {
	upcomingEvents, err := s.GuildScheduledEvents(guildID, false)
	if err != nil {
		return nil, err
	}
	if len(upcomingEvents) < 1 {
		return nil, errors.New("There are currently no events scheduled, stay tuned!")
	}
	p := message.NewPrinter(language.English)
	for i, event := range upcomingEvents {
		if i == limit {
			break
		}
		emb := embed.NewEmbed()
		emb.SetTitle(event.Name)

		if len(event.Description) > 0 {
			emb.SetDescription(p.Sprintf("%s\n", event.Description))
		}
		if len(event.EntityMetadata.Location) > 0 {
			emb.AddField("Where?", event.EntityMetadata.Location)
		}
		emb.AddField("When?", fmt.Sprintf("<t:%v:F>", event.ScheduledStartTime.Unix()))
		emb.SetAuthor("Meetup", s.State.User.AvatarURL("2048"), viper.GetString("discord.events.url")+guildID+"/"+event.ID)

		eventEmbeds = append(eventEmbeds, emb.MessageEmbed)
	}
	return eventEmbeds, nil
}
