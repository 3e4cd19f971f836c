package commands

import (
	"context"
	"fmt"

	"github.com/F42J/wobot/config"
	"github.com/F42J/wobot/dates"
	"github.com/Strum355/log"
	"github.com/bwmarrin/discordgo"
	"github.com/spf13/viper"
)

// RSVP reactions seeded on every announcement, in order.
const (
	reactionYes   = "👍"
	reactionMaybe = "❔"
)

// Thread auto archive after a week, in minutes
const threadArchiveDuration = 10080

// createEvent creates a scheduled event from the command arguments, announces
// it in the configured channel and opens a discussion thread.
func createEvent(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.GuildID == "" {
		InteractionResponseError(s, i, "This command can only be used in a server", true)
		return
	}

	options := commandOptions(i)
	name := options["name"].StringValue()
	location := options["location"].StringValue()
	start := options["start"].StringValue()
	var end *string
	if option, ok := options["end"]; ok {
		value := option.StringValue()
		end = &value
	}

	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Flags: discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		log.WithContext(ctx).WithError(err).Error("Failed to defer interaction response")
		return
	}

	startDate, endDate, err := dates.Normalize(start, end, config.Location())
	if err != nil {
		log.WithContext(ctx).WithError(err).Error("Failed to parse event dates")
		editResponse(s, i, err.Error())
		return
	}
	draft := dates.EventDraft{Start: startDate, End: endDate}
	if err := draft.Validate(); err != nil {
		log.WithContext(ctx).WithError(err).Error("Rejected event draft")
		editResponse(s, i, err.Error())
		return
	}

	scheduled, err := s.GuildScheduledEventCreate(i.GuildID, &discordgo.GuildScheduledEventParams{
		Name:               name,
		ScheduledStartTime: &draft.Start,
		ScheduledEndTime:   &draft.End,
		EntityType:         discordgo.GuildScheduledEventEntityTypeExternal,
		EntityMetadata:     &discordgo.GuildScheduledEventEntityMetadata{Location: location},
		PrivacyLevel:       discordgo.GuildScheduledEventPrivacyLevelGuildOnly,
	})
	if err != nil {
		log.WithContext(ctx).WithError(err).Error("Failed to create scheduled event")
		editResponse(s, i, "Failed to create scheduled event: "+err.Error())
		return
	}

	announcementChannel, ok := config.EventChannel(i.GuildID)
	if !ok {
		log.WithContext(ctx).Error("No announcement channel configured for guild")
		editResponse(s, i, fmt.Sprintf("No announcement channel configured for guild %s", i.GuildID))
		return
	}

	announcement := announcementMessage(name, scheduled.GuildID, scheduled.ID, i.Member.User.Mention())
	message, err := s.ChannelMessageSend(announcementChannel, announcement)
	if err != nil {
		log.WithContext(ctx).WithError(err).Error("Failed to send announcement")
		editResponse(s, i, "Failed to send announcement: "+err.Error())
		return
	}

	for _, reaction := range []string{reactionYes, reactionMaybe} {
		if err := s.MessageReactionAdd(announcementChannel, message.ID, reaction); err != nil {
			log.WithContext(ctx).WithError(err).Error("Failed to add RSVP reaction")
			editResponse(s, i, "Failed to add RSVP reaction: "+err.Error())
			return
		}
	}

	thread, err := s.MessageThreadStartComplex(announcementChannel, message.ID, &discordgo.ThreadStart{
		Name:                name,
		AutoArchiveDuration: threadArchiveDuration,
	})
	if err != nil {
		log.WithContext(ctx).WithError(err).Error("Failed to create discussion thread")
		editResponse(s, i, "Failed to create discussion thread: "+err.Error())
		return
	}
	if err := s.ThreadMemberAdd(thread.ID, i.Member.User.ID); err != nil {
		log.WithContext(ctx).WithError(err).Error("Failed to add author to thread")
		editResponse(s, i, "Failed to add you to the discussion thread: "+err.Error())
		return
	}

	editResponse(s, i, fmt.Sprintf("Created event **%s**", name))
}

// announcementMessage renders the announcement line, a masked link to the
// event followed by the organizer mention.
func announcementMessage(name, guildID, eventID, mention string) string {
	return fmt.Sprintf(
		"[%s](%s%s/%s) %s %s",
		name,
		viper.GetString("discord.events.url"),
		guildID,
		eventID,
		viper.GetString("discord.events.word"),
		mention,
	)
}
