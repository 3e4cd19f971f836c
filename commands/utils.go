package commands

import (
	"github.com/Strum355/log"
	"github.com/bwmarrin/discordgo"
)

// InteractionResponseError responds to a not-yet-acknowledged interaction
// with an error message.
func InteractionResponseError(s *discordgo.Session, i *discordgo.InteractionCreate, message string, ephemeral bool) {
	var flags discordgo.MessageFlags
	if ephemeral {
		flags = discordgo.MessageFlagsEphemeral
	}
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: message,
			Flags:   flags,
		},
	})
	if err != nil {
		log.WithError(err).Error("Failed to send error response")
	}
}

// editResponse replaces the contents of a deferred interaction response.
func editResponse(s *discordgo.Session, i *discordgo.InteractionCreate, message string) {
	_, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Content: &message,
	})
	if err != nil {
		log.WithError(err).Error("Failed to edit interaction response")
	}
}

// commandOptions maps the options of an application command by name.
func commandOptions(i *discordgo.InteractionCreate) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	options := i.ApplicationCommandData().Options
	mapped := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(options))
	for _, option := range options {
		mapped[option.Name] = option
	}
	return mapped
}
