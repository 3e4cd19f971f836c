package commands

import (
	"github.com/Strum355/log"
	"github.com/bwmarrin/discordgo"
	"github.com/spf13/viper"
)

var (
	manageEvents int64 = discordgo.PermissionManageEvents
	dmPermission       = false
)

var applicationCommands = []*discordgo.ApplicationCommand{
	{
		Name:        "ping",
		Description: "pong!",
	},
	{
		Name:        "version",
		Description: "Check the version of the bot",
	},
	{
		Name:         "upcoming",
		Description:  "List upcoming meetups on this server",
		DMPermission: &dmPermission,
	},
	{
		Name:         "export_events",
		Description:  "Export all events on this server as ICS calendar file",
		DMPermission: &dmPermission,
	},
	{
		Name:                     "event",
		Description:              "Create a new meetup",
		DMPermission:             &dmPermission,
		DefaultMemberPermissions: &manageEvents,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "name",
				Description: "Name of the meetup",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "location",
				Description: "Where the meetup takes place",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "start",
				Description: "yyyy-mm-dd hh:mm, example: 2012-12-21 12:34",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "end",
				Description: "yyyy-mm-dd hh:mm, default start time + 1h",
			},
		},
	},
}

// RegisterCommands creates the application commands on Discord
func RegisterCommands(s *discordgo.Session) {
	for _, applicationCommand := range applicationCommands {
		if _, err := s.ApplicationCommandCreate(s.State.User.ID, viper.GetString("discord.commands.guild"), applicationCommand); err != nil {
			log.WithError(err).WithFields(log.Fields{"command": applicationCommand.Name}).Error("Failed to create application command")
		}
	}
}
