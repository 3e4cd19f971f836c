package commands

import (
	"context"
	"fmt"

	"github.com/F42J/wobot/prometheus"
	"github.com/Strum355/log"
	"github.com/bwmarrin/discordgo"
)

var (
	commandsMap = make(map[string]func(context.Context, *discordgo.Session, *discordgo.InteractionCreate))
)

type commandFunc func(context.Context, *discordgo.Session, *discordgo.InteractionCreate)

func command(name string, function commandFunc) {
	commandsMap[name] = function
}

// RegisterHandlers registers command handlers
func RegisterHandlers(s *discordgo.Session) {
	RegisterCommands(s)
	// Public commands
	command("ping", ping)
	command("version", version)
	command("upcoming", upcomingEvent)
	command("export_events", exportEvents)
	// Organizer commands
	command("event", createEvent)

	// Setup Interaction Handlers
	s.AddHandler(func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		callCommand(s, i)
	})
}

// Returns useful data about the command's contents
func extractCommandContent(i *discordgo.InteractionCreate) (commandAuthor *discordgo.User, commandName string, commandBody []string) {
	if i.Member != nil {
		commandAuthor = i.Member.User
	} else {
		commandAuthor = i.User
	}
	// Location of the data changes with regard to the type of interaction
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		commandName = i.ApplicationCommandData().Name
		if len(i.ApplicationCommandData().Options) > 0 {
			for _, option := range i.ApplicationCommandData().Options {
				commandBody = append(commandBody, fmt.Sprintf("%s : %v", option.Name, option.Value))
			}
		}
	case discordgo.InteractionMessageComponent:
		commandName = i.MessageComponentData().CustomID
		for idx, value := range i.MessageComponentData().Values {
			commandBody = append(commandBody, fmt.Sprintf("value %d : %s", idx, value))
		}
	}
	return
}

func callCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()
	channel, err := s.Channel(i.ChannelID)
	if err != nil {
		log.WithError(err).Error("Couldn't query channel")
		return
	}

	commandAuthor, commandName, commandBody := extractCommandContent(i)
	if command, ok := commandsMap[commandName]; ok {
		ctx := context.WithValue(ctx, log.Key, log.Fields{
			"author_id":    commandAuthor.ID,
			"channel_id":   i.ChannelID,
			"guild_id":     i.GuildID,
			"user":         commandAuthor.Username,
			"channel_name": channel.Name,
			"command":      commandName,
			"body":         commandBody,
		})

		log.WithContext(ctx).Info("invoking standard command")
		prometheus.CommandInvocation(commandName)
		command(ctx, s, i)
		return
	}
}
