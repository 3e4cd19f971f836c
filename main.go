package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/F42J/wobot/api"
	"github.com/F42J/wobot/commands"
	"github.com/F42J/wobot/config"
	"github.com/F42J/wobot/prometheus"
	"github.com/F42J/wobot/status"

	"github.com/Strum355/log"
	"github.com/bwmarrin/discordgo"
	"github.com/go-co-op/gocron"
	"github.com/spf13/viper"
)

var production *bool

func main() {
	// Check for flags
	production = flag.Bool("p", false, "enables production with json logging")
	flag.Parse()
	if *production {
		log.InitJSONLogger(&log.Config{Output: os.Stdout})
	} else {
		log.InitSimpleLogger(&log.Config{Output: os.Stdout})
	}

	// Setup viper
	exitError(config.InitConfig())

	// Discord connection
	token := viper.GetString("discord.token")
	session, err := discordgo.New("Bot " + token)
	exitError(err)
	session.Identify.Intents = discordgo.MakeIntent(discordgo.IntentsAllWithoutPrivileged)
	// Open websocket
	err = session.Open()
	exitError(err)
	commands.RegisterHandlers(session)

	// Run the event feed and metrics endpoints in different goroutines
	go api.Run(session)
	go prometheus.CreateExporter(session)

	// Refresh the scheduled event gauges periodically
	scheduler := gocron.NewScheduler(time.UTC)
	scheduler.StartAsync()
	scheduler.Every(1).Hour().Do(prometheus.RefreshEventCount, session)

	// Update the bot status periodically
	go status.Status(session)

	// Maintain connection until a SIGTERM, then cleanly exit
	log.Info("Bot is Running")
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt, os.Kill)
	<-sc
	log.Info("Cleanly exiting")
	session.Close()
}

func exitError(err error) {
	if err != nil {
		log.WithError(err).Error("Failed to start bot")
		os.Exit(1)
	}
}
