package config

import "github.com/spf13/viper"

func initDefaults() {
	// Bot
	viper.SetDefault("bot.version", "development")
	// Discord
	viper.SetDefault("discord.token", "") // GitHub scrapers be like -.-
	viper.SetDefault("discord.commands.guild", "") // empty registers commands globally
	viper.SetDefault("discord.events.channels", "")
	viper.SetDefault("discord.events.word", "mit")
	viper.SetDefault("discord.events.url", "https://discord.com/events/")
	// Date parsing
	viper.SetDefault("timezone", "Europe/Berlin")
	// Calendar export
	viper.SetDefault("calendar.prodid", "ics-rs")
	viper.SetDefault("calendar.filename", "calendar.ics")
	// Rest API
	viper.SetDefault("api.port", 80)
	viper.SetDefault("api.event_query_limit", 20)
	viper.SetDefault("api.cache_ttl_minutes", 5)
	// Prometheus exporter
	viper.SetDefault("prom.port", 2112)
}
