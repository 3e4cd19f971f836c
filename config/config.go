package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// InitConfig sets up viper from the environment.
func InitConfig() error {
	// A .env file is optional, the environment always wins
	godotenv.Load()

	initDefaults()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	loc, err := time.LoadLocation(viper.GetString("timezone"))
	if err != nil {
		return fmt.Errorf("unknown timezone %q: %w", viper.GetString("timezone"), err)
	}
	viper.Set("zone.location", loc)

	channelMap, err := parseChannelMap(viper.GetString("discord.events.channels"))
	if err != nil {
		return err
	}
	viper.Set("discord.events.channel_map", channelMap)

	printAll()
	return nil
}

func parseChannelMap(raw string) (map[string]string, error) {
	channelMap := map[string]string{}
	for _, pair := range strings.Split(raw, ",") {
		if pair == "" {
			continue
		}
		parts := strings.SplitN(pair, ":", 2)
		if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
			return nil, fmt.Errorf("malformed guild:channel pair %q in discord.events.channels", pair)
		}
		channelMap[parts[0]] = parts[1]
	}
	return channelMap, nil
}

// EventChannel returns the announcement channel configured for a guild.
func EventChannel(guildID string) (string, bool) {
	channels := viper.Get("discord.events.channel_map").(map[string]string)
	channel, ok := channels[guildID]
	return channel, ok
}

// EventGuilds returns every guild with an announcement channel mapping.
func EventGuilds() []string {
	channels := viper.Get("discord.events.channel_map").(map[string]string)
	guilds := make([]string, 0, len(channels))
	for guild := range channels {
		guilds = append(guilds, guild)
	}
	return guilds
}

// Location returns the deployment-wide zone user-entered dates resolve in.
func Location() *time.Location {
	return viper.Get("zone.location").(*time.Location)
}

func printAll() {
	fmt.Println("Startup variables:")
	for k, v := range viper.AllSettings() {
		fmt.Println(k + ":")
		sub, ok := v.(map[string]interface{})
		if !ok {
			fmt.Printf("%s: %v\n", k, v)
			continue
		}
		for sk, sv := range sub {
			if strval, ok := sv.(string); ok {
				if len(strval) > 5 {
					fmt.Printf("%s: %s...\n", sk, strval[:5])
				} else {
					fmt.Printf("%s: %s\n", sk, strval)
				}
			} else {
				fmt.Printf("%s: %v\n", sk, sv)
			}
		}
	}
}
