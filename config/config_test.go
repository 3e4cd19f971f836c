package config

import (
	"testing"

	"github.com/spf13/viper"
)

func TestParseChannelMap(t *testing.T) {
	channels, err := parseChannelMap("100:200,300:400")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(channels) != 2 || channels["100"] != "200" || channels["300"] != "400" {
		t.Errorf("channels = %v", channels)
	}

	channels, err = parseChannelMap("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(channels) != 0 {
		t.Errorf("channels = %v, want empty", channels)
	}

	for _, raw := range []string{"100", "100:", ":200", "100:200,abc"} {
		if _, err := parseChannelMap(raw); err == nil {
			t.Errorf("parseChannelMap(%q) accepted", raw)
		}
	}
}

func TestInitConfigRejectsUnknownTimezone(t *testing.T) {
	t.Setenv("TIMEZONE", "Not/AZone")

	if err := InitConfig(); err == nil {
		t.Fatal("InitConfig accepted an unknown timezone")
	}
}

func TestInitConfigRejectsMalformedChannels(t *testing.T) {
	t.Setenv("TIMEZONE", "Europe/Berlin")
	t.Setenv("DISCORD_EVENTS_CHANNELS", "100")

	if err := InitConfig(); err == nil {
		t.Fatal("InitConfig accepted a malformed channel mapping")
	}
}

func TestEventChannelLookup(t *testing.T) {
	viper.Set("discord.events.channel_map", map[string]string{"100": "200"})

	channel, ok := EventChannel("100")
	if !ok || channel != "200" {
		t.Errorf("EventChannel(100) = %q, %v", channel, ok)
	}
	if _, ok := EventChannel("999"); ok {
		t.Error("unmapped guild resolved to a channel")
	}

	guilds := EventGuilds()
	if len(guilds) != 1 || guilds[0] != "100" {
		t.Errorf("EventGuilds() = %v", guilds)
	}
}
