package commands

import (
	"testing"

	"github.com/spf13/viper"
)

func TestAnnouncementMessage(t *testing.T) {
	viper.Set("discord.events.url", "https://discord.com/events/")
	viper.Set("discord.events.word", "mit")

	got := announcementMessage("Stammtisch", "100", "200", "<@300>")
	want := "[Stammtisch](https://discord.com/events/100/200) mit <@300>"
	if got != want {
		t.Errorf("announcement = %q, want %q", got, want)
	}
}

func TestAnnouncementMessageWordOverride(t *testing.T) {
	viper.Set("discord.events.url", "https://discord.com/events/")
	viper.Set("discord.events.word", "with")

	got := announcementMessage("Meetup", "1", "2", "<@3>")
	want := "[Meetup](https://discord.com/events/1/2) with <@3>"
	if got != want {
		t.Errorf("announcement = %q, want %q", got, want)
	}
}
