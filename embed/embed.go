package embed

import "github.com/bwmarrin/discordgo"

// Embed is a fluent builder around discordgo.MessageEmbed.
type Embed struct {
	*discordgo.MessageEmbed
}

// Discord limits embed descriptions to 2048 runes and field values to 1024.
const (
	descriptionLimit = 2048
	fieldValueLimit  = 1024
)

// NewEmbed returns a new empty embed.
func NewEmbed() *Embed {
	return &Embed{&discordgo.MessageEmbed{}}
}

// SetTitle sets the embed title.
func (e *Embed) SetTitle(title string) *Embed {
	e.Title = title
	return e
}

// SetDescription sets the embed description, truncated to the Discord limit.
func (e *Embed) SetDescription(description string) *Embed {
	if len(description) > descriptionLimit {
		description = description[:descriptionLimit]
	}
	e.Description = description
	return e
}

// AddField appends a named field.
func (e *Embed) AddField(name, value string) *Embed {
	if len(value) > fieldValueLimit {
		value = value[:fieldValueLimit]
	}
	e.Fields = append(e.Fields, &discordgo.MessageEmbedField{
		Name:  name,
		Value: value,
	})
	return e
}

// SetAuthor sets the author line.
func (e *Embed) SetAuthor(name, iconURL, url string) *Embed {
	e.Author = &discordgo.MessageEmbedAuthor{
		Name:    name,
		IconURL: iconURL,
		URL:     url,
	}
	return e
}
