package main

import (
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
)

const embedColor = 0x5865F2

// discordTagStyles pairs Discord's timestamp markup style codes with
// their human labels, in display order.
var discordTagStyles = []struct {
	Label string
	Style string
}{
	{"Short Time", "t"},
	{"Long Time", "T"},
	{"Short Date", "d"},
	{"Long Date", "D"},
	{"Short Date/Time", "f"},
	{"Long Date/Time", "F"},
	{"Relative Time", "R"},
}

// timestampEmbed renders a cached result in one of the two display
// modes: the unix layout (mode actionUnixFormat) or the Discord tag
// layout (mode actionDiscordFormat). The same result renders
// identically every time, so toggling back restores the original
// message.
func timestampEmbed(result *TimestampResult, mode string) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Color:     embedColor,
		Title:     "⏰ Timestamp Calculator",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	if mode == actionDiscordFormat {
		description := "**Discord Timestamp Formats:**\n\n"
		for _, style := range discordTagStyles {
			tag := fmt.Sprintf("<t:%d:%s>", result.Unix, style.Style)
			description += fmt.Sprintf("**%s:** %s\n`%s`\n\n", style.Label, tag, tag)
		}
		embed.Description = description
		return embed
	}

	embed.Fields = []*discordgo.MessageEmbedField{
		{Name: "Unix Timestamp", Value: fmt.Sprintf("`%d`", result.Unix)},
		{Name: "Local Time", Value: result.LocalString, Inline: true},
		{Name: "Timezone", Value: result.Timezone, Inline: true},
		{Name: "UTC Time", Value: result.UTCString},
	}
	return embed
}

// buttonRow builds the controls under a rendered message. The toggle
// button leads to whichever mode is not currently shown; the copy
// button is always present.
func buttonRow(mode, userID string, millis int64) []discordgo.MessageComponent {
	toggle := discordgo.Button{
		Label:    "Discord Format",
		Style:    discordgo.PrimaryButton,
		Emoji:    &discordgo.ComponentEmoji{Name: "📋"},
		CustomID: controlID{Action: actionDiscordFormat, UserID: userID, UnixMillis: millis}.String(),
	}
	if mode == actionDiscordFormat {
		toggle = discordgo.Button{
			Label:    "Regular Format",
			Style:    discordgo.PrimaryButton,
			Emoji:    &discordgo.ComponentEmoji{Name: "🔙"},
			CustomID: controlID{Action: actionUnixFormat, UserID: userID, UnixMillis: millis}.String(),
		}
	}
	copyButton := discordgo.Button{
		Label:    "Copy Unix",
		Style:    discordgo.SuccessButton,
		Emoji:    &discordgo.ComponentEmoji{Name: "📄"},
		CustomID: controlID{Action: actionCopyUnix, UserID: userID, UnixMillis: millis}.String(),
	}

	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{toggle, copyButton},
		},
	}
}
