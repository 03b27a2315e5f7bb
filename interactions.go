package main

import (
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"
)

// handleTimestampButton routes button presses on /timestamp replies.
// Toggle actions re-render the same cached result in the other display
// mode, editing the message in place; the copy action answers with an
// ephemeral code block and leaves the message untouched.
func handleTimestampButton(s *discordgo.Session, i *discordgo.InteractionCreate) {
	cid, err := parseControlID(i.MessageComponentData().CustomID)
	if err != nil {
		log.Printf("Ignoring unknown component interaction: %v", err)
		return
	}

	result := timestamps.Get(cid.CacheKey())
	if result == nil {
		respondEphemeral(s, i, "❌ This timestamp has expired. Please run the command again.")
		return
	}

	switch cid.Action {
	case actionDiscordFormat, actionUnixFormat:
		err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseUpdateMessage,
			Data: &discordgo.InteractionResponseData{
				Embeds:     []*discordgo.MessageEmbed{timestampEmbed(result, cid.Action)},
				Components: buttonRow(cid.Action, cid.UserID, cid.UnixMillis),
			},
		})
		if err != nil {
			log.Printf("Failed to update timestamp message: %v", err)
		}
	case actionCopyUnix:
		respondEphemeral(s, i, fmt.Sprintf("📄 **Unix Timestamp:**\n```\n%d\n```\nCopy the number above!", result.Unix))
	}
}

// interactionUser returns the invoking user for both guild and DM
// interactions.
func interactionUser(i *discordgo.InteractionCreate) *discordgo.User {
	if i.Member != nil {
		return i.Member.User
	}
	return i.User
}

func respondEphemeral(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		log.Printf("Failed to send ephemeral reply: %v", err)
	}
}
