package main

import (
	"log"

	"github.com/bwmarrin/discordgo"
)

func registerHelp(s *discordgo.Session, guildID string) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "help",
		Description: "How to use the timestamp calculator.",
	}
	_, err := s.ApplicationCommandCreate(s.State.User.ID, guildID, cmd)
	if err != nil {
		log.Printf("Cannot create '/help' command: %v", err)
	}
}

func handleHelpCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.ApplicationCommandData().Name != "help" {
		return
	}
	helpMessage := "**/timestamp** converts a date/time in a country's timezone to a Unix timestamp.\n\n" +
		"**Full date mode:** `/timestamp country:JP year:2024 month:6 day:15` — time of day defaults to midnight.\n" +
		"**Time-only mode:** `/timestamp country:US hour:14 minute:30 second:0` — uses today's date in that timezone; add `day:` to override the day of month.\n\n" +
		"The buttons on the reply switch between the unix layout and Discord timestamp tags, or copy the raw value. " +
		"Results stay interactive for 15 minutes."

	respondEphemeral(s, i, helpMessage)
}
