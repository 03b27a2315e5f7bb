package main

import (
	"log"

	"github.com/bwmarrin/discordgo"
)

// timestamps holds computed results between a /timestamp reply and its
// button presses. Shared by the command and component handlers.
var timestamps = newResultCache(cacheTTL)

func runBot(token, guildID string) error {
	dg, err := discordgo.New("Bot " + token)
	if err != nil {
		return err
	}

	dg.AddHandler(onReady)
	dg.AddHandler(func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		switch i.Type {
		case discordgo.InteractionApplicationCommand:
			handleTimestampCommand(s, i)
			handleHelpCommand(s, i)
		case discordgo.InteractionMessageComponent:
			handleTimestampButton(s, i)
		}
	})

	// Open a websocket connection to Discord
	if err := dg.Open(); err != nil {
		return err
	}
	defer dg.Close()

	// Register slash commands (after opening so s.State is available).
	// An empty guildID registers them globally.
	registerTimestampCommand(dg, guildID)
	registerHelp(dg, guildID)

	log.Println("Bot is now running. Press CTRL+C to exit.")
	select {} // Block forever
}

func onReady(s *discordgo.Session, event *discordgo.Ready) {
	log.Printf("%s has connected to Discord!", s.State.User.String())
	log.Println("Bot is ready to calculate timestamps!")
}
