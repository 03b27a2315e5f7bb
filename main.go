package main

import (
	"log"
	"os"

	// Fallback zone database for hosts without a system tzdata install.
	_ "time/tzdata"

	"github.com/joho/godotenv"
)

func main() {
	// Load from .env (if present) and then from the environment
	if err := godotenv.Load(); err != nil {
		log.Printf(".env not found or failed to load: %v", err)
	} else {
		log.Printf("Loaded .env file")
	}

	token := os.Getenv("DISCORD_TOKEN")
	if token == "" {
		log.Fatalf("Missing required environment variable: DISCORD_TOKEN")
	}
	// Optional: when set, commands are registered on this guild only
	// (instant propagation); otherwise they are registered globally.
	guildID := os.Getenv("GUILD_ID")

	// Optional command-audit database
	if err := InitDB(); err != nil {
		log.Printf("Command audit disabled: %v", err)
	}

	// Landing page and legal notices
	go runWebServer(os.Getenv("PORT"))

	// Create and run the bot
	if err := runBot(token, guildID); err != nil {
		log.Fatalf("Bot error: %v", err)
	}
}
