package main

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
)

func registerTimestampCommand(s *discordgo.Session, guildID string) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "timestamp",
		Description: "Calculate timestamp from date/time components and country timezone",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "country",
				Description: "Country code (e.g., US, GB, JP) for timezone",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "year",
				Description: "Year (required for full date mode)",
			},
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "month",
				Description: "Month (1-12, required for full date mode)",
				MinValue:    float64Ptr(1),
				MaxValue:    12,
			},
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "day",
				Description: "Day of month (1-31)",
				MinValue:    float64Ptr(1),
				MaxValue:    31,
			},
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "hour",
				Description: "Hour (0-23)",
				MinValue:    float64Ptr(0),
				MaxValue:    23,
			},
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "minute",
				Description: "Minute (0-59)",
				MinValue:    float64Ptr(0),
				MaxValue:    59,
			},
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "second",
				Description: "Second (0-59)",
				MinValue:    float64Ptr(0),
				MaxValue:    59,
			},
		},
	}

	_, err := s.ApplicationCommandCreate(s.State.User.ID, guildID, cmd)
	if err != nil {
		log.Printf("Cannot create '/timestamp' command: %v", err)
	}
}

func handleTimestampCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.ApplicationCommandData().Name != "timestamp" {
		return
	}

	var req TimestampRequest
	for _, opt := range i.ApplicationCommandData().Options {
		switch opt.Name {
		case "country":
			req.Country = opt.StringValue()
		case "year":
			req.Year = intOption(opt)
		case "month":
			req.Month = intOption(opt)
		case "day":
			req.Day = intOption(opt)
		case "hour":
			req.Hour = intOption(opt)
		case "minute":
			req.Minute = intOption(opt)
		case "second":
			req.Second = intOption(opt)
		}
	}

	user := interactionUser(i)
	if err := InsertCommand(user.ID, user.Username, auditText(req)); err != nil {
		log.Printf("Failed to audit command: %v", err)
	}

	result, err := calculateTimestamp(req, time.Now())
	if err != nil {
		var calcErr *CalculationError
		if errors.As(err, &calcErr) {
			log.Printf("Timestamp calculation failed: %v", calcErr)
		}
		respondEphemeral(s, i, fmt.Sprintf("❌ **Error:**\n%s", err.Error()))
		return
	}

	millis := time.Now().UnixMilli()
	key := controlID{UserID: user.ID, UnixMillis: millis}.CacheKey()
	timestamps.Put(key, result)

	err = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{timestampEmbed(result, actionUnixFormat)},
			Components: buttonRow(actionUnixFormat, user.ID, millis),
		},
	})
	if err != nil {
		log.Printf("Failed to send timestamp reply: %v", err)
	}
}

func intOption(opt *discordgo.ApplicationCommandInteractionDataOption) *int {
	v := int(opt.IntValue())
	return &v
}

func float64Ptr(v float64) *float64 { return &v }

// auditText flattens a request into the command_text column value.
func auditText(req TimestampRequest) string {
	parts := []string{"/timestamp", "country=" + req.Country}
	add := func(name string, v *int) {
		if v != nil {
			parts = append(parts, fmt.Sprintf("%s=%d", name, *v))
		}
	}
	add("year", req.Year)
	add("month", req.Month)
	add("day", req.Day)
	add("hour", req.Hour)
	add("minute", req.Minute)
	add("second", req.Second)
	return strings.Join(parts, " ")
}
