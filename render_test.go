package main

import (
	"fmt"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderTestResult() *TimestampResult {
	return &TimestampResult{
		Unix:        1718429400,
		UTCString:   "2024-06-15T05:30:00.000Z",
		LocalString: "2024-06-15 14:30:00 +0900",
		Timezone:    "Asia/Tokyo",
	}
}

func TestUnixEmbedFields(t *testing.T) {
	embed := timestampEmbed(renderTestResult(), actionUnixFormat)

	require.Len(t, embed.Fields, 4)
	assert.Equal(t, "Unix Timestamp", embed.Fields[0].Name)
	assert.Equal(t, "`1718429400`", embed.Fields[0].Value)
	assert.Equal(t, "Local Time", embed.Fields[1].Name)
	assert.Equal(t, "2024-06-15 14:30:00 +0900", embed.Fields[1].Value)
	assert.True(t, embed.Fields[1].Inline)
	assert.Equal(t, "Timezone", embed.Fields[2].Name)
	assert.Equal(t, "Asia/Tokyo", embed.Fields[2].Value)
	assert.True(t, embed.Fields[2].Inline)
	assert.Equal(t, "UTC Time", embed.Fields[3].Name)
	assert.Equal(t, "2024-06-15T05:30:00.000Z", embed.Fields[3].Value)
	assert.Empty(t, embed.Description)
}

func TestDiscordEmbedListsAllStyles(t *testing.T) {
	embed := timestampEmbed(renderTestResult(), actionDiscordFormat)

	assert.Empty(t, embed.Fields)
	for _, style := range []string{"t", "T", "d", "D", "f", "F", "R"} {
		tag := fmt.Sprintf("<t:1718429400:%s>", style)
		assert.Contains(t, embed.Description, tag)
		assert.Contains(t, embed.Description, "`"+tag+"`", "tag %s should also appear as copyable markup", style)
	}
	for _, label := range []string{"Short Time", "Long Time", "Short Date", "Long Date", "Short Date/Time", "Long Date/Time", "Relative Time"} {
		assert.Contains(t, embed.Description, "**"+label+":**")
	}
}

// Toggling away and back renders content identical to the original:
// both renderings are pure functions of the cached result.
func TestToggleIdempotence(t *testing.T) {
	result := renderTestResult()

	first := timestampEmbed(result, actionUnixFormat)
	alternate := timestampEmbed(result, actionDiscordFormat)
	second := timestampEmbed(result, actionUnixFormat)

	assert.Equal(t, first.Fields, second.Fields)
	assert.Equal(t, first.Description, second.Description)
	assert.NotEqual(t, first.Description, alternate.Description)
}

func TestButtonRowStateMachine(t *testing.T) {
	row := func(mode string) []discordgo.Button {
		components := buttonRow(mode, "42", 1000)
		require.Len(t, components, 1)
		actionsRow, ok := components[0].(discordgo.ActionsRow)
		require.True(t, ok)
		var buttons []discordgo.Button
		for _, c := range actionsRow.Components {
			button, ok := c.(discordgo.Button)
			require.True(t, ok)
			buttons = append(buttons, button)
		}
		return buttons
	}

	t.Run("primary mode offers the alternate", func(t *testing.T) {
		buttons := row(actionUnixFormat)
		require.Len(t, buttons, 2)
		assert.Equal(t, "Discord Format", buttons[0].Label)

		cid, err := parseControlID(buttons[0].CustomID)
		require.NoError(t, err)
		assert.Equal(t, actionDiscordFormat, cid.Action)
		assert.Equal(t, "42:1000", cid.CacheKey())
	})

	t.Run("alternate mode offers the primary", func(t *testing.T) {
		buttons := row(actionDiscordFormat)
		require.Len(t, buttons, 2)
		assert.Equal(t, "Regular Format", buttons[0].Label)

		cid, err := parseControlID(buttons[0].CustomID)
		require.NoError(t, err)
		assert.Equal(t, actionUnixFormat, cid.Action)
	})

	t.Run("copy button in both modes", func(t *testing.T) {
		for _, mode := range []string{actionUnixFormat, actionDiscordFormat} {
			buttons := row(mode)
			require.Len(t, buttons, 2)
			assert.Equal(t, "Copy Unix", buttons[1].Label)

			cid, err := parseControlID(buttons[1].CustomID)
			require.NoError(t, err)
			assert.Equal(t, actionCopyUnix, cid.Action)
			assert.Equal(t, "42:1000", cid.CacheKey())
		}
	})
}
