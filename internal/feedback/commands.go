package feedback

import (
	"github.com/bwmarrin/discordgo"

	"github.com/morezero/interactions/pkg/db"
)

// Commands returns the application commands the feedback routes answer, for
// registration with Discord.
func Commands() []*discordgo.ApplicationCommand {
	minLimit := float64(1)
	return []*discordgo.ApplicationCommand{
		{
			Name:        "ping",
			Description: "Check that the bot is responding",
		},
		{
			Name:        "feedback",
			Description: "Send feedback to the maintainers",
			Options: []*discordgo.ApplicationCommandOption{{
				Type:         discordgo.ApplicationCommandOptionString,
				Name:         "topic",
				Description:  "What the feedback is about",
				Autocomplete: true,
				MaxLength:    maxTopicLen,
			}},
		},
		{
			Name:        "feedback-recent",
			Description: "Show the latest feedback for this server",
			Options: []*discordgo.ApplicationCommandOption{{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "limit",
				Description: "How many entries to show",
				MinValue:    &minLimit,
				MaxValue:    float64(db.MaxListLimit),
			}},
		},
	}
}
