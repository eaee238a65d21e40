// Package transport delivers interactions to a dispatcher and ships the
// responses back to Discord: over the gateway websocket, as an outgoing
// webhook endpoint, or as COMMS request/reply.
package transport

import (
	"context"
	"encoding/json"

	"github.com/bwmarrin/discordgo"

	"github.com/morezero/interactions/pkg/interaction"
)

// Dispatcher answers one decoded interaction. *dispatcher.Router satisfies it.
type Dispatcher interface {
	Dispatch(ctx context.Context, ev interaction.Event) interaction.Response
}

// Transport is a long-running event source.
type Transport interface {
	Name() string
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
}

// ToDiscordgo converts a response for discordgo's REST client. Components
// keep their own JSON encoding, so node types discordgo does not model
// (labels, file uploads) pass through unchanged.
func ToDiscordgo(resp interaction.Response) *discordgo.InteractionResponse {
	out := &discordgo.InteractionResponse{Type: discordgo.InteractionResponseType(resp.Type)}
	if resp.Data == nil {
		return out
	}

	d := resp.Data
	data := &discordgo.InteractionResponseData{
		Content:  d.Content,
		Flags:    discordgo.MessageFlags(d.Flags),
		CustomID: d.CustomID,
		Title:    d.Title,
	}
	for _, e := range d.Embeds {
		data.Embeds = append(data.Embeds, &discordgo.MessageEmbed{
			Title:       e.Title,
			Description: e.Description,
			Color:       e.Color,
		})
	}
	for _, c := range d.Choices {
		data.Choices = append(data.Choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  c.Name,
			Value: c.Value,
		})
	}
	for _, c := range d.Components {
		if c != nil {
			data.Components = append(data.Components, component{c})
		}
	}
	out.Data = data
	return out
}

// component lets an interaction.Component stand in for a
// discordgo.MessageComponent.
type component struct {
	c interaction.Component
}

func (c component) MarshalJSON() ([]byte, error) { return json.Marshal(c.c) }

func (c component) Type() discordgo.ComponentType { return discordgo.ComponentType(c.c.Type()) }
