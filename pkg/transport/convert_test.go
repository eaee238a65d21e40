package transport

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/bwmarrin/discordgo"

	"github.com/morezero/interactions/pkg/interaction"
	"github.com/morezero/interactions/pkg/respond"
)

// dispatchFunc adapts a function to Dispatcher.
type dispatchFunc func(context.Context, interaction.Event) interaction.Response

func (f dispatchFunc) Dispatch(ctx context.Context, ev interaction.Event) interaction.Response {
	return f(ctx, ev)
}

func TestToDiscordgo_Pong(t *testing.T) {
	out := ToDiscordgo(respond.Ack())

	if out.Type != discordgo.InteractionResponsePong {
		t.Errorf("transport:convert_test - Type = %d, want pong", out.Type)
	}
	if out.Data != nil {
		t.Errorf("transport:convert_test - Data = %+v, want nil", out.Data)
	}
}

func TestToDiscordgo_ErrorReport(t *testing.T) {
	out := ToDiscordgo(respond.BasicErrorReport{Err: errString("No interaction data")}.IntoResponse())

	if out.Type != discordgo.InteractionResponseChannelMessageWithSource {
		t.Errorf("transport:convert_test - Type = %d", out.Type)
	}
	if out.Data.Flags&discordgo.MessageFlagsEphemeral == 0 {
		t.Error("transport:convert_test - expected ephemeral flag")
	}
	if len(out.Data.Embeds) != 1 || out.Data.Embeds[0].Description != "No interaction data" {
		t.Errorf("transport:convert_test - Embeds = %+v", out.Data.Embeds)
	}
}

func TestToDiscordgo_ModalKeepsComponents(t *testing.T) {
	resp := interaction.Response{
		Type: interaction.ResponseModal,
		Data: &interaction.ResponseData{
			CustomID: "feedback:submit",
			Title:    "Feedback",
			Components: []interaction.Component{
				&interaction.Label{Label: "Topic", Component: &interaction.TextInput{CustomID: "topic", Style: interaction.TextInputShort}},
				&interaction.ActionRow{Components: []interaction.Component{&interaction.Button{Style: interaction.ButtonDanger, CustomID: "x", Label: "X"}}},
			},
		},
	}

	data, err := json.Marshal(ToDiscordgo(resp))
	if err != nil {
		t.Fatalf("transport:convert_test - marshal: %v", err)
	}

	var got struct {
		Type int `json:"type"`
		Data struct {
			CustomID   string `json:"custom_id"`
			Title      string `json:"title"`
			Components []struct {
				Type      int `json:"type"`
				Component struct {
					Type     int    `json:"type"`
					CustomID string `json:"custom_id"`
				} `json:"component"`
			} `json:"components"`
		} `json:"data"`
	}
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("transport:convert_test - unmarshal: %v", err)
	}
	if got.Type != 9 || got.Data.CustomID != "feedback:submit" || got.Data.Title != "Feedback" {
		t.Errorf("transport:convert_test - got %s", data)
	}
	if len(got.Data.Components) != 2 {
		t.Fatalf("transport:convert_test - components = %d, want 2", len(got.Data.Components))
	}
	if c := got.Data.Components[0]; c.Type != 18 || c.Component.Type != 4 || c.Component.CustomID != "topic" {
		t.Errorf("transport:convert_test - label = %+v", c)
	}
	if got.Data.Components[1].Type != 1 {
		t.Errorf("transport:convert_test - row type = %d", got.Data.Components[1].Type)
	}
}

func TestToDiscordgo_Choices(t *testing.T) {
	resp := interaction.Response{
		Type: interaction.ResponseAutocompleteResult,
		Data: &interaction.ResponseData{Choices: []interaction.Choice{{Name: "Five", Value: 5}}},
	}

	out := ToDiscordgo(resp)
	if len(out.Data.Choices) != 1 || out.Data.Choices[0].Name != "Five" || out.Data.Choices[0].Value != 5 {
		t.Errorf("transport:convert_test - Choices = %+v", out.Data.Choices)
	}
}

type errString string

func (e errString) Error() string { return string(e) }
