package feedback

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/morezero/interactions/pkg/db"
	"github.com/morezero/interactions/pkg/extract"
	"github.com/morezero/interactions/pkg/interaction"
	"github.com/morezero/interactions/pkg/respond"
)

const logPrefix = "feedback:handlers"

// Limits enforced by the modal and re-checked on submit.
const (
	maxTopicLen   = 100
	maxBodyLen    = 1000
	maxChoices    = 25
	previewLength = 120
)

// Areas offered in the modal's select.
var Areas = []interaction.SelectOption{
	{Label: "Commands", Value: "commands"},
	{Label: "Documentation", Value: "docs"},
	{Label: "Moderation", Value: "moderation"},
	{Label: "Other", Value: "other"},
}

var (
	errBlankForm  = errors.New("Topic and details must not be blank")
	errSaveFailed = errors.New("Could not save your feedback, please try again later")
	errLoadFailed = errors.New("Could not load feedback, please try again later")
)

func ping(context.Context) (interaction.Response, error) {
	return respond.Message("Pong!"), nil
}

func openModal(_ context.Context, in extract.CommandInput[OpenOpts]) (interaction.Response, error) {
	return Modal(in.Options.Topic), nil
}

// Modal is the feedback form, with the topic prefilled.
func Modal(topic string) interaction.Response {
	zero := 0
	return interaction.Response{
		Type: interaction.ResponseModal,
		Data: &interaction.ResponseData{
			CustomID: ModalSubmitID,
			Title:    "Send feedback",
			Components: []interaction.Component{
				&interaction.Label{
					Label: "Topic",
					Component: &interaction.TextInput{
						CustomID:  "topic",
						Style:     interaction.TextInputShort,
						Value:     truncate(topic, maxTopicLen),
						Required:  true,
						MaxLength: maxTopicLen,
					},
				},
				&interaction.Label{
					Label: "Details",
					Component: &interaction.TextInput{
						CustomID:  "body",
						Style:     interaction.TextInputParagraph,
						Required:  true,
						MaxLength: maxBodyLen,
					},
				},
				&interaction.Label{
					Label:       "Area",
					Description: "Which part of the bot is this about?",
					Component: &interaction.SelectMenu{
						Kind:      interaction.ComponentStringSelect,
						CustomID:  "area",
						Options:   Areas,
						MinValues: &zero,
					},
				},
			},
		},
	}
}

func suggestTopics(ctx context.Context, in extract.CommandInput[OpenOpts], deps extract.State[Deps], guildID string) (interaction.Response, error) {
	rows, err := deps.Value.Store.ListFeedback(ctx, guildID, db.MaxListLimit)
	if err != nil {
		// Autocomplete cannot show an error; offer nothing.
		slog.Warn(fmt.Sprintf("%s - failed to list topics for %q: %v", logPrefix, guildID, err))
		rows = nil
	}

	typed := strings.ToLower(strings.TrimSpace(in.Options.Topic))
	seen := make(map[string]bool)
	choices := []interaction.Choice{}
	for _, f := range rows {
		if len(choices) == maxChoices {
			break
		}
		if seen[f.Topic] || !strings.Contains(strings.ToLower(f.Topic), typed) {
			continue
		}
		seen[f.Topic] = true
		choices = append(choices, interaction.Choice{Name: f.Topic, Value: f.Topic})
	}
	return interaction.Response{
		Type: interaction.ResponseAutocompleteResult,
		Data: &interaction.ResponseData{Choices: choices},
	}, nil
}

func submit(ctx context.Context, form extract.ModalSubmit[Form], deps extract.State[Deps], user interaction.User, guildID string) (interaction.Response, error) {
	topic := strings.TrimSpace(form.Data.Topic)
	body := strings.TrimSpace(form.Data.Body)
	if topic == "" || body == "" {
		return interaction.Response{}, errBlankForm
	}
	if len(form.Data.Area) > 0 {
		topic = fmt.Sprintf("%s [%s]", topic, strings.Join(form.Data.Area, ", "))
	}

	f, err := deps.Value.Store.InsertFeedback(ctx, db.InsertFeedbackParams{
		GuildID:  guildID,
		UserID:   user.ID,
		Username: displayName(user),
		Topic:    truncate(topic, maxTopicLen),
		Body:     truncate(body, maxBodyLen),
	})
	if err != nil {
		slog.Error(fmt.Sprintf("%s - failed to store feedback from %s: %v", logPrefix, user.ID, err))
		return interaction.Response{}, errSaveFailed
	}

	resp := respond.Ephemeral(fmt.Sprintf("Thanks %s, your feedback was recorded as #%d.", displayName(user), f.ID))
	resp.Data.Components = []interaction.Component{
		&interaction.ActionRow{Components: []interaction.Component{
			&interaction.Button{Style: interaction.ButtonDanger, Label: "Withdraw", CustomID: WithdrawIDPrefix + strconv.FormatInt(f.ID, 10)},
			&interaction.Button{Style: interaction.ButtonSecondary, Label: "Dismiss", CustomID: DismissID},
		}},
	}
	return resp, nil
}

func recent(ctx context.Context, opts extract.Option[extract.CommandInput[RecentOpts]], deps extract.State[Deps], guildID string) (interaction.Response, error) {
	limit := db.DefaultListLimit
	if opts.Valid {
		limit = db.ClampLimit(opts.Value.Options.Limit)
	}

	rows, err := deps.Value.Store.ListFeedback(ctx, guildID, limit)
	if err != nil {
		slog.Error(fmt.Sprintf("%s - failed to list feedback for %q: %v", logPrefix, guildID, err))
		return interaction.Response{}, errLoadFailed
	}
	if len(rows) == 0 {
		return respond.Ephemeral("No feedback yet."), nil
	}

	var b strings.Builder
	for _, f := range rows {
		fmt.Fprintf(&b, "#%d **%s** by %s: %s\n", f.ID, f.Topic, f.Username, truncate(f.Body, previewLength))
	}
	resp := respond.Ephemeral("")
	resp.Data.Embeds = []interaction.Embed{{
		Title:       fmt.Sprintf("Latest %d feedback", len(rows)),
		Description: strings.TrimRight(b.String(), "\n"),
	}}
	return resp, nil
}

// withdraw deletes a submission. The button lives on the ephemeral thanks
// message, so only the submitter can press it.
func withdraw(ctx context.Context, in extract.ComponentInput, deps extract.State[Deps]) (interaction.Response, error) {
	id, err := strconv.ParseInt(strings.TrimPrefix(in.CustomID, WithdrawIDPrefix), 10, 64)
	if err != nil {
		return interaction.Response{}, fmt.Errorf("Malformed feedback id in %q", in.CustomID)
	}

	ok, err := deps.Value.Store.DeleteFeedback(ctx, id)
	if err != nil {
		slog.Error(fmt.Sprintf("%s - failed to delete feedback %d: %v", logPrefix, id, err))
		return interaction.Response{}, errSaveFailed
	}
	if !ok {
		return update(fmt.Sprintf("Feedback #%d was already withdrawn.", id)), nil
	}
	return update(fmt.Sprintf("Feedback #%d withdrawn.", id)), nil
}

func dismiss(_ context.Context, in extract.Result[extract.ComponentInput]) (interaction.Response, error) {
	if !in.Ok() {
		return respond.Ephemeral("Nothing to dismiss."), nil
	}
	return update("Dismissed."), nil
}

func update(content string) interaction.Response {
	return interaction.Response{
		Type: interaction.ResponseUpdateMessage,
		Data: &interaction.ResponseData{Content: content},
	}
}

func displayName(u interaction.User) string {
	if u.GlobalName != "" {
		return u.GlobalName
	}
	return u.Username
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
