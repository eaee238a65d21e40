// Package feedback is a small bot built on the dispatcher: users open a
// modal with /feedback, submissions are stored, and /feedback-recent lists
// the latest entries for the guild.
package feedback

import (
	"context"

	"github.com/morezero/interactions/pkg/db"
	"github.com/morezero/interactions/pkg/dispatcher"
	"github.com/morezero/interactions/pkg/extract"
	"github.com/morezero/interactions/pkg/handler"
	"github.com/morezero/interactions/pkg/interaction"
	"github.com/morezero/interactions/pkg/respond"
)

// Custom IDs used by the bot's modal and buttons.
const (
	ModalSubmitID    = "feedback:submit"
	DismissID        = "feedback:dismiss"
	WithdrawIDPrefix = "feedback:withdraw:"
)

// FeedbackStore persists submissions. *db.Repository and *MemoryStore
// satisfy it.
type FeedbackStore interface {
	InsertFeedback(ctx context.Context, params db.InsertFeedbackParams) (*db.Feedback, error)
	ListFeedback(ctx context.Context, guildID string, limit int) ([]db.Feedback, error)
	DeleteFeedback(ctx context.Context, id int64) (bool, error)
}

// Deps is the shared state handed to every handler.
type Deps struct {
	Store FeedbackStore
}

// Form is the submitted feedback modal.
type Form struct {
	Topic string   `json:"topic"`
	Body  string   `json:"body"`
	Area  []string `json:"area"`
}

// OpenOpts are the options of /feedback. Topic is also what autocomplete
// sees while the user types.
type OpenOpts struct {
	Topic string `json:"topic"`
}

// RecentOpts are the options of /feedback-recent.
type RecentOpts struct {
	Limit int `json:"limit"`
}

// NewRouter creates a router over deps with every feedback route registered.
func NewRouter(deps Deps, opts *dispatcher.RouterOpts) *dispatcher.Router[Deps] {
	return Register(dispatcher.NewRouter(deps, opts))
}

// Register adds the feedback routes to r.
func Register(r *dispatcher.Router[Deps]) *dispatcher.Router[Deps] {
	return r.
		Command("ping", handler.Handle0[Deps](ping)).
		Command("feedback", handler.Handle1(
			extract.Command[Deps, OpenOpts](),
			openModal,
		)).
		Autocomplete("feedback", handler.Handle3(
			extract.Command[Deps, OpenOpts](),
			extract.SharedState[Deps](),
			guild(),
			suggestTopics,
		)).
		Modal("feedback:*", handler.Handle4(
			extract.Modal[Deps, Form](),
			extract.SharedState[Deps](),
			extract.Invoker[Deps](),
			guild(),
			submit,
		)).
		Command("feedback-recent", handler.Handle3(
			extract.Optional(extract.Command[Deps, RecentOpts]()),
			extract.SharedState[Deps](),
			guild(),
			recent,
		)).
		Component(WithdrawIDPrefix+"*", handler.Handle2(
			extract.Component[Deps](),
			extract.SharedState[Deps](),
			withdraw,
		)).
		Component(DismissID, handler.Handle1(
			extract.Fallible(extract.Component[Deps]()),
			dismiss,
		))
}

// guild extracts the guild the interaction came from; empty in DMs.
func guild() extract.Extractor[Deps, string] {
	return extract.Func[Deps, string](func(_ context.Context, ev *interaction.Event, _ Deps) (string, respond.Rejection) {
		return ev.GuildID, nil
	})
}
