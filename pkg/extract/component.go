package extract

import (
	"context"

	"github.com/morezero/interactions/pkg/interaction"
	"github.com/morezero/interactions/pkg/respond"
)

// ComponentInput is the payload of a button press or select interaction on a
// message.
type ComponentInput struct {
	CustomID string
	Type     interaction.ComponentType
	Values   []string
}

// Component extracts the message component payload.
func Component[S any]() Extractor[S, ComponentInput] {
	return Func[S, ComponentInput](func(_ context.Context, ev *interaction.Event, _ S) (ComponentInput, respond.Rejection) {
		cd, derr := requireData[*interaction.ComponentData](ev)
		if derr != nil {
			return ComponentInput{}, derr
		}
		values := make([]string, len(cd.Values))
		copy(values, cd.Values)
		return ComponentInput{CustomID: cd.CustomID, Type: cd.ComponentType, Values: values}, nil
	})
}

// Invoker extracts the user who triggered the interaction, whether it came
// from a guild or a DM.
func Invoker[S any]() Extractor[S, interaction.User] {
	return Func[S, interaction.User](func(_ context.Context, ev *interaction.Event, _ S) (interaction.User, respond.Rejection) {
		u := ev.Invoker()
		if u == nil {
			return interaction.User{}, &DataError{Kind: ErrNoInvoker}
		}
		return *u, nil
	})
}
