package extract

import (
	"context"

	"github.com/morezero/interactions/pkg/codec"
	"github.com/morezero/interactions/pkg/interaction"
	"github.com/morezero/interactions/pkg/respond"
)

// ModalSubmit is a decoded modal submission: the modal's own custom_id and
// the submitted values as a T.
type ModalSubmit[T any] struct {
	CustomID string `json:"custom_id"`
	Data     T      `json:"data"`
}

// Modal extracts a ModalSubmit[T]. The component tree is flattened with
// Flatten and the resulting map is decoded into T by matching JSON field
// names to custom_ids. Rejections are *DataError: ErrNoInteractionData,
// ErrWrongInteractionData or ErrDecodeFailure.
func Modal[S, T any]() Extractor[S, ModalSubmit[T]] {
	return Func[S, ModalSubmit[T]](func(_ context.Context, ev *interaction.Event, _ S) (ModalSubmit[T], respond.Rejection) {
		ms, derr := requireData[*interaction.ModalSubmitData](ev)
		if derr != nil {
			return ModalSubmit[T]{}, derr
		}

		var data T
		if err := codec.Restructure(Flatten(ms.Components), &data); err != nil {
			return ModalSubmit[T]{}, &DataError{Kind: ErrDecodeFailure, Err: err}
		}
		return ModalSubmit[T]{CustomID: ms.CustomID, Data: data}, nil
	})
}

// Flatten walks a modal component tree in document order and collects every
// submitted value under its custom_id: text inputs as a string, selects and
// file uploads as a []string. Labels and action rows are descended into;
// other components are skipped.
//
// A custom_id seen twice keeps the value that comes last.
// TODO: Discord documents custom_ids as unique per modal; decide whether a
// duplicate should reject instead of silently overwriting.
func Flatten(components []interaction.Component) map[string]any {
	out := make(map[string]any, len(components))
	for _, c := range components {
		flattenInto(c, out)
	}
	return out
}

func flattenInto(c interaction.Component, out map[string]any) {
	switch c := c.(type) {
	case *interaction.Label:
		if c.Component != nil {
			flattenInto(c.Component, out)
		}
	case *interaction.ActionRow:
		for _, child := range c.Components {
			flattenInto(child, out)
		}
	case *interaction.TextInput:
		out[c.CustomID] = c.Value
	case *interaction.SelectMenu:
		values := make([]string, len(c.Values))
		copy(values, c.Values)
		out[c.CustomID] = values
	}
}
