package extract

import (
	"errors"

	"github.com/morezero/interactions/pkg/interaction"
	"github.com/morezero/interactions/pkg/respond"
)

// Failure kinds of the data extractors. Match them with errors.Is.
var (
	ErrNoInteractionData    = errors.New("No interaction data")
	ErrWrongInteractionData = errors.New("Invalid interaction data")
	ErrDecodeFailure        = errors.New("Could not deserialize custom modal struct")
	ErrNoInvoker            = errors.New("No invoking user")
)

// DataError is the rejection of the extractors that read interaction data.
// Kind is one of the Err* sentinels; Err holds the decode error behind
// ErrDecodeFailure.
type DataError struct {
	Kind error
	Err  error
}

func (e *DataError) Error() string { return e.Kind.Error() }

func (e *DataError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// IntoResponse reports the error to the invoker as an ephemeral message.
func (e *DataError) IntoResponse() interaction.Response {
	return respond.BasicErrorReport{Err: e}.IntoResponse()
}

// requireData returns the event's data as D, or the rejection for a missing
// or differently typed payload.
func requireData[D interaction.Data](ev *interaction.Event) (D, *DataError) {
	var zero D
	if ev.Data == nil {
		return zero, &DataError{Kind: ErrNoInteractionData}
	}
	d, ok := ev.Data.(D)
	if !ok {
		return zero, &DataError{Kind: ErrWrongInteractionData}
	}
	return d, nil
}
