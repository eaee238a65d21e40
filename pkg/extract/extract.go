// Package extract pulls typed values out of an interaction event and the
// shared state of a dispatch.
//
// An Extractor yields either a value or a respond.Rejection. Extractors read
// the event but never consume or mutate it, so any number of them can run
// against the same event in sequence. Wrappers such as Optional and Fallible
// change how a failure is handled for one parameter without the dispatcher
// knowing about it.
package extract

//go:generate go run ../../internal/gen/arity -kind join -out join_gen.go

import (
	"context"

	"github.com/morezero/interactions/pkg/interaction"
	"github.com/morezero/interactions/pkg/respond"
)

// Extractor pulls a T out of an event and the shared state S. A nil
// rejection means success; implementations must return a literal nil, never
// a typed nil pointer.
type Extractor[S, T any] interface {
	Extract(ctx context.Context, ev *interaction.Event, state S) (T, respond.Rejection)
}

// Func adapts a function to an Extractor.
type Func[S, T any] func(ctx context.Context, ev *interaction.Event, state S) (T, respond.Rejection)

func (f Func[S, T]) Extract(ctx context.Context, ev *interaction.Event, state S) (T, respond.Rejection) {
	return f(ctx, ev, state)
}

// Event extracts a deep copy of the whole event. It never fails.
func Event[S any]() Extractor[S, interaction.Event] {
	return Func[S, interaction.Event](func(_ context.Context, ev *interaction.Event, _ S) (interaction.Event, respond.Rejection) {
		return ev.Clone(), nil
	})
}

// State carries a copy of the shared state.
type State[S any] struct {
	Value S
}

// SharedState extracts a copy of the shared state. S is copied by value, so
// anything that must stay shared belongs behind a pointer inside S.
// It never fails.
func SharedState[S any]() Extractor[S, State[S]] {
	return Func[S, State[S]](func(_ context.Context, _ *interaction.Event, state S) (State[S], respond.Rejection) {
		return State[S]{Value: state}, nil
	})
}

// Option is the outcome of an Optional extraction.
type Option[T any] struct {
	Value T
	Valid bool
}

// Optional runs e and reports whether it succeeded instead of rejecting.
// The rejection itself is discarded.
func Optional[S, T any](e Extractor[S, T]) Extractor[S, Option[T]] {
	return Func[S, Option[T]](func(ctx context.Context, ev *interaction.Event, state S) (Option[T], respond.Rejection) {
		v, rej := e.Extract(ctx, ev, state)
		if rej != nil {
			return Option[T]{}, nil
		}
		return Option[T]{Value: v, Valid: true}, nil
	})
}

// Result is the outcome of a Fallible extraction.
type Result[T any] struct {
	Value     T
	Rejection respond.Rejection
}

// Ok reports whether the extraction succeeded.
func (r Result[T]) Ok() bool { return r.Rejection == nil }

// Fallible runs e and hands its outcome to the handler as a value, so a
// failure no longer aborts the dispatch.
func Fallible[S, T any](e Extractor[S, T]) Extractor[S, Result[T]] {
	return Func[S, Result[T]](func(ctx context.Context, ev *interaction.Event, state S) (Result[T], respond.Rejection) {
		v, rej := e.Extract(ctx, ev, state)
		return Result[T]{Value: v, Rejection: rej}, nil
	})
}
