// Package handler turns functions over extracted values into uniform
// interaction handlers.
//
// A handler function takes a context plus up to fifteen extracted values and
// returns (R, error) for any respond.Responder R. HandleN binds the function
// to one extractor per parameter once, at registration time; every call then
// runs those extractors in declaration order against the same event and
// stops at the first rejection.
package handler

//go:generate go run ../../internal/gen/arity -kind handler -out handler_gen.go

import (
	"context"

	"github.com/morezero/interactions/pkg/interaction"
	"github.com/morezero/interactions/pkg/respond"
)

// Handler answers one interaction. S is the shared state handed to every
// dispatch.
type Handler[S any] interface {
	Call(ctx context.Context, ev interaction.Event, state S) interaction.Response
}

// Func adapts a function to a Handler.
type Func[S any] func(ctx context.Context, ev interaction.Event, state S) interaction.Response

func (f Func[S]) Call(ctx context.Context, ev interaction.Event, state S) interaction.Response {
	return f(ctx, ev, state)
}

// Handle0 lifts a function without extracted arguments. The event is not
// looked at.
func Handle0[S any, R respond.Responder](fn func(context.Context) (R, error)) Handler[S] {
	return Func[S](func(ctx context.Context, _ interaction.Event, _ S) interaction.Response {
		out, err := fn(ctx)
		return respond.Result(out, err)
	})
}

// Make returns h as a plain function value.
func Make[S any](h Handler[S]) func(context.Context, interaction.Event, S) interaction.Response {
	return h.Call
}
