// Package respond converts handler results and extraction failures into
// interaction responses.
package respond

import (
	"errors"

	"github.com/morezero/interactions/pkg/interaction"
)

// Responder is anything that can become an interaction response.
// interaction.Response is a Responder that returns itself.
type Responder interface {
	IntoResponse() interaction.Response
}

// Rejection is the failure of an extractor. It must be able to become a
// response on its own.
type Rejection interface {
	error
	Responder
}

// Result converts a handler's (value, error) pair: the error arm when err is
// non-nil, the value arm otherwise.
func Result[R Responder](value R, err error) interaction.Response {
	if err != nil {
		return Error(err)
	}
	return value.IntoResponse()
}

// Error converts err to a response. An error that is (or wraps) a Responder
// converts itself; anything else becomes a BasicErrorReport.
func Error(err error) interaction.Response {
	var r Responder
	if errors.As(err, &r) {
		return r.IntoResponse()
	}
	return BasicErrorReport{Err: err}.IntoResponse()
}

// Message is a public channel message with source.
func Message(content string) interaction.Response {
	return interaction.Response{
		Type: interaction.ResponseChannelMessageWithSource,
		Data: &interaction.ResponseData{Content: content},
	}
}

// Ephemeral is a channel message with source only the invoker can see.
func Ephemeral(content string) interaction.Response {
	return interaction.Response{
		Type: interaction.ResponseChannelMessageWithSource,
		Data: &interaction.ResponseData{
			Flags:   interaction.MessageFlagsEphemeral,
			Content: content,
		},
	}
}

// Ack is a bare pong.
func Ack() interaction.Response {
	return interaction.Response{Type: interaction.ResponsePong}
}
