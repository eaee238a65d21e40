package respond

import "github.com/morezero/interactions/pkg/interaction"

// BasicErrorReport shows an error to the invoking user as an ephemeral
// message with a single embed holding the error text.
type BasicErrorReport struct {
	Err error
}

func (r BasicErrorReport) IntoResponse() interaction.Response {
	msg := "unknown error"
	if r.Err != nil {
		msg = r.Err.Error()
	}
	return interaction.Response{
		Type: interaction.ResponseChannelMessageWithSource,
		Data: &interaction.ResponseData{
			Flags:  interaction.MessageFlagsEphemeral,
			Embeds: []interaction.Embed{{Description: msg}},
		},
	}
}

// Infallible is the rejection of extractors that cannot fail. Nothing in this
// module ever creates one.
type Infallible struct {
	_ struct{}
}

func (Infallible) Error() string { return "infallible" }

// IntoResponse is unreachable; it answers with a bare pong should a value
// ever be made.
func (Infallible) IntoResponse() interaction.Response {
	return Ack()
}

// ResponseRejection is a rejection that has already been converted. Composite
// extractors return it so differing rejection types unify at the first failure.
type ResponseRejection struct {
	Response interaction.Response
}

func (r ResponseRejection) Error() string {
	if r.Response.Data != nil {
		if r.Response.Data.Content != "" {
			return r.Response.Data.Content
		}
		if len(r.Response.Data.Embeds) > 0 {
			return r.Response.Data.Embeds[0].Description
		}
	}
	return "rejected"
}

func (r ResponseRejection) IntoResponse() interaction.Response { return r.Response }
