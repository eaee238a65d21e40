package dispatcher

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/morezero/interactions/pkg/codec"
	"github.com/morezero/interactions/pkg/interaction"
)

// DispatchRequest decodes the interaction carried by req, dispatches it and
// wraps the response in a reply. A request without an ID is given one so
// the reply can still be correlated in logs.
func (r *Router[S]) DispatchRequest(ctx context.Context, req *InteractionRequest) *InteractionReply {
	id := req.ID
	if id == "" {
		id = uuid.NewString()
	}

	if len(req.Interaction) == 0 {
		return ErrorReply(id, CodeInvalidArgument, "Missing interaction", false)
	}
	var ev interaction.Event
	if err := codec.DecodePayload(req.Interaction, &ev); err != nil {
		slog.Debug(fmt.Sprintf("%s - request %s: bad interaction: %v", logPrefix, id, err))
		return ErrorReply(id, CodeInvalidArgument, "Failed to parse interaction", false)
	}

	resp := r.Dispatch(ctx, ev)
	if err := ctx.Err(); err != nil {
		return ErrorReply(id, CodeInternalError, fmt.Sprintf("Dispatch did not finish in time: %v", err), true)
	}
	return &InteractionReply{ID: id, Ok: true, Response: &resp}
}
