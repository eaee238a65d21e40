package events

import (
	"context"
	"fmt"
	"log/slog"

	comms "github.com/nats-io/nats.go"

	"github.com/morezero/interactions/pkg/codec"
	"github.com/morezero/interactions/pkg/commsutil"
)

const commsPublisherLogPrefix = "events:comms_publisher"

// CommsPublisherOpts configures CommsPublisher. Nil or zero values use defaults.
type CommsPublisherOpts struct {
	// GlobalSubject overrides the global subject (e.g. from DISPATCHED_EVENT_SUBJECT).
	GlobalSubject string
}

// CommsPublisher publishes dispatch notifications to COMMS subjects.
type CommsPublisher struct {
	nc            *comms.Conn
	globalSubject string
}

// NewCommsPublisher creates a new CommsPublisher. Pass nil for opts to use defaults.
func NewCommsPublisher(nc *comms.Conn, opts *CommsPublisherOpts) *CommsPublisher {
	globalSubject := commsutil.SubjectDispatched
	if opts != nil && opts.GlobalSubject != "" {
		globalSubject = opts.GlobalSubject
	}
	return &CommsPublisher{nc: nc, globalSubject: globalSubject}
}

// PublishDispatched publishes the event to the per-type subject and then to
// the global subject. Delivery is fire-and-forget.
func (p *CommsPublisher) PublishDispatched(_ context.Context, event *InteractionDispatchedEvent) error {
	data, err := codec.EncodePayload(event)
	if err != nil {
		return fmt.Errorf("%s - failed to encode event: %w", commsPublisherLogPrefix, err)
	}

	typedSubject := commsutil.BuildDispatchedSubject(event.EventType)
	for _, subject := range []string{typedSubject, p.globalSubject} {
		if err := p.nc.Publish(subject, data); err != nil {
			slog.Error(fmt.Sprintf("%s - failed to publish to %s: %v", commsPublisherLogPrefix, subject, err))
			return fmt.Errorf("%s - publish %s: %w", commsPublisherLogPrefix, subject, err)
		}
	}

	slog.Debug(fmt.Sprintf("%s - Published dispatched event %s for %s", commsPublisherLogPrefix, event.EventID, event.Route))
	return nil
}
