package transport

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	comms "github.com/nats-io/nats.go"

	"github.com/morezero/interactions/pkg/codec"
	"github.com/morezero/interactions/pkg/commsutil"
	"github.com/morezero/interactions/pkg/dispatcher"
)

const commsLogPrefix = "transport:comms"

// RequestDispatcher answers one COMMS interaction request.
// *dispatcher.Router satisfies it.
type RequestDispatcher interface {
	DispatchRequest(ctx context.Context, req *dispatcher.InteractionRequest) *dispatcher.InteractionReply
}

// CommsOpts configures Comms. Nil or zero values use defaults.
type CommsOpts struct {
	// Subject to serve. Defaults to commsutil.SubjectInteractions.
	Subject string
	// Queue group shared by replicas. Empty means a plain subscription.
	Queue string
	// Timeout bounds one dispatch; a caller may ask for less through the
	// request's deadlineMs or timeoutMs. Defaults to 3s.
	Timeout time.Duration
}

// Comms serves interaction requests on a COMMS subject, replying with a
// dispatcher.InteractionReply to each.
type Comms struct {
	nc      *comms.Conn
	disp    RequestDispatcher
	subject string
	queue   string
	timeout time.Duration
	ctx     context.Context
	sub     *comms.Subscription
}

// NewComms creates a Comms transport. Pass nil for opts to use defaults.
func NewComms(nc *comms.Conn, disp RequestDispatcher, opts *CommsOpts) *Comms {
	c := &Comms{
		nc:      nc,
		disp:    disp,
		subject: commsutil.SubjectInteractions,
		timeout: 3 * time.Second,
		ctx:     context.Background(),
	}
	if opts != nil {
		if opts.Subject != "" {
			c.subject = opts.Subject
		}
		c.queue = opts.Queue
		if opts.Timeout > 0 {
			c.timeout = opts.Timeout
		}
	}
	return c
}

func (c *Comms) Name() string { return "comms" }

// Subject returns the subject being served.
func (c *Comms) Subject() string { return c.subject }

// Start subscribes. ctx is the parent of every dispatch.
func (c *Comms) Start(ctx context.Context) error {
	c.ctx = ctx

	var err error
	if c.queue != "" {
		c.sub, err = c.nc.QueueSubscribe(c.subject, c.queue, c.handle)
	} else {
		c.sub, err = c.nc.Subscribe(c.subject, c.handle)
	}
	if err != nil {
		return fmt.Errorf("%s - failed to subscribe to %s: %w", commsLogPrefix, c.subject, err)
	}

	slog.Info(fmt.Sprintf("%s - Subscribed to %s", commsLogPrefix, c.subject))
	return nil
}

// Stop unsubscribes. Requests already being handled still get their reply.
func (c *Comms) Stop(_ context.Context) error {
	if c.sub == nil {
		return nil
	}
	if err := c.sub.Unsubscribe(); err != nil {
		return fmt.Errorf("%s - failed to unsubscribe from %s: %w", commsLogPrefix, c.subject, err)
	}
	return nil
}

func (c *Comms) handle(msg *comms.Msg) {
	req, err := dispatcher.DecodeRequest(msg.Data)
	if err != nil {
		slog.Error(fmt.Sprintf("%s - %v", commsLogPrefix, err))
		c.reply(msg, dispatcher.ErrorReply("", dispatcher.CodeInvalidRequest, "Failed to decode request", false))
		return
	}

	reqCtx, cancel := context.WithTimeout(c.ctx, req.Ctx.Timeout(c.timeout))
	defer cancel()

	c.reply(msg, c.disp.DispatchRequest(reqCtx, req))
}

func (c *Comms) reply(msg *comms.Msg, reply *dispatcher.InteractionReply) {
	data, err := codec.EncodePayload(reply)
	if err != nil {
		slog.Error(fmt.Sprintf("%s - failed to encode reply: %v", commsLogPrefix, err))
		return
	}
	if err := msg.Respond(data); err != nil {
		slog.Warn(fmt.Sprintf("%s - failed to respond: %v", commsLogPrefix, err))
	}
}
