package transport

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/morezero/interactions/pkg/codec"
	"github.com/morezero/interactions/pkg/interaction"
)

const gatewayLogPrefix = "transport:gateway"

const eventInteractionCreate = "INTERACTION_CREATE"

// GatewayOpts configures Gateway. Nil or zero values use defaults.
type GatewayOpts struct {
	// Timeout bounds one dispatch. Defaults to 3s, Discord's window for
	// the initial response.
	Timeout time.Duration
}

// Gateway receives interactions over a discordgo websocket session and
// answers them through the REST callback endpoint.
type Gateway struct {
	session *discordgo.Session
	disp    Dispatcher
	timeout time.Duration
	ctx     context.Context
	remove  func()

	// respond posts the callback; replaced in tests.
	respond func(*discordgo.Interaction, *discordgo.InteractionResponse) error
}

// NewGateway creates a Gateway for the bot token. Pass nil for opts to use
// defaults.
func NewGateway(token string, disp Dispatcher, opts *GatewayOpts) (*Gateway, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("%s - failed to create discord session: %w", gatewayLogPrefix, err)
	}
	// Interactions arrive without any privileged intent.
	session.Identify.Intents = discordgo.IntentsGuilds

	g := newGateway(disp, opts)
	g.session = session
	g.respond = func(i *discordgo.Interaction, r *discordgo.InteractionResponse) error {
		return session.InteractionRespond(i, r)
	}
	return g, nil
}

func newGateway(disp Dispatcher, opts *GatewayOpts) *Gateway {
	timeout := 3 * time.Second
	if opts != nil && opts.Timeout > 0 {
		timeout = opts.Timeout
	}
	return &Gateway{disp: disp, timeout: timeout, ctx: context.Background()}
}

func (g *Gateway) Name() string { return "gateway" }

// Start opens the websocket session. ctx is the parent of every dispatch.
func (g *Gateway) Start(ctx context.Context) error {
	slog.Info(fmt.Sprintf("%s - Opening Discord gateway session", gatewayLogPrefix))

	g.ctx = ctx
	g.remove = g.session.AddHandler(g.onEvent)
	if err := g.session.Open(); err != nil {
		g.remove()
		return fmt.Errorf("%s - failed to open discord session: %w", gatewayLogPrefix, err)
	}

	slog.Info(fmt.Sprintf("%s - Discord gateway session open", gatewayLogPrefix))
	return nil
}

// Stop closes the session.
func (g *Gateway) Stop(_ context.Context) error {
	slog.Info(fmt.Sprintf("%s - Closing Discord gateway session", gatewayLogPrefix))
	if g.remove != nil {
		g.remove()
	}
	if err := g.session.Close(); err != nil {
		return fmt.Errorf("%s - failed to close discord session: %w", gatewayLogPrefix, err)
	}
	return nil
}

// onEvent sees every raw gateway event; discordgo runs it on its own goroutine.
func (g *Gateway) onEvent(_ *discordgo.Session, e *discordgo.Event) {
	if e.Type != eventInteractionCreate {
		return
	}
	g.handle(e.RawData)
}

func (g *Gateway) handle(raw json.RawMessage) {
	var ev interaction.Event
	if err := codec.DecodePayload(raw, &ev); err != nil {
		slog.Warn(fmt.Sprintf("%s - failed to decode interaction: %v", gatewayLogPrefix, err))
		return
	}

	ctx, cancel := context.WithTimeout(g.ctx, g.timeout)
	defer cancel()
	resp := g.disp.Dispatch(ctx, ev)

	target := &discordgo.Interaction{ID: ev.ID, AppID: ev.ApplicationID, Token: ev.Token}
	if err := g.respond(target, ToDiscordgo(resp)); err != nil {
		slog.Error(fmt.Sprintf("%s - failed to respond to interaction %s: %v", gatewayLogPrefix, ev.ID, err))
		return
	}
	slog.Debug(fmt.Sprintf("%s - responded to interaction %s with type %d", gatewayLogPrefix, ev.ID, resp.Type))
}
