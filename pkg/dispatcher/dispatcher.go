package dispatcher

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/morezero/interactions/pkg/events"
	"github.com/morezero/interactions/pkg/handler"
	"github.com/morezero/interactions/pkg/interaction"
	"github.com/morezero/interactions/pkg/respond"
)

const logPrefix = "dispatcher:dispatch"

// ErrHandlerPanic is reported to the user when a handler panics.
var ErrHandlerPanic = errors.New("Something went wrong while handling this interaction")

// UnknownRouteError is the report for an interaction no handler is
// registered for.
type UnknownRouteError struct {
	Route string
}

func (e *UnknownRouteError) Error() string {
	return fmt.Sprintf("Unknown interaction: %s", e.Route)
}

func (e *UnknownRouteError) IntoResponse() interaction.Response {
	return respond.BasicErrorReport{Err: e}.IntoResponse()
}

// RouterOpts configures a Router. Nil or zero values use defaults.
type RouterOpts struct {
	// Publisher receives one event per dispatch. Defaults to a no-op.
	Publisher events.EventPublisher
}

// Router routes interactions to handlers and hands every handler the same
// shared state. Register all routes before the first Dispatch; after that
// the router is only read and is safe for concurrent use.
type Router[S any] struct {
	state        S
	publisher    events.EventPublisher
	commands     map[string]handler.Handler[S]
	autocomplete map[string]handler.Handler[S]
	components   *routeTable[S]
	modals       *routeTable[S]
	fallback     handler.Handler[S]
}

// NewRouter creates a Router over state. Pass nil for opts to use defaults.
func NewRouter[S any](state S, opts *RouterOpts) *Router[S] {
	var publisher events.EventPublisher = &events.NoOpPublisher{}
	if opts != nil && opts.Publisher != nil {
		publisher = opts.Publisher
	}
	return &Router[S]{
		state:        state,
		publisher:    publisher,
		commands:     make(map[string]handler.Handler[S]),
		autocomplete: make(map[string]handler.Handler[S]),
		components:   newRouteTable[S](),
		modals:       newRouteTable[S](),
	}
}

// Command routes the application command name to h.
func (r *Router[S]) Command(name string, h handler.Handler[S]) *Router[S] {
	register(r.commands, "command", name, h)
	return r
}

// Autocomplete routes autocomplete requests of the command name to h.
func (r *Router[S]) Autocomplete(name string, h handler.Handler[S]) *Router[S] {
	register(r.autocomplete, "autocomplete", name, h)
	return r
}

// Component routes message components by custom_id. A key ending in '*'
// matches every custom_id with that prefix; the longest prefix wins and an
// exact key beats any prefix.
func (r *Router[S]) Component(customID string, h handler.Handler[S]) *Router[S] {
	r.components.add("component", customID, h)
	return r
}

// Modal routes modal submissions by custom_id, with the same key rules as
// Component.
func (r *Router[S]) Modal(customID string, h handler.Handler[S]) *Router[S] {
	r.modals.add("modal", customID, h)
	return r
}

// Fallback handles every interaction no other route matches.
func (r *Router[S]) Fallback(h handler.Handler[S]) *Router[S] {
	r.fallback = h
	return r
}

// Routes lists the registered routes, sorted.
func (r *Router[S]) Routes() []string {
	var out []string
	for name := range r.commands {
		out = append(out, "command:"+name)
	}
	for name := range r.autocomplete {
		out = append(out, "autocomplete:"+name)
	}
	out = append(out, r.components.keys("component")...)
	out = append(out, r.modals.keys("modal")...)
	sort.Strings(out)
	return out
}

// Dispatch answers one interaction. Pings get a pong; an interaction with no
// matching route and no fallback gets an ephemeral unknown-interaction
// report. Extraction failures and handler errors are already responses by
// the time they get here, so Dispatch always has something to send.
func (r *Router[S]) Dispatch(ctx context.Context, ev interaction.Event) interaction.Response {
	start := time.Now()

	if ev.Type == interaction.EventPing {
		resp := respond.Ack()
		r.notify(ctx, &ev, "ping", true, resp, time.Since(start))
		return resp
	}

	route, h := r.resolve(&ev)
	slog.Debug(fmt.Sprintf("%s - route=%s id=%s", logPrefix, route, ev.ID))

	handled := h != nil
	if !handled {
		h = r.fallback
	}

	var resp interaction.Response
	if h == nil {
		slog.Debug(fmt.Sprintf("%s - no handler for %s", logPrefix, route))
		resp = (&UnknownRouteError{Route: route}).IntoResponse()
	} else {
		resp = r.call(ctx, h, ev, route)
	}

	r.notify(ctx, &ev, route, handled, resp, time.Since(start))
	return resp
}

func (r *Router[S]) call(ctx context.Context, h handler.Handler[S], ev interaction.Event, route string) (resp interaction.Response) {
	defer func() {
		if p := recover(); p != nil {
			slog.Error(fmt.Sprintf("%s - handler for %s panicked: %v", logPrefix, route, p))
			resp = respond.BasicErrorReport{Err: ErrHandlerPanic}.IntoResponse()
		}
	}()
	return h.Call(ctx, ev, r.state)
}

// resolve names the route of ev and finds its handler, which may be nil.
func (r *Router[S]) resolve(ev *interaction.Event) (string, handler.Handler[S]) {
	switch data := ev.Data.(type) {
	case *interaction.CommandData:
		if ev.Type == interaction.EventCommandAutocomplete {
			return "autocomplete:" + data.Name, r.autocomplete[data.Name]
		}
		return "command:" + data.Name, r.commands[data.Name]
	case *interaction.ComponentData:
		return "component:" + data.CustomID, r.components.lookup(data.CustomID)
	case *interaction.ModalSubmitData:
		return "modal:" + data.CustomID, r.modals.lookup(data.CustomID)
	}
	return ev.Type.String(), nil
}

func (r *Router[S]) notify(ctx context.Context, ev *interaction.Event, route string, handled bool, resp interaction.Response, took time.Duration) {
	event := events.NewInteractionDispatchedEvent(ev.ID, route, ev.Type.String())
	event.GuildID = ev.GuildID
	if u := ev.Invoker(); u != nil {
		event.UserID = u.ID
	}
	event.Handled = handled
	event.ResponseType = int(resp.Type)
	event.Ephemeral = resp.Ephemeral()
	event.DurationMs = took.Milliseconds()

	if err := r.publisher.PublishDispatched(ctx, event); err != nil {
		slog.Warn(fmt.Sprintf("%s - failed to publish dispatched event for %s: %v", logPrefix, route, err))
	}
}

func register[S any](m map[string]handler.Handler[S], kind, key string, h handler.Handler[S]) {
	if h == nil {
		panic(fmt.Sprintf("%s - nil handler for %s:%s", logPrefix, kind, key))
	}
	if _, dup := m[key]; dup {
		panic(fmt.Sprintf("%s - duplicate route %s:%s", logPrefix, kind, key))
	}
	m[key] = h
}

// routeTable matches custom_ids exactly or by registered prefix.
type routeTable[S any] struct {
	exact    map[string]handler.Handler[S]
	prefixes []prefixRoute[S] // longest first
}

type prefixRoute[S any] struct {
	prefix  string
	handler handler.Handler[S]
}

func newRouteTable[S any]() *routeTable[S] {
	return &routeTable[S]{exact: make(map[string]handler.Handler[S])}
}

func (t *routeTable[S]) add(kind, key string, h handler.Handler[S]) {
	prefix, ok := strings.CutSuffix(key, "*")
	if !ok {
		register(t.exact, kind, key, h)
		return
	}
	if h == nil {
		panic(fmt.Sprintf("%s - nil handler for %s:%s", logPrefix, kind, key))
	}
	for _, p := range t.prefixes {
		if p.prefix == prefix {
			panic(fmt.Sprintf("%s - duplicate route %s:%s", logPrefix, kind, key))
		}
	}
	t.prefixes = append(t.prefixes, prefixRoute[S]{prefix: prefix, handler: h})
	sort.SliceStable(t.prefixes, func(i, j int) bool {
		return len(t.prefixes[i].prefix) > len(t.prefixes[j].prefix)
	})
}

func (t *routeTable[S]) lookup(customID string) handler.Handler[S] {
	if h, ok := t.exact[customID]; ok {
		return h
	}
	for _, p := range t.prefixes {
		if strings.HasPrefix(customID, p.prefix) {
			return p.handler
		}
	}
	return nil
}

func (t *routeTable[S]) keys(kind string) []string {
	out := make([]string, 0, len(t.exact)+len(t.prefixes))
	for k := range t.exact {
		out = append(out, kind+":"+k)
	}
	for _, p := range t.prefixes {
		out = append(out, kind+":"+p.prefix+"*")
	}
	return out
}
