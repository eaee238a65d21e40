package events

import (
	"context"
	"errors"
)

// EventPublisher publishes dispatch notifications.
type EventPublisher interface {
	PublishDispatched(ctx context.Context, event *InteractionDispatchedEvent) error
}

// NoOpPublisher is an EventPublisher that does nothing (for deployments without COMMS).
type NoOpPublisher struct{}

// PublishDispatched is a no-op.
func (p *NoOpPublisher) PublishDispatched(_ context.Context, _ *InteractionDispatchedEvent) error {
	return nil
}

// CallbackPublisher is an EventPublisher that calls a callback function (for testing).
type CallbackPublisher struct {
	callback func(ctx context.Context, event *InteractionDispatchedEvent) error
}

// NewCallbackPublisher creates a new CallbackPublisher.
func NewCallbackPublisher(cb func(ctx context.Context, event *InteractionDispatchedEvent) error) *CallbackPublisher {
	return &CallbackPublisher{callback: cb}
}

// PublishDispatched calls the callback.
func (p *CallbackPublisher) PublishDispatched(ctx context.Context, event *InteractionDispatchedEvent) error {
	return p.callback(ctx, event)
}

// MultiPublisher fans an event out to several publishers in order. Every
// publisher is tried; the errors are joined.
type MultiPublisher struct {
	publishers []EventPublisher
}

// NewMultiPublisher creates a MultiPublisher. Nil publishers are skipped.
func NewMultiPublisher(publishers ...EventPublisher) *MultiPublisher {
	m := &MultiPublisher{}
	for _, p := range publishers {
		if p != nil {
			m.publishers = append(m.publishers, p)
		}
	}
	return m
}

// PublishDispatched publishes to every publisher.
func (m *MultiPublisher) PublishDispatched(ctx context.Context, event *InteractionDispatchedEvent) error {
	var errs []error
	for _, p := range m.publishers {
		if err := p.PublishDispatched(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
