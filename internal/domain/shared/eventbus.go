package shared

import "context"

// EventHandler reacts to catalog events such as brand.deleted or product.created.
// EventTypes lists the types it wants; nil subscribes it to everything.
type EventHandler interface {
	Handle(ctx context.Context, event DomainEvent) error
	EventTypes() []string
}

// EventPublisher is what application services hand their recorded events to
// once the brand or product change has been written. A nil publisher is allowed
// and silently discards events.
type EventPublisher interface {
	Publish(ctx context.Context, events ...DomainEvent) error
}
