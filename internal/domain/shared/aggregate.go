package shared

// EventSource is an entity that records events while it is being changed.
// Services drain them with PullEvents after the change is saved.
type EventSource interface {
	Entity
	PullEvents() []DomainEvent
}

// Aggregate is embedded by brands and products. The recorded events are never persisted.
type Aggregate struct {
	BaseEntity
	pending []DomainEvent `gorm:"-"`
}

// NewAggregate starts an aggregate with a fresh ID under prefix
func NewAggregate(prefix string) Aggregate {
	return Aggregate{BaseEntity: NewBaseEntity(prefix)}
}

// Record queues event for the next PullEvents
func (a *Aggregate) Record(event DomainEvent) {
	a.pending = append(a.pending, event)
}

// PullEvents returns the queued events in recording order and empties the queue.
func (a *Aggregate) PullEvents() []DomainEvent {
	events := a.pending
	a.pending = nil
	return events
}
