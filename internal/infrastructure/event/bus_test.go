package event

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/brandkit/backend/internal/domain/catalog"
	"github.com/brandkit/backend/internal/domain/shared"
	"github.com/brandkit/backend/internal/infrastructure/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type recordingHandler struct {
	mu         sync.Mutex
	eventTypes []string
	handled    []shared.DomainEvent
	err        error
	panicWith  any
}

func newRecordingHandler(eventTypes ...string) *recordingHandler {
	return &recordingHandler{eventTypes: eventTypes}
}

func (h *recordingHandler) Handle(_ context.Context, evt shared.DomainEvent) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.handled = append(h.handled, evt)
	if h.panicWith != nil {
		panic(h.panicWith)
	}
	return h.err
}

func (h *recordingHandler) EventTypes() []string { return h.eventTypes }

func (h *recordingHandler) count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.handled)
}

func newBrandEvent(t *testing.T) shared.DomainEvent {
	t.Helper()
	brand, err := catalog.NewBrand("Acme")
	require.NoError(t, err)
	events := brand.PullEvents()
	require.Len(t, events, 1)
	return events[0]
}

func startedBus(t *testing.T, l *zap.Logger) *InMemoryEventBus {
	t.Helper()
	bus := NewInMemoryEventBus(l)
	require.NoError(t, bus.Start(context.Background()))
	t.Cleanup(func() { _ = bus.Stop(context.Background()) })
	return bus
}

func TestInMemoryEventBus_Publish(t *testing.T) {
	bus := startedBus(t, zap.NewNop())
	brandHandler := newRecordingHandler(catalog.EventTypeBrandCreated)
	productHandler := newRecordingHandler(catalog.EventTypeProductCreated)
	bus.Subscribe(brandHandler)
	bus.Subscribe(productHandler)

	require.NoError(t, bus.Publish(context.Background(), newBrandEvent(t)))

	assert.Equal(t, 1, brandHandler.count())
	assert.Equal(t, 0, productHandler.count())
}

func TestInMemoryEventBus_ExplicitTypesOverrideHandlerTypes(t *testing.T) {
	bus := startedBus(t, zap.NewNop())
	h := newRecordingHandler(catalog.EventTypeProductCreated)
	bus.Subscribe(h, catalog.EventTypeBrandCreated)

	require.NoError(t, bus.Publish(context.Background(), newBrandEvent(t)))
	assert.Equal(t, 1, h.count())
}

func TestInMemoryEventBus_WildcardHandler(t *testing.T) {
	bus := startedBus(t, zap.NewNop())
	h := newRecordingHandler()
	bus.Subscribe(h)

	require.NoError(t, bus.Publish(context.Background(), newBrandEvent(t), newBrandEvent(t)))
	assert.Equal(t, 2, h.count())
}

func TestInMemoryEventBus_HandlerErrorIsLoggedNotReturned(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	bus := startedBus(t, zap.New(core))

	failing := newRecordingHandler()
	failing.err = errors.New("boom")
	panicking := newRecordingHandler()
	panicking.panicWith = "kaboom"
	after := newRecordingHandler()
	bus.Subscribe(failing)
	bus.Subscribe(panicking)
	bus.Subscribe(after)

	require.NoError(t, bus.Publish(context.Background(), newBrandEvent(t)))

	assert.Equal(t, 1, after.count())
	entries := logs.FilterMessage("event handler failed").All()
	require.Len(t, entries, 2)
	assert.Equal(t, "boom", entries[0].ContextMap()["error"])
	assert.Contains(t, entries[1].ContextMap()["error"], "kaboom")
}

func TestInMemoryEventBus_StoppedBusDropsEvents(t *testing.T) {
	bus := NewInMemoryEventBus(zap.NewNop())
	h := newRecordingHandler()
	bus.Subscribe(h)

	require.NoError(t, bus.Publish(context.Background(), newBrandEvent(t)))
	assert.Equal(t, 0, h.count())

	require.NoError(t, bus.Start(context.Background()))
	require.NoError(t, bus.Publish(context.Background(), newBrandEvent(t)))
	assert.Equal(t, 1, h.count())
}

func TestInMemoryEventBus_Unsubscribe(t *testing.T) {
	bus := startedBus(t, zap.NewNop())
	h := newRecordingHandler(catalog.EventTypeBrandCreated)
	bus.Subscribe(h)
	bus.Unsubscribe(h)

	require.NoError(t, bus.Publish(context.Background(), newBrandEvent(t)))
	assert.Equal(t, 0, h.count())
}

func TestAuditLogHandler(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	bus := startedBus(t, zap.NewNop())
	bus.Subscribe(NewAuditLogHandler(zap.New(core)))

	evt := newBrandEvent(t)
	ctx := logger.WithRequestID(context.Background(), "req-42")
	require.NoError(t, bus.Publish(ctx, evt))

	entries := logs.FilterMessage("domain event").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "audit", entries[0].LoggerName)
	assert.Equal(t, catalog.EventTypeBrandCreated, fields["event_type"])
	assert.Equal(t, catalog.AggregateTypeBrand, fields["aggregate_type"])
	assert.Equal(t, evt.AggregateID(), fields["aggregate_id"])
	assert.Equal(t, "req-42", fields["request_id"])
}
