// Package messaging implements the in-process event bus that carries grade
// events from the application layer to reporting handlers.
package messaging

import (
	"errors"
	"fmt"
	"sync"

	"github.com/alem-hub/gradebook/internal/domain/shared"
	"github.com/alem-hub/gradebook/pkg/logger"
)

// ErrEventBusClosed is returned when using a closed bus.
var ErrEventBusClosed = errors.New("event bus is closed")

// ══════════════════════════════════════════════════════════════════════════════
// IN-MEMORY EVENT BUS
// ══════════════════════════════════════════════════════════════════════════════

// InMemoryEventBus delivers events synchronously: Publish returns only after
// every handler has run. Handler failures and panics are logged and counted
// but never reach the publisher.
type InMemoryEventBus struct {
	mu          sync.RWMutex
	handlers    map[shared.EventType][]shared.EventHandler
	allHandlers []shared.EventHandler
	logger      *logger.Logger
	metrics     *EventBusMetrics
	closed      bool
}

// NewInMemoryEventBus creates a new in-memory event bus.
func NewInMemoryEventBus(log *logger.Logger) *InMemoryEventBus {
	if log == nil {
		log = logger.Nop()
	}
	return &InMemoryEventBus{
		handlers:    make(map[shared.EventType][]shared.EventHandler),
		allHandlers: make([]shared.EventHandler, 0),
		logger:      log.With(logger.Component("eventbus")),
		metrics:     NewEventBusMetrics(),
	}
}

// Subscribe registers a handler for a specific event type.
func (b *InMemoryEventBus) Subscribe(eventType shared.EventType, handler shared.EventHandler) error {
	if handler == nil {
		return errors.New("handler cannot be nil")
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return ErrEventBusClosed
	}

	b.handlers[eventType] = append(b.handlers[eventType], handler)
	b.logger.Debug("subscribed handler", logger.String("event_type", string(eventType)))
	return nil
}

// SubscribeAll registers a handler for all events.
func (b *InMemoryEventBus) SubscribeAll(handler shared.EventHandler) error {
	if handler == nil {
		return errors.New("handler cannot be nil")
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return ErrEventBusClosed
	}

	b.allHandlers = append(b.allHandlers, handler)
	b.logger.Debug("subscribed global handler")
	return nil
}

// Publish sends an event to all subscribed handlers.
func (b *InMemoryEventBus) Publish(event shared.Event) error {
	if event == nil {
		return errors.New("event cannot be nil")
	}

	b.mu.RLock()
	if b.closed {
		b.mu.RUnlock()
		return ErrEventBusClosed
	}
	handlers := make([]shared.EventHandler, 0, len(b.handlers[event.EventType()])+len(b.allHandlers))
	handlers = append(handlers, b.handlers[event.EventType()]...)
	handlers = append(handlers, b.allHandlers...)
	b.mu.RUnlock()

	b.metrics.recordPublish(event.EventType())

	if len(handlers) == 0 {
		b.logger.Debug("no handlers for event", logger.String("event_type", string(event.EventType())))
		return nil
	}

	for _, handler := range handlers {
		if err := b.execute(event, handler); err != nil {
			b.metrics.recordFailure(event.EventType())
			b.logger.Error("handler error",
				logger.String("event_type", string(event.EventType())),
				logger.EventID(event.EventID()),
				logger.Err(err),
			)
		}
	}
	return nil
}

func (b *InMemoryEventBus) execute(event shared.Event, handler shared.EventHandler) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("handler panic: %v", r)
		}
	}()
	return handler(event)
}

// Close stops the bus; later calls to Publish and Subscribe fail.
func (b *InMemoryEventBus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.closed = true
	return nil
}

// Metrics returns the bus counters.
func (b *InMemoryEventBus) Metrics() *EventBusMetrics {
	return b.metrics
}

// ══════════════════════════════════════════════════════════════════════════════
// METRICS
// ══════════════════════════════════════════════════════════════════════════════

// EventBusMetrics counts published events and failed handler runs per type.
type EventBusMetrics struct {
	mu        sync.Mutex
	published map[shared.EventType]int
	failed    map[shared.EventType]int
}

// NewEventBusMetrics creates empty counters.
func NewEventBusMetrics() *EventBusMetrics {
	return &EventBusMetrics{
		published: make(map[shared.EventType]int),
		failed:    make(map[shared.EventType]int),
	}
}

func (m *EventBusMetrics) recordPublish(t shared.EventType) {
	m.mu.Lock()
	m.published[t]++
	m.mu.Unlock()
}

func (m *EventBusMetrics) recordFailure(t shared.EventType) {
	m.mu.Lock()
	m.failed[t]++
	m.mu.Unlock()
}

// Published returns how many events of type t were published.
func (m *EventBusMetrics) Published(t shared.EventType) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.published[t]
}

// Failed returns how many handler runs for type t returned an error or panicked.
func (m *EventBusMetrics) Failed(t shared.EventType) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.failed[t]
}
