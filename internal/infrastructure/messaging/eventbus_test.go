package messaging

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alem-hub/gradebook/internal/domain/shared"
)

type testEvent struct {
	shared.BaseEvent
}

func (testEvent) Payload() map[string]interface{} { return nil }

func newTestEvent(t shared.EventType) testEvent {
	return testEvent{BaseEvent: shared.NewBaseEvent(t, "S001")}
}

func TestInMemoryEventBus_DeliversSynchronously(t *testing.T) {
	bus := NewInMemoryEventBus(nil)

	var typed, all []shared.EventType
	require.NoError(t, bus.Subscribe(shared.EventGradeAdded, func(e shared.Event) error {
		typed = append(typed, e.EventType())
		return nil
	}))
	require.NoError(t, bus.SubscribeAll(func(e shared.Event) error {
		all = append(all, e.EventType())
		return nil
	}))

	require.NoError(t, bus.Publish(newTestEvent(shared.EventGradeAdded)))
	require.NoError(t, bus.Publish(newTestEvent(shared.EventGradeRemoved)))

	assert.Equal(t, []shared.EventType{shared.EventGradeAdded}, typed)
	assert.Equal(t, []shared.EventType{shared.EventGradeAdded, shared.EventGradeRemoved}, all)
	assert.Equal(t, 1, bus.Metrics().Published(shared.EventGradeAdded))
}

func TestInMemoryEventBus_HandlerFailuresAreContained(t *testing.T) {
	bus := NewInMemoryEventBus(nil)

	calls := 0
	require.NoError(t, bus.SubscribeAll(func(shared.Event) error { return errors.New("boom") }))
	require.NoError(t, bus.SubscribeAll(func(shared.Event) error { panic("bad handler") }))
	require.NoError(t, bus.SubscribeAll(func(shared.Event) error { calls++; return nil }))

	assert.NoError(t, bus.Publish(newTestEvent(shared.EventGradeRejected)))
	assert.Equal(t, 1, calls)
	assert.Equal(t, 2, bus.Metrics().Failed(shared.EventGradeRejected))
}

func TestInMemoryEventBus_Validation(t *testing.T) {
	bus := NewInMemoryEventBus(nil)

	assert.Error(t, bus.Subscribe(shared.EventGradeAdded, nil))
	assert.Error(t, bus.SubscribeAll(nil))
	assert.Error(t, bus.Publish(nil))
}

func TestInMemoryEventBus_Closed(t *testing.T) {
	bus := NewInMemoryEventBus(nil)
	require.NoError(t, bus.Close())

	assert.ErrorIs(t, bus.Publish(newTestEvent(shared.EventGradeAdded)), ErrEventBusClosed)
	assert.ErrorIs(t, bus.SubscribeAll(func(shared.Event) error { return nil }), ErrEventBusClosed)
}
