package eventbus_test

import (
	"context"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/aiflow/aiflow/pkg/channels/gochannel"
	"github.com/aiflow/aiflow/pkg/eventbus"
	"github.com/aiflow/aiflow/pkg/events"
	"github.com/aiflow/aiflow/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBus(t *testing.T) eventbus.EventBus {
	t.Helper()

	pub, sub, err := gochannel.CreateChannel(watermill.NopLogger{})
	require.NoError(t, err)

	bus := eventbus.NewWatermillEventBus(pub, sub)

	t.Cleanup(func() {
		assert.NoError(t, bus.Close())
	})

	return bus
}

func TestWatermillEventBus_PublishSubscribe(t *testing.T) {
	bus := newTestBus(t)

	received := make(chan *events.WorkflowCreated, 1)

	require.NoError(t, bus.Handle(events.WorkflowCreatedEvent, func(_ context.Context, event any) error {
		created, ok := event.(*events.WorkflowCreated)
		assert.True(t, ok)
		received <- created

		return nil
	}))

	ctx, cancel := context.WithCancel(t.Context())
	defer cancel()

	require.NoError(t, bus.Subscribe(ctx))

	event := events.WorkflowCreated{
		BaseEvent: events.NewBaseEvent(events.WorkflowCreatedEvent),
		Workflow:  &models.Workflow{ID: 1, Name: "A", Steps: []string{}},
	}
	require.NoError(t, bus.Publish(t.Context(), "1", event))

	select {
	case got := <-received:
		assert.Equal(t, event.ID, got.ID)
		assert.Equal(t, "A", got.Workflow.Name)
	case <-time.After(2 * time.Second):
		t.Fatal("event was not delivered")
	}
}

func TestWatermillEventBus_UnhandledEventsAreAcked(t *testing.T) {
	bus := newTestBus(t)

	received := make(chan events.EventType, 2)

	require.NoError(t, bus.Handle(events.WorkflowDeletedEvent, func(_ context.Context, event any) error {
		received <- event.(*events.WorkflowDeleted).GetType()

		return nil
	}))

	ctx, cancel := context.WithCancel(t.Context())
	defer cancel()

	require.NoError(t, bus.Subscribe(ctx))

	require.NoError(t, bus.Publish(t.Context(), "m1", events.AIModuleCreated{
		BaseEvent: events.NewBaseEvent(events.AIModuleCreatedEvent),
		Module:    &models.AIModule{ID: 1},
	}))
	require.NoError(t, bus.Publish(t.Context(), "1", events.WorkflowDeleted{
		BaseEvent:  events.NewBaseEvent(events.WorkflowDeletedEvent),
		WorkflowID: 1,
	}))

	select {
	case eventType := <-received:
		assert.Equal(t, events.WorkflowDeletedEvent, eventType)
	case <-time.After(2 * time.Second):
		t.Fatal("event was not delivered")
	}
}

func TestWatermillEventBus_GenerateID(t *testing.T) {
	bus := newTestBus(t)

	first := bus.GenerateID()
	second := bus.GenerateID()

	assert.NotEmpty(t, first)
	assert.NotEqual(t, first, second)
}
