package event

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryBus_PublishDeliversToSubscribers(t *testing.T) {
	bus := NewMemoryBus()
	ctx := context.Background()

	var received []Event
	bus.Subscribe(ItemBought, func(_ context.Context, e Event) error {
		received = append(received, e)
		return nil
	})

	evt := NewItemBoughtEvent("pistol", "Pistol", 500, 4, 500)
	require.NoError(t, bus.Publish(ctx, evt))

	require.Len(t, received, 1)
	assert.Equal(t, ItemBought, received[0].Type)
	assert.Equal(t, EventSchemaVersion, received[0].Version)

	payload, ok := received[0].Payload.(ItemBoughtPayloadV1)
	require.True(t, ok)
	assert.Equal(t, "pistol", payload.ItemID)
	assert.Equal(t, 500, payload.PricePaid)
	assert.Equal(t, 4, payload.Stock)
}

func TestMemoryBus_PublishWithoutSubscribersIsNoop(t *testing.T) {
	bus := NewMemoryBus()
	err := bus.Publish(context.Background(), NewPricesDriftedEvent(nil))
	assert.NoError(t, err)
}

func TestMemoryBus_TypeFiltering(t *testing.T) {
	bus := NewMemoryBus()
	ctx := context.Background()

	boughtCount := 0
	soldCount := 0
	bus.Subscribe(ItemBought, func(context.Context, Event) error { boughtCount++; return nil })
	bus.Subscribe(ItemSold, func(context.Context, Event) error { soldCount++; return nil })

	require.NoError(t, bus.Publish(ctx, NewItemBoughtEvent("pistol", "Pistol", 500, 4, 500)))
	require.NoError(t, bus.Publish(ctx, NewItemSoldEvent("e1", "Pistol", 1, 500, 1000)))
	require.NoError(t, bus.Publish(ctx, NewItemSoldEvent("e2", "Bandage", 3, 180, 1180)))

	assert.Equal(t, 1, boughtCount)
	assert.Equal(t, 2, soldCount)
}

func TestMemoryBus_HandlerErrorsAggregate(t *testing.T) {
	bus := NewMemoryBus()
	ctx := context.Background()

	calls := 0
	bus.Subscribe(PricesDrifted, func(context.Context, Event) error {
		calls++
		return errors.New("boom")
	})
	bus.Subscribe(PricesDrifted, func(context.Context, Event) error {
		calls++
		return nil
	})

	err := bus.Publish(ctx, NewPricesDriftedEvent([]PriceQuote{{ItemID: "pistol", CurrentPrice: 480}}))

	// One failure does not stop the remaining handlers
	require.Error(t, err)
	assert.Equal(t, 2, calls)
	assert.Contains(t, err.Error(), "1 handler(s) failed")
}
