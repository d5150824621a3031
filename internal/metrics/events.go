package metrics

import (
	"context"

	"github.com/duskfall/trader/internal/event"
	"github.com/duskfall/trader/internal/logger"
)

// EventCollector subscribes to shop events and records business metrics
type EventCollector struct{}

// NewEventCollector creates a new event metrics collector
func NewEventCollector() *EventCollector {
	return &EventCollector{}
}

// Register subscribes the collector to all shop event types
func (c *EventCollector) Register(bus event.Bus) {
	bus.Subscribe(event.ItemBought, c.HandleEvent)
	bus.Subscribe(event.ItemSold, c.HandleEvent)
	bus.Subscribe(event.PricesDrifted, c.HandleEvent)
}

// HandleEvent processes shop events and updates metrics
func (c *EventCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	switch payload := evt.Payload.(type) {
	case event.ItemBoughtPayloadV1:
		ItemsBought.WithLabelValues(payload.ItemName).Inc()
		MoneySpent.Add(float64(payload.PricePaid))

	case event.ItemSoldPayloadV1:
		ItemsSold.WithLabelValues(payload.ItemName).Inc()
		MoneyEarned.Add(float64(payload.Proceeds))

	case event.PricesDriftedPayloadV1:
		PriceDriftTicks.Inc()
		for _, quote := range payload.Quotes {
			CatalogPrice.WithLabelValues(quote.ItemID).Set(float64(quote.CurrentPrice))
		}

	default:
		log.Debug("Unrecognized event payload", "type", evt.Type)
	}

	return nil
}
