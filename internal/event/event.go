package event

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Type represents the type of an event
type Type string

// Shop economy event types
const (
	ItemBought    Type = "shop.item.bought"
	ItemSold      Type = "shop.item.sold"
	PricesDrifted Type = "shop.prices.drifted"
)

// EventSchemaVersion is the current event schema version
const EventSchemaVersion = "1.0"

// Event represents a generic event in the system
type Event struct {
	Version string      `json:"version"`
	Type    Type        `json:"type"`
	Payload interface{} `json:"payload"`
}

// ItemBoughtPayloadV1 is the typed payload for purchase events
type ItemBoughtPayloadV1 struct {
	ItemID    string `json:"item_id"`
	ItemName  string `json:"item_name"`
	PricePaid int    `json:"price_paid"`
	Stock     int    `json:"stock"`
	Balance   int    `json:"balance"`
	Timestamp int64  `json:"timestamp"`
}

// ItemSoldPayloadV1 is the typed payload for sale events
type ItemSoldPayloadV1 struct {
	EntryID   string `json:"entry_id"`
	ItemName  string `json:"item_name"`
	Quantity  int    `json:"quantity"`
	Proceeds  int    `json:"proceeds"`
	Balance   int    `json:"balance"`
	Timestamp int64  `json:"timestamp"`
}

// PriceQuote is one item's drifted price inside a drift event
type PriceQuote struct {
	ItemID       string `json:"item_id"`
	CurrentPrice int    `json:"current_price"`
}

// PricesDriftedPayloadV1 is the typed payload for price drift events
type PricesDriftedPayloadV1 struct {
	Quotes    []PriceQuote `json:"quotes"`
	Timestamp int64        `json:"timestamp"`
}

// NewItemBoughtEvent creates a purchase event with a type-safe payload
func NewItemBoughtEvent(itemID, itemName string, pricePaid, stock, balance int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ItemBought,
		Payload: ItemBoughtPayloadV1{
			ItemID:    itemID,
			ItemName:  itemName,
			PricePaid: pricePaid,
			Stock:     stock,
			Balance:   balance,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewItemSoldEvent creates a sale event with a type-safe payload
func NewItemSoldEvent(entryID, itemName string, quantity, proceeds, balance int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ItemSold,
		Payload: ItemSoldPayloadV1{
			EntryID:   entryID,
			ItemName:  itemName,
			Quantity:  quantity,
			Proceeds:  proceeds,
			Balance:   balance,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewPricesDriftedEvent creates a drift event carrying the new quotes
func NewPricesDriftedEvent(quotes []PriceQuote) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    PricesDrifted,
		Payload: PricesDriftedPayloadV1{
			Quotes:    quotes,
			Timestamp: time.Now().Unix(),
		},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers synchronously
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%d handler(s) failed for event %s: %v", len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
