package economy

import (
	"context"
	"math"

	"github.com/duskfall/trader/internal/event"
	"github.com/duskfall/trader/internal/logger"
)

// TickPriceDrift resamples every catalog price independently from its base
// anchor: currentPrice = floor(basePrice * (1 + f)), f uniform in
// ±driftRange. Drift never compounds; each tick starts over from the
// anchor. Pure in-memory computation, no failure mode.
func (s *service) TickPriceDrift(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.active {
		return
	}

	quotes := make([]event.PriceQuote, 0, len(s.catalog))
	for i := range s.catalog {
		f := (s.rnd()*2 - 1) * s.driftRange
		price := int(math.Floor(float64(s.catalog[i].BasePrice) * (1 + f)))
		if price < 0 {
			price = 0
		}
		s.catalog[i].CurrentPrice = price
		quotes = append(quotes, event.PriceQuote{ItemID: s.catalog[i].ID, CurrentPrice: price})
	}

	s.publish(ctx, event.NewPricesDriftedEvent(quotes))

	logger.FromContext(ctx).Debug(LogMsgPricesDrifted, "items", len(quotes))
}
