package economy

import (
	"context"
	"fmt"

	"github.com/duskfall/trader/internal/domain"
	"github.com/duskfall/trader/internal/event"
	"github.com/duskfall/trader/internal/logger"
)

func (s *service) Buy(ctx context.Context, itemID string) (*PurchaseReceipt, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgBuyCalled, "item", itemID)

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.active {
		return nil, domain.ErrNoActiveSession
	}

	idx := s.findItem(itemID)
	if idx == -1 {
		return nil, fmt.Errorf("%w: %s", domain.ErrItemNotFound, itemID)
	}
	item := &s.catalog[idx]

	// Stock is gated before affordability; when both fail the caller hears
	// about the empty shelf, not their wallet. Tests pin this ordering.
	if item.Stock <= 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrOutOfStock, itemID)
	}

	// Equality is affordable
	if s.balance < item.CurrentPrice {
		return nil, fmt.Errorf("%w: %s costs %d, balance %d", domain.ErrInsufficientFunds, itemID, item.CurrentPrice, s.balance)
	}

	// Stage the changes on copies; nothing is committed until the gateway
	// accepts both wallet and inventory together
	newInv := s.inventory.Clone()
	stackIdx := newInv.FindStack(item.DisplayName, item.Category)
	if stackIdx >= 0 {
		newInv.Entries[stackIdx].Quantity++
	} else {
		newInv.Entries = append(newInv.Entries, domain.InventoryEntry{
			ID:          s.newID(),
			Category:    item.Category,
			Name:        item.DisplayName,
			Description: item.Description,
			Subtype:     item.Subtype,
			Rarity:      item.Rarity,
			// Resale value anchors to the base price, not the drifted price
			// paid at the counter
			UnitValue: item.BasePrice,
			Quantity:  1,
		})
		stackIdx = len(newInv.Entries) - 1
	}

	pricePaid := item.CurrentPrice
	newBalance := s.balance - pricePaid

	if err := s.gw.Save(ctx, &domain.EconomyState{Balance: newBalance, Inventory: newInv}); err != nil {
		return nil, fmt.Errorf(ErrMsgSaveStateFailed, err)
	}

	s.balance = newBalance
	s.inventory = newInv
	item.Stock--

	s.publish(ctx, event.NewItemBoughtEvent(item.ID, item.DisplayName, pricePaid, item.Stock, newBalance))

	log.Info(LogMsgItemPurchased, "item", itemID, "price", pricePaid, "stock", item.Stock, "balance", newBalance)

	return &PurchaseReceipt{
		Item:           *item,
		Entry:          newInv.Entries[stackIdx],
		PricePaid:      pricePaid,
		StockRemaining: item.Stock,
		Balance:        newBalance,
	}, nil
}
