package economy

import (
	"context"
	"fmt"

	"github.com/duskfall/trader/internal/domain"
	"github.com/duskfall/trader/internal/event"
	"github.com/duskfall/trader/internal/logger"
)

func (s *service) Sell(ctx context.Context, entryID string) (*SaleReceipt, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgSellCalled, "entry", entryID)

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.active {
		return nil, domain.ErrNoActiveSession
	}

	idx := s.inventory.FindEntry(entryID)
	if idx == -1 {
		return nil, fmt.Errorf("%w: %s", domain.ErrEntryNotFound, entryID)
	}
	entry := s.inventory.Entries[idx]

	// Selling always liquidates the whole stack at the value fixed when the
	// items were acquired. Shop stock is a disjoint pool and is untouched.
	proceeds := entry.UnitValue * entry.Quantity
	newBalance := s.balance + proceeds

	newInv := s.inventory.Clone()
	newInv.Entries = append(newInv.Entries[:idx], newInv.Entries[idx+1:]...)

	if err := s.gw.Save(ctx, &domain.EconomyState{Balance: newBalance, Inventory: newInv}); err != nil {
		return nil, fmt.Errorf(ErrMsgSaveStateFailed, err)
	}

	s.balance = newBalance
	s.inventory = newInv

	s.publish(ctx, event.NewItemSoldEvent(entry.ID, entry.Name, entry.Quantity, proceeds, newBalance))

	log.Info(LogMsgItemSold, "item", entry.Name, "quantity", entry.Quantity, "proceeds", proceeds, "balance", newBalance)

	return &SaleReceipt{
		ItemName: entry.Name,
		Quantity: entry.Quantity,
		Proceeds: proceeds,
		Balance:  newBalance,
	}, nil
}
