package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/duskfall/trader/internal/domain"
	"github.com/duskfall/trader/internal/economy"
)

// MockEconomyService implements economy.Service for handler tests
type MockEconomyService struct {
	mock.Mock
}

func (m *MockEconomyService) InitSession(ctx context.Context, suppliedMoney int) (*economy.SessionState, error) {
	args := m.Called(ctx, suppliedMoney)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*economy.SessionState), args.Error(1)
}

func (m *MockEconomyService) TickPriceDrift(ctx context.Context) {
	m.Called(ctx)
}

func (m *MockEconomyService) Buy(ctx context.Context, itemID string) (*economy.PurchaseReceipt, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*economy.PurchaseReceipt), args.Error(1)
}

func (m *MockEconomyService) Sell(ctx context.Context, entryID string) (*economy.SaleReceipt, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*economy.SaleReceipt), args.Error(1)
}

func (m *MockEconomyService) Catalog() []domain.CatalogItem {
	args := m.Called()
	return args.Get(0).([]domain.CatalogItem)
}

func (m *MockEconomyService) Inventory() []domain.InventoryEntry {
	args := m.Called()
	return args.Get(0).([]domain.InventoryEntry)
}

func (m *MockEconomyService) Balance() int {
	args := m.Called()
	return args.Int(0)
}
