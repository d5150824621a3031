package economy

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/duskfall/trader/internal/domain"
)

func TestNewService_Validation(t *testing.T) {
	gw := &MockGateway{}

	t.Run("empty catalog", func(t *testing.T) {
		_, err := NewService(gw, nil, nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("drift range out of bounds", func(t *testing.T) {
		_, err := NewService(gw, nil, testDefs(), WithDriftRange(1.0))
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)

		_, err = NewService(gw, nil, testDefs(), WithDriftRange(0))
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

// =============================================================================
// InitSession Tests
// =============================================================================

func TestInitSession_FreshPlayerGetsStartingBalance(t *testing.T) {
	// ARRANGE - nothing persisted, nothing carried over
	gw := &MockGateway{}
	svc := newTestService(t, gw)
	ctx := context.Background()

	gw.On("LoadWallet", ctx).Return(0, false, nil)
	gw.On("LoadInventory", ctx).Return(emptyInventory(), nil)
	gw.On("Save", ctx, mock.MatchedBy(func(s *domain.EconomyState) bool {
		return s.Balance == 1000
	})).Return(nil)

	// ACT
	state, err := svc.InitSession(ctx, 0)

	// ASSERT
	require.NoError(t, err)
	assert.Equal(t, 1000, state.Balance, "Fresh player should get the starting grant")
	assert.Empty(t, state.Inventory)
	gw.AssertExpectations(t)
}

func TestInitSession_WalletReconciliation(t *testing.T) {
	tests := []struct {
		name     string
		supplied int
		stored   int
		found    bool
		want     int
	}{
		{name: "stored wins when larger", supplied: 250, stored: 800, found: true, want: 800},
		{name: "supplied wins when larger", supplied: 1200, stored: 800, found: true, want: 1200},
		{name: "equal values agree", supplied: 500, stored: 500, found: true, want: 500},
		{name: "stored zero is honest zero", supplied: 0, stored: 0, found: true, want: 0},
		{name: "no stored wallet keeps supplied", supplied: 300, stored: 0, found: false, want: 300},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw := &MockGateway{}
			svc := newTestService(t, gw)
			ctx := context.Background()

			gw.On("LoadWallet", ctx).Return(tt.stored, tt.found, nil)
			gw.On("LoadInventory", ctx).Return(emptyInventory(), nil)
			gw.On("Save", ctx, mock.MatchedBy(func(s *domain.EconomyState) bool {
				return s.Balance == tt.want
			})).Return(nil)

			state, err := svc.InitSession(ctx, tt.supplied)

			require.NoError(t, err)
			assert.Equal(t, tt.want, state.Balance)
			gw.AssertExpectations(t)
		})
	}
}

func TestInitSession_CatalogStartsAtBasePrices(t *testing.T) {
	gw := &MockGateway{}
	svc := newTestService(t, gw)
	ctx := context.Background()

	gw.On("LoadWallet", ctx).Return(0, false, nil)
	gw.On("LoadInventory", ctx).Return(emptyInventory(), nil)
	gw.On("Save", ctx, mock.Anything).Return(nil)

	state, err := svc.InitSession(ctx, 0)

	require.NoError(t, err)
	require.Len(t, state.Catalog, 3)
	for _, item := range state.Catalog {
		assert.Equal(t, item.BasePrice, item.CurrentPrice, "item %s should open at its anchor", item.ID)
	}
}

func TestInitSession_RestoresInventory(t *testing.T) {
	// ARRANGE - a previously saved stack survives the session boundary
	gw := &MockGateway{}
	svc := newTestService(t, gw)
	ctx := context.Background()

	saved := domain.Inventory{Entries: []domain.InventoryEntry{
		ownedEntry("stack-1", "Pistol", domain.CategoryWeapon, 500, 2),
	}}

	gw.On("LoadWallet", ctx).Return(700, true, nil)
	gw.On("LoadInventory", ctx).Return(saved, nil)
	gw.On("Save", ctx, mock.Anything).Return(nil)

	// ACT
	state, err := svc.InitSession(ctx, 0)

	// ASSERT
	require.NoError(t, err)
	require.Len(t, state.Inventory, 1)
	assert.Equal(t, "Pistol", state.Inventory[0].Name)
	assert.Equal(t, 2, state.Inventory[0].Quantity)
	assert.Equal(t, 500, state.Inventory[0].UnitValue)
}

func TestInitSession_PersistFailure(t *testing.T) {
	gw := &MockGateway{}
	svc := newTestService(t, gw)
	ctx := context.Background()

	gw.On("LoadWallet", ctx).Return(0, false, nil)
	gw.On("LoadInventory", ctx).Return(emptyInventory(), nil)
	gw.On("Save", ctx, mock.Anything).Return(errors.New("disk full"))

	_, err := svc.InitSession(ctx, 0)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")

	// Session never opened, so operations stay rejected
	_, err = svc.Buy(ctx, "pistol")
	assert.ErrorIs(t, err, domain.ErrNoActiveSession)
}

func TestInitSession_ResetsShopStock(t *testing.T) {
	// ARRANGE - drain the vest, then reopen the session
	gw := &MockGateway{}
	svc := newTestService(t, gw)
	ctx := context.Background()

	gw.On("LoadWallet", ctx).Return(5000, true, nil)
	gw.On("LoadInventory", ctx).Return(emptyInventory(), nil)
	gw.On("Save", ctx, mock.Anything).Return(nil)

	_, err := svc.InitSession(ctx, 0)
	require.NoError(t, err)

	_, err = svc.Buy(ctx, "heavy_vest")
	require.NoError(t, err)
	_, err = svc.Buy(ctx, "heavy_vest")
	require.ErrorIs(t, err, domain.ErrOutOfStock)

	// ACT - a new session rebuilds the catalog from the definitions
	state, err := svc.InitSession(ctx, 0)

	// ASSERT
	require.NoError(t, err)
	for _, item := range state.Catalog {
		if item.ID == "heavy_vest" {
			assert.Equal(t, 1, item.Stock, "stock should reset on a new session")
		}
	}
}

// =============================================================================
// Buy Tests
// =============================================================================

func TestBuy_Success(t *testing.T) {
	// ARRANGE - the classic opening purchase: 1000 in the wallet, one pistol
	gw := &MockGateway{}
	svc := newTestService(t, gw)
	ctx := context.Background()

	gw.On("LoadWallet", ctx).Return(0, false, nil)
	gw.On("LoadInventory", ctx).Return(emptyInventory(), nil)
	gw.On("Save", ctx, mock.Anything).Return(nil)

	_, err := svc.InitSession(ctx, 0)
	require.NoError(t, err)

	// ACT
	receipt, err := svc.Buy(ctx, "pistol")

	// ASSERT
	require.NoError(t, err)
	assert.Equal(t, 500, receipt.PricePaid)
	assert.Equal(t, 500, receipt.Balance)
	assert.Equal(t, 4, receipt.StockRemaining)
	assert.Equal(t, "Pistol", receipt.Entry.Name)
	assert.Equal(t, 1, receipt.Entry.Quantity)
	assert.Equal(t, 500, receipt.Entry.UnitValue)
	assert.Equal(t, 500, svc.Balance())
	gw.AssertExpectations(t)
}

func TestBuy_StacksRepeatPurchases(t *testing.T) {
	gw := &MockGateway{}
	svc := newTestService(t, gw)
	ctx := context.Background()

	gw.On("LoadWallet", ctx).Return(0, false, nil)
	gw.On("LoadInventory", ctx).Return(emptyInventory(), nil)
	gw.On("Save", ctx, mock.Anything).Return(nil)

	_, err := svc.InitSession(ctx, 0)
	require.NoError(t, err)

	_, err = svc.Buy(ctx, "bandage")
	require.NoError(t, err)
	receipt, err := svc.Buy(ctx, "bandage")
	require.NoError(t, err)

	// Same name and category merge into one stack
	assert.Equal(t, 2, receipt.Entry.Quantity)
	assert.Len(t, svc.Inventory(), 1)
}

func TestBuy_EqualityIsAffordable(t *testing.T) {
	// ARRANGE - balance exactly equals the price
	gw := &MockGateway{}
	svc := newTestService(t, gw)
	ctx := context.Background()

	gw.On("LoadWallet", ctx).Return(500, true, nil)
	gw.On("LoadInventory", ctx).Return(emptyInventory(), nil)
	gw.On("Save", ctx, mock.Anything).Return(nil)

	_, err := svc.InitSession(ctx, 0)
	require.NoError(t, err)

	// ACT
	receipt, err := svc.Buy(ctx, "pistol")

	// ASSERT - spending down to zero is allowed
	require.NoError(t, err)
	assert.Equal(t, 0, receipt.Balance)
}

func TestBuy_FailureOrdering(t *testing.T) {
	tests := []struct {
		name    string
		balance int
		itemID  string
		drain   bool // empty the item's stock first
		wantErr error
	}{
		{name: "unknown item", balance: 10000, itemID: "railgun", wantErr: domain.ErrItemNotFound},
		{name: "out of stock", balance: 10000, itemID: "heavy_vest", drain: true, wantErr: domain.ErrOutOfStock},
		{name: "cannot afford", balance: 100, itemID: "pistol", wantErr: domain.ErrInsufficientFunds},
		// Broke AND empty shelf: the stock check fires first
		{name: "out of stock wins over broke", balance: 0, itemID: "heavy_vest", drain: true, wantErr: domain.ErrOutOfStock},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw := &MockGateway{}
			svc := newTestService(t, gw)
			ctx := context.Background()

			drainBalance := tt.balance
			if tt.drain {
				drainBalance = tt.balance + 900
			}
			gw.On("LoadWallet", ctx).Return(drainBalance, true, nil)
			gw.On("LoadInventory", ctx).Return(emptyInventory(), nil)
			gw.On("Save", ctx, mock.Anything).Return(nil)

			_, err := svc.InitSession(ctx, 0)
			require.NoError(t, err)

			if tt.drain {
				_, err := svc.Buy(ctx, tt.itemID)
				require.NoError(t, err)
			}

			_, err = svc.Buy(ctx, tt.itemID)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestBuy_PersistFailureRollsBack(t *testing.T) {
	// ARRANGE
	gw := &MockGateway{}
	svc := newTestService(t, gw)
	ctx := context.Background()

	gw.On("LoadWallet", ctx).Return(0, false, nil)
	gw.On("LoadInventory", ctx).Return(emptyInventory(), nil)
	gw.On("Save", ctx, mock.Anything).Return(nil).Once()
	gw.On("Save", ctx, mock.Anything).Return(errors.New("connection reset")).Once()

	_, err := svc.InitSession(ctx, 0)
	require.NoError(t, err)

	// ACT
	_, err = svc.Buy(ctx, "pistol")

	// ASSERT - nothing moved
	require.Error(t, err)
	assert.Equal(t, 1000, svc.Balance())
	assert.Empty(t, svc.Inventory())
	for _, item := range svc.Catalog() {
		if item.ID == "pistol" {
			assert.Equal(t, 5, item.Stock)
		}
	}
}

// =============================================================================
// Sell Tests
// =============================================================================

func TestSell_Success(t *testing.T) {
	// ARRANGE - a stack of 3 bandages bought at 60 each
	gw := &MockGateway{}
	svc := newTestService(t, gw)
	ctx := context.Background()

	saved := domain.Inventory{Entries: []domain.InventoryEntry{
		ownedEntry("stack-1", "Bandage", domain.CategoryMedical, 60, 3),
	}}

	gw.On("LoadWallet", ctx).Return(200, true, nil)
	gw.On("LoadInventory", ctx).Return(saved, nil)
	gw.On("Save", ctx, mock.Anything).Return(nil)

	_, err := svc.InitSession(ctx, 0)
	require.NoError(t, err)

	// ACT
	receipt, err := svc.Sell(ctx, "stack-1")

	// ASSERT - the whole stack goes at once
	require.NoError(t, err)
	assert.Equal(t, "Bandage", receipt.ItemName)
	assert.Equal(t, 3, receipt.Quantity)
	assert.Equal(t, 180, receipt.Proceeds)
	assert.Equal(t, 380, receipt.Balance)
	assert.Empty(t, svc.Inventory())
	gw.AssertExpectations(t)
}

func TestSell_UnknownEntry(t *testing.T) {
	gw := &MockGateway{}
	svc := newTestService(t, gw)
	ctx := context.Background()

	gw.On("LoadWallet", ctx).Return(0, false, nil)
	gw.On("LoadInventory", ctx).Return(emptyInventory(), nil)
	gw.On("Save", ctx, mock.Anything).Return(nil)

	_, err := svc.InitSession(ctx, 0)
	require.NoError(t, err)

	_, err = svc.Sell(ctx, "no-such-entry")
	assert.ErrorIs(t, err, domain.ErrEntryNotFound)
}

func TestSell_DoesNotRestock(t *testing.T) {
	// ARRANGE - buy a pistol, sell it back, shop stock must not recover
	gw := &MockGateway{}
	svc := newTestService(t, gw)
	ctx := context.Background()

	gw.On("LoadWallet", ctx).Return(0, false, nil)
	gw.On("LoadInventory", ctx).Return(emptyInventory(), nil)
	gw.On("Save", ctx, mock.Anything).Return(nil)

	_, err := svc.InitSession(ctx, 0)
	require.NoError(t, err)

	receipt, err := svc.Buy(ctx, "pistol")
	require.NoError(t, err)

	// ACT
	_, err = svc.Sell(ctx, receipt.Entry.ID)
	require.NoError(t, err)

	// ASSERT
	for _, item := range svc.Catalog() {
		if item.ID == "pistol" {
			assert.Equal(t, 4, item.Stock, "selling back must not restock the shop")
		}
	}
}

func TestSell_PersistFailureRollsBack(t *testing.T) {
	gw := &MockGateway{}
	svc := newTestService(t, gw)
	ctx := context.Background()

	saved := domain.Inventory{Entries: []domain.InventoryEntry{
		ownedEntry("stack-1", "Pistol", domain.CategoryWeapon, 500, 2),
	}}

	gw.On("LoadWallet", ctx).Return(100, true, nil)
	gw.On("LoadInventory", ctx).Return(saved, nil)
	gw.On("Save", ctx, mock.Anything).Return(nil).Once()
	gw.On("Save", ctx, mock.Anything).Return(errors.New("connection reset")).Once()

	_, err := svc.InitSession(ctx, 0)
	require.NoError(t, err)

	_, err = svc.Sell(ctx, "stack-1")

	require.Error(t, err)
	assert.Equal(t, 100, svc.Balance())
	require.Len(t, svc.Inventory(), 1)
	assert.Equal(t, 2, svc.Inventory()[0].Quantity)
}

// =============================================================================
// Round-trip Tests
// =============================================================================

func TestBuyThenSell_NetLossEqualsDriftPremium(t *testing.T) {
	// ARRANGE - prices drifted up 10% before the purchase. Resale anchors to
	// the base price, so the round trip loses exactly the premium paid.
	gw := &MockGateway{}
	svc := newTestService(t, gw, WithRand(func() float64 { return 1.0 }), WithDriftRange(0.1))
	ctx := context.Background()

	gw.On("LoadWallet", ctx).Return(0, false, nil)
	gw.On("LoadInventory", ctx).Return(emptyInventory(), nil)
	gw.On("Save", ctx, mock.Anything).Return(nil)

	_, err := svc.InitSession(ctx, 0)
	require.NoError(t, err)

	svc.TickPriceDrift(ctx) // pistol: 500 -> 550

	// ACT
	buyReceipt, err := svc.Buy(ctx, "pistol")
	require.NoError(t, err)
	sellReceipt, err := svc.Sell(ctx, buyReceipt.Entry.ID)
	require.NoError(t, err)

	// ASSERT
	assert.Equal(t, 550, buyReceipt.PricePaid)
	assert.Equal(t, 500, sellReceipt.Proceeds, "resale pays the base anchor, not the drifted price")
	assert.Equal(t, 950, svc.Balance(), "net loss is the 50 premium")
}
