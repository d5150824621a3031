package economy

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/duskfall/trader/internal/domain"
)

// MockGateway implements Gateway interface for testing
type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) LoadWallet(ctx context.Context) (int, bool, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Bool(1), args.Error(2)
}

func (m *MockGateway) LoadInventory(ctx context.Context) (domain.Inventory, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.Inventory), args.Error(1)
}

func (m *MockGateway) Save(ctx context.Context, state *domain.EconomyState) error {
	args := m.Called(ctx, state)
	return args.Error(0)
}

// Test fixtures

func testDefs() []domain.CatalogItem {
	return []domain.CatalogItem{
		{
			ID:          "pistol",
			DisplayName: "Pistol",
			Category:    domain.CategoryWeapon,
			Subtype:     "pistol",
			BasePrice:   500,
			Stock:       5,
			Rarity:      domain.RarityCommon,
		},
		{
			ID:          "bandage",
			DisplayName: "Bandage",
			Category:    domain.CategoryMedical,
			BasePrice:   60,
			Stock:       10,
			Rarity:      domain.RarityCommon,
		},
		{
			ID:          "heavy_vest",
			DisplayName: "Heavy Vest",
			Category:    domain.CategoryArmor,
			BasePrice:   900,
			Stock:       1,
			Rarity:      domain.RarityRare,
		},
	}
}

func emptyInventory() domain.Inventory {
	return domain.Inventory{Entries: []domain.InventoryEntry{}}
}

func ownedEntry(id, name string, category domain.Category, unitValue, quantity int) domain.InventoryEntry {
	return domain.InventoryEntry{
		ID:        id,
		Category:  category,
		Name:      name,
		Rarity:    domain.RarityCommon,
		UnitValue: unitValue,
		Quantity:  quantity,
	}
}

// newTestService builds a service around the mock gateway with a fixed RNG
// and predictable entry IDs.
func newTestService(t *testing.T, gw Gateway, opts ...Option) Service {
	t.Helper()

	nextID := 0
	base := []Option{
		WithRand(func() float64 { return 0.5 }), // f = 0, prices stay at base
		WithIDGenerator(func() string {
			nextID++
			return fmt.Sprintf("entry-%d", nextID)
		}),
	}
	svc, err := NewService(gw, nil, testDefs(), append(base, opts...)...)
	if err != nil {
		t.Fatalf("NewService failed: %v", err)
	}
	return svc
}
