package economy

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/google/uuid"

	"github.com/duskfall/trader/internal/domain"
	"github.com/duskfall/trader/internal/logger"
	"github.com/duskfall/trader/internal/store"
)

// Gateway persists the player's economy state. It is injected into the
// engine rather than reached for globally; the engine is its only writer
// while a session is active.
type Gateway interface {
	// LoadWallet reads the stored balance. found=false means no prior
	// session, which is a valid fresh-player state.
	LoadWallet(ctx context.Context) (balance int, found bool, err error)

	// LoadInventory reads the owned-item collection. Absent or malformed
	// data yields an empty inventory, never an error the caller must handle.
	LoadInventory(ctx context.Context) (domain.Inventory, error)

	// Save writes wallet and inventory together as one commit.
	Save(ctx context.Context, state *domain.EconomyState) error
}

// persistedEntry is the wire shape of one inventory record in the
// game_inventory blob: type is the upper-cased category, value the unit
// resale value fixed at purchase time.
type persistedEntry struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Name        string `json:"name"`
	Value       int    `json:"value"`
	Quantity    int    `json:"quantity"`
	Description string `json:"description"`
	Subtype     string `json:"subtype,omitempty"`
	Rarity      string `json:"rarity,omitempty"`
}

type kvGateway struct {
	kv store.KV
}

// NewKVGateway builds a Gateway on top of a key-value store.
func NewKVGateway(kv store.KV) Gateway {
	return &kvGateway{kv: kv}
}

func (g *kvGateway) LoadWallet(ctx context.Context) (int, bool, error) {
	raw, found, err := g.kv.Get(ctx, KeyPlayerMoney)
	if err != nil {
		return 0, false, fmt.Errorf(ErrMsgLoadWalletFailed, err)
	}
	if !found {
		return 0, false, nil
	}

	balance, err := strconv.Atoi(raw)
	if err != nil || balance < 0 {
		logger.FromContext(ctx).Warn(LogMsgWalletMalformed, "raw", raw)
		return 0, false, nil
	}
	return balance, true, nil
}

func (g *kvGateway) LoadInventory(ctx context.Context) (domain.Inventory, error) {
	log := logger.FromContext(ctx)

	raw, found, err := g.kv.Get(ctx, KeyGameInventory)
	if err != nil {
		return domain.Inventory{}, fmt.Errorf("failed to load inventory: %w", err)
	}
	if !found {
		return domain.Inventory{}, nil
	}

	var wire []persistedEntry
	if err := json.Unmarshal([]byte(raw), &wire); err != nil {
		// Fail soft: a corrupt blob resets to empty rather than killing the session
		log.Warn(LogMsgInventoryMalformed, "error", err)
		return domain.Inventory{}, nil
	}

	inv := domain.Inventory{}
	for _, e := range wire {
		category, ok := domain.CategoryFromWire(e.Type)
		if !ok || e.Name == "" || e.Quantity < 1 {
			log.Warn(LogMsgEntrySkipped, "id", e.ID, "type", e.Type, "name", e.Name, "quantity", e.Quantity)
			continue
		}

		id := e.ID
		if id == "" {
			id = uuid.NewString()
		}

		inv.Entries = append(inv.Entries, domain.InventoryEntry{
			ID:          id,
			Category:    category,
			Name:        e.Name,
			Description: e.Description,
			Subtype:     e.Subtype,
			Rarity:      domain.Rarity(e.Rarity),
			UnitValue:   e.Value,
			Quantity:    e.Quantity,
		})
	}
	return inv, nil
}

func (g *kvGateway) Save(ctx context.Context, state *domain.EconomyState) error {
	wire := make([]persistedEntry, 0, len(state.Inventory.Entries))
	for _, e := range state.Inventory.Entries {
		wire = append(wire, persistedEntry{
			ID:          e.ID,
			Type:        e.Category.WireType(),
			Name:        e.Name,
			Value:       e.UnitValue,
			Quantity:    e.Quantity,
			Description: e.Description,
			Subtype:     e.Subtype,
			Rarity:      string(e.Rarity),
		})
	}

	blob, err := json.Marshal(wire)
	if err != nil {
		return fmt.Errorf("failed to encode inventory: %w", err)
	}

	// The store has no native transactions; the engine only commits its
	// in-memory state after both writes succeed, so a failure here leaves
	// the session consistent and the next successful operation rewrites
	// both keys.
	if err := g.kv.Set(ctx, KeyGameInventory, string(blob)); err != nil {
		return fmt.Errorf("failed to persist inventory: %w", err)
	}
	if err := g.kv.Set(ctx, KeyPlayerMoney, strconv.Itoa(state.Balance)); err != nil {
		return fmt.Errorf("failed to persist wallet: %w", err)
	}
	return nil
}
