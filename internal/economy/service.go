// Package economy implements the shop economy engine: a session catalog
// with periodically drifting prices, a persisted player wallet and
// owned-item inventory, and the buy/sell transactions between them.
package economy

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync"

	"github.com/google/uuid"

	"github.com/duskfall/trader/internal/domain"
	"github.com/duskfall/trader/internal/event"
	"github.com/duskfall/trader/internal/logger"
)

// SessionState is the snapshot handed to the UI layer after initialization
type SessionState struct {
	Balance   int                     `json:"balance"`
	Catalog   []domain.CatalogItem    `json:"catalog"`
	Inventory []domain.InventoryEntry `json:"inventory"`
}

// PurchaseReceipt contains the result of a buy operation
type PurchaseReceipt struct {
	Item           domain.CatalogItem    `json:"item"`
	Entry          domain.InventoryEntry `json:"entry"`
	PricePaid      int                   `json:"price_paid"`
	StockRemaining int                   `json:"stock_remaining"`
	Balance        int                   `json:"balance"`
}

// SaleReceipt contains the result of a sell operation
type SaleReceipt struct {
	ItemName string `json:"item_name"`
	Quantity int    `json:"quantity"`
	Proceeds int    `json:"proceeds"`
	Balance  int    `json:"balance"`
}

// Service defines the interface for shop economy operations
type Service interface {
	// InitSession reconciles the wallet, loads the inventory and builds a
	// fresh catalog. suppliedMoney is the balance carried over from a prior
	// gameplay scene; zero means nothing carried.
	InitSession(ctx context.Context, suppliedMoney int) (*SessionState, error)

	// TickPriceDrift resamples every catalog price from its base anchor.
	TickPriceDrift(ctx context.Context)

	Buy(ctx context.Context, itemID string) (*PurchaseReceipt, error)
	Sell(ctx context.Context, entryID string) (*SaleReceipt, error)

	Catalog() []domain.CatalogItem
	Inventory() []domain.InventoryEntry
	Balance() int
}

type service struct {
	gw  Gateway
	bus event.Bus

	defs []domain.CatalogItem // pristine definitions, copied per session

	mu        sync.Mutex
	catalog   []domain.CatalogItem
	inventory domain.Inventory
	balance   int
	active    bool

	driftRange      float64
	startingBalance int
	rnd             func() float64 // injected for deterministic tests
	newID           func() string
}

// Option configures the service
type Option func(*service)

// WithDriftRange overrides the price drift range.
func WithDriftRange(r float64) Option {
	return func(s *service) { s.driftRange = r }
}

// WithStartingBalance overrides the new-player grant.
func WithStartingBalance(n int) Option {
	return func(s *service) { s.startingBalance = n }
}

// WithRand injects the RNG used for price drift.
func WithRand(rnd func() float64) Option {
	return func(s *service) { s.rnd = rnd }
}

// WithIDGenerator injects the inventory entry ID generator.
func WithIDGenerator(gen func() string) Option {
	return func(s *service) { s.newID = gen }
}

// NewService creates a new shop economy service. defs is the catalog table
// the session catalog is rebuilt from on every InitSession.
func NewService(gw Gateway, bus event.Bus, defs []domain.CatalogItem, opts ...Option) (Service, error) {
	if len(defs) == 0 {
		return nil, fmt.Errorf("%s: %w", ErrMsgCatalogEmpty, domain.ErrInvalidInput)
	}

	s := &service{
		gw:              gw,
		bus:             bus,
		defs:            defs,
		driftRange:      DefaultDriftRange,
		startingBalance: DefaultStartingBalance,
		rnd:             rand.Float64,
		newID:           uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.driftRange <= 0 || s.driftRange >= 1 {
		return nil, fmt.Errorf("%s: %w", ErrMsgDriftRangeInvalid, domain.ErrInvalidInput)
	}

	return s, nil
}

func (s *service) InitSession(ctx context.Context, suppliedMoney int) (*SessionState, error) {
	log := logger.FromContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	stored, found, err := s.gw.LoadWallet(ctx)
	if err != nil {
		return nil, err
	}

	// Money must never silently decrease across scene transitions because a
	// stale caller value arrived, and a brand-new player must not start
	// broke. A stored balance of zero is an honest zero, not a fresh player.
	balance := suppliedMoney
	if found {
		balance = max(suppliedMoney, stored)
	} else if balance <= 0 {
		balance = s.startingBalance
	}

	inv, err := s.gw.LoadInventory(ctx)
	if err != nil {
		return nil, err
	}

	// Write-through so a crash right after init cannot lose the
	// reconciliation result
	if err := s.gw.Save(ctx, &domain.EconomyState{Balance: balance, Inventory: inv}); err != nil {
		return nil, fmt.Errorf(ErrMsgSaveStateFailed, err)
	}

	// The shop's own stock never persists: fresh catalog, full stock,
	// prices back at their anchors
	s.catalog = make([]domain.CatalogItem, len(s.defs))
	copy(s.catalog, s.defs)
	for i := range s.catalog {
		s.catalog[i].CurrentPrice = s.catalog[i].BasePrice
	}

	s.balance = balance
	s.inventory = inv
	s.active = true

	log.Info(LogMsgSessionInitialized,
		"balance", balance,
		"supplied", suppliedMoney,
		"stored_found", found,
		"items", len(s.catalog),
		"owned_entries", len(inv.Entries))

	return &SessionState{
		Balance:   balance,
		Catalog:   s.catalogSnapshot(),
		Inventory: s.inventorySnapshot(),
	}, nil
}

// Catalog returns a snapshot of the session catalog.
func (s *service) Catalog() []domain.CatalogItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.catalogSnapshot()
}

// Inventory returns a snapshot of the player's owned entries.
func (s *service) Inventory() []domain.InventoryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inventorySnapshot()
}

// Balance returns the current wallet balance.
func (s *service) Balance() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.balance
}

// callers hold s.mu
func (s *service) catalogSnapshot() []domain.CatalogItem {
	out := make([]domain.CatalogItem, len(s.catalog))
	copy(out, s.catalog)
	return out
}

func (s *service) inventorySnapshot() []domain.InventoryEntry {
	out := make([]domain.InventoryEntry, len(s.inventory.Entries))
	copy(out, s.inventory.Entries)
	return out
}

func (s *service) findItem(itemID string) int {
	for i := range s.catalog {
		if s.catalog[i].ID == itemID {
			return i
		}
	}
	return -1
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "type", evt.Type, "error", err)
	}
}
