package economy

// Persistence keys. The wire contract with the UI layer's storage: a
// decimal-integer wallet string and a JSON inventory array.
const (
	KeyPlayerMoney   = "player_money"
	KeyGameInventory = "game_inventory"
)

// Engine defaults
const (
	// DefaultStartingBalance is the grant for a brand-new player with no
	// stored wallet and no carried-over money.
	DefaultStartingBalance = 1000

	// DefaultDriftRange is the symmetric interval around zero the drift
	// factor is sampled from.
	DefaultDriftRange = 0.15
)

// ==================== Error Messages ====================

const (
	ErrMsgSaveStateFailed   = "failed to persist economy state: %w"
	ErrMsgLoadWalletFailed  = "failed to load wallet: %w"
	ErrMsgCatalogEmpty      = "catalog has no items"
	ErrMsgDriftRangeInvalid = "drift range must be in (0, 1)"
)

// ==================== Log Messages ====================

const (
	LogMsgSessionInitialized = "Shop session initialized"
	LogMsgBuyCalled          = "Buy called"
	LogMsgItemPurchased      = "Item purchased"
	LogMsgSellCalled         = "Sell called"
	LogMsgItemSold           = "Item sold"
	LogMsgPricesDrifted      = "Catalog prices drifted"
	LogMsgWalletMalformed    = "Stored wallet value malformed, treating as absent"
	LogMsgInventoryMalformed = "Stored inventory blob malformed, resetting to empty"
	LogMsgEntrySkipped       = "Skipping malformed inventory entry"
	LogMsgPublishFailed      = "Failed to publish shop event"
)
