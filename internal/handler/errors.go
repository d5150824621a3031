package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgMethodNotAllowed      = "Method not allowed"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"

	// Shop operation error messages
	ErrMsgBuyItemFailed     = "Failed to buy item"
	ErrMsgSellItemFailed    = "Failed to sell item"
	ErrMsgGetCatalogFailed  = "Failed to get catalog"
	ErrMsgGetInventoryFail  = "Failed to get inventory"
	ErrMsgGetWalletFailed   = "Failed to get wallet"
	ErrMsgInitSessionFailed = "Failed to initialize session"
)
