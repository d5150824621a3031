package handler

import (
	"net/http"

	"github.com/duskfall/trader/internal/economy"
	"github.com/duskfall/trader/internal/logger"
)

// InitSessionRequest is the request body for opening a shop session
type InitSessionRequest struct {
	Money int `json:"money" validate:"min=0"`
}

// BuyItemRequest is the request body for buying a catalog item
type BuyItemRequest struct {
	ItemID string `json:"item_id" validate:"required,max=64"`
}

// SellItemRequest is the request body for selling an owned stack
type SellItemRequest struct {
	EntryID string `json:"entry_id" validate:"required,max=64"`
}

// HandleInitSession opens a shop session for the player
// @Summary Initialize shop session
// @Description Reconciles the wallet with any carried-over money, loads the saved inventory and builds a fresh catalog
// @Tags shop
// @Accept json
// @Produce json
// @Param request body InitSessionRequest true "Session init request"
// @Success 200 {object} economy.SessionState
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /shop/session [post]
func HandleInitSession(svc economy.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req InitSessionRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Init session"); err != nil {
			return
		}

		state, err := svc.InitSession(r.Context(), req.Money)
		if err != nil {
			respondServiceError(w, r, "initialize session", err)
			return
		}

		log.Info("Shop session initialized", "balance", state.Balance, "catalog_size", len(state.Catalog))

		respondJSON(w, http.StatusOK, state)
	}
}

// HandleGetCatalog returns the current session catalog
// @Summary Get shop catalog
// @Description Get the session catalog with current drifted prices and remaining stock
// @Tags shop
// @Produce json
// @Success 200 {array} domain.CatalogItem
// @Failure 503 {object} ErrorResponse
// @Router /shop/catalog [get]
func HandleGetCatalog(svc economy.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		items := svc.Catalog()

		log.Debug("Catalog retrieved", "count", len(items))

		respondJSON(w, http.StatusOK, items)
	}
}

// HandleBuyItem handles purchasing a catalog item
// @Summary Buy an item
// @Description Buy one unit of a catalog item, deducting the current price and decrementing stock
// @Tags shop
// @Accept json
// @Produce json
// @Param request body BuyItemRequest true "Buy request"
// @Success 200 {object} economy.PurchaseReceipt
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /shop/buy [post]
func HandleBuyItem(svc economy.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req BuyItemRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Buy item"); err != nil {
			return
		}

		receipt, err := svc.Buy(r.Context(), req.ItemID)
		if err != nil {
			respondServiceError(w, r, "buy item", err)
			return
		}

		log.Info("Item purchased",
			"item", receipt.Item.ID,
			"price", receipt.PricePaid,
			"balance", receipt.Balance)

		respondJSON(w, http.StatusOK, receipt)
	}
}

// HandleSellItem handles selling an owned inventory stack
// @Summary Sell an item stack
// @Description Sell an entire owned stack at its recorded unit value
// @Tags shop
// @Accept json
// @Produce json
// @Param request body SellItemRequest true "Sell request"
// @Success 200 {object} economy.SaleReceipt
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /shop/sell [post]
func HandleSellItem(svc economy.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req SellItemRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Sell item"); err != nil {
			return
		}

		receipt, err := svc.Sell(r.Context(), req.EntryID)
		if err != nil {
			respondServiceError(w, r, "sell item", err)
			return
		}

		log.Info("Item sold",
			"item", receipt.ItemName,
			"quantity", receipt.Quantity,
			"proceeds", receipt.Proceeds,
			"balance", receipt.Balance)

		respondJSON(w, http.StatusOK, receipt)
	}
}
