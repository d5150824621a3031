package handler

import (
	"net/http"

	"github.com/duskfall/trader/internal/economy"
	"github.com/duskfall/trader/internal/logger"
)

// WalletResponse is the response for wallet queries
type WalletResponse struct {
	Balance int `json:"balance"`
}

// HandleGetWallet returns the player's current balance
// @Summary Get wallet balance
// @Description Get the player's current money balance
// @Tags wallet
// @Produce json
// @Success 200 {object} WalletResponse
// @Router /wallet [get]
func HandleGetWallet(svc economy.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		balance := svc.Balance()

		log.Debug("Wallet retrieved", "balance", balance)

		respondJSON(w, http.StatusOK, WalletResponse{Balance: balance})
	}
}
