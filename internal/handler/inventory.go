package handler

import (
	"net/http"
	"strings"

	"github.com/duskfall/trader/internal/domain"
	"github.com/duskfall/trader/internal/economy"
	"github.com/duskfall/trader/internal/logger"
)

// InventoryResponse is the response for inventory queries
type InventoryResponse struct {
	Entries []domain.InventoryEntry `json:"entries"`
	Count   int                     `json:"count"`
}

// HandleGetInventory returns the player's owned item stacks
// @Summary Get inventory
// @Description Get all owned item stacks, optionally filtered by category
// @Tags inventory
// @Produce json
// @Param category query string false "Filter by category (weapon, armor, medical, ammunition)"
// @Success 200 {object} InventoryResponse
// @Failure 400 {object} ErrorResponse
// @Router /inventory [get]
func HandleGetInventory(svc economy.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		entries := svc.Inventory()

		if filter := GetOptionalQueryParam(r, "category", ""); filter != "" {
			category := domain.Category(strings.ToLower(filter))
			if !category.Valid() {
				log.Warn("Invalid category filter", "category", filter)
				respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestSummary)
				return
			}

			filtered := make([]domain.InventoryEntry, 0, len(entries))
			for _, e := range entries {
				if e.Category == category {
					filtered = append(filtered, e)
				}
			}
			entries = filtered
		}

		log.Debug("Inventory retrieved", "count", len(entries))

		respondJSON(w, http.StatusOK, InventoryResponse{
			Entries: entries,
			Count:   len(entries),
		})
	}
}
