package handler

import (
	"net/http"

	"github.com/duskfall/trader/internal/economy"
	"github.com/duskfall/trader/internal/logger"
)

// HandleForceDrift triggers a price drift tick outside the normal schedule.
// Intended for operators and integration tests.
// @Summary Force a price drift tick
// @Description Resample all catalog prices immediately and return the updated catalog
// @Tags admin
// @Produce json
// @Success 200 {array} domain.CatalogItem
// @Router /admin/drift [post]
func HandleForceDrift(svc economy.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		svc.TickPriceDrift(r.Context())

		log.Info("Price drift forced")

		respondJSON(w, http.StatusOK, svc.Catalog())
	}
}
