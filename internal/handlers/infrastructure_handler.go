package handlers

import (
	"net/http"

	"github.com/MyDevVinicius/PainelAdminMinisterio/internal/monitoring"
	"github.com/MyDevVinicius/PainelAdminMinisterio/pkg/utils"
)

type InfrastructureHandler struct {
	Collector *monitoring.Collector
}

func NewInfrastructureHandler(collector *monitoring.Collector) *InfrastructureHandler {
	return &InfrastructureHandler{Collector: collector}
}

// Stats handles GET /api/infrastructure.
func (h *InfrastructureHandler) Stats(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusOK, h.Collector.Collect(r.Context()))
}
