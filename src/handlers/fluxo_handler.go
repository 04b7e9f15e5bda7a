package handlers

import (
	"net/http"

	"github.com/Gabrielkempp/biasi/src/logger"
	"github.com/Gabrielkempp/biasi/src/services"
	"github.com/Gabrielkempp/biasi/src/utils"
)

// FluxoHandler serves the monthly cash-flow dashboard endpoint.
type FluxoHandler struct {
	service services.FluxoService
}

func NewFluxoHandler(service services.FluxoService) *FluxoHandler {
	return &FluxoHandler{service: service}
}

func (h *FluxoHandler) HandleGetSummary(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	summary, err := h.service.GetSummary(r.Context())
	if err != nil {
		log.Error("Failed to build cash-flow summary", "error", err)
		utils.SendJSONError(w, "Erro ao carregar os dados de entradas e saídas", http.StatusBadGateway)
		return
	}

	utils.SendJSONResponse(w, summary, http.StatusOK)
}
