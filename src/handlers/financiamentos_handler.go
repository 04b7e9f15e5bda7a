package handlers

import (
	"net/http"

	"github.com/Gabrielkempp/biasi/src/logger"
	"github.com/Gabrielkempp/biasi/src/services"
	"github.com/Gabrielkempp/biasi/src/utils"
)

// FinanciamentosHandler serves the financing dashboard endpoint.
type FinanciamentosHandler struct {
	service services.FinanciamentosService
}

func NewFinanciamentosHandler(service services.FinanciamentosService) *FinanciamentosHandler {
	return &FinanciamentosHandler{service: service}
}

func (h *FinanciamentosHandler) HandleGetSummary(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	summary, err := h.service.GetSummary(r.Context())
	if err != nil {
		log.Error("Failed to build financing summary", "error", err)
		utils.SendJSONError(w, "Erro ao carregar os dados de financiamentos", http.StatusBadGateway)
		return
	}

	utils.SendJSONResponse(w, summary, http.StatusOK)
}
