package handlers

import (
	"net/http"

	"github.com/Gabrielkempp/biasi/src/logger"
	"github.com/Gabrielkempp/biasi/src/services"
	"github.com/Gabrielkempp/biasi/src/utils"
)

// DividasHandler serves the debts dashboard endpoint.
type DividasHandler struct {
	service services.DividasService
}

func NewDividasHandler(service services.DividasService) *DividasHandler {
	return &DividasHandler{service: service}
}

func (h *DividasHandler) HandleGetSummary(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	summary, err := h.service.GetSummary(r.Context())
	if err != nil {
		log.Error("Failed to build debts summary", "error", err)
		utils.SendJSONError(w, "Erro ao carregar os dados de dívidas", http.StatusBadGateway)
		return
	}

	utils.SendJSONResponse(w, summary, http.StatusOK)
}
