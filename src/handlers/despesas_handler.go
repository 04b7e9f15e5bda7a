package handlers

import (
	"net/http"

	"github.com/Gabrielkempp/biasi/src/logger"
	"github.com/Gabrielkempp/biasi/src/services"
	"github.com/Gabrielkempp/biasi/src/utils"
)

// DespesasHandler serves the expenses dashboard endpoint.
type DespesasHandler struct {
	service services.DespesasService
}

func NewDespesasHandler(service services.DespesasService) *DespesasHandler {
	return &DespesasHandler{service: service}
}

// HandleGetSummary responds with the expenses summary for the requested
// period (query params: start, end, preset, categoria).
func (h *DespesasHandler) HandleGetSummary(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	q := services.DespesasQuery{
		PeriodQuery: parsePeriodQuery(r),
		Categoria:   r.URL.Query().Get("categoria"),
	}
	summary, err := h.service.GetSummary(r.Context(), q)
	if err != nil {
		log.Error("Failed to build expenses summary", "error", err)
		utils.SendJSONError(w, "Erro ao carregar os dados de despesas", http.StatusBadGateway)
		return
	}

	utils.SendJSONResponse(w, summary, http.StatusOK)
}
