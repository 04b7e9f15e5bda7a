package handlers

import (
	"fmt"
	"net/http"

	"github.com/Gabrielkempp/biasi/src/logger"
	"github.com/Gabrielkempp/biasi/src/services"
	"github.com/Gabrielkempp/biasi/src/utils"
)

// ProducaoHandler serves the production dashboard endpoint and its CSV
// export.
type ProducaoHandler struct {
	service services.ProducaoService
}

func NewProducaoHandler(service services.ProducaoService) *ProducaoHandler {
	return &ProducaoHandler{service: service}
}

func producaoQuery(r *http.Request) services.ProducaoQuery {
	return services.ProducaoQuery{
		PeriodQuery: parsePeriodQuery(r),
		Categoria:   r.URL.Query().Get("categoria"),
		Produto:     r.URL.Query().Get("produto"),
		Responsavel: r.URL.Query().Get("responsavel"),
	}
}

func (h *ProducaoHandler) HandleGetSummary(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	summary, err := h.service.GetSummary(r.Context(), producaoQuery(r))
	if err != nil {
		log.Error("Failed to build production summary", "error", err)
		utils.SendJSONError(w, "Erro ao carregar os dados de produção", http.StatusBadGateway)
		return
	}

	utils.SendJSONResponse(w, summary, http.StatusOK)
}

// HandleExportCSV streams the filtered production log as a CSV download.
func (h *ProducaoHandler) HandleExportCSV(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	filename, data, err := h.service.ExportCSV(r.Context(), producaoQuery(r))
	if err != nil {
		log.Error("Failed to export production CSV", "error", err)
		utils.SendJSONError(w, "Erro ao exportar os dados de produção", http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
