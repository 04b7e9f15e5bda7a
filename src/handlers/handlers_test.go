package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gabrielkempp/biasi/src/logger"
	"github.com/Gabrielkempp/biasi/src/models"
	"github.com/Gabrielkempp/biasi/src/services"
)

func init() {
	logger.InitLogger("error")
}

type stubDespesas struct {
	got     services.DespesasQuery
	summary *models.DespesasSummary
	err     error
}

func (s *stubDespesas) GetSummary(ctx context.Context, q services.DespesasQuery) (*models.DespesasSummary, error) {
	s.got = q
	return s.summary, s.err
}

func TestDespesasHandlerOK(t *testing.T) {
	stub := &stubDespesas{summary: &models.DespesasSummary{TotalGeral: 1100}}
	h := NewDespesasHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/despesas?preset=este_mes&start=2024-01-01&end=31/01/2024&categoria=Infra", nil)
	rec := httptest.NewRecorder()
	h.HandleGetSummary(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var got models.DespesasSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, 1100.0, got.TotalGeral)

	assert.Equal(t, "este_mes", stub.got.Preset)
	assert.Equal(t, "Infra", stub.got.Categoria)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), stub.got.Start)
	assert.Equal(t, time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC), stub.got.End)
}

func TestDespesasHandlerServiceError(t *testing.T) {
	stub := &stubDespesas{err: errors.New("sheet down")}
	h := NewDespesasHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/despesas", nil)
	rec := httptest.NewRecorder()
	h.HandleGetSummary(rec, req)

	require.Equal(t, http.StatusBadGateway, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotEmpty(t, body["error"])
}

type stubFluxo struct {
	summary *models.FluxoSummary
	err     error
}

func (s *stubFluxo) GetSummary(ctx context.Context) (*models.FluxoSummary, error) {
	return s.summary, s.err
}

func TestFluxoHandlerOK(t *testing.T) {
	h := NewFluxoHandler(&stubFluxo{summary: &models.FluxoSummary{TotalEntrada: 500}})

	req := httptest.NewRequest(http.MethodGet, "/api/fluxo", nil)
	rec := httptest.NewRecorder()
	h.HandleGetSummary(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var got models.FluxoSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, 500.0, got.TotalEntrada)
}

type stubProducao struct {
	got      services.ProducaoQuery
	summary  *models.ProducaoSummary
	filename string
	data     []byte
	err      error
}

func (s *stubProducao) GetSummary(ctx context.Context, q services.ProducaoQuery) (*models.ProducaoSummary, error) {
	s.got = q
	return s.summary, s.err
}

func (s *stubProducao) ExportCSV(ctx context.Context, q services.ProducaoQuery) (string, []byte, error) {
	s.got = q
	return s.filename, s.data, s.err
}

func TestProducaoHandlerFilters(t *testing.T) {
	stub := &stubProducao{summary: &models.ProducaoSummary{}}
	h := NewProducaoHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/producao?categoria=Salame&responsavel=Ana", nil)
	rec := httptest.NewRecorder()
	h.HandleGetSummary(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Salame", stub.got.Categoria)
	assert.Equal(t, "Ana", stub.got.Responsavel)
}

func TestProducaoHandlerExportCSV(t *testing.T) {
	stub := &stubProducao{
		filename: "producao_biasi_20240615.csv",
		data:     []byte("Data,Produto\n01/06/2024,Linguiça\n"),
	}
	h := NewProducaoHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/producao/export", nil)
	rec := httptest.NewRecorder()
	h.HandleExportCSV(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "producao_biasi_20240615.csv")
	assert.Contains(t, rec.Body.String(), "Linguiça")
}

func TestContextualLoggerMiddlewareInjectsLogger(t *testing.T) {
	var sawLogger bool
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sawLogger = logger.FromContext(r.Context()) != nil
		w.WriteHeader(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	ContextualLoggerMiddleware(inner).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.True(t, sawLogger)
}
