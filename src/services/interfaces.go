package services

import (
	"context"
	"time"

	"github.com/Gabrielkempp/biasi/src/models"
)

// PeriodQuery is the date window a dashboard asks for. Explicit bounds win
// over the preset; with neither, the full data range is used.
type PeriodQuery struct {
	Start  time.Time
	End    time.Time
	Preset string
}

// ProducaoQuery adds the production dashboard's filters on top of the date
// window. Empty strings mean no filter.
type ProducaoQuery struct {
	PeriodQuery
	Categoria   string
	Produto     string
	Responsavel string
}

// DespesasQuery adds the expense dashboard's category filter to the date
// window.
type DespesasQuery struct {
	PeriodQuery
	Categoria string
}

// DespesasService serves the expenses dashboard.
type DespesasService interface {
	GetSummary(ctx context.Context, q DespesasQuery) (*models.DespesasSummary, error)
}

// FluxoService serves the monthly cash-flow dashboard.
type FluxoService interface {
	GetSummary(ctx context.Context) (*models.FluxoSummary, error)
}

// FinanciamentosService serves the financing dashboard.
type FinanciamentosService interface {
	GetSummary(ctx context.Context) (*models.FinanciamentosSummary, error)
}

// DividasService serves the debts dashboard.
type DividasService interface {
	GetSummary(ctx context.Context) (*models.DividasSummary, error)
}

// ProducaoService serves the production dashboard and its CSV export.
type ProducaoService interface {
	GetSummary(ctx context.Context, q ProducaoQuery) (*models.ProducaoSummary, error)
	ExportCSV(ctx context.Context, q ProducaoQuery) (filename string, data []byte, err error)
}
