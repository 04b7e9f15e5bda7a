package services

import (
	"context"
	"sort"
	"time"

	"github.com/Gabrielkempp/biasi/src/analysis"
	"github.com/Gabrielkempp/biasi/src/models"
	"github.com/Gabrielkempp/biasi/src/processors"
	"github.com/Gabrielkempp/biasi/src/sheets"
	"github.com/Gabrielkempp/biasi/src/utils"
)

const topContasLimit = 10

type despesasService struct {
	fetcher sheets.Fetcher
	url     string
	now     func() time.Time
}

// NewDespesasService creates the expenses dashboard service. now may be nil
// to use the wall clock.
func NewDespesasService(fetcher sheets.Fetcher, url string, now func() time.Time) DespesasService {
	if now == nil {
		now = time.Now
	}
	return &despesasService{fetcher: fetcher, url: url, now: now}
}

func (s *despesasService) GetSummary(ctx context.Context, q DespesasQuery) (*models.DespesasSummary, error) {
	raw, err := s.fetcher.Fetch(ctx, s.url)
	if err != nil {
		return nil, err
	}

	now := s.now()
	contas, pessoal, err := processors.ProcessDespesas(raw, now)
	if err != nil {
		return nil, err
	}

	// Bills are filtered by due date, personal expenses by their own date;
	// the window is resolved over both so the preset clamps correctly.
	type datedAll struct{ d time.Time }
	var all []datedAll
	for _, c := range contas {
		all = append(all, datedAll{c.DataVencimento})
	}
	for _, p := range pessoal {
		all = append(all, datedAll{p.Data})
	}
	r := resolveRange(q.PeriodQuery, now, all, func(a datedAll) time.Time { return a.d })

	contas = analysis.FilterByDate(contas, func(c models.ContaRecord) time.Time { return c.DataVencimento }, r)
	pessoal = analysis.FilterByDate(pessoal, func(p models.PessoalRecord) time.Time { return p.Data }, r)

	if q.Categoria != "" {
		filtered := contas[:0]
		for _, c := range contas {
			if c.Categoria == q.Categoria {
				filtered = append(filtered, c)
			}
		}
		contas = filtered
	}

	contaValor := func(c models.ContaRecord) float64 { return c.Valor }
	porStatus := analysis.GroupSum(contas, func(c models.ContaRecord) string { return c.Status }, contaValor)
	statusCounts := analysis.GroupCount(contas, func(c models.ContaRecord) string { return c.Status })

	statusCountsF := make(map[string]float64, len(statusCounts))
	for k, v := range statusCounts {
		statusCountsF[k] = float64(v)
	}

	summary := &models.DespesasSummary{
		Period: models.PeriodInfo{
			Start: utils.FormatDateBR(r.Start),
			End:   utils.FormatDateBR(r.End),
		},
		NumContas:  len(contas),
		NumPessoal: len(pessoal),

		PorCategoria: sortedLabelValues(
			analysis.GroupSum(contas, func(c models.ContaRecord) string { return c.Categoria }, contaValor), 0),
		PorFormaPagamento: sortedLabelValues(
			analysis.GroupSum(contas, func(c models.ContaRecord) string { return c.FormaPagamento }, contaValor), 0),
		PorPessoal: sortedLabelValues(
			analysis.GroupSum(pessoal, func(p models.PessoalRecord) string { return p.Nome },
				func(p models.PessoalRecord) float64 { return p.Valor }), 0),
		PorStatus:    sortedLabelValues(porStatus, 0),
		StatusCounts: sortedLabelValues(statusCountsF, 0),
		TopContas: sortedLabelValues(
			analysis.GroupSum(contas, func(c models.ContaRecord) string { return c.Nome }, contaValor), topContasLimit),
		AcumuladoContas: acumulado(contas,
			func(c models.ContaRecord) time.Time { return c.DataVencimento },
			func(c models.ContaRecord) float64 { return c.Valor }),
		AcumuladoPessoal: acumulado(pessoal,
			func(p models.PessoalRecord) time.Time { return p.Data },
			func(p models.PessoalRecord) float64 { return p.Valor }),

		Contas:  contas,
		Pessoal: pessoal,
	}

	for _, c := range contas {
		summary.TotalContas += c.Valor
	}
	for _, p := range pessoal {
		summary.TotalPessoal += p.Valor
	}
	summary.TotalGeral = summary.TotalContas + summary.TotalPessoal
	if len(contas) > 0 {
		summary.MediaContas = summary.TotalContas / float64(len(contas))
	}
	if len(pessoal) > 0 {
		summary.MediaPessoal = summary.TotalPessoal / float64(len(pessoal))
	}

	return summary, nil
}

// acumulado builds a running-total series in date order, skipping rows
// without a date.
func acumulado[T any](items []T, date func(T) time.Time, value func(T) float64) []models.TimePoint {
	sorted := make([]T, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return date(sorted[i]).Before(date(sorted[j]))
	})

	var points []models.TimePoint
	var acc float64
	for _, item := range sorted {
		d := date(item)
		if d.IsZero() {
			continue
		}
		acc += value(item)
		points = append(points, models.TimePoint{
			Date:  utils.FormatDateBR(d),
			Value: acc,
		})
	}
	return points
}
