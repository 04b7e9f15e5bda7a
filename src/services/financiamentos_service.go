package services

import (
	"context"
	"sort"
	"strconv"
	"time"

	"github.com/Gabrielkempp/biasi/src/analysis"
	"github.com/Gabrielkempp/biasi/src/models"
	"github.com/Gabrielkempp/biasi/src/processors"
	"github.com/Gabrielkempp/biasi/src/sheets"
)

// bancoNaoInformado labels contracts whose bank cell is blank.
const bancoNaoInformado = "Não informado"

type financiamentosService struct {
	fetcher sheets.Fetcher
	url     string
	now     func() time.Time
}

// NewFinanciamentosService creates the financing dashboard service. now may
// be nil to use the wall clock.
func NewFinanciamentosService(fetcher sheets.Fetcher, url string, now func() time.Time) FinanciamentosService {
	if now == nil {
		now = time.Now
	}
	return &financiamentosService{fetcher: fetcher, url: url, now: now}
}

func (s *financiamentosService) GetSummary(ctx context.Context) (*models.FinanciamentosSummary, error) {
	raw, err := s.fetcher.Fetch(ctx, s.url)
	if err != nil {
		return nil, err
	}

	fins, err := processors.ProcessFinanciamentos(raw, s.now())
	if err != nil {
		return nil, err
	}

	summary := &models.FinanciamentosSummary{
		NumContratos:   len(fins),
		Financiamentos: fins,
	}
	for _, f := range fins {
		summary.TotalFinanciado += f.ValorTotal
		summary.TotalPago += f.ValorPago
		summary.TotalAPagar += f.ValorAPagar
		if f.Status == models.StatusQuitado {
			summary.NumQuitados++
		} else {
			summary.NumAndamento++
		}
	}
	if summary.TotalFinanciado > 0 {
		summary.PercentualGeral = summary.TotalPago / summary.TotalFinanciado * 100
	}

	banco := func(f models.Financiamento) string {
		if f.Banco == "" {
			return bancoNaoInformado
		}
		return f.Banco
	}
	summary.PorBanco = sortedLabelValues(
		analysis.GroupSum(fins, banco, func(f models.Financiamento) float64 { return f.ValorTotal }), 0)
	summary.APagarPorBanco = sortedLabelValues(
		analysis.GroupSum(fins, banco, func(f models.Financiamento) float64 { return f.ValorAPagar }), 0)

	numPorBanco := analysis.GroupCount(fins, banco)
	numPorBancoF := make(map[string]float64, len(numPorBanco))
	for k, v := range numPorBanco {
		numPorBancoF[k] = float64(v)
	}
	summary.NumPorBanco = sortedLabelValues(numPorBancoF, 0)
	summary.Bancos = bancoStats(fins, banco)
	summary.ProjecaoAnual = projecaoAnual(fins, s.now().Year())

	return summary, nil
}

// bancoStats aggregates contracts per bank, ordered by financed total.
func bancoStats(fins []models.Financiamento, banco func(models.Financiamento) string) []models.BancoStats {
	byBanco := make(map[string]*models.BancoStats)
	for _, f := range fins {
		b := banco(f)
		stats, ok := byBanco[b]
		if !ok {
			stats = &models.BancoStats{Banco: b}
			byBanco[b] = stats
		}
		stats.Total += f.ValorTotal
		stats.Pago += f.ValorPago
		stats.APagar += f.ValorAPagar
		stats.Contratos++
	}

	out := make([]models.BancoStats, 0, len(byBanco))
	for _, stats := range byBanco {
		if stats.Total > 0 {
			stats.PctPago = stats.Pago / stats.Total * 100
		}
		out = append(out, *stats)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Total != out[j].Total {
			return out[i].Total > out[j].Total
		}
		return out[i].Banco < out[j].Banco
	})
	return out
}

// projecaoAnual spreads each in-progress contract's outstanding balance
// evenly over the years from the next year until its payoff. Contracts
// already at or past their payoff year land entirely on the current year.
func projecaoAnual(fins []models.Financiamento, anoAtual int) []models.LabelValue {
	porAno := make(map[int]float64)
	for _, f := range fins {
		if f.Status != models.StatusEmAndamento {
			continue
		}
		if f.AnosRestantes == 0 {
			porAno[anoAtual] += f.ValorAPagar
			continue
		}
		anual := f.ValorAPagar / float64(f.AnosRestantes)
		for ano := anoAtual + 1; ano <= f.AnoQuitacao; ano++ {
			porAno[ano] += anual
		}
	}

	anos := make([]int, 0, len(porAno))
	for ano := range porAno {
		anos = append(anos, ano)
	}
	sort.Ints(anos)

	out := make([]models.LabelValue, len(anos))
	for i, ano := range anos {
		out[i] = models.LabelValue{Label: strconv.Itoa(ano), Value: porAno[ano]}
	}
	return out
}
