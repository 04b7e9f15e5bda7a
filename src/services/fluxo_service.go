package services

import (
	"context"

	"github.com/Gabrielkempp/biasi/src/analysis"
	"github.com/Gabrielkempp/biasi/src/models"
	"github.com/Gabrielkempp/biasi/src/processors"
	"github.com/Gabrielkempp/biasi/src/sheets"
)

type fluxoService struct {
	fetcher sheets.Fetcher
	url     string
}

// NewFluxoService creates the cash-flow dashboard service.
func NewFluxoService(fetcher sheets.Fetcher, url string) FluxoService {
	return &fluxoService{fetcher: fetcher, url: url}
}

func (s *fluxoService) GetSummary(ctx context.Context) (*models.FluxoSummary, error) {
	raw, err := s.fetcher.Fetch(ctx, s.url)
	if err != nil {
		return nil, err
	}

	meses, err := processors.ProcessFluxo(raw)
	if err != nil {
		return nil, err
	}

	summary := &models.FluxoSummary{Meses: meses}

	var positivos, acimaMeta int
	diferencas := make(map[string]float64, len(meses))
	for _, m := range meses {
		summary.TotalEntrada += m.Entrada
		summary.TotalSaida += m.Saida
		if m.Diferenca > 0 {
			positivos++
		}
		if m.Entrada >= m.Meta {
			acimaMeta++
		}
		diferencas[m.Mes] = m.Diferenca
	}
	summary.TotalDiferenca = summary.TotalEntrada - summary.TotalSaida

	if len(meses) > 0 {
		summary.PctMesesPositivos = float64(positivos) / float64(len(meses)) * 100
		summary.PctAcimaMeta = float64(acimaMeta) / float64(len(meses)) * 100
	}

	if mes, val, ok := analysis.MaxGroup(diferencas); ok {
		summary.MelhorMes = models.LabelValue{Label: mes, Value: val}
	}
	if mes, val, ok := analysis.MinGroup(diferencas); ok {
		summary.PiorMes = models.LabelValue{Label: mes, Value: val}
	}

	return summary, nil
}
