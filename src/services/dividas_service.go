package services

import (
	"context"
	"time"

	"github.com/Gabrielkempp/biasi/src/models"
	"github.com/Gabrielkempp/biasi/src/processors"
	"github.com/Gabrielkempp/biasi/src/sheets"
)

type dividasService struct {
	fetcher sheets.Fetcher
	url     string
	now     func() time.Time
}

// NewDividasService creates the debts dashboard service. now may be nil to
// use the wall clock.
func NewDividasService(fetcher sheets.Fetcher, url string, now func() time.Time) DividasService {
	if now == nil {
		now = time.Now
	}
	return &dividasService{fetcher: fetcher, url: url, now: now}
}

func (s *dividasService) GetSummary(ctx context.Context) (*models.DividasSummary, error) {
	raw, err := s.fetcher.Fetch(ctx, s.url)
	if err != nil {
		return nil, err
	}

	series, err := processors.ProcessDividas(raw, s.now())
	if err != nil {
		return nil, err
	}

	summary := &models.DividasSummary{Series: series}
	for _, serie := range series {
		summary.TotalGeral += serie.Total
		summary.PagoGeral += serie.Pago
		summary.PendenteGeral += serie.Pendente
		summary.TotalAtrasado += serie.ValorAtraso
		for _, p := range serie.Parcelas {
			if p.Atrasada {
				summary.Atrasadas = append(summary.Atrasadas, models.AtrasoDetalhe{
					Divida:        serie.Nome,
					Valor:         p.Valor,
					DataPagamento: p.DataPagamento,
					DiasAtraso:    p.DiasAtraso,
				})
			}
		}
	}
	if summary.TotalGeral > 0 {
		summary.PctQuitado = summary.PagoGeral / summary.TotalGeral * 100
	}

	return summary, nil
}
