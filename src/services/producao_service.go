package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/Gabrielkempp/biasi/src/analysis"
	"github.com/Gabrielkempp/biasi/src/models"
	"github.com/Gabrielkempp/biasi/src/processors"
	"github.com/Gabrielkempp/biasi/src/sheets"
	"github.com/Gabrielkempp/biasi/src/utils"
)

const topProdutosLimit = 5

type producaoService struct {
	fetcher sheets.Fetcher
	url     string
	now     func() time.Time
}

// NewProducaoService creates the production dashboard service. now may be
// nil to use the wall clock.
func NewProducaoService(fetcher sheets.Fetcher, url string, now func() time.Time) ProducaoService {
	if now == nil {
		now = time.Now
	}
	return &producaoService{fetcher: fetcher, url: url, now: now}
}

func (s *producaoService) filteredRecords(ctx context.Context, q ProducaoQuery) ([]models.ProducaoRecord, analysis.Range, error) {
	raw, err := s.fetcher.Fetch(ctx, s.url)
	if err != nil {
		return nil, analysis.Range{}, err
	}

	recs, err := processors.ProcessProducao(raw)
	if err != nil {
		return nil, analysis.Range{}, err
	}

	recData := func(r models.ProducaoRecord) time.Time { return r.Data }
	rng := resolveRange(q.PeriodQuery, s.now(), recs, recData)
	recs = analysis.FilterByDate(recs, recData, rng)

	filtered := recs[:0]
	for _, r := range recs {
		if q.Categoria != "" && r.Categoria != q.Categoria {
			continue
		}
		if q.Produto != "" && r.Produto != q.Produto {
			continue
		}
		if q.Responsavel != "" && r.Responsavel != q.Responsavel {
			continue
		}
		filtered = append(filtered, r)
	}
	return filtered, rng, nil
}

func (s *producaoService) GetSummary(ctx context.Context, q ProducaoQuery) (*models.ProducaoSummary, error) {
	recs, rng, err := s.filteredRecords(ctx, q)
	if err != nil {
		return nil, err
	}

	unidades := func(r models.ProducaoRecord) float64 { return r.Unidades }
	totalKg := func(r models.ProducaoRecord) float64 { return r.TotalKg }

	summary := &models.ProducaoSummary{
		Period: models.PeriodInfo{
			Start: utils.FormatDateBR(rng.Start),
			End:   utils.FormatDateBR(rng.End),
		},
		NumRegistros: len(recs),
		Registros:    recs,

		PorCategoria: sortedLabelValues(
			analysis.GroupSum(recs, func(r models.ProducaoRecord) string { return r.Categoria }, unidades), 0),
		PorCategoriaKg: sortedLabelValues(
			analysis.GroupSum(recs, func(r models.ProducaoRecord) string { return r.Categoria }, totalKg), 0),
		PorProduto: sortedLabelValues(
			analysis.GroupSum(recs, func(r models.ProducaoRecord) string { return r.Produto }, unidades), 0),
		TopProdutos: sortedLabelValues(
			analysis.GroupSum(recs, func(r models.ProducaoRecord) string { return r.Produto }, unidades), topProdutosLimit),
		PorDiaSemana: orderedLabelValues(
			analysis.GroupSum(recs, func(r models.ProducaoRecord) string { return r.DiaSemana }, unidades),
			utils.WeekdayOrderPT),
		PorMes: producaoPorMes(recs),
	}

	produtos := make(map[string]bool)
	for _, r := range recs {
		summary.TotalUnidades += r.Unidades
		summary.TotalKg += r.TotalKg
		produtos[r.Produto] = true
	}
	summary.ProdutosUnicos = len(produtos)

	summary.PorDia, summary.Acumulado = producaoPorDia(recs)
	if len(summary.PorDia) > 0 {
		summary.MediaDiaria = summary.TotalUnidades / float64(len(summary.PorDia))
	}

	summary.Responsaveis = responsavelStats(recs, summary.TotalUnidades)
	return summary, nil
}

// producaoPorDia builds the daily and running-total unit series over the
// days that actually saw production.
func producaoPorDia(recs []models.ProducaoRecord) ([]models.TimePoint, []models.TimePoint) {
	porDia := make(map[time.Time]float64)
	for _, r := range recs {
		if r.Data.IsZero() {
			continue
		}
		porDia[r.Data] += r.Unidades
	}

	dias := make([]time.Time, 0, len(porDia))
	for d := range porDia {
		dias = append(dias, d)
	}
	sort.Slice(dias, func(i, j int) bool { return dias[i].Before(dias[j]) })

	daily := make([]models.TimePoint, len(dias))
	cumulative := make([]models.TimePoint, len(dias))
	var acc float64
	for i, d := range dias {
		acc += porDia[d]
		daily[i] = models.TimePoint{Date: utils.FormatDateBR(d), Value: porDia[d]}
		cumulative[i] = models.TimePoint{Date: utils.FormatDateBR(d), Value: acc}
	}
	return daily, cumulative
}

// producaoPorMes groups units by calendar month in chronological order,
// labelled with the Portuguese month name.
func producaoPorMes(recs []models.ProducaoRecord) []models.LabelValue {
	type mes struct {
		key   string
		label string
		value float64
	}
	byKey := make(map[string]*mes)
	for _, r := range recs {
		if r.Data.IsZero() {
			continue
		}
		key := r.Data.Format("2006-01")
		m, ok := byKey[key]
		if !ok {
			m = &mes{key: key, label: r.MesAno}
			byKey[key] = m
		}
		m.value += r.Unidades
	}

	ordered := make([]*mes, 0, len(byKey))
	for _, m := range byKey {
		ordered = append(ordered, m)
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].key < ordered[j].key })

	out := make([]models.LabelValue, len(ordered))
	for i, m := range ordered {
		out[i] = models.LabelValue{Label: m.label, Value: m.value}
	}
	return out
}

func responsavelStats(recs []models.ProducaoRecord, totalUnidades float64) []models.ResponsavelStats {
	nome := func(r models.ProducaoRecord) string { return r.Responsavel }
	unidades := analysis.GroupSum(recs, nome, func(r models.ProducaoRecord) float64 { return r.Unidades })
	kgs := analysis.GroupSum(recs, nome, func(r models.ProducaoRecord) float64 { return r.TotalKg })
	medias := analysis.GroupMean(recs, nome, func(r models.ProducaoRecord) float64 { return r.Unidades })

	diasPorResponsavel := make(map[string]map[time.Time]bool)
	for _, r := range recs {
		if r.Data.IsZero() {
			continue
		}
		if diasPorResponsavel[r.Responsavel] == nil {
			diasPorResponsavel[r.Responsavel] = make(map[time.Time]bool)
		}
		diasPorResponsavel[r.Responsavel][r.Data] = true
	}

	out := make([]models.ResponsavelStats, 0, len(unidades))
	for n, u := range unidades {
		stats := models.ResponsavelStats{
			Nome:            n,
			Unidades:        u,
			TotalKg:         kgs[n],
			MediaUnidades:   medias[n],
			DiasTrabalhados: len(diasPorResponsavel[n]),
		}
		if totalUnidades > 0 {
			stats.PctUnidades = u / totalUnidades * 100
		}
		if stats.DiasTrabalhados > 0 {
			stats.MediaDiaria = u / float64(stats.DiasTrabalhados)
		}
		out = append(out, stats)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Unidades != out[j].Unidades {
			return out[i].Unidades > out[j].Unidades
		}
		return out[i].Nome < out[j].Nome
	})
	return out
}

func (s *producaoService) ExportCSV(ctx context.Context, q ProducaoQuery) (string, []byte, error) {
	recs, _, err := s.filteredRecords(ctx, q)
	if err != nil {
		return "", nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Write([]string{"Data", "Produto", "Unidades", "Responsável Produção", "Categoria", "Tamanho_kg", "Total_kg"})
	for _, r := range recs {
		w.Write([]string{
			r.DataStr,
			r.Produto,
			strconv.FormatFloat(r.Unidades, 'f', -1, 64),
			r.Responsavel,
			r.Categoria,
			strconv.FormatFloat(r.TamanhoKg, 'f', -1, 64),
			strconv.FormatFloat(r.TotalKg, 'f', -1, 64),
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", nil, fmt.Errorf("writing production CSV: %w", err)
	}

	filename := fmt.Sprintf("producao_biasi_%s.csv", s.now().Format("20060102"))
	return filename, buf.Bytes(), nil
}
