package processors

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/Gabrielkempp/biasi/src/models"
	"github.com/Gabrielkempp/biasi/src/utils"
)

var (
	unidadesRe  = regexp.MustCompile(`^-?\d*\.?\d*$`)
	tamanhoKgRe = regexp.MustCompile(`(?i)(\d+[.,]?\d*)kg`)
	tamanhoGRe  = regexp.MustCompile(`(\d+)g`)
)

// ProcessProducao turns the raw production log into records with their
// derived fields (category, unit weight, totals). The sheet has a plain
// header row: Data, Produto, Unidades, Responsável Produção.
func ProcessProducao(raw [][]string) ([]models.ProducaoRecord, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("production sheet is empty")
	}

	type parsedRow struct {
		data        string
		produto     string
		unidades    float64
		responsavel string
	}

	var rows []parsedRow
	for _, row := range raw[1:] {
		if len(row) < 3 {
			continue
		}
		data := strings.TrimSpace(row[0])
		produto := strings.TrimSpace(row[1])
		unidadesCell := strings.TrimSpace(row[2])
		if data == "" || produto == "" || unidadesCell == "" {
			continue
		}

		unidadesCell = strings.ReplaceAll(unidadesCell, ",", ".")
		if !unidadesRe.MatchString(unidadesCell) {
			continue
		}
		unidades, err := strconv.ParseFloat(unidadesCell, 64)
		if err != nil {
			continue
		}

		responsavel := ""
		if len(row) > 3 {
			responsavel = strings.TrimSpace(row[3])
		}
		rows = append(rows, parsedRow{data, produto, unidades, responsavel})
	}

	produtos := make([]string, len(rows))
	for i, r := range rows {
		produtos[i] = r.produto
	}
	categorias := CategorizarProdutos(produtos)

	var out []models.ProducaoRecord
	for _, r := range rows {
		rec := models.ProducaoRecord{
			Produto:     r.produto,
			Unidades:    r.unidades,
			Responsavel: r.responsavel,
			Categoria:   categorias[r.produto],
			TamanhoKg:   ExtrairTamanhoKg(r.produto),
		}
		rec.TotalKg = rec.Unidades * rec.TamanhoKg

		if d, ok := utils.ParseDateBR(r.data); ok {
			rec.Data = d
			rec.DataStr = utils.FormatDateBR(d)
			rec.MesAno = utils.MonthYearPT(d)
			rec.DiaSemana = utils.WeekdayPT(d)
		}
		out = append(out, rec)
	}
	return out, nil
}

// CategorizarProdutos groups product names by their leading term. A term
// that opens more than one distinct product becomes a category; products
// matching no recurring term fall into "Outro".
func CategorizarProdutos(produtos []string) map[string]string {
	var unicos []string
	seen := make(map[string]bool)
	for _, p := range produtos {
		if !seen[p] {
			seen[p] = true
			unicos = append(unicos, p)
		}
	}

	var termos []string
	contagem := make(map[string]int)
	for _, p := range unicos {
		campos := strings.Fields(p)
		if len(campos) == 0 {
			continue
		}
		t := campos[0]
		if contagem[t] == 0 {
			termos = append(termos, t)
		}
		contagem[t]++
	}

	var categorias []string
	for _, t := range termos {
		if contagem[t] > 1 {
			categorias = append(categorias, t)
		}
	}
	if len(categorias) == 0 {
		categorias = termos
	}

	mapeamento := make(map[string]string, len(unicos))
	for _, p := range unicos {
		mapeamento[p] = "Outro"
		for _, c := range categorias {
			if strings.Contains(p, c) {
				mapeamento[p] = c
				break
			}
		}
	}
	return mapeamento
}

// ExtrairTamanhoKg reads the unit weight out of a product name, like
// "Linguiça Toscana 5kg" or "Salame 900g". Products without an explicit
// weight count as 1kg so totals never drop rows.
func ExtrairTamanhoKg(produto string) float64 {
	if strings.Contains(strings.ToLower(produto), "kg") {
		if m := tamanhoKgRe.FindStringSubmatch(produto); m != nil {
			if f, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", "."), 64); err == nil {
				return f
			}
		}
	} else if strings.Contains(produto, "g") {
		if m := tamanhoGRe.FindStringSubmatch(produto); m != nil {
			if f, err := strconv.ParseFloat(m[1], 64); err == nil {
				return f / 1000
			}
		}
	}
	return 1.0
}
