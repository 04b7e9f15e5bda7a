package processors

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Gabrielkempp/biasi/src/models"
	"github.com/Gabrielkempp/biasi/src/sheets"
	"github.com/Gabrielkempp/biasi/src/utils"
)

// Progress above this threshold counts as settled even when a residual
// balance lingers from rounding.
const quitadoThreshold = 99.9

// ProcessFinanciamentos turns the raw financing grid into contract records.
// Columns are located by header keywords because this sheet's layout has
// drifted over time; only the description and total are mandatory. Empty
// columns are kept: the total column can be entirely blank when the amounts
// are glued to the descriptions, and its header must stay addressable for
// the recovery below.
func ProcessFinanciamentos(raw [][]string, now time.Time) ([]models.Financiamento, error) {
	tbl, err := sheets.Reshape(raw, sheets.ReshapeOptions{HeaderRow: 0})
	if err != nil {
		return nil, fmt.Errorf("reshaping financing sheet: %w", err)
	}

	colDescricao := pickOrFuzzy(tbl.Columns, "descricao")
	colTotal := pickOrFuzzy(tbl.Columns, "valor total")
	colAPagar := sheets.PickColumn(tbl.Columns, "a pagar")
	colParcelas := sheets.PickColumn(tbl.Columns, "parcelas")
	colAquisicao := sheets.PickColumn(tbl.Columns, "aquisicao")
	colQuitacao := sheets.PickColumn(tbl.Columns, "quitacao")
	colBanco := sheets.PickColumn(tbl.Columns, "banco")

	if colDescricao < 0 || colTotal < 0 {
		return nil, fmt.Errorf("financing sheet is missing description or total columns: %v", tbl.Columns)
	}

	anoAtual := now.Year()

	var out []models.Financiamento
	for _, row := range tbl.Rows {
		descricao := strings.TrimSpace(tbl.Cell(row, colDescricao))
		valorTotal := utils.ParseAmount(tbl.Cell(row, colTotal))

		// Some rows have the amount glued to the description
		// ("DucatoR$ 72.625,60") by a merged cell in the sheet.
		if before, after, found := strings.Cut(descricao, "R$"); found {
			descricao = strings.TrimSpace(before)
			if valorTotal == 0 {
				valorTotal = utils.ParseAmount("R$" + after)
			}
		}
		if descricao == "" {
			continue
		}

		valorAPagar := utils.ParseAmount(tbl.Cell(row, colAPagar))
		parcelas := parseIntCell(tbl.Cell(row, colParcelas), anoAtual)
		anoAquisicao := parseIntCell(tbl.Cell(row, colAquisicao), anoAtual)
		anoQuitacao := parseIntCell(tbl.Cell(row, colQuitacao), anoAtual)

		valorParcela := valorTotal
		if parcelas > 0 {
			valorParcela = valorTotal / float64(parcelas)
		}

		var pctPago float64
		if valorTotal > 0 {
			pctPago = (1 - valorAPagar/valorTotal) * 100
		}

		status := models.StatusEmAndamento
		if valorAPagar <= 0 || pctPago >= quitadoThreshold {
			status = models.StatusQuitado
		}

		if anoAquisicao <= 0 {
			anoAquisicao = anoAtual
		}
		if anoQuitacao <= 0 {
			anoQuitacao = anoAtual + 1
		}
		if anoQuitacao < anoAquisicao {
			anoQuitacao = anoAquisicao + 1
		}

		anosRestantes := 0
		if status == models.StatusEmAndamento && anoQuitacao > anoAtual {
			anosRestantes = anoQuitacao - anoAtual
		}

		out = append(out, models.Financiamento{
			Descricao:      descricao,
			ValorTotal:     valorTotal,
			ValorAPagar:    valorAPagar,
			ValorPago:      valorTotal - valorAPagar,
			Parcelas:       parcelas,
			ValorParcela:   valorParcela,
			PercentualPago: pctPago,
			AnoAquisicao:   anoAquisicao,
			AnoQuitacao:    anoQuitacao,
			AnosRestantes:  anosRestantes,
			Banco:          strings.TrimSpace(tbl.Cell(row, colBanco)),
			Status:         status,
		})
	}
	return out, nil
}

func pickOrFuzzy(columns []string, keyword string) int {
	if i := sheets.PickColumn(columns, keyword); i >= 0 {
		return i
	}
	return sheets.PickColumnFuzzy(columns, keyword)
}

// parseIntCell reads a whole-number cell (installment counts, years),
// tolerating a decimal tail from sheet formatting. Blank or malformed
// cells take the fallback.
func parseIntCell(cell string, fallback int) int {
	s := strings.TrimSpace(cell)
	if s == "" {
		return fallback
	}
	s = strings.ReplaceAll(s, ",", ".")
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int(f)
	}
	return fallback
}
