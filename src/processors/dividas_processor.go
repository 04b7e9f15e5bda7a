package processors

import (
	"fmt"
	"strings"
	"time"

	"github.com/Gabrielkempp/biasi/src/models"
	"github.com/Gabrielkempp/biasi/src/sheets"
	"github.com/Gabrielkempp/biasi/src/utils"
)

// dividaNames labels the debt blocks in sheet order.
var dividaNames = []string{"Capital de Giro", "Ducato", "Muck"}

// dividasHeaderRow is where the column labels sit; everything above is
// banner and spacer rows.
const dividasHeaderRow = 5

// ProcessDividas turns the raw debts grid into per-debt series. The sheet
// repeats a parcelas / data de pgto / status column triple once per debt;
// the triples are matched up by their order after empty columns are
// dropped.
func ProcessDividas(raw [][]string, now time.Time) ([]models.DividaSerie, error) {
	if len(raw) <= dividasHeaderRow {
		return nil, fmt.Errorf("debts sheet has %d rows, too short for its layout", len(raw))
	}

	tbl, err := sheets.Reshape(raw, sheets.ReshapeOptions{HeaderRow: dividasHeaderRow, DropEmptyColumns: true})
	if err != nil {
		return nil, fmt.Errorf("reshaping debts sheet: %w", err)
	}

	parcelaCols := columnsContaining(tbl.Columns, "parcelas")
	dataCols := columnsContaining(tbl.Columns, "data de pgto")
	statusCols := columnsContaining(tbl.Columns, "status")

	n := len(parcelaCols)
	if len(dataCols) < n {
		n = len(dataCols)
	}
	if len(statusCols) < n {
		n = len(statusCols)
	}
	if n == 0 {
		return nil, fmt.Errorf("debts sheet has no parcelas/status column groups: %v", tbl.Columns)
	}

	series := make([]models.DividaSerie, 0, n)
	for i := 0; i < n; i++ {
		nome := fmt.Sprintf("Dívida %d", i+1)
		if i < len(dividaNames) {
			nome = dividaNames[i]
		}

		serie := models.DividaSerie{Nome: nome}
		for _, row := range tbl.Rows {
			valorCell := strings.TrimSpace(tbl.Cell(row, parcelaCols[i]))
			statusCell := strings.ToUpper(strings.TrimSpace(tbl.Cell(row, statusCols[i])))
			if valorCell == "" && statusCell == "" {
				continue
			}

			p := models.ParcelaDivida{
				Valor:  utils.ParseAmount(valorCell),
				Status: statusCell,
			}
			if d, ok := utils.ParseDateBR(tbl.Cell(row, dataCols[i])); ok {
				p.DataPagamento = d
			}
			if p.Status == models.ParcelaPendente && !p.DataPagamento.IsZero() && p.DataPagamento.Before(now) {
				p.Atrasada = true
				p.DiasAtraso = int(now.Sub(p.DataPagamento).Hours() / 24)
			}

			serie.Parcelas = append(serie.Parcelas, p)
			serie.Total += p.Valor
			serie.NumParcelas++
			switch p.Status {
			case models.ParcelaPaga:
				serie.Pago += p.Valor
				serie.NumPagas++
			case models.ParcelaPendente:
				serie.Pendente += p.Valor
			}
			if p.Atrasada {
				serie.NumAtraso++
				serie.ValorAtraso += p.Valor
				if p.DiasAtraso > serie.MaxAtraso {
					serie.MaxAtraso = p.DiasAtraso
				}
			}
		}

		if serie.Total > 0 {
			serie.PctQuitado = serie.Pago / serie.Total * 100
		}
		series = append(series, serie)
	}
	return series, nil
}

func columnsContaining(columns []string, keyword string) []int {
	key := sheets.NormalizeKey(keyword)
	var out []int
	for i, col := range columns {
		if strings.Contains(sheets.NormalizeKey(col), key) {
			out = append(out, i)
		}
	}
	return out
}
