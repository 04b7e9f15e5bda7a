package processors

import (
	"fmt"
	"strings"

	"github.com/Gabrielkempp/biasi/src/models"
	"github.com/Gabrielkempp/biasi/src/sheets"
	"github.com/Gabrielkempp/biasi/src/utils"
)

// fluxoTitle is the banner cell that identifies the cash-flow sheet layout.
const fluxoTitle = "CONTROLE DE ENTRADA E SAÍDA GERAL BIASI"

// ProcessFluxo turns the raw cash-flow grid into monthly records. The sheet
// opens with a banner row and a spacer before the data, and its first four
// columns are Mês, Entrada, Saída and Meta in that order.
func ProcessFluxo(raw [][]string) ([]models.FluxoMensal, error) {
	if len(raw) == 0 || len(raw[0]) == 0 {
		return nil, fmt.Errorf("cash-flow sheet is empty")
	}
	if sheets.NormalizeKey(raw[0][0]) != sheets.NormalizeKey(fluxoTitle) {
		return nil, fmt.Errorf("cash-flow sheet not in the expected format: first cell is %q", raw[0][0])
	}

	if len(raw) <= 3 {
		return nil, nil
	}

	var meses []models.FluxoMensal
	for _, row := range raw[3:] {
		if len(row) < 4 {
			continue
		}
		mes := strings.TrimSpace(row[0])
		if mes == "" {
			continue
		}

		entrada := utils.ParseAmount(row[1])
		saida := utils.ParseAmount(row[2])
		meses = append(meses, models.FluxoMensal{
			Mes:       mes,
			Entrada:   entrada,
			Saida:     saida,
			Meta:      utils.ParseAmount(row[3]),
			Diferenca: entrada - saida,
		})
	}
	return meses, nil
}
