package processors

import (
	"fmt"
	"strings"
	"time"

	"github.com/Gabrielkempp/biasi/src/models"
	"github.com/Gabrielkempp/biasi/src/sheets"
	"github.com/Gabrielkempp/biasi/src/utils"
)

// The expenses sheet carries two side-by-side blocks below a banner row:
// business bills in columns 0..5 and personal expenses in columns 7..9.
// Both blocks are read by position, so the sheet's column layout is a hard
// contract and layout drift fails loudly instead of shifting values into
// the wrong fields.
const despesasMinColumns = 10

var contasLabels = []string{"Nome", "Valor", "Data_Vencimento", "Data_Pagamento", "Forma_Pagamento", "Categoria"}
var pessoalLabels = []string{"Nome", "Valor", "Data"}

// ProcessDespesas turns the raw expenses grid into bill and personal
// expense records. now anchors the overdue check.
func ProcessDespesas(raw [][]string, now time.Time) ([]models.ContaRecord, []models.PessoalRecord, error) {
	tbl, err := sheets.Reshape(raw, sheets.ReshapeOptions{HeaderRow: 1})
	if err != nil {
		return nil, nil, fmt.Errorf("reshaping expenses sheet: %w", err)
	}
	if len(tbl.Columns) < despesasMinColumns {
		return nil, nil, fmt.Errorf("expenses sheet has %d columns, want at least %d", len(tbl.Columns), despesasMinColumns)
	}

	contasTbl, err := tbl.SliceColumns(0, 6, contasLabels)
	if err != nil {
		return nil, nil, err
	}
	pessoalTbl, err := tbl.SliceColumns(7, 10, pessoalLabels)
	if err != nil {
		return nil, nil, err
	}

	var contas []models.ContaRecord
	for _, row := range contasTbl.Rows {
		nome := strings.TrimSpace(row[0])
		if nome == "" {
			continue
		}

		venc, _ := utils.ParseDateBR(row[2])
		pgto, _ := utils.ParseDateBR(row[3])

		contas = append(contas, models.ContaRecord{
			Nome:           nome,
			Valor:          utils.ParseAmount(row[1]),
			DataVencimento: venc,
			DataPagamento:  pgto,
			FormaPagamento: strings.TrimSpace(row[4]),
			Categoria:      strings.TrimSpace(row[5]),
			Status:         contaStatus(venc, pgto, now),
		})
	}

	var pessoal []models.PessoalRecord
	for _, row := range pessoalTbl.Rows {
		nome := strings.TrimSpace(row[0])
		if nome == "" {
			continue
		}
		data, _ := utils.ParseDateBR(row[2])
		pessoal = append(pessoal, models.PessoalRecord{
			Nome:  nome,
			Valor: utils.ParseAmount(row[1]),
			Data:  data,
		})
	}

	return contas, pessoal, nil
}

// contaStatus derives the payment status of a bill. A recorded payment date
// always wins; an unpaid bill without a due date stays pending.
func contaStatus(vencimento, pagamento, now time.Time) string {
	if !pagamento.IsZero() {
		return models.StatusPago
	}
	if !vencimento.IsZero() && vencimento.Before(now) {
		return models.StatusVencido
	}
	return models.StatusPendente
}
