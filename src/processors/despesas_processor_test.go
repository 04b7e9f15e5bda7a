package processors

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gabrielkempp/biasi/src/models"
)

func despesasGrid() [][]string {
	return [][]string{
		{"DESPESAS BIASI", "", "", "", "", "", "", "", "", ""},
		{"Nome", "Valor", "Vencimento", "Pagamento", "Forma", "Categoria", "", "Nome", "Valor", "Data"},
		{"Energia", "R$ 350,00", "10/01/2024", "09/01/2024", "PIX", "Infraestrutura", "", "Mercado", "R$ 200,00", "05/01/2024"},
		{"Internet", "R$ 120,00", "15/06/2024", "", "Boleto", "Infraestrutura", "", "Farmácia", "R$ 80,00", "12/01/2024"},
		{"Aluguel", "R$ 2.000,00", "01/03/2024", "", "Transferência", "Imóvel", "", "", "", ""},
		{"", "", "", "", "", "", "", "", "", ""},
	}
}

func TestProcessDespesas(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	contas, pessoal, err := ProcessDespesas(despesasGrid(), now)
	require.NoError(t, err)
	require.Len(t, contas, 3)
	require.Len(t, pessoal, 2)

	assert.Equal(t, "Energia", contas[0].Nome)
	assert.Equal(t, 350.0, contas[0].Valor)
	assert.Equal(t, models.StatusPago, contas[0].Status, "a payment date always means paid")

	assert.Equal(t, models.StatusPendente, contas[1].Status, "due after now stays pending")
	assert.Equal(t, models.StatusVencido, contas[2].Status, "unpaid and past due is overdue")
	assert.Equal(t, 2000.0, contas[2].Valor)

	assert.Equal(t, "Mercado", pessoal[0].Nome)
	assert.Equal(t, 200.0, pessoal[0].Valor)
}

func TestProcessDespesasStatusWithoutDueDate(t *testing.T) {
	grid := despesasGrid()
	grid = append(grid, []string{"Avulso", "R$ 10,00", "", "", "", "Outros", "", "", "", ""})

	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	contas, _, err := ProcessDespesas(grid, now)
	require.NoError(t, err)

	last := contas[len(contas)-1]
	assert.Equal(t, "Avulso", last.Nome)
	assert.Equal(t, models.StatusPendente, last.Status)
}

func TestProcessDespesasRejectsNarrowSheet(t *testing.T) {
	grid := [][]string{
		{"DESPESAS"},
		{"Nome", "Valor"},
		{"Energia", "10"},
	}

	_, _, err := ProcessDespesas(grid, time.Now())
	assert.Error(t, err, "layout drift must fail instead of misreading columns")
}
