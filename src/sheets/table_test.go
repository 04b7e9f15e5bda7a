package sheets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisambiguateColumns(t *testing.T) {
	assert.Equal(t, []string{"A", "B", "A_2"}, DisambiguateColumns([]string{"A", "B", "A"}))
	assert.Equal(t,
		[]string{"parcelas", "status", "parcelas_2", "status_3"},
		DisambiguateColumns([]string{"parcelas", "status", "parcelas", "status"}))
	assert.Equal(t, []string{"A", "B"}, DisambiguateColumns([]string{"A", "B"}))
	assert.Empty(t, DisambiguateColumns([]string{}))
}

func TestReshapePromotesHeader(t *testing.T) {
	raw := [][]string{
		{"DESPESAS BIASI", "", ""},
		{"Nome", "Valor", "Data"},
		{"Energia", "R$ 350,00", "10/01/2024"},
		{"Internet", "R$ 120,00", "15/01/2024"},
	}

	tbl, err := Reshape(raw, ReshapeOptions{HeaderRow: 1})
	require.NoError(t, err)
	assert.Equal(t, []string{"Nome", "Valor", "Data"}, tbl.Columns)
	require.Len(t, tbl.Rows, 2)
	assert.Equal(t, "Energia", tbl.Rows[0][0])
}

func TestReshapePadsRaggedRows(t *testing.T) {
	raw := [][]string{
		{"Nome", "Valor", "Data"},
		{"Energia"},
	}

	tbl, err := Reshape(raw, ReshapeOptions{HeaderRow: 0})
	require.NoError(t, err)
	require.Len(t, tbl.Rows[0], 3)
	assert.Equal(t, "", tbl.Rows[0][2])
}

func TestReshapeDropsEmptyColumns(t *testing.T) {
	raw := [][]string{
		{"Nome", "", "Valor"},
		{"Energia", "", "350"},
		{"Internet", "  ", "120"},
	}

	tbl, err := Reshape(raw, ReshapeOptions{HeaderRow: 0, DropEmptyColumns: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"Nome", "Valor"}, tbl.Columns)
	assert.Equal(t, []string{"Energia", "350"}, tbl.Rows[0])
}

func TestReshapeHeaderOutOfRange(t *testing.T) {
	_, err := Reshape([][]string{{"only"}}, ReshapeOptions{HeaderRow: 4})
	assert.Error(t, err)
}

func TestSliceColumns(t *testing.T) {
	tbl := Table{
		Columns: []string{"a", "b", "c", "d"},
		Rows:    [][]string{{"1", "2", "3", "4"}},
	}

	out, err := tbl.SliceColumns(1, 3, []string{"x", "y"})
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y"}, out.Columns)
	assert.Equal(t, []string{"2", "3"}, out.Rows[0])

	_, err = tbl.SliceColumns(2, 9, []string{"x"})
	assert.Error(t, err)
}

func TestNormalizeKey(t *testing.T) {
	assert.Equal(t, "DESCRICAO", NormalizeKey("Descrição"))
	assert.Equal(t, "VALOR TOTAL", NormalizeKey("  valor total "))
	assert.Equal(t, "ANO DE AQUISICAO", NormalizeKey("Ano de Aquisição!"))
}

func TestPickColumn(t *testing.T) {
	cols := []string{"Descrição do Bem", "Valor Total (R$)", "Valor a Pagar", "Banco"}

	assert.Equal(t, 0, PickColumn(cols, "descricao"))
	assert.Equal(t, 2, PickColumn(cols, "a pagar"))
	assert.Equal(t, 3, PickColumn(cols, "banco"))
	assert.Equal(t, -1, PickColumn(cols, "parcelas"))
	// First match wins even when several keywords are given.
	assert.Equal(t, 1, PickColumn(cols, "parcelas", "valor total"))
}

func TestPickColumnFuzzy(t *testing.T) {
	cols := []string{"Descriçao do Bem", "Valor Totall", "Banco"}
	assert.Equal(t, 1, PickColumnFuzzy(cols, "valor total"))
}

func TestColAndCell(t *testing.T) {
	tbl := Table{Columns: []string{"Nome", "Valor"}, Rows: [][]string{{"Energia", "350"}}}

	assert.Equal(t, 1, tbl.Col("Valor"))
	assert.Equal(t, -1, tbl.Col("Categoria"))
	assert.Equal(t, "350", tbl.Cell(tbl.Rows[0], 1))
	assert.Equal(t, "", tbl.Cell(tbl.Rows[0], -1))
	assert.Equal(t, "", tbl.Cell(tbl.Rows[0], 5))
}
