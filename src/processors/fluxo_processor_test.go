package processors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fluxoGrid() [][]string {
	return [][]string{
		{"CONTROLE DE ENTRADA E SAÍDA GERAL BIASI", "", "", "", "", ""},
		{"", "", "", "", "", ""},
		{"Mês", "Entrada", "Saída", "Meta", "", ""},
		{"Janeiro", "R$ 10.000,00", "R$ 8.000,00", "R$ 9.000,00", "", ""},
		{"Fevereiro", "R$ 7.500,00", "R$ 9.000,00", "R$ 9.000,00", "", ""},
		{"", "", "", "", "", ""},
	}
}

func TestProcessFluxo(t *testing.T) {
	meses, err := ProcessFluxo(fluxoGrid())
	require.NoError(t, err)
	require.Len(t, meses, 2)

	assert.Equal(t, "Janeiro", meses[0].Mes)
	assert.Equal(t, 10000.0, meses[0].Entrada)
	assert.Equal(t, 8000.0, meses[0].Saida)
	assert.Equal(t, 9000.0, meses[0].Meta)
	assert.Equal(t, 2000.0, meses[0].Diferenca)

	assert.Equal(t, -1500.0, meses[1].Diferenca)
}

func TestProcessFluxoRejectsUnknownFormat(t *testing.T) {
	grid := [][]string{
		{"Mês", "Entrada", "Saída", "Meta"},
		{"Janeiro", "10", "5", "8"},
	}

	_, err := ProcessFluxo(grid)
	assert.Error(t, err)
}

func TestProcessFluxoEmpty(t *testing.T) {
	_, err := ProcessFluxo(nil)
	assert.Error(t, err)
}
