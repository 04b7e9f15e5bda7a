package processors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func producaoGrid() [][]string {
	return [][]string{
		{"Data", "Produto", "Unidades", "Responsável Produção"},
		{"01/07/2024", "Linguiça Toscana 5kg", "10", "Ana"},
		{"02/07/2024", "Linguiça Calabresa 5kg", "4,5", "Bruno"},
		{"02/07/2024", "Salame Italiano 900g", "20", "Ana"},
		{"03/07/2024", "Salame Colonial 900g", "8", "Bruno"},
		{"03/07/2024", "Copa Defumada", "3", "Bruno"},
		{"04/07/2024", "Torresmo Especial", "abc", "Ana"},
		{"", "Sem Data", "5", "Ana"},
	}
}

func TestProcessProducao(t *testing.T) {
	recs, err := ProcessProducao(producaoGrid())
	require.NoError(t, err)
	require.Len(t, recs, 5, "non-numeric units and blank dates are dropped")

	toscana := recs[0]
	assert.Equal(t, "Linguiça Toscana 5kg", toscana.Produto)
	assert.Equal(t, 10.0, toscana.Unidades)
	assert.Equal(t, 5.0, toscana.TamanhoKg)
	assert.Equal(t, 50.0, toscana.TotalKg)
	assert.Equal(t, "Linguiça", toscana.Categoria)
	assert.Equal(t, "Julho/2024", toscana.MesAno)
	assert.Equal(t, "Segunda-feira", toscana.DiaSemana)

	calabresa := recs[1]
	assert.Equal(t, 4.5, calabresa.Unidades, "comma decimals are accepted")

	salame := recs[2]
	assert.Equal(t, 0.9, salame.TamanhoKg, "gram sizes convert to kg")
	assert.InDelta(t, 18.0, salame.TotalKg, 1e-9)
	assert.Equal(t, "Salame", salame.Categoria)

	copa := recs[4]
	assert.Equal(t, 1.0, copa.TamanhoKg, "products without a size count as 1kg")
	assert.Equal(t, "Outro", copa.Categoria, "no recurring leading term means Outro")
}

func TestProcessProducaoEmpty(t *testing.T) {
	_, err := ProcessProducao(nil)
	assert.Error(t, err)
}

func TestCategorizarProdutos(t *testing.T) {
	m := CategorizarProdutos([]string{
		"Linguiça Toscana", "Linguiça Calabresa", "Salame Italiano", "Salame Colonial", "Copa",
	})

	assert.Equal(t, "Linguiça", m["Linguiça Toscana"])
	assert.Equal(t, "Linguiça", m["Linguiça Calabresa"])
	assert.Equal(t, "Salame", m["Salame Italiano"])
	assert.Equal(t, "Outro", m["Copa"])
}

func TestCategorizarProdutosNoRecurringTerms(t *testing.T) {
	m := CategorizarProdutos([]string{"Copa Defumada", "Torresmo"})

	// Without recurring terms every leading term becomes its own category.
	assert.Equal(t, "Copa", m["Copa Defumada"])
	assert.Equal(t, "Torresmo", m["Torresmo"])
}

func TestExtrairTamanhoKg(t *testing.T) {
	assert.Equal(t, 5.0, ExtrairTamanhoKg("Linguiça Toscana 5kg"))
	assert.Equal(t, 2.5, ExtrairTamanhoKg("Salame 2,5kg"))
	assert.Equal(t, 0.9, ExtrairTamanhoKg("Salame Italiano 900g"))
	assert.Equal(t, 1.0, ExtrairTamanhoKg("Copa Defumada"))
	assert.Equal(t, 1.0, ExtrairTamanhoKg("Linguiça Fina"), "a bare g in the name is not a weight")
}
