package models

import "time"

// ProducaoRecord is one production log row with its derived fields.
// TamanhoKg comes from the product name ("Linguiça 5kg", "Salame 900g");
// products without an explicit size count as 1kg units.
type ProducaoRecord struct {
	Data        time.Time `json:"-"`
	DataStr     string    `json:"data"`
	Produto     string    `json:"produto"`
	Unidades    float64   `json:"unidades"`
	Responsavel string    `json:"responsavel"`

	Categoria string  `json:"categoria"`
	TamanhoKg float64 `json:"tamanho_kg"`
	TotalKg   float64 `json:"total_kg"`
	MesAno    string  `json:"mes_ano"`
	DiaSemana string  `json:"dia_semana"`
}

// ResponsavelStats describes one producer's share of the output.
// MediaDiaria is units per day actually worked, not per calendar day.
type ResponsavelStats struct {
	Nome            string  `json:"nome"`
	Unidades        float64 `json:"unidades"`
	TotalKg         float64 `json:"total_kg"`
	PctUnidades     float64 `json:"pct_unidades"`
	MediaUnidades   float64 `json:"media_unidades"`
	DiasTrabalhados int     `json:"dias_trabalhados"`
	MediaDiaria     float64 `json:"media_diaria"`
}

// ProducaoSummary is the production dashboard payload.
type ProducaoSummary struct {
	Period PeriodInfo `json:"period"`

	TotalUnidades  float64 `json:"total_unidades"`
	TotalKg        float64 `json:"total_kg"`
	MediaDiaria    float64 `json:"media_diaria"`
	NumRegistros   int     `json:"num_registros"`
	ProdutosUnicos int     `json:"produtos_unicos"`

	PorCategoria   []LabelValue `json:"por_categoria"`
	PorCategoriaKg []LabelValue `json:"por_categoria_kg"`
	PorProduto     []LabelValue `json:"por_produto"`
	TopProdutos    []LabelValue `json:"top_produtos"`
	PorDiaSemana   []LabelValue `json:"por_dia_semana"`
	PorMes         []LabelValue `json:"por_mes"`
	PorDia         []TimePoint  `json:"por_dia"`
	Acumulado      []TimePoint  `json:"acumulado"`

	Responsaveis []ResponsavelStats `json:"responsaveis"`

	Registros []ProducaoRecord `json:"registros"`
}
