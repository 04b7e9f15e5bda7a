package models

// Financing statuses.
const (
	StatusQuitado     = "QUITADO"
	StatusEmAndamento = "EM ANDAMENTO"
)

// Financiamento is one financed asset. Monetary values are in reais;
// ValorParcela is ValorTotal split evenly over Parcelas.
type Financiamento struct {
	Descricao      string  `json:"descricao"`
	ValorTotal     float64 `json:"valor_total"`
	ValorAPagar    float64 `json:"valor_a_pagar"`
	ValorPago      float64 `json:"valor_pago"`
	Parcelas       int     `json:"parcelas"`
	ValorParcela   float64 `json:"valor_parcela"`
	PercentualPago float64 `json:"percentual_pago"`
	AnoAquisicao   int     `json:"ano_aquisicao"`
	AnoQuitacao    int     `json:"ano_quitacao"`
	AnosRestantes  int     `json:"anos_restantes"`
	Banco          string  `json:"banco"`
	Status         string  `json:"status"`
}

// BancoStats aggregates the contracts held at one bank.
type BancoStats struct {
	Banco     string  `json:"banco"`
	Total     float64 `json:"total"`
	Pago      float64 `json:"pago"`
	APagar    float64 `json:"a_pagar"`
	PctPago   float64 `json:"pct_pago"`
	Contratos int     `json:"contratos"`
}

// FinanciamentosSummary is the financing dashboard payload.
type FinanciamentosSummary struct {
	TotalFinanciado float64 `json:"total_financiado"`
	TotalPago       float64 `json:"total_pago"`
	TotalAPagar     float64 `json:"total_a_pagar"`
	PercentualGeral float64 `json:"percentual_geral"`

	NumContratos int `json:"num_contratos"`
	NumQuitados  int `json:"num_quitados"`
	NumAndamento int `json:"num_andamento"`

	PorBanco       []LabelValue `json:"por_banco"`
	APagarPorBanco []LabelValue `json:"a_pagar_por_banco"`
	NumPorBanco    []LabelValue `json:"num_por_banco"`
	Bancos         []BancoStats `json:"bancos"`

	// ProjecaoAnual spreads each in-progress contract's outstanding
	// balance evenly over the years until its payoff.
	ProjecaoAnual []LabelValue `json:"projecao_anual"`

	Financiamentos []Financiamento `json:"financiamentos"`
}
