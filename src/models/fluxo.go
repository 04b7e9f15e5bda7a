package models

// FluxoMensal is one month of the cash-flow sheet. Diferenca is
// Entrada - Saida.
type FluxoMensal struct {
	Mes       string  `json:"mes"`
	Entrada   float64 `json:"entrada"`
	Saida     float64 `json:"saida"`
	Meta      float64 `json:"meta"`
	Diferenca float64 `json:"diferenca"`
}

// FluxoSummary is the cash-flow dashboard payload.
type FluxoSummary struct {
	TotalEntrada   float64 `json:"total_entrada"`
	TotalSaida     float64 `json:"total_saida"`
	TotalDiferenca float64 `json:"total_diferenca"`

	PctMesesPositivos float64 `json:"pct_meses_positivos"`
	PctAcimaMeta      float64 `json:"pct_acima_meta"`

	MelhorMes LabelValue `json:"melhor_mes"`
	PiorMes   LabelValue `json:"pior_mes"`

	Meses []FluxoMensal `json:"meses"`
}
