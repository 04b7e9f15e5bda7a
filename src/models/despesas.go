package models

import "time"

// Expense payment statuses.
const (
	StatusPago     = "PAGO"
	StatusVencido  = "VENCIDO"
	StatusPendente = "PENDENTE"
)

// ContaRecord is one business expense row. A zero DataPagamento means the
// bill is still open.
type ContaRecord struct {
	Nome           string    `json:"nome"`
	Valor          float64   `json:"valor"`
	DataVencimento time.Time `json:"data_vencimento"`
	DataPagamento  time.Time `json:"data_pagamento"`
	FormaPagamento string    `json:"forma_pagamento"`
	Categoria      string    `json:"categoria"`
	Status         string    `json:"status"`
}

// PessoalRecord is one personal expense row.
type PessoalRecord struct {
	Nome  string    `json:"nome"`
	Valor float64   `json:"valor"`
	Data  time.Time `json:"data"`
}

// DespesasSummary is the expenses dashboard payload.
type DespesasSummary struct {
	Period PeriodInfo `json:"period"`

	TotalContas  float64 `json:"total_contas"`
	TotalPessoal float64 `json:"total_pessoal"`
	TotalGeral   float64 `json:"total_geral"`
	MediaContas  float64 `json:"media_contas"`
	MediaPessoal float64 `json:"media_pessoal"`
	NumContas    int     `json:"num_contas"`
	NumPessoal   int     `json:"num_pessoal"`

	PorCategoria      []LabelValue `json:"por_categoria"`
	PorFormaPagamento []LabelValue `json:"por_forma_pagamento"`
	PorPessoal        []LabelValue `json:"por_pessoal"`
	PorStatus         []LabelValue `json:"por_status"`
	StatusCounts      []LabelValue `json:"status_counts"`
	TopContas         []LabelValue `json:"top_contas"`
	AcumuladoContas   []TimePoint  `json:"acumulado_contas"`
	AcumuladoPessoal  []TimePoint  `json:"acumulado_pessoal"`

	Contas  []ContaRecord   `json:"contas"`
	Pessoal []PessoalRecord `json:"pessoal"`
}
