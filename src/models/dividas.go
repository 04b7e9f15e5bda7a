package models

import "time"

// Debt installment statuses as written in the sheet cells.
const (
	ParcelaPaga     = "PAGO"
	ParcelaPendente = "PENDENTE"
)

// ParcelaDivida is a single installment of a tracked debt.
type ParcelaDivida struct {
	Valor         float64   `json:"valor"`
	DataPagamento time.Time `json:"data_pagamento"`
	Status        string    `json:"status"`
	Atrasada      bool      `json:"atrasada"`
	DiasAtraso    int       `json:"dias_atraso"`
}

// DividaSerie aggregates one debt's installments.
type DividaSerie struct {
	Nome string `json:"nome"`

	Total       float64 `json:"total"`
	Pago        float64 `json:"pago"`
	Pendente    float64 `json:"pendente"`
	PctQuitado  float64 `json:"pct_quitado"`
	NumParcelas int     `json:"num_parcelas"`
	NumPagas    int     `json:"num_pagas"`
	NumAtraso   int     `json:"num_atraso"`
	ValorAtraso float64 `json:"valor_atraso"`
	MaxAtraso   int     `json:"max_atraso_dias"`

	Parcelas []ParcelaDivida `json:"parcelas"`
}

// AtrasoDetalhe is one overdue installment in the flat overdue listing.
type AtrasoDetalhe struct {
	Divida        string    `json:"divida"`
	Valor         float64   `json:"valor"`
	DataPagamento time.Time `json:"data_pagamento"`
	DiasAtraso    int       `json:"dias_atraso"`
}

// DividasSummary is the debts dashboard payload.
type DividasSummary struct {
	TotalGeral    float64 `json:"total_geral"`
	PagoGeral     float64 `json:"pago_geral"`
	PendenteGeral float64 `json:"pendente_geral"`
	TotalAtrasado float64 `json:"total_atrasado"`
	PctQuitado    float64 `json:"pct_quitado"`

	Series    []DividaSerie   `json:"series"`
	Atrasadas []AtrasoDetalhe `json:"atrasadas"`
}
