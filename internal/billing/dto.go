package billing

import (
	"github.com/shopspring/decimal"
)

// DayTotal is one line of the per-day breakdown.
type DayTotal struct {
	Date   string          `json:"data"`
	Orders int             `json:"pedidos"`
	Total  decimal.Decimal `json:"total"`
}

// PaymentTotal is one line of the per-forma-de-pagamento breakdown.
type PaymentTotal struct {
	PaymentMethod string          `json:"forma_pagamento"`
	Orders        int             `json:"pedidos"`
	Total         decimal.Decimal `json:"total"`
}

// Summary aggregates the billing window for the back-office dashboard.
type Summary struct {
	WindowDays    int             `json:"janela_dias"`
	Orders        int             `json:"pedidos"`
	GrandTotal    decimal.Decimal `json:"total_geral"`
	TodayTotal    decimal.Decimal `json:"total_hoje"`
	Last7Total    decimal.Decimal `json:"total_7_dias"`
	Last30Total   decimal.Decimal `json:"total_30_dias"`
	AverageTicket decimal.Decimal `json:"ticket_medio"`
	ByDay         []DayTotal      `json:"por_dia"`
	ByPayment     []PaymentTotal  `json:"por_forma_pagamento"`
}
