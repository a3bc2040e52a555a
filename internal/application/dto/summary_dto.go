package dto

import "github.com/shopspring/decimal"

// SummaryResponse resumen financiero de un negocio. Las cifras mensuales
// corresponden al mes calendario de la fecha de referencia del cálculo.
type SummaryResponse struct {
	TotalIncome     decimal.Decimal `json:"totalIncome"`
	TotalExpenses   decimal.Decimal `json:"totalExpenses"`
	Profit          decimal.Decimal `json:"profit"`
	MonthlyIncome   decimal.Decimal `json:"monthlyIncome"`
	MonthlyExpenses decimal.Decimal `json:"monthlyExpenses"`
}
