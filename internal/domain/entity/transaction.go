package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType distingue ingresos de gastos.
type TransactionType string

const (
	TransactionIncome  TransactionType = "income"
	TransactionExpense TransactionType = "expense"
)

// Valid indica si el tipo pertenece al conjunto soportado.
func (t TransactionType) Valid() bool {
	return t == TransactionIncome || t == TransactionExpense
}

// Transaction es un movimiento financiero de un negocio.
// Amount se mantiene con precisión decimal completa; el redondeo a dos
// decimales es asunto de la capa de presentación.
type Transaction struct {
	ID           string          `json:"id"`
	Type         TransactionType `json:"type"`
	Category     string          `json:"category"` // texto libre
	Description  string          `json:"description"`
	Amount       decimal.Decimal `json:"amount"`
	Date         time.Time       `json:"date"` // fecha calendario del movimiento
	BusinessType BusinessType    `json:"businessType"`
}
