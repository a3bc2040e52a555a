package dto

import "github.com/shopspring/decimal"

// DateLayout formato de fecha calendario aceptado por la API.
const DateLayout = "2006-01-02"

// CreateTransactionRequest entrada para registrar una transacción.
type CreateTransactionRequest struct {
	Type         string          `json:"type" validate:"required"`
	Category     string          `json:"category"`
	Description  string          `json:"description"`
	Amount       decimal.Decimal `json:"amount"`
	Date         string          `json:"date" validate:"required"` // YYYY-MM-DD
	BusinessType string          `json:"businessType" validate:"required"`
}

// UpdateTransactionRequest parche de una transacción.
type UpdateTransactionRequest struct {
	Type         *string          `json:"type"`
	Category     *string          `json:"category"`
	Description  *string          `json:"description"`
	Amount       *decimal.Decimal `json:"amount"`
	Date         *string          `json:"date"` // YYYY-MM-DD
	BusinessType *string          `json:"businessType"`
}

// TransactionResponse salida de una transacción.
type TransactionResponse struct {
	ID           string          `json:"id"`
	Type         string          `json:"type"`
	Category     string          `json:"category"`
	Description  string          `json:"description"`
	Amount       decimal.Decimal `json:"amount"`
	Date         string          `json:"date"` // YYYY-MM-DD
	BusinessType string          `json:"businessType"`
}

// TransactionListResponse transacciones de un negocio en orden de inserción.
type TransactionListResponse struct {
	Items []TransactionResponse `json:"items"`
}
