package usecase

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mvdigital/negocioweb-api/internal/application/dto"
	"github.com/mvdigital/negocioweb-api/internal/domain"
	"github.com/mvdigital/negocioweb-api/internal/domain/entity"
	"github.com/mvdigital/negocioweb-api/internal/domain/repository"
)

// SummaryUseCase cálculo del resumen financiero de un negocio.
// La fecha de referencia es un parámetro explícito: el cálculo es puro y
// determinista, sin leer el reloj ambiente.
type SummaryUseCase struct {
	repo repository.TransactionRepository
}

// NewSummaryUseCase construye el caso de uso.
func NewSummaryUseCase(repo repository.TransactionRepository) *SummaryUseCase {
	return &SummaryUseCase{repo: repo}
}

// Summarize suma ingresos y gastos del negocio con precisión decimal
// completa. Las cifras mensuales consideran solo las transacciones cuya
// fecha cae en el mes y año calendario de ref. Profit puede ser negativo.
func (uc *SummaryUseCase) Summarize(business entity.BusinessType, ref time.Time) (*dto.SummaryResponse, error) {
	if !business.Valid() {
		return nil, fmt.Errorf("%w: businessType desconocido %q", domain.ErrInvalidInput, business)
	}
	txs, err := uc.repo.ListByBusiness(business)
	if err != nil {
		return nil, err
	}

	totalIncome := decimal.Zero
	totalExpenses := decimal.Zero
	monthlyIncome := decimal.Zero
	monthlyExpenses := decimal.Zero

	refYear, refMonth, _ := ref.Date()
	for _, tx := range txs {
		inMonth := tx.Date.Year() == refYear && tx.Date.Month() == refMonth
		switch tx.Type {
		case entity.TransactionIncome:
			totalIncome = totalIncome.Add(tx.Amount)
			if inMonth {
				monthlyIncome = monthlyIncome.Add(tx.Amount)
			}
		case entity.TransactionExpense:
			totalExpenses = totalExpenses.Add(tx.Amount)
			if inMonth {
				monthlyExpenses = monthlyExpenses.Add(tx.Amount)
			}
		}
	}

	return &dto.SummaryResponse{
		TotalIncome:     totalIncome,
		TotalExpenses:   totalExpenses,
		Profit:          totalIncome.Sub(totalExpenses),
		MonthlyIncome:   monthlyIncome,
		MonthlyExpenses: monthlyExpenses,
	}, nil
}
