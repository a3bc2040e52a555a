package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvdigital/negocioweb-api/internal/application/auth"
	"github.com/mvdigital/negocioweb-api/internal/application/dto"
	"github.com/mvdigital/negocioweb-api/internal/application/usecase"
	"github.com/mvdigital/negocioweb-api/internal/domain"
	"github.com/mvdigital/negocioweb-api/internal/domain/entity"
	"github.com/mvdigital/negocioweb-api/internal/infrastructure/localstore"
	"github.com/mvdigital/negocioweb-api/pkg/logger"
)

func newTransactionUC(t *testing.T) *usecase.TransactionUseCase {
	t.Helper()
	repo := localstore.NewTransactionRepository(localstore.NewMemoryStore(), logger.Nop())
	return usecase.NewTransactionUseCase(repo)
}

func TestTransactionAdd_AsignaIdYAparaceEnLaLista(t *testing.T) {
	uc := newTransactionUC(t)

	created, err := uc.Add(auth.Editor(), dto.CreateTransactionRequest{
		Type:         "income",
		Category:     "servicios",
		Description:  "Corte Degradê",
		Amount:       decimal.NewFromInt(35),
		Date:         "2026-09-01",
		BusinessType: "barbershop",
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	list, err := uc.List(entity.BusinessBarbershop)
	require.NoError(t, err)
	require.Len(t, list.Items, 1)
	assert.Equal(t, created.ID, list.Items[0].ID)
	assert.Equal(t, "2026-09-01", list.Items[0].Date)

	// La otra variante no ve esta transacción
	other, err := uc.List(entity.BusinessAutomotive)
	require.NoError(t, err)
	assert.Empty(t, other.Items)
}

func TestTransactionDelete_EsIdempotenteSobreElResto(t *testing.T) {
	uc := newTransactionUC(t)
	editor := auth.Editor()

	created, err := uc.Add(editor, dto.CreateTransactionRequest{
		Type: "expense", Amount: decimal.NewFromInt(10), Date: "2026-09-01", BusinessType: "barbershop",
	})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(editor, created.ID))

	list, err := uc.List(entity.BusinessBarbershop)
	require.NoError(t, err)
	assert.Empty(t, list.Items)

	// Borrar un id desconocido: NotFound y la colección no cambia
	err = uc.Delete(editor, "id-desconocido")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTransactionUpdate_ParcheParcial(t *testing.T) {
	uc := newTransactionUC(t)
	editor := auth.Editor()

	created, err := uc.Add(editor, dto.CreateTransactionRequest{
		Type:         "income",
		Category:     "servicios",
		Description:  "Barba",
		Amount:       decimal.NewFromInt(25),
		Date:         "2026-08-15",
		BusinessType: "barbershop",
	})
	require.NoError(t, err)

	amount := decimal.NewFromInt(30)
	updated, err := uc.Update(editor, created.ID, dto.UpdateTransactionRequest{Amount: &amount})
	require.NoError(t, err)
	assert.True(t, updated.Amount.Equal(decimal.NewFromInt(30)))
	assert.Equal(t, "Barba", updated.Description, "los campos no parcheados quedan intactos")
	assert.Equal(t, "2026-08-15", updated.Date)
}

func TestTransactionAdd_Validaciones(t *testing.T) {
	uc := newTransactionUC(t)
	editor := auth.Editor()

	cases := []struct {
		name string
		in   dto.CreateTransactionRequest
	}{
		{"tipo desconocido", dto.CreateTransactionRequest{Type: "transfer", Amount: decimal.NewFromInt(1), Date: "2026-09-01", BusinessType: "barbershop"}},
		{"negocio desconocido", dto.CreateTransactionRequest{Type: "income", Amount: decimal.NewFromInt(1), Date: "2026-09-01", BusinessType: "panaderia"}},
		{"monto negativo", dto.CreateTransactionRequest{Type: "income", Amount: decimal.NewFromInt(-5), Date: "2026-09-01", BusinessType: "barbershop"}},
		{"fecha ilegible", dto.CreateTransactionRequest{Type: "income", Amount: decimal.NewFromInt(1), Date: "01/09/2026", BusinessType: "barbershop"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Add(editor, tc.in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestTransaction_MutacionesSinCapability(t *testing.T) {
	uc := newTransactionUC(t)

	_, err := uc.Add(auth.ReadOnly(), dto.CreateTransactionRequest{
		Type: "income", Amount: decimal.NewFromInt(1), Date: "2026-09-01", BusinessType: "barbershop",
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
