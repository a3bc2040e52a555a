package usecase_test

import (
	"testing"

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

func newCatalogUC(t *testing.T) *usecase.CatalogUseCase {
	t.Helper()
	repo := localstore.NewCatalogRepository(localstore.NewMemoryStore(), logger.Nop())
	return usecase.NewCatalogUseCase(repo)
}

// Ciclo de vida completo de una entrada: alta con id generado, parche que
// solo cambia el precio, borrado, y parche posterior que ya no encuentra nada.
func TestCatalog_CicloDeVidaCompleto(t *testing.T) {
	uc := newCatalogUC(t)
	editor := auth.Editor()

	created, err := uc.Add(editor, entity.BusinessBarbershop, dto.CreateCatalogEntryRequest{
		Name:        "Corte",
		Description: "x",
		Price:       "R$35",
		Category:    "corte",
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID, "el alta debe asignar un id")

	updated, err := uc.Update(editor, entity.BusinessBarbershop, created.ID, dto.UpdateCatalogEntryRequest{
		Price: strptr("R$40"),
	})
	require.NoError(t, err)
	assert.Equal(t, "R$40", updated.Price)
	assert.Equal(t, "Corte", updated.Name, "solo el precio cambia")
	assert.Equal(t, "x", updated.Description)
	assert.Equal(t, "corte", updated.Category)

	require.NoError(t, uc.Delete(editor, entity.BusinessBarbershop, created.ID))

	list, err := uc.List(entity.BusinessBarbershop)
	require.NoError(t, err)
	assert.Empty(t, list.Items)

	_, err = uc.Update(editor, entity.BusinessBarbershop, created.ID, dto.UpdateCatalogEntryRequest{
		Price: strptr("R$45"),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound, "actualizar una entrada borrada no encuentra nada")
}

func TestCatalog_IdsUnicosEnAltasSucesivas(t *testing.T) {
	uc := newCatalogUC(t)
	editor := auth.Editor()

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		created, err := uc.Add(editor, entity.BusinessBarbershop, dto.CreateCatalogEntryRequest{
			Name:     "Corte Degradê",
			Category: "corte",
		})
		require.NoError(t, err)
		assert.False(t, seen[created.ID], "los ids no deben colisionar en altas rápidas")
		seen[created.ID] = true
	}
}

func TestCatalog_OrdenDeInsercion(t *testing.T) {
	uc := newCatalogUC(t)
	editor := auth.Editor()

	for _, name := range []string{"Corte Degradê", "Barba Tradicional", "Combo Corte + Barba"} {
		_, err := uc.Add(editor, entity.BusinessBarbershop, dto.CreateCatalogEntryRequest{
			Name:     name,
			Category: "combo",
		})
		require.NoError(t, err)
	}

	list, err := uc.List(entity.BusinessBarbershop)
	require.NoError(t, err)
	require.Len(t, list.Items, 3)
	assert.Equal(t, "Corte Degradê", list.Items[0].Name)
	assert.Equal(t, "Barba Tradicional", list.Items[1].Name)
	assert.Equal(t, "Combo Corte + Barba", list.Items[2].Name)
}

func TestCatalog_CategoriaFueraDelConjunto(t *testing.T) {
	uc := newCatalogUC(t)

	_, err := uc.Add(auth.Editor(), entity.BusinessBarbershop, dto.CreateCatalogEntryRequest{
		Name:     "Corte",
		Category: "manicure",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCatalog_MutacionesSinCapability(t *testing.T) {
	uc := newCatalogUC(t)

	_, err := uc.Add(auth.ReadOnly(), entity.BusinessBarbershop, dto.CreateCatalogEntryRequest{
		Name:     "Corte",
		Category: "corte",
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	err = uc.Delete(auth.ReadOnly(), entity.BusinessBarbershop, "cualquiera")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
