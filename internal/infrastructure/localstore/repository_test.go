package localstore_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvdigital/negocioweb-api/internal/domain"
	"github.com/mvdigital/negocioweb-api/internal/domain/entity"
	"github.com/mvdigital/negocioweb-api/internal/infrastructure/localstore"
	"github.com/mvdigital/negocioweb-api/pkg/logger"
)

// Estado persistido ilegible: se trata como ausente y no se interrumpe nada
// (política recomendada ante un blob corrupto: warning y contenido de fábrica).
func TestContentRepository_BlobCorrupto_SeTrataComoAusente(t *testing.T) {
	store := localstore.NewMemoryStore()
	require.NoError(t, store.Save(localstore.KeyBarbershopContent, []byte("{esto no es json")))

	repo := localstore.NewContentRepository(store, logger.Nop())
	record, err := repo.Get(entity.BusinessBarbershop)
	require.NoError(t, err)
	assert.Nil(t, record, "un blob corrupto debe tratarse como ausente")
}

func TestContentRepository_RoundTrip(t *testing.T) {
	store := localstore.NewMemoryStore()
	repo := localstore.NewContentRepository(store, logger.Nop())

	original := entity.DefaultContent(entity.BusinessAutomotive)
	original.Hero.Title = "Taller El Rayo"
	require.NoError(t, repo.Save(entity.BusinessAutomotive, &original))

	// Releer desde el blob persistido debe dar un valor deep-equal
	reloaded, err := repo.Get(entity.BusinessAutomotive)
	require.NoError(t, err)
	require.NotNil(t, reloaded)
	assert.Equal(t, original, *reloaded)
}

func TestContentRepository_VariantesIndependientes(t *testing.T) {
	store := localstore.NewMemoryStore()
	repo := localstore.NewContentRepository(store, logger.Nop())

	barber := entity.DefaultContent(entity.BusinessBarbershop)
	barber.Hero.Title = "Barbería Don José"
	require.NoError(t, repo.Save(entity.BusinessBarbershop, &barber))

	// Guardar una variante no toca la otra
	auto, err := repo.Get(entity.BusinessAutomotive)
	require.NoError(t, err)
	assert.Nil(t, auto)
}

func TestTransactionRepository_BlobCorrupto_ColeccionVacia(t *testing.T) {
	store := localstore.NewMemoryStore()
	require.NoError(t, store.Save(localstore.KeyTransactions, []byte("[[[")))

	repo := localstore.NewTransactionRepository(store, logger.Nop())
	txs, err := repo.ListByBusiness(entity.BusinessBarbershop)
	require.NoError(t, err)
	assert.Empty(t, txs)
}

func TestTransactionRepository_DeleteInexistente_NoCambiaNada(t *testing.T) {
	store := localstore.NewMemoryStore()
	repo := localstore.NewTransactionRepository(store, logger.Nop())

	tx := &entity.Transaction{ID: "t1", Type: entity.TransactionIncome, BusinessType: entity.BusinessBarbershop}
	require.NoError(t, repo.Create(tx))

	err := repo.Delete("otro-id")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	txs, err := repo.ListByBusiness(entity.BusinessBarbershop)
	require.NoError(t, err)
	assert.Len(t, txs, 1, "la colección debe quedar intacta")
}

func TestInventoryRepository_OrdenDeInsercion(t *testing.T) {
	store := localstore.NewMemoryStore()
	repo := localstore.NewInventoryRepository(store, logger.Nop())

	for _, name := range []string{"Pomada", "Navalha", "Shampoo"} {
		require.NoError(t, repo.Create(&entity.InventoryItem{
			ID:           name,
			Name:         name,
			BusinessType: entity.BusinessBarbershop,
		}))
	}

	items, err := repo.ListByBusiness(entity.BusinessBarbershop)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "Pomada", items[0].Name)
	assert.Equal(t, "Navalha", items[1].Name)
	assert.Equal(t, "Shampoo", items[2].Name)
}

func TestInventoryRepository_FiltraPorNegocio(t *testing.T) {
	store := localstore.NewMemoryStore()
	repo := localstore.NewInventoryRepository(store, logger.Nop())

	require.NoError(t, repo.Create(&entity.InventoryItem{ID: "a", Name: "Cera", BusinessType: entity.BusinessBarbershop}))
	require.NoError(t, repo.Create(&entity.InventoryItem{ID: "b", Name: "Óleo 5W30", BusinessType: entity.BusinessAutomotive}))

	items, err := repo.ListByBusiness(entity.BusinessAutomotive)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Óleo 5W30", items[0].Name)
}
