package localstore_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvdigital/negocioweb-api/internal/infrastructure/localstore"
)

func TestBoltStore_SaveAndLoad(t *testing.T) {
	store, err := localstore.NewBoltStore(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	defer store.Close()

	// Clave inexistente: (nil, nil), no error
	v, err := store.Load("no-existe")
	require.NoError(t, err)
	assert.Nil(t, v)

	require.NoError(t, store.Save("clave", []byte(`{"a":1}`)))

	v, err = store.Load("clave")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"a":1}`), v)

	// Save sobrescribe el blob completo, sin merge
	require.NoError(t, store.Save("clave", []byte(`{"b":2}`)))
	v, err = store.Load("clave")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"b":2}`), v)
}

func TestBoltStore_PersisteEntreAperturas(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	store, err := localstore.NewBoltStore(path)
	require.NoError(t, err)
	require.NoError(t, store.Save("clave", []byte("valor")))
	require.NoError(t, store.Close())

	// Reabrir el archivo debe devolver lo guardado
	store, err = localstore.NewBoltStore(path)
	require.NoError(t, err)
	defer store.Close()

	v, err := store.Load("clave")
	require.NoError(t, err)
	assert.Equal(t, []byte("valor"), v)
}

func TestBoltStore_Delete(t *testing.T) {
	store, err := localstore.NewBoltStore(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Save("clave", []byte("valor")))
	require.NoError(t, store.Delete("clave"))

	v, err := store.Load("clave")
	require.NoError(t, err)
	assert.Nil(t, v)

	// Borrar una clave inexistente no es error
	require.NoError(t, store.Delete("clave"))
}

func TestMemoryStore_MismoContratoQueBolt(t *testing.T) {
	store := localstore.NewMemoryStore()

	v, err := store.Load("no-existe")
	require.NoError(t, err)
	assert.Nil(t, v)

	require.NoError(t, store.Save("clave", []byte("valor")))
	v, err = store.Load("clave")
	require.NoError(t, err)
	assert.Equal(t, []byte("valor"), v)

	require.NoError(t, store.Delete("clave"))
	v, err = store.Load("clave")
	require.NoError(t, err)
	assert.Nil(t, v)
}
