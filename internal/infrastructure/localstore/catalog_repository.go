package localstore

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/mvdigital/negocioweb-api/internal/domain"
	"github.com/mvdigital/negocioweb-api/internal/domain/entity"
	"github.com/mvdigital/negocioweb-api/pkg/logger"
)

// CatalogRepository persiste el catálogo de servicios de cada variante como
// un arreglo JSON por clave, en orden de inserción. Cada operación es una
// lectura-modificación-escritura del arreglo completo bajo el mutex.
type CatalogRepository struct {
	mu    sync.Mutex
	store Store
	log   *logger.Logger
}

// NewCatalogRepository construye el repositorio.
func NewCatalogRepository(store Store, log *logger.Logger) *CatalogRepository {
	return &CatalogRepository{store: store, log: log}
}

func (r *CatalogRepository) load(business entity.BusinessType) ([]entity.CatalogEntry, error) {
	key := CatalogKey(business)
	raw, err := r.store.Load(key)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}
	var entries []entity.CatalogEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		r.log.Warn().Err(err).Str("key", key).
			Msg("catálogo persistido ilegible, se parte de un catálogo vacío")
		return nil, nil
	}
	return entries, nil
}

func (r *CatalogRepository) persist(business entity.BusinessType, entries []entity.CatalogEntry) error {
	raw, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("serializar catálogo: %w", err)
	}
	return r.store.Save(CatalogKey(business), raw)
}

// Create agrega la entrada al final del catálogo.
func (r *CatalogRepository) Create(business entity.BusinessType, entry *entity.CatalogEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	entries, err := r.load(business)
	if err != nil {
		return err
	}
	entries = append(entries, *entry)
	return r.persist(business, entries)
}

// GetByID devuelve la entrada con el id dado, o nil si no existe.
func (r *CatalogRepository) GetByID(business entity.BusinessType, id string) (*entity.CatalogEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entries, err := r.load(business)
	if err != nil {
		return nil, err
	}
	for i := range entries {
		if entries[i].ID == id {
			e := entries[i]
			return &e, nil
		}
	}
	return nil, nil
}

// Update reemplaza la entrada con el mismo id conservando su posición.
// Retorna domain.ErrNotFound si el id no existe.
func (r *CatalogRepository) Update(business entity.BusinessType, entry *entity.CatalogEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	entries, err := r.load(business)
	if err != nil {
		return err
	}
	for i := range entries {
		if entries[i].ID == entry.ID {
			entries[i] = *entry
			return r.persist(business, entries)
		}
	}
	return domain.ErrNotFound
}

// Delete elimina la entrada con el id dado.
// Retorna domain.ErrNotFound si el id no existe; la colección no cambia.
func (r *CatalogRepository) Delete(business entity.BusinessType, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	entries, err := r.load(business)
	if err != nil {
		return err
	}
	for i := range entries {
		if entries[i].ID == id {
			entries = append(entries[:i], entries[i+1:]...)
			return r.persist(business, entries)
		}
	}
	return domain.ErrNotFound
}

// List devuelve el catálogo completo de la variante en orden de inserción.
func (r *CatalogRepository) List(business entity.BusinessType) ([]*entity.CatalogEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entries, err := r.load(business)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.CatalogEntry, 0, len(entries))
	for i := range entries {
		e := entries[i]
		out = append(out, &e)
	}
	return out, nil
}
