package localstore

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/mvdigital/negocioweb-api/internal/domain"
	"github.com/mvdigital/negocioweb-api/internal/domain/entity"
	"github.com/mvdigital/negocioweb-api/pkg/logger"
)

// InventoryRepository persiste todos los ítems de inventario (de ambos
// negocios) como un único arreglo JSON bajo KeyInventory, en orden de
// inserción.
type InventoryRepository struct {
	mu    sync.Mutex
	store Store
	log   *logger.Logger
}

// NewInventoryRepository construye el repositorio.
func NewInventoryRepository(store Store, log *logger.Logger) *InventoryRepository {
	return &InventoryRepository{store: store, log: log}
}

func (r *InventoryRepository) load() ([]entity.InventoryItem, error) {
	raw, err := r.store.Load(KeyInventory)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}
	var items []entity.InventoryItem
	if err := json.Unmarshal(raw, &items); err != nil {
		r.log.Warn().Err(err).Str("key", KeyInventory).
			Msg("inventario persistido ilegible, se parte de una colección vacía")
		return nil, nil
	}
	return items, nil
}

func (r *InventoryRepository) persist(items []entity.InventoryItem) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("serializar inventario: %w", err)
	}
	return r.store.Save(KeyInventory, raw)
}

// Create agrega el ítem al final de la colección.
func (r *InventoryRepository) Create(item *entity.InventoryItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	items, err := r.load()
	if err != nil {
		return err
	}
	items = append(items, *item)
	return r.persist(items)
}

// GetByID devuelve el ítem con el id dado, o nil si no existe.
func (r *InventoryRepository) GetByID(id string) (*entity.InventoryItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	items, err := r.load()
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ID == id {
			it := items[i]
			return &it, nil
		}
	}
	return nil, nil
}

// Update reemplaza el ítem con el mismo id conservando su posición.
// Retorna domain.ErrNotFound si el id no existe.
func (r *InventoryRepository) Update(item *entity.InventoryItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	items, err := r.load()
	if err != nil {
		return err
	}
	for i := range items {
		if items[i].ID == item.ID {
			items[i] = *item
			return r.persist(items)
		}
	}
	return domain.ErrNotFound
}

// Delete elimina el ítem con el id dado.
// Retorna domain.ErrNotFound si el id no existe; la colección no cambia.
func (r *InventoryRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	items, err := r.load()
	if err != nil {
		return err
	}
	for i := range items {
		if items[i].ID == id {
			items = append(items[:i], items[i+1:]...)
			return r.persist(items)
		}
	}
	return domain.ErrNotFound
}

// ListByBusiness devuelve los ítems etiquetados con el negocio dado, en
// orden de inserción.
func (r *InventoryRepository) ListByBusiness(business entity.BusinessType) ([]*entity.InventoryItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	items, err := r.load()
	if err != nil {
		return nil, err
	}
	out := make([]*entity.InventoryItem, 0, len(items))
	for i := range items {
		if items[i].BusinessType == business {
			it := items[i]
			out = append(out, &it)
		}
	}
	return out, nil
}
