package localstore

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/mvdigital/negocioweb-api/internal/domain/entity"
	"github.com/mvdigital/negocioweb-api/pkg/logger"
)

// ContentRepository persiste el contenido editable de cada variante como un
// blob JSON por clave. Cada operación es una lectura-modificación-escritura
// atómica serializada por el mutex; la última escritura gana.
type ContentRepository struct {
	mu    sync.Mutex
	store Store
	log   *logger.Logger
}

// NewContentRepository construye el repositorio.
func NewContentRepository(store Store, log *logger.Logger) *ContentRepository {
	return &ContentRepository{store: store, log: log}
}

// Get devuelve el contenido persistido de la variante, o nil si no hay nada
// guardado. Un blob ilegible se trata como ausente y se registra un warning
// (nunca se interrumpe la aplicación por estado corrupto).
func (r *ContentRepository) Get(business entity.BusinessType) (*entity.ContentRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := ContentKey(business)
	raw, err := r.store.Load(key)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}
	var record entity.ContentRecord
	if err := json.Unmarshal(raw, &record); err != nil {
		r.log.Warn().Err(err).Str("key", key).
			Msg("contenido persistido ilegible, se usa el contenido de fábrica")
		return nil, nil
	}
	return &record, nil
}

// Save sobrescribe el contenido completo de la variante.
func (r *ContentRepository) Save(business entity.BusinessType, record *entity.ContentRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	raw, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("serializar contenido: %w", err)
	}
	return r.store.Save(ContentKey(business), raw)
}
