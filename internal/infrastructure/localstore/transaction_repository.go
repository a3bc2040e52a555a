package localstore

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/mvdigital/negocioweb-api/internal/domain"
	"github.com/mvdigital/negocioweb-api/internal/domain/entity"
	"github.com/mvdigital/negocioweb-api/pkg/logger"
)

// TransactionRepository persiste todas las transacciones (de ambos negocios)
// como un único arreglo JSON bajo KeyTransactions, en orden de inserción.
// businessType es solo una etiqueta de filtro, no una clave foránea.
type TransactionRepository struct {
	mu    sync.Mutex
	store Store
	log   *logger.Logger
}

// NewTransactionRepository construye el repositorio.
func NewTransactionRepository(store Store, log *logger.Logger) *TransactionRepository {
	return &TransactionRepository{store: store, log: log}
}

func (r *TransactionRepository) load() ([]entity.Transaction, error) {
	raw, err := r.store.Load(KeyTransactions)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}
	var txs []entity.Transaction
	if err := json.Unmarshal(raw, &txs); err != nil {
		r.log.Warn().Err(err).Str("key", KeyTransactions).
			Msg("transacciones persistidas ilegibles, se parte de una colección vacía")
		return nil, nil
	}
	return txs, nil
}

func (r *TransactionRepository) persist(txs []entity.Transaction) error {
	raw, err := json.Marshal(txs)
	if err != nil {
		return fmt.Errorf("serializar transacciones: %w", err)
	}
	return r.store.Save(KeyTransactions, raw)
}

// Create agrega la transacción al final de la colección.
func (r *TransactionRepository) Create(tx *entity.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	txs, err := r.load()
	if err != nil {
		return err
	}
	txs = append(txs, *tx)
	return r.persist(txs)
}

// GetByID devuelve la transacción con el id dado, o nil si no existe.
func (r *TransactionRepository) GetByID(id string) (*entity.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	txs, err := r.load()
	if err != nil {
		return nil, err
	}
	for i := range txs {
		if txs[i].ID == id {
			t := txs[i]
			return &t, nil
		}
	}
	return nil, nil
}

// Update reemplaza la transacción con el mismo id conservando su posición.
// Retorna domain.ErrNotFound si el id no existe.
func (r *TransactionRepository) Update(tx *entity.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	txs, err := r.load()
	if err != nil {
		return err
	}
	for i := range txs {
		if txs[i].ID == tx.ID {
			txs[i] = *tx
			return r.persist(txs)
		}
	}
	return domain.ErrNotFound
}

// Delete elimina la transacción con el id dado.
// Retorna domain.ErrNotFound si el id no existe; la colección no cambia.
func (r *TransactionRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	txs, err := r.load()
	if err != nil {
		return err
	}
	for i := range txs {
		if txs[i].ID == id {
			txs = append(txs[:i], txs[i+1:]...)
			return r.persist(txs)
		}
	}
	return domain.ErrNotFound
}

// ListByBusiness devuelve las transacciones etiquetadas con el negocio dado,
// en orden de inserción.
func (r *TransactionRepository) ListByBusiness(business entity.BusinessType) ([]*entity.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	txs, err := r.load()
	if err != nil {
		return nil, err
	}
	out := make([]*entity.Transaction, 0, len(txs))
	for i := range txs {
		if txs[i].BusinessType == business {
			t := txs[i]
			out = append(out, &t)
		}
	}
	return out, nil
}
