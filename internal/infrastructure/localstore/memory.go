package localstore

import "sync"

// MemoryStore es un adaptador en memoria con el mismo contrato que
// BoltStore. Se usa como doble de test y para ejecutar sin archivo de datos.
type MemoryStore struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

// NewMemoryStore crea un almacén en memoria vacío.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{blobs: make(map[string][]byte)}
}

// Load devuelve el blob bajo key, o (nil, nil) si no existe.
func (s *MemoryStore) Load(key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.blobs[key]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), v...), nil
}

// Save sobrescribe el blob completo bajo key.
func (s *MemoryStore) Save(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blobs[key] = append([]byte(nil), value...)
	return nil
}

// Delete elimina el blob bajo key.
func (s *MemoryStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.blobs, key)
	return nil
}

// Close no hace nada; existe para cumplir el contrato de Store.
func (s *MemoryStore) Close() error {
	return nil
}
