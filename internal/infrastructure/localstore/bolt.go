package localstore

import (
	"fmt"
	"os"
	"path/filepath"

	bolt "go.etcd.io/bbolt"
)

// bucketName bucket único donde viven todos los blobs de la aplicación.
var bucketName = []byte("negocioweb")

// BoltStore es la implementación del adaptador sobre un archivo bbolt.
// Las escrituras son síncronas: cuando Save retorna, el blob ya está en
// disco. El lock de archivo de bbolt impide un segundo proceso escritor.
type BoltStore struct {
	db *bolt.DB
}

// NewBoltStore abre (o crea) el archivo de datos y garantiza el bucket.
func NewBoltStore(path string) (*BoltStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("crear directorio de datos: %w", err)
		}
	}
	db, err := bolt.Open(path, 0o600, nil)
	if err != nil {
		return nil, fmt.Errorf("abrir almacén local: %w", err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketName)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("crear bucket: %w", err)
	}
	return &BoltStore{db: db}, nil
}

// Load devuelve el blob guardado bajo key, o (nil, nil) si no existe.
func (s *BoltStore) Load(key string) ([]byte, error) {
	var out []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(bucketName).Get([]byte(key))
		if v != nil {
			out = append([]byte(nil), v...)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("leer %q: %w", key, err)
	}
	return out, nil
}

// Save sobrescribe el blob completo bajo key.
func (s *BoltStore) Save(key string, value []byte) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketName).Put([]byte(key), value)
	})
	if err != nil {
		return fmt.Errorf("guardar %q: %w", key, err)
	}
	return nil
}

// Delete elimina el blob bajo key. Borrar una clave inexistente no es error.
func (s *BoltStore) Delete(key string) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketName).Delete([]byte(key))
	})
	if err != nil {
		return fmt.Errorf("eliminar %q: %w", key, err)
	}
	return nil
}

// Close cierra el archivo de datos.
func (s *BoltStore) Close() error {
	return s.db.Close()
}
