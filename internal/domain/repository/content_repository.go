package repository

import "github.com/mvdigital/negocioweb-api/internal/domain/entity"

// ContentRepository define el puerto de persistencia para el contenido
// editable de cada variante. Get devuelve nil cuando no hay nada guardado
// (el caso de uso resuelve el contenido de fábrica).
type ContentRepository interface {
	Get(business entity.BusinessType) (*entity.ContentRecord, error)
	Save(business entity.BusinessType, record *entity.ContentRecord) error
}
