package usecase

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/mvdigital/negocioweb-api/internal/application/auth"
	"github.com/mvdigital/negocioweb-api/internal/application/dto"
	"github.com/mvdigital/negocioweb-api/internal/domain"
	"github.com/mvdigital/negocioweb-api/internal/domain/entity"
	"github.com/mvdigital/negocioweb-api/internal/domain/repository"
)

// CatalogUseCase CRUD del catálogo de servicios de cada variante.
// Los ids son uuid v4, no timestamps: creaciones rápidas sucesivas no
// pueden colisionar.
type CatalogUseCase struct {
	repo repository.CatalogRepository
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(repo repository.CatalogRepository) *CatalogUseCase {
	return &CatalogUseCase{repo: repo}
}

// Add crea una entrada con id generado. Requiere capability de edición.
func (uc *CatalogUseCase) Add(capability auth.Capability, business entity.BusinessType, in dto.CreateCatalogEntryRequest) (*dto.CatalogEntryResponse, error) {
	if !capability.CanEdit() {
		return nil, domain.ErrUnauthorized
	}
	if !business.Valid() {
		return nil, fmt.Errorf("%w: businessType desconocido %q", domain.ErrInvalidInput, business)
	}
	if in.Name == "" {
		return nil, fmt.Errorf("%w: name es requerido", domain.ErrInvalidInput)
	}
	category := entity.CatalogCategory(in.Category)
	if !category.Valid() {
		return nil, fmt.Errorf("%w: category desconocida %q", domain.ErrInvalidInput, in.Category)
	}
	entry := &entity.CatalogEntry{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Category:    category,
	}
	if err := uc.repo.Create(business, entry); err != nil {
		return nil, err
	}
	return toCatalogEntryResponse(entry), nil
}

// Update aplica un parche sobre la entrada con el id dado.
// Id inexistente retorna domain.ErrNotFound. Requiere capability de edición.
func (uc *CatalogUseCase) Update(capability auth.Capability, business entity.BusinessType, id string, in dto.UpdateCatalogEntryRequest) (*dto.CatalogEntryResponse, error) {
	if !capability.CanEdit() {
		return nil, domain.ErrUnauthorized
	}
	if !business.Valid() {
		return nil, fmt.Errorf("%w: businessType desconocido %q", domain.ErrInvalidInput, business)
	}
	entry, err := uc.repo.GetByID(business, id)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		entry.Name = *in.Name
	}
	if in.Description != nil {
		entry.Description = *in.Description
	}
	if in.Price != nil {
		entry.Price = *in.Price
	}
	if in.Category != nil {
		category := entity.CatalogCategory(*in.Category)
		if !category.Valid() {
			return nil, fmt.Errorf("%w: category desconocida %q", domain.ErrInvalidInput, *in.Category)
		}
		entry.Category = category
	}
	if err := uc.repo.Update(business, entry); err != nil {
		return nil, err
	}
	return toCatalogEntryResponse(entry), nil
}

// Delete elimina la entrada con el id dado.
// Id inexistente retorna domain.ErrNotFound. Requiere capability de edición.
func (uc *CatalogUseCase) Delete(capability auth.Capability, business entity.BusinessType, id string) error {
	if !capability.CanEdit() {
		return domain.ErrUnauthorized
	}
	if !business.Valid() {
		return fmt.Errorf("%w: businessType desconocido %q", domain.ErrInvalidInput, business)
	}
	return uc.repo.Delete(business, id)
}

// List devuelve el catálogo de la variante en orden de inserción.
func (uc *CatalogUseCase) List(business entity.BusinessType) (*dto.CatalogListResponse, error) {
	if !business.Valid() {
		return nil, fmt.Errorf("%w: businessType desconocido %q", domain.ErrInvalidInput, business)
	}
	entries, err := uc.repo.List(business)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CatalogEntryResponse, 0, len(entries))
	for _, e := range entries {
		items = append(items, *toCatalogEntryResponse(e))
	}
	return &dto.CatalogListResponse{Items: items}, nil
}

func toCatalogEntryResponse(e *entity.CatalogEntry) *dto.CatalogEntryResponse {
	if e == nil {
		return nil
	}
	return &dto.CatalogEntryResponse{
		ID:          e.ID,
		Name:        e.Name,
		Description: e.Description,
		Price:       e.Price,
		Category:    string(e.Category),
	}
}
