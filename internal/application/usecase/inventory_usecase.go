package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mvdigital/negocioweb-api/internal/application/auth"
	"github.com/mvdigital/negocioweb-api/internal/application/dto"
	"github.com/mvdigital/negocioweb-api/internal/domain"
	"github.com/mvdigital/negocioweb-api/internal/domain/entity"
	"github.com/mvdigital/negocioweb-api/internal/domain/repository"
)

// InventoryUseCase CRUD de ítems de inventario. LastUpdated lo fija este
// caso de uso en cada alta y en cada actualización exitosa, aunque el parche
// no toque campos de stock; el llamador nunca lo define.
type InventoryUseCase struct {
	repo repository.InventoryRepository
	now  func() time.Time
}

// NewInventoryUseCase construye el caso de uso.
func NewInventoryUseCase(repo repository.InventoryRepository) *InventoryUseCase {
	return &InventoryUseCase{repo: repo, now: time.Now}
}

// Add da de alta un ítem con id generado y LastUpdated al momento del alta.
// Requiere capability de edición.
func (uc *InventoryUseCase) Add(capability auth.Capability, in dto.CreateInventoryItemRequest) (*dto.InventoryItemResponse, error) {
	if !capability.CanEdit() {
		return nil, domain.ErrUnauthorized
	}
	business := entity.BusinessType(in.BusinessType)
	if !business.Valid() {
		return nil, fmt.Errorf("%w: businessType desconocido %q", domain.ErrInvalidInput, in.BusinessType)
	}
	if in.Name == "" {
		return nil, fmt.Errorf("%w: name es requerido", domain.ErrInvalidInput)
	}
	if in.Quantity < 0 {
		return nil, fmt.Errorf("%w: quantity no puede ser negativa", domain.ErrInvalidInput)
	}
	if in.MinQuantity < 0 {
		return nil, fmt.Errorf("%w: minQuantity no puede ser negativa", domain.ErrInvalidInput)
	}
	if in.UnitPrice.IsNegative() {
		return nil, fmt.Errorf("%w: unitPrice no puede ser negativo", domain.ErrInvalidInput)
	}
	item := &entity.InventoryItem{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Category:     in.Category,
		Quantity:     in.Quantity,
		MinQuantity:  in.MinQuantity,
		UnitPrice:    in.UnitPrice,
		Supplier:     in.Supplier,
		LastUpdated:  uc.now(),
		BusinessType: business,
	}
	if err := uc.repo.Create(item); err != nil {
		return nil, err
	}
	return toInventoryItemResponse(item), nil
}

// Update aplica un parche sobre el ítem con el id dado y refresca
// LastUpdated. Id inexistente retorna domain.ErrNotFound. Requiere
// capability de edición.
func (uc *InventoryUseCase) Update(capability auth.Capability, id string, in dto.UpdateInventoryItemRequest) (*dto.InventoryItemResponse, error) {
	if !capability.CanEdit() {
		return nil, domain.ErrUnauthorized
	}
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		item.Name = *in.Name
	}
	if in.Category != nil {
		item.Category = *in.Category
	}
	if in.Quantity != nil {
		if *in.Quantity < 0 {
			return nil, fmt.Errorf("%w: quantity no puede ser negativa", domain.ErrInvalidInput)
		}
		item.Quantity = *in.Quantity
	}
	if in.MinQuantity != nil {
		if *in.MinQuantity < 0 {
			return nil, fmt.Errorf("%w: minQuantity no puede ser negativa", domain.ErrInvalidInput)
		}
		item.MinQuantity = *in.MinQuantity
	}
	if in.UnitPrice != nil {
		if in.UnitPrice.IsNegative() {
			return nil, fmt.Errorf("%w: unitPrice no puede ser negativo", domain.ErrInvalidInput)
		}
		item.UnitPrice = *in.UnitPrice
	}
	if in.Supplier != nil {
		item.Supplier = *in.Supplier
	}
	if in.BusinessType != nil {
		business := entity.BusinessType(*in.BusinessType)
		if !business.Valid() {
			return nil, fmt.Errorf("%w: businessType desconocido %q", domain.ErrInvalidInput, *in.BusinessType)
		}
		item.BusinessType = business
	}
	item.LastUpdated = uc.now()
	if err := uc.repo.Update(item); err != nil {
		return nil, err
	}
	return toInventoryItemResponse(item), nil
}

// Delete elimina el ítem con el id dado.
// Id inexistente retorna domain.ErrNotFound. Requiere capability de edición.
func (uc *InventoryUseCase) Delete(capability auth.Capability, id string) error {
	if !capability.CanEdit() {
		return domain.ErrUnauthorized
	}
	return uc.repo.Delete(id)
}

// List devuelve los ítems del negocio en orden de inserción.
func (uc *InventoryUseCase) List(business entity.BusinessType) (*dto.InventoryListResponse, error) {
	if !business.Valid() {
		return nil, fmt.Errorf("%w: businessType desconocido %q", domain.ErrInvalidInput, business)
	}
	items, err := uc.repo.ListByBusiness(business)
	if err != nil {
		return nil, err
	}
	out := make([]dto.InventoryItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, *toInventoryItemResponse(it))
	}
	return &dto.InventoryListResponse{Items: out}, nil
}

// LowStock devuelve los ítems del negocio en o por debajo de su cantidad
// mínima, en orden de inserción.
func (uc *InventoryUseCase) LowStock(business entity.BusinessType) (*dto.InventoryListResponse, error) {
	if !business.Valid() {
		return nil, fmt.Errorf("%w: businessType desconocido %q", domain.ErrInvalidInput, business)
	}
	items, err := uc.repo.ListByBusiness(business)
	if err != nil {
		return nil, err
	}
	out := make([]dto.InventoryItemResponse, 0)
	for _, it := range items {
		if it.LowStock() {
			out = append(out, *toInventoryItemResponse(it))
		}
	}
	return &dto.InventoryListResponse{Items: out}, nil
}

func toInventoryItemResponse(item *entity.InventoryItem) *dto.InventoryItemResponse {
	if item == nil {
		return nil
	}
	return &dto.InventoryItemResponse{
		ID:           item.ID,
		Name:         item.Name,
		Category:     item.Category,
		Quantity:     item.Quantity,
		MinQuantity:  item.MinQuantity,
		UnitPrice:    item.UnitPrice,
		Supplier:     item.Supplier,
		LastUpdated:  item.LastUpdated,
		BusinessType: string(item.BusinessType),
	}
}
