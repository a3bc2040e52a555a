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

// TransactionUseCase CRUD de transacciones financieras.
// La validación ocurre aquí, en la frontera de mutación: montos negativos o
// campos fuera de sus conjuntos cerrados nunca entran al store.
type TransactionUseCase struct {
	repo repository.TransactionRepository
}

// NewTransactionUseCase construye el caso de uso.
func NewTransactionUseCase(repo repository.TransactionRepository) *TransactionUseCase {
	return &TransactionUseCase{repo: repo}
}

// Add registra una transacción con id generado. Requiere capability de edición.
func (uc *TransactionUseCase) Add(capability auth.Capability, in dto.CreateTransactionRequest) (*dto.TransactionResponse, error) {
	if !capability.CanEdit() {
		return nil, domain.ErrUnauthorized
	}
	txType := entity.TransactionType(in.Type)
	if !txType.Valid() {
		return nil, fmt.Errorf("%w: type desconocido %q", domain.ErrInvalidInput, in.Type)
	}
	business := entity.BusinessType(in.BusinessType)
	if !business.Valid() {
		return nil, fmt.Errorf("%w: businessType desconocido %q", domain.ErrInvalidInput, in.BusinessType)
	}
	if in.Amount.IsNegative() {
		return nil, fmt.Errorf("%w: amount no puede ser negativo", domain.ErrInvalidInput)
	}
	date, err := time.Parse(dto.DateLayout, in.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: date debe tener formato YYYY-MM-DD", domain.ErrInvalidInput)
	}
	tx := &entity.Transaction{
		ID:           uuid.New().String(),
		Type:         txType,
		Category:     in.Category,
		Description:  in.Description,
		Amount:       in.Amount,
		Date:         date,
		BusinessType: business,
	}
	if err := uc.repo.Create(tx); err != nil {
		return nil, err
	}
	return toTransactionResponse(tx), nil
}

// Update aplica un parche sobre la transacción con el id dado.
// Id inexistente retorna domain.ErrNotFound. Requiere capability de edición.
func (uc *TransactionUseCase) Update(capability auth.Capability, id string, in dto.UpdateTransactionRequest) (*dto.TransactionResponse, error) {
	if !capability.CanEdit() {
		return nil, domain.ErrUnauthorized
	}
	tx, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if tx == nil {
		return nil, domain.ErrNotFound
	}
	if in.Type != nil {
		txType := entity.TransactionType(*in.Type)
		if !txType.Valid() {
			return nil, fmt.Errorf("%w: type desconocido %q", domain.ErrInvalidInput, *in.Type)
		}
		tx.Type = txType
	}
	if in.Category != nil {
		tx.Category = *in.Category
	}
	if in.Description != nil {
		tx.Description = *in.Description
	}
	if in.Amount != nil {
		if in.Amount.IsNegative() {
			return nil, fmt.Errorf("%w: amount no puede ser negativo", domain.ErrInvalidInput)
		}
		tx.Amount = *in.Amount
	}
	if in.Date != nil {
		date, err := time.Parse(dto.DateLayout, *in.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: date debe tener formato YYYY-MM-DD", domain.ErrInvalidInput)
		}
		tx.Date = date
	}
	if in.BusinessType != nil {
		business := entity.BusinessType(*in.BusinessType)
		if !business.Valid() {
			return nil, fmt.Errorf("%w: businessType desconocido %q", domain.ErrInvalidInput, *in.BusinessType)
		}
		tx.BusinessType = business
	}
	if err := uc.repo.Update(tx); err != nil {
		return nil, err
	}
	return toTransactionResponse(tx), nil
}

// Delete elimina la transacción con el id dado.
// Id inexistente retorna domain.ErrNotFound. Requiere capability de edición.
func (uc *TransactionUseCase) Delete(capability auth.Capability, id string) error {
	if !capability.CanEdit() {
		return domain.ErrUnauthorized
	}
	return uc.repo.Delete(id)
}

// List devuelve las transacciones del negocio en orden de inserción.
func (uc *TransactionUseCase) List(business entity.BusinessType) (*dto.TransactionListResponse, error) {
	if !business.Valid() {
		return nil, fmt.Errorf("%w: businessType desconocido %q", domain.ErrInvalidInput, business)
	}
	txs, err := uc.repo.ListByBusiness(business)
	if err != nil {
		return nil, err
	}
	items := make([]dto.TransactionResponse, 0, len(txs))
	for _, tx := range txs {
		items = append(items, *toTransactionResponse(tx))
	}
	return &dto.TransactionListResponse{Items: items}, nil
}

func toTransactionResponse(tx *entity.Transaction) *dto.TransactionResponse {
	if tx == nil {
		return nil
	}
	return &dto.TransactionResponse{
		ID:           tx.ID,
		Type:         string(tx.Type),
		Category:     tx.Category,
		Description:  tx.Description,
		Amount:       tx.Amount,
		Date:         tx.Date.Format(dto.DateLayout),
		BusinessType: string(tx.BusinessType),
	}
}
