package usecase

import (
	"fmt"

	"github.com/mvdigital/negocioweb-api/internal/application/auth"
	"github.com/mvdigital/negocioweb-api/internal/application/dto"
	"github.com/mvdigital/negocioweb-api/internal/domain"
	"github.com/mvdigital/negocioweb-api/internal/domain/entity"
	"github.com/mvdigital/negocioweb-api/internal/domain/repository"
)

// ContentUseCase operaciones sobre el contenido editable de cada variante.
type ContentUseCase struct {
	repo repository.ContentRepository
}

// NewContentUseCase construye el caso de uso.
func NewContentUseCase(repo repository.ContentRepository) *ContentUseCase {
	return &ContentUseCase{repo: repo}
}

// Get devuelve el contenido actual de la variante: lo persistido si existe,
// o el contenido de fábrica.
func (uc *ContentUseCase) Get(business entity.BusinessType) (*entity.ContentRecord, error) {
	if !business.Valid() {
		return nil, fmt.Errorf("%w: businessType desconocido %q", domain.ErrInvalidInput, business)
	}
	record, err := uc.repo.Get(business)
	if err != nil {
		return nil, err
	}
	if record == nil {
		def := entity.DefaultContent(business)
		return &def, nil
	}
	return record, nil
}

// Update aplica un parche tipado por sección sobre el contenido actual y lo
// persiste de inmediato. Solo los campos no nulos del parche se aplican; el
// resto del registro queda intacto. Requiere capability de edición.
func (uc *ContentUseCase) Update(capability auth.Capability, business entity.BusinessType, in dto.UpdateContentRequest) (*entity.ContentRecord, error) {
	if !capability.CanEdit() {
		return nil, domain.ErrUnauthorized
	}
	// Get y Save toman el lock del repositorio por separado: dos PATCH
	// concurrentes se resuelven como última-escritura-gana.
	record, err := uc.Get(business)
	if err != nil {
		return nil, err
	}
	if err := applyContentPatch(record, in); err != nil {
		return nil, err
	}
	if err := uc.repo.Save(business, record); err != nil {
		return nil, err
	}
	return record, nil
}

func applyContentPatch(record *entity.ContentRecord, in dto.UpdateContentRequest) error {
	if p := in.Logo; p != nil {
		setIf(&record.Logo.Image, p.Image)
		setIf(&record.Logo.Alt, p.Alt)
	}
	if p := in.Hero; p != nil {
		setIf(&record.Hero.Title, p.Title)
		setIf(&record.Hero.Subtitle, p.Subtitle)
		setIf(&record.Hero.CTAText, p.CTAText)
		setIf(&record.Hero.BackgroundImage, p.BackgroundImage)
	}
	if p := in.About; p != nil {
		setIf(&record.About.Title, p.Title)
		setIf(&record.About.Description, p.Description)
		setIf(&record.About.Image, p.Image)
	}
	if p := in.Services; p != nil {
		setIf(&record.Services.Title, p.Title)
		if p.Items != nil {
			items := make([]entity.ServiceItem, 0, len(*p.Items))
			for _, it := range *p.Items {
				icon := entity.ServiceIcon(it.Icon)
				if !icon.Valid() {
					return fmt.Errorf("%w: icon desconocido %q", domain.ErrInvalidInput, it.Icon)
				}
				items = append(items, entity.ServiceItem{
					Name:        it.Name,
					Description: it.Description,
					Price:       it.Price,
					Icon:        icon,
				})
			}
			record.Services.Items = items
		}
	}
	if p := in.Contact; p != nil {
		setIf(&record.Contact.Title, p.Title)
		setIf(&record.Contact.Address, p.Address)
		setIf(&record.Contact.Phone, p.Phone)
		setIf(&record.Contact.Email, p.Email)
		setIf(&record.Contact.Hours, p.Hours)
	}
	if p := in.Colors; p != nil {
		setIf(&record.Colors.Primary, p.Primary)
		setIf(&record.Colors.Secondary, p.Secondary)
		setIf(&record.Colors.Accent, p.Accent)
	}
	if p := in.Footer; p != nil {
		setIf(&record.Footer.Copyright, p.Copyright)
	}
	return nil
}

func setIf(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
