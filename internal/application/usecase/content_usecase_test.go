package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvdigital/negocioweb-api/internal/application/auth"
	"github.com/mvdigital/negocioweb-api/internal/application/dto"
	"github.com/mvdigital/negocioweb-api/internal/application/usecase"
	"github.com/mvdigital/negocioweb-api/internal/domain"
	"github.com/mvdigital/negocioweb-api/internal/domain/entity"
	"github.com/mvdigital/negocioweb-api/internal/infrastructure/localstore"
	"github.com/mvdigital/negocioweb-api/pkg/logger"
)

func newContentUC(t *testing.T) (*usecase.ContentUseCase, *localstore.MemoryStore) {
	t.Helper()
	store := localstore.NewMemoryStore()
	repo := localstore.NewContentRepository(store, logger.Nop())
	return usecase.NewContentUseCase(repo), store
}

func strptr(s string) *string { return &s }

func TestContentGet_SinNadaPersistido_DevuelveContenidoDeFabrica(t *testing.T) {
	uc, _ := newContentUC(t)

	record, err := uc.Get(entity.BusinessBarbershop)
	require.NoError(t, err)
	assert.Equal(t, "MV Barbearia", record.Hero.Title)

	auto, err := uc.Get(entity.BusinessAutomotive)
	require.NoError(t, err)
	assert.Equal(t, "MV Auto Center", auto.Hero.Title)
}

func TestContentGet_VarianteDesconocida(t *testing.T) {
	uc, _ := newContentUC(t)
	_, err := uc.Get("panaderia")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// El parche aplica exactamente los campos enviados y deja intacto el resto
// del registro, incluso dentro de la misma sección.
func TestContentUpdate_ParcheParcialNoTocaOtrosCampos(t *testing.T) {
	uc, _ := newContentUC(t)
	before, err := uc.Get(entity.BusinessBarbershop)
	require.NoError(t, err)

	after, err := uc.Update(auth.Editor(), entity.BusinessBarbershop, dto.UpdateContentRequest{
		Hero: &dto.HeroPatch{Title: strptr("Barbearia do Zé")},
	})
	require.NoError(t, err)

	assert.Equal(t, "Barbearia do Zé", after.Hero.Title)
	assert.Equal(t, before.Hero.Subtitle, after.Hero.Subtitle, "subtitle no estaba en el parche")
	assert.Equal(t, before.About, after.About, "las secciones no parcheadas quedan intactas")
	assert.Equal(t, before.Colors, after.Colors)
}

func TestContentUpdate_VariasSeccionesEnUnParche(t *testing.T) {
	uc, _ := newContentUC(t)

	after, err := uc.Update(auth.Editor(), entity.BusinessAutomotive, dto.UpdateContentRequest{
		Colors:  &dto.ColorsPatch{Primary: strptr("#000000"), Accent: strptr("#ff0000")},
		Contact: &dto.ContactPatch{Phone: strptr("(48) 3333-4444")},
		Footer:  &dto.FooterPatch{Copyright: strptr("© 2026 MV Auto Center")},
	})
	require.NoError(t, err)

	assert.Equal(t, "#000000", after.Colors.Primary)
	assert.Equal(t, "#ff0000", after.Colors.Accent)
	assert.NotEmpty(t, after.Colors.Secondary, "secondary no estaba en el parche")
	assert.Equal(t, "(48) 3333-4444", after.Contact.Phone)
	assert.Equal(t, "© 2026 MV Auto Center", after.Footer.Copyright)
}

func TestContentUpdate_PersisteInmediatamente(t *testing.T) {
	uc, store := newContentUC(t)

	_, err := uc.Update(auth.Editor(), entity.BusinessBarbershop, dto.UpdateContentRequest{
		Hero: &dto.HeroPatch{Title: strptr("Nuevo título")},
	})
	require.NoError(t, err)

	// Un caso de uso nuevo sobre el mismo store debe ver el cambio
	repo := localstore.NewContentRepository(store, logger.Nop())
	uc2 := usecase.NewContentUseCase(repo)
	record, err := uc2.Get(entity.BusinessBarbershop)
	require.NoError(t, err)
	assert.Equal(t, "Nuevo título", record.Hero.Title)
}

func TestContentUpdate_ReemplazaItemsDeServicios(t *testing.T) {
	uc, _ := newContentUC(t)

	after, err := uc.Update(auth.Editor(), entity.BusinessBarbershop, dto.UpdateContentRequest{
		Services: &dto.ServicesPatch{
			Items: &[]dto.ServiceItemInput{
				{Name: "Corte Social", Description: "Corte clássico", Price: "R$ 30,00", Icon: "scissors"},
			},
		},
	})
	require.NoError(t, err)
	require.Len(t, after.Services.Items, 1, "items reemplaza la lista completa")
	assert.Equal(t, entity.IconScissors, after.Services.Items[0].Icon)
}

func TestContentUpdate_IconoFueraDelConjunto(t *testing.T) {
	uc, _ := newContentUC(t)

	_, err := uc.Update(auth.Editor(), entity.BusinessBarbershop, dto.UpdateContentRequest{
		Services: &dto.ServicesPatch{
			Items: &[]dto.ServiceItemInput{{Name: "X", Icon: "unicornio"}},
		},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestContentUpdate_SinCapabilityDeEdicion(t *testing.T) {
	uc, _ := newContentUC(t)

	_, err := uc.Update(auth.ReadOnly(), entity.BusinessBarbershop, dto.UpdateContentRequest{
		Hero: &dto.HeroPatch{Title: strptr("no debería entrar")},
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	record, err := uc.Get(entity.BusinessBarbershop)
	require.NoError(t, err)
	assert.Equal(t, "MV Barbearia", record.Hero.Title, "el contenido no debe cambiar")
}
