package main

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvdigital/negocioweb-api/pkg/logger"
)

// Sin el archivo de especificación generado la aplicación debe arrancar
// igual, solo sin la UI de swagger.
func TestMountSwagger_SinEspecificacionNoInterrumpe(t *testing.T) {
	app := fiber.New()
	require.NotPanics(t, func() {
		mountSwagger(app, filepath.Join(t.TempDir(), "swagger.json"), logger.Nop())
	})
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendStatus(http.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode, "la API sigue operativa sin la UI")

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/docs", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode, "sin especificación no se monta /docs")
}

func TestMountSwagger_ConEspecificacionSirveUI(t *testing.T) {
	specPath := filepath.Join(t.TempDir(), "swagger.json")
	minimal := `{"swagger":"2.0","info":{"title":"NegocioWeb API","version":"1.0"},"paths":{}}`
	require.NoError(t, os.WriteFile(specPath, []byte(minimal), 0o600))

	app := fiber.New()
	require.NotPanics(t, func() {
		mountSwagger(app, specPath, logger.Nop())
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/docs", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
