package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-console/internal/application/dto"
	"github.com/jhoicas/Inventario-console/internal/application/scan"
	"github.com/jhoicas/Inventario-console/internal/application/usecase"
	"github.com/jhoicas/Inventario-console/internal/domain"
	"github.com/jhoicas/Inventario-console/internal/domain/currency"
	"github.com/jhoicas/Inventario-console/internal/domain/entity"
	consolehttp "github.com/jhoicas/Inventario-console/internal/interfaces/http"
	"github.com/jhoicas/Inventario-console/pkg/logger"
)

// fakeLookup resuelve códigos contra una tabla fija, como haría el endpoint
// lookup_by_code del backend.
type fakeLookup struct {
	table map[string]entity.Product
}

func (f *fakeLookup) LookupByCode(ctx context.Context, code string) (*entity.Product, error) {
	if p, ok := f.table[code]; ok {
		return &p, nil
	}
	return nil, domain.ErrNotFound
}

type fakeProducts struct {
	usecase.ProductGateway
}

func newApp(t *testing.T) (*fiber.App, *scan.Manager) {
	t.Helper()
	log := logger.New(logger.Config{Env: "production", Level: "error"})
	lookup := &fakeLookup{table: map[string]entity.Product{
		"12345678": {ID: 1, SKU: "SKU001", Name: "Cable HDMI", IsActive: true},
	}}
	sessions := scan.NewManager(lookup, nil, log)
	productUC := usecase.NewProductUseCase(&fakeProducts{}, nil, currency.INR, log)

	app := fiber.New()
	consolehttp.Router(app, consolehttp.RouterDeps{
		ProductUC:    productUC,
		ScanSessions: sessions,
	})
	return app, sessions
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (int, dto.ScanSessionResponse) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req, 2000)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out dto.ScanSessionResponse
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &out)
	}
	return resp.StatusCode, out
}

func waitForTerminal(t *testing.T, app *fiber.App, id string) dto.ScanSessionResponse {
	t.Helper()
	var last dto.ScanSessionResponse
	require.Eventually(t, func() bool {
		status, out := doJSON(t, app, fiber.MethodGet, "/console/scanner/sessions/"+id, nil)
		if status != fiber.StatusOK {
			return false
		}
		last = out
		return out.State != string(scan.StateCapturing) && out.State != string(scan.StateResolving)
	}, 2*time.Second, 10*time.Millisecond)
	return last
}

func TestScannerSessions_FlujoManualCompleto(t *testing.T) {
	app, _ := newApp(t)

	status, created := doJSON(t, app, fiber.MethodPost, "/console/scanner/sessions/", nil)
	require.Equal(t, fiber.StatusCreated, status)
	require.NotEmpty(t, created.SessionID)
	assert.Equal(t, string(scan.StateCapturing), created.State)
	assert.Equal(t, "qr", created.Source)
	assert.False(t, created.CanViewDetails)

	// Cambiar a entrada manual y enviar un código de barras válido.
	status, switched := doJSON(t, app, fiber.MethodPut,
		"/console/scanner/sessions/"+created.SessionID+"/source",
		dto.SwitchSourceRequest{Source: "manual"})
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "manual", switched.Source)

	status, _ = doJSON(t, app, fiber.MethodPost,
		"/console/scanner/sessions/"+created.SessionID+"/manual",
		dto.ManualSubmitRequest{InputType: "barcode", Value: " 12345678 "})
	require.Equal(t, fiber.StatusOK, status)

	final := waitForTerminal(t, app, created.SessionID)
	assert.Equal(t, string(scan.StateResolved), final.State)
	assert.Equal(t, "found", final.Status)
	require.NotNil(t, final.ResolvedProduct)
	assert.Equal(t, "SKU001", final.ResolvedProduct.SKU)
	assert.True(t, final.CanViewDetails)
}

func TestScannerSessions_DecodeNoEncontrado(t *testing.T) {
	app, _ := newApp(t)

	_, created := doJSON(t, app, fiber.MethodPost, "/console/scanner/sessions/", nil)

	status, _ := doJSON(t, app, fiber.MethodPost,
		"/console/scanner/sessions/"+created.SessionID+"/decode",
		dto.DecodePushRequest{Source: "qr", Code: "NOEXISTE"})
	require.Equal(t, fiber.StatusOK, status)

	final := waitForTerminal(t, app, created.SessionID)
	assert.Equal(t, string(scan.StateNotFound), final.State)
	assert.Equal(t, "not_found", final.Status)
	assert.Equal(t, "NOEXISTE", final.RawCode)
	assert.Nil(t, final.ResolvedProduct)

	// Escanear de nuevo vuelve a Capturing con el resultado limpio.
	status, again := doJSON(t, app, fiber.MethodPost,
		"/console/scanner/sessions/"+created.SessionID+"/scan_again", nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, string(scan.StateCapturing), again.State)
	assert.Empty(t, again.RawCode)
}

func TestScannerSessions_ValidacionManualInvalida(t *testing.T) {
	app, _ := newApp(t)

	_, created := doJSON(t, app, fiber.MethodPost, "/console/scanner/sessions/", nil)
	doJSON(t, app, fiber.MethodPut,
		"/console/scanner/sessions/"+created.SessionID+"/source",
		dto.SwitchSourceRequest{Source: "manual"})

	// Siete dígitos: por debajo del mínimo del código de barras.
	status, _ := doJSON(t, app, fiber.MethodPost,
		"/console/scanner/sessions/"+created.SessionID+"/manual",
		dto.ManualSubmitRequest{InputType: "barcode", Value: "1234567"})
	assert.Equal(t, fiber.StatusBadRequest, status)

	// La sesión sigue capturando, con el aviso inline registrado.
	status, out := doJSON(t, app, fiber.MethodGet, "/console/scanner/sessions/"+created.SessionID, nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, string(scan.StateCapturing), out.State)
	require.NotNil(t, out.Capture)
	assert.Equal(t, scan.ErrKindValidation, out.Capture.Kind)
}

func TestScannerSessions_ErrorDePermisoYReintento(t *testing.T) {
	app, _ := newApp(t)

	_, created := doJSON(t, app, fiber.MethodPost, "/console/scanner/sessions/", nil)

	status, out := doJSON(t, app, fiber.MethodPost,
		"/console/scanner/sessions/"+created.SessionID+"/error",
		dto.CaptureErrorRequest{Source: "qr", Kind: "permission_denied", Detail: "NotAllowedError"})
	require.Equal(t, fiber.StatusOK, status)
	require.NotNil(t, out.Capture)
	assert.Equal(t, scan.ErrKindPermissionDenied, out.Capture.Kind)

	status, retried := doJSON(t, app, fiber.MethodPost,
		"/console/scanner/sessions/"+created.SessionID+"/retry", nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Nil(t, retried.Capture)
	assert.Equal(t, string(scan.StateCapturing), retried.State)
}

func TestScannerSessions_SesionCerradaYDesconocida(t *testing.T) {
	app, _ := newApp(t)

	_, created := doJSON(t, app, fiber.MethodPost, "/console/scanner/sessions/", nil)

	req := httptest.NewRequest(fiber.MethodDelete, "/console/scanner/sessions/"+created.SessionID, nil)
	resp, err := app.Test(req, 2000)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	// Una sesión cerrada deja de existir para el manager.
	status, _ := doJSON(t, app, fiber.MethodGet, "/console/scanner/sessions/"+created.SessionID, nil)
	assert.Equal(t, fiber.StatusNotFound, status)

	status, _ = doJSON(t, app, fiber.MethodGet, "/console/scanner/sessions/no-existe", nil)
	assert.Equal(t, fiber.StatusNotFound, status)
}
