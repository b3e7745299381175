package restapi_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-console/internal/domain"
	"github.com/jhoicas/Inventario-console/internal/infrastructure/restapi"
	"github.com/jhoicas/Inventario-console/pkg/config"
	"github.com/jhoicas/Inventario-console/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// newTestClient levanta un backend falso con httptest y construye el cliente
// apuntando a él.
func newTestClient(t *testing.T, handler http.Handler) (*restapi.Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	log := logger.New(logger.Config{Env: "production", Level: "error"})
	client := restapi.New(config.BackendConfig{
		BaseURL: srv.URL,
		Timeout: 5 * time.Second,
	}, log)
	return client, srv
}

const productJSON = `{
	"id": 1, "sku": "SKU-001", "name": "Widget",
	"category": 2, "category_name": "Widgets",
	"barcode": "123456789012",
	"qr_code": "https://smart-inventory.com/product/SKU-001",
	"unit": "pcs", "price": "9.99",
	"reorder_point": 5, "reorder_quantity": 50, "is_active": true
}`

// ──────────────────────────────────────────────────────────────────────────────
// LookupByCode: el discriminador del backend es el estado HTTP
// (200 con producto, 404 sin coincidencias).
// ──────────────────────────────────────────────────────────────────────────────

func TestLookupByCode_Encontrado(t *testing.T) {
	var gotPath, gotQuery string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query().Get("code")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(productJSON))
	}))

	p, err := client.LookupByCode(context.Background(), "123456789012")
	require.NoError(t, err)
	require.NotNil(t, p)

	assert.Equal(t, "/products/lookup_by_code/", gotPath)
	assert.Equal(t, "123456789012", gotQuery, "el código debe viajar sin modificar")
	assert.Equal(t, "SKU-001", p.SKU)
	assert.Equal(t, "Widget", p.Name)
	assert.Equal(t, "9.99", p.Price.String())
}

func TestLookupByCode_NoEncontrado(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error": "Product not found"}`))
	}))

	p, err := client.LookupByCode(context.Background(), "NOTFOUND123")
	require.Error(t, err)
	assert.Nil(t, p)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Contains(t, err.Error(), "Product not found", "debe conservar el mensaje del backend")
}

func TestLookupByCode_ErrorDeServidor(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	_, err := client.LookupByCode(context.Background(), "SKU-001")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBackendUnavailable)
	assert.NotErrorIs(t, err, domain.ErrNotFound,
		"un 500 no debe confundirse con producto inexistente")
}

func TestLookupByCode_CodigoConCaracteresEspeciales(t *testing.T) {
	var gotQuery string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("code")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(productJSON))
	}))

	_, err := client.LookupByCode(context.Background(), "https://smart-inventory.com/product/SKU-001")
	require.NoError(t, err)
	assert.Equal(t, "https://smart-inventory.com/product/SKU-001", gotQuery)
}

// ──────────────────────────────────────────────────────────────────────────────
// Mapeo de estados y cancelación
// ──────────────────────────────────────────────────────────────────────────────

func TestMapeoDeEstados(t *testing.T) {
	cases := []struct {
		status int
		want   error
	}{
		{http.StatusBadRequest, domain.ErrInvalidInput},
		{http.StatusNotFound, domain.ErrNotFound},
		{http.StatusConflict, domain.ErrConflict},
		{http.StatusBadGateway, domain.ErrBackendUnavailable},
		{http.StatusServiceUnavailable, domain.ErrBackendUnavailable},
	}

	for _, tc := range cases {
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tc.status)
		}))
		_, err := client.ListProducts(context.Background())
		assert.ErrorIs(t, err, tc.want, "estado %d", tc.status)
	}
}

func TestCancelacionDeContexto_SePropaga(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(started)
		<-release
	}))
	defer close(release)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		_, err := client.LookupByCode(ctx, "SKU-001")
		errCh <- err
	}()

	<-started
	cancel()

	err := <-errCh
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled,
		"cancelar el contexto debe abortar la petición en vuelo, no disfrazarse de caída del backend")
	assert.NotErrorIs(t, err, domain.ErrBackendUnavailable)
}

func TestBackendCaido_EsBackendUnavailable(t *testing.T) {
	// Servidor cerrado de inmediato: error de transporte puro.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	log := logger.New(logger.Config{Env: "production", Level: "error"})
	client := restapi.New(config.BackendConfig{BaseURL: srv.URL, Timeout: time.Second}, log)

	_, err := client.ListProducts(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBackendUnavailable)
}

// ──────────────────────────────────────────────────────────────────────────────
// Operaciones de recurso representativas
// ──────────────────────────────────────────────────────────────────────────────

func TestTransact_EnviaCuerpoYRuta(t *testing.T) {
	var gotPath, gotMethod string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotMethod = r.Method
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": 7, "product": 1, "quantity_change": -3, "reason": "sale", "created_at": "2026-08-30T12:00:00Z"}`))
	}))

	tx, err := client.Transact(context.Background(), 1, restapi.TransactionInput{
		QuantityChange: -3,
		Reason:         "sale",
		Reference:      "orden 42",
	})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/products/1/transact/", gotPath)
	assert.Equal(t, -3, tx.QuantityChange)
}

func TestDownloadReport_BlobOpaco(t *testing.T) {
	blob := []byte("%PDF-1.7 contenido opaco")
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/reports/reports/9/download/", r.URL.Path)
		w.Header().Set("Content-Type", "application/pdf")
		_, _ = w.Write(blob)
	}))

	artifact, err := client.DownloadReport(context.Background(), 9)
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", artifact.ContentType)
	assert.Equal(t, "report_9.pdf", artifact.Filename)
	assert.Equal(t, blob, artifact.Data, "el artefacto debe pasar sin modificar")
}

func TestInventario_CamposDerivadosDelServidor(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{
			"id": 3, "product": 1,
			"quantity_on_hand": 5, "quantity_reserved": 2,
			"available_quantity": 3, "is_below_reorder_point": true,
			"location": "A-01"
		}]`))
	}))

	items, err := client.ListInventory(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)

	// La consola muestra lo que calculó el servidor, nunca recalcula.
	assert.Equal(t, 5, items[0].QuantityOnHand)
	assert.Equal(t, 2, items[0].QuantityReserved)
	assert.Equal(t, 3, items[0].AvailableQuantity)
	assert.True(t, items[0].IsBelowReorderPoint)
}
