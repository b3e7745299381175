package scan_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-console/internal/application/scan"
	"github.com/jhoicas/Inventario-console/internal/domain"
	"github.com/jhoicas/Inventario-console/internal/domain/entity"
	"github.com/jhoicas/Inventario-console/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: "error"})
}

// collector acumula las emisiones de un adaptador bajo prueba.
type collector struct {
	mu      sync.Mutex
	decodes []string
	errors  []scan.CaptureErrorKind
}

func (c *collector) onDecode(code string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.decodes = append(c.decodes, code)
}

func (c *collector) onError(kind scan.CaptureErrorKind, _ string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.errors = append(c.errors, kind)
}

func newManual(t *testing.T) (*scan.ManualAdapter, *collector) {
	t.Helper()
	c := &collector{}
	a := scan.NewManualAdapter(c.onDecode, c.onError)
	require.NoError(t, a.Start())
	return a, c
}

// ──────────────────────────────────────────────────────────────────────────────
// Precondiciones de formato: barcode ^\d{8,}$, QR ≥ 3 caracteres tras recortar
// ──────────────────────────────────────────────────────────────────────────────

func TestManual_ValidacionBarcode(t *testing.T) {
	cases := []struct {
		input string
		ok    bool
	}{
		{"12345678", true},        // exactamente 8 dígitos
		{"123456789012", true},    // más de 8
		{"  12345678  ", true},    // se recorta antes de validar
		{"1234567", false},        // 7 dígitos
		{"12345678a", false},      // no numérico
		{"ABCDEFGH", false},       // letras
		{"", false},               // vacío
		{"   ", false},            // solo espacios
		{"1234 5678", false},      // espacio interior
	}

	for _, tc := range cases {
		a, c := newManual(t)
		err := a.Submit(entity.SourceBarcode, tc.input)
		if tc.ok {
			assert.NoError(t, err, "barcode %q debe aceptarse", tc.input)
			assert.Len(t, c.decodes, 1)
		} else {
			assert.ErrorIs(t, err, domain.ErrInvalidInput, "barcode %q debe rechazarse", tc.input)
			assert.Empty(t, c.decodes, "una violación no debe invocar onDecode")
			assert.Contains(t, c.errors, scan.ErrKindValidation)
		}
	}
}

func TestManual_ValidacionQR(t *testing.T) {
	cases := []struct {
		input string
		ok    bool
	}{
		{"abc", true},
		{"https://smart-inventory.com/product/SKU-001", true},
		{"  ab  ", false}, // 2 caracteres tras recortar
		{"ab", false},
		{"", false},
	}

	for _, tc := range cases {
		a, c := newManual(t)
		err := a.Submit(entity.SourceQR, tc.input)
		if tc.ok {
			assert.NoError(t, err, "QR %q debe aceptarse", tc.input)
			require.Len(t, c.decodes, 1)
		} else {
			assert.ErrorIs(t, err, domain.ErrInvalidInput, "QR %q debe rechazarse", tc.input)
			assert.Empty(t, c.decodes)
		}
	}
}

func TestManual_EmiteCodigoRecortado(t *testing.T) {
	a, c := newManual(t)
	require.NoError(t, a.Submit(entity.SourceBarcode, "  123456789012  "))
	require.Len(t, c.decodes, 1)
	assert.Equal(t, "123456789012", c.decodes[0])
}

func TestManual_SeDetieneTrasUnaDecodificacion(t *testing.T) {
	a, c := newManual(t)
	require.NoError(t, a.Submit(entity.SourceBarcode, "123456789012"))

	// El adaptador limpió su campo: un segundo envío requiere rearmarlo.
	err := a.Submit(entity.SourceBarcode, "123456789012")
	assert.ErrorIs(t, err, domain.ErrSessionClosed)
	assert.Len(t, c.decodes, 1, "exactamente una llamada a onDecode por decodificación")
}

func TestManual_ErrorDeValidacionNoDetiene(t *testing.T) {
	a, c := newManual(t)

	require.Error(t, a.Submit(entity.SourceBarcode, "corto"))
	// El usuario corrige y reenvía sin rearmar nada.
	require.NoError(t, a.Submit(entity.SourceBarcode, "123456789012"))
	assert.Len(t, c.decodes, 1)
}

// ──────────────────────────────────────────────────────────────────────────────
// StreamAdapter: guarda contra decodificaciones duplicadas
// ──────────────────────────────────────────────────────────────────────────────

func TestStream_UnaDecodificacionDetieneElStream(t *testing.T) {
	c := &collector{}
	a := scan.NewStreamAdapter(entity.SourceQR, c.onDecode, c.onError, testLogger())
	require.NoError(t, a.Start())

	a.Push("https://smart-inventory.com/product/SKU-001")
	// El mismo código físico sigue frente a la cámara: cuadros posteriores
	// llegan pero el stream ya se detuvo.
	a.Push("https://smart-inventory.com/product/SKU-001")
	a.Push("https://smart-inventory.com/product/SKU-001")

	assert.Len(t, c.decodes, 1)
}

func TestStream_PushVacioSeIgnora(t *testing.T) {
	c := &collector{}
	a := scan.NewStreamAdapter(entity.SourceBarcode, c.onDecode, c.onError, testLogger())
	require.NoError(t, a.Start())

	a.Push("")
	assert.Empty(t, c.decodes)
}

func TestStream_ErrorTransitorioNoDetiene(t *testing.T) {
	c := &collector{}
	a := scan.NewStreamAdapter(entity.SourceQR, c.onDecode, c.onError, testLogger())
	require.NoError(t, a.Start())

	a.Fail(scan.ErrKindDecodeTransient, "cuadro ilegible")
	assert.Empty(t, c.errors, "los transitorios se registran, no suben al resolver")

	a.Push("123456789012")
	assert.Len(t, c.decodes, 1, "el escaneo continúa tras un transitorio")
}

func TestStream_PermisoDenegadoDetieneYReporta(t *testing.T) {
	c := &collector{}
	a := scan.NewStreamAdapter(entity.SourceQR, c.onDecode, c.onError, testLogger())
	require.NoError(t, a.Start())

	a.Fail(scan.ErrKindPermissionDenied, "NotAllowedError")
	require.Len(t, c.errors, 1)
	assert.Equal(t, scan.ErrKindPermissionDenied, c.errors[0])

	a.Push("123456789012")
	assert.Empty(t, c.decodes, "un stream detenido descarta decodificaciones")
}
