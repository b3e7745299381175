package scan_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-console/internal/application/scan"
	"github.com/jhoicas/Inventario-console/internal/domain"
	"github.com/jhoicas/Inventario-console/internal/domain/entity"
	"github.com/jhoicas/Inventario-console/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles de prueba
// ──────────────────────────────────────────────────────────────────────────────

// lookupFunc adapta una función al puerto ProductLookup.
type lookupFunc func(ctx context.Context, code string) (*entity.Product, error)

func (f lookupFunc) LookupByCode(ctx context.Context, code string) (*entity.Product, error) {
	return f(ctx, code)
}

// eventLog registro compartido del orden exacto de start/stop de adaptadores.
type eventLog struct {
	mu     sync.Mutex
	events []string
}

func (l *eventLog) add(e string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = append(l.events, e)
}

func (l *eventLog) snapshot() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.events))
	copy(out, l.events)
	return out
}

// stubAdapter adaptador de captura controlable desde el test.
type stubAdapter struct {
	source   entity.ScanSource
	onDecode scan.DecodeFunc
	onError  scan.ErrorFunc
	log      *eventLog
}

func (a *stubAdapter) Source() entity.ScanSource { return a.source }

func (a *stubAdapter) Start() error {
	a.log.add("start:" + string(a.source))
	return nil
}

func (a *stubAdapter) Stop() {
	a.log.add("stop:" + string(a.source))
}

// emit simula una decodificación exitosa de la fuente.
func (a *stubAdapter) emit(code string) { a.onDecode(code) }

// newHarness construye un resolver con adaptadores stub y el lookup indicado.
// Devuelve también el registro de eventos y el último adaptador creado por fuente.
func newHarness(t *testing.T, lookup scan.ProductLookup) (*scan.Resolver, *eventLog, map[entity.ScanSource]*stubAdapter) {
	t.Helper()

	log := logger.New(logger.Config{Env: "production", Level: "error"})
	events := &eventLog{}
	adapters := make(map[entity.ScanSource]*stubAdapter)
	var mu sync.Mutex

	factory := func(source entity.ScanSource, onDecode scan.DecodeFunc, onError scan.ErrorFunc) scan.CaptureAdapter {
		a := &stubAdapter{source: source, onDecode: onDecode, onError: onError, log: events}
		mu.Lock()
		adapters[source] = a
		mu.Unlock()
		return a
	}

	r, err := scan.NewResolver(lookup, factory, log)
	require.NoError(t, err)
	t.Cleanup(r.Close)
	return r, events, adapters
}

func widget() *entity.Product {
	return &entity.Product{ID: 1, SKU: "SKU-001", Name: "Widget"}
}

func waitForState(t *testing.T, r *scan.Resolver, want scan.State) scan.Snapshot {
	t.Helper()
	require.Eventually(t, func() bool {
		return r.Snapshot().State == want
	}, time.Second, 2*time.Millisecond, "el flujo debe llegar a %s", want)
	return r.Snapshot()
}

// ──────────────────────────────────────────────────────────────────────────────
// Transiciones básicas
// ──────────────────────────────────────────────────────────────────────────────

func TestEstadoInicial_CapturandoQR(t *testing.T) {
	r, events, _ := newHarness(t, lookupFunc(func(ctx context.Context, code string) (*entity.Product, error) {
		return widget(), nil
	}))

	snap := r.Snapshot()
	assert.Equal(t, scan.StateCapturing, snap.State)
	assert.Equal(t, entity.SourceQR, snap.Source)
	assert.Equal(t, entity.ScanIdle, snap.Result.Status)
	assert.Equal(t, []string{"start:qr"}, events.snapshot())
}

func TestDecodificacion_ResuelveProducto(t *testing.T) {
	var calls []string
	var mu sync.Mutex
	r, _, adapters := newHarness(t, lookupFunc(func(ctx context.Context, code string) (*entity.Product, error) {
		mu.Lock()
		calls = append(calls, code)
		mu.Unlock()
		return widget(), nil
	}))

	adapters[entity.SourceQR].emit("123456789012")

	snap := waitForState(t, r, scan.StateResolved)
	assert.Equal(t, "123456789012", snap.Result.RawCode)
	assert.Equal(t, entity.ScanFound, snap.Result.Status)
	require.NotNil(t, snap.Result.ResolvedProduct)
	assert.Equal(t, "SKU-001", snap.Result.ResolvedProduct.SKU)

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, calls, 1)
	assert.Equal(t, "123456789012", calls[0], "el código crudo debe llegar sin modificar al lookup")

	p, ok := r.Resolved()
	require.True(t, ok)
	assert.Equal(t, "Widget", p.Name)
}

func TestDecodificacion_NoEncontrado(t *testing.T) {
	r, _, adapters := newHarness(t, lookupFunc(func(ctx context.Context, code string) (*entity.Product, error) {
		return nil, fmt.Errorf("%w: Product not found", domain.ErrNotFound)
	}))

	adapters[entity.SourceQR].emit("NOTFOUND123")

	snap := waitForState(t, r, scan.StateNotFound)
	assert.Equal(t, "NOTFOUND123", snap.Result.RawCode)
	assert.Equal(t, entity.ScanNotFound, snap.Result.Status)
	assert.Nil(t, snap.Result.ResolvedProduct)

	// Con NotFound la acción "ver detalle" queda deshabilitada.
	_, ok := r.Resolved()
	assert.False(t, ok)
}

func TestDecodificacion_ErrorDeBackend_NoSeConfundeConNoEncontrado(t *testing.T) {
	r, _, adapters := newHarness(t, lookupFunc(func(ctx context.Context, code string) (*entity.Product, error) {
		return nil, fmt.Errorf("%w: conexión rechazada", domain.ErrBackendUnavailable)
	}))

	adapters[entity.SourceQR].emit("123456789012")

	snap := waitForState(t, r, scan.StateLookupError)
	assert.Equal(t, entity.ScanError, snap.Result.Status)
	assert.Contains(t, snap.LookupError, "conexión rechazada")
}

// ──────────────────────────────────────────────────────────────────────────────
// Invariante: un solo lookup en vuelo; Resolving solo desde Capturing
// ──────────────────────────────────────────────────────────────────────────────

func TestUnSoloLookupEnVuelo(t *testing.T) {
	var calls int
	var mu sync.Mutex
	release := make(chan struct{})

	r, _, adapters := newHarness(t, lookupFunc(func(ctx context.Context, code string) (*entity.Product, error) {
		mu.Lock()
		calls++
		mu.Unlock()
		<-release
		return widget(), nil
	}))

	qr := adapters[entity.SourceQR]
	qr.emit("11111111")
	waitForState(t, r, scan.StateResolving)

	// Una segunda decodificación mientras hay lookup pendiente se ignora:
	// no hay transición Capturing→Resolving alcanzable salvo desde Capturing.
	qr.emit("22222222")
	close(release)

	snap := waitForState(t, r, scan.StateResolved)
	assert.Equal(t, "11111111", snap.Result.RawCode)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 1, calls, "exactamente una transición Capturing→Resolving por decodificación")
}

func TestNoReentraAResolvingSinPasarPorCapturing(t *testing.T) {
	var calls int
	var mu sync.Mutex
	r, _, adapters := newHarness(t, lookupFunc(func(ctx context.Context, code string) (*entity.Product, error) {
		mu.Lock()
		calls++
		mu.Unlock()
		return widget(), nil
	}))

	adapters[entity.SourceQR].emit("123456789012")
	waitForState(t, r, scan.StateResolved)

	// En estado terminal las decodificaciones tardías se descartan.
	adapters[entity.SourceQR].emit("123456789012")
	time.Sleep(20 * time.Millisecond)

	mu.Lock()
	got := calls
	mu.Unlock()
	assert.Equal(t, 1, got)

	// Tras "escanear de nuevo" sí se acepta otra decodificación.
	require.NoError(t, r.ScanAgain())
	snap := r.Snapshot()
	assert.Equal(t, scan.StateCapturing, snap.State)
	assert.Empty(t, snap.Result.RawCode, "escanear de nuevo limpia el código crudo")

	adapters[entity.SourceQR].emit("123456789012")
	waitForState(t, r, scan.StateResolved)
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 2, calls)
}

// ──────────────────────────────────────────────────────────────────────────────
// Cambio de fuente: stop del anterior ANTES del start del siguiente
// ──────────────────────────────────────────────────────────────────────────────

func TestCambioDeFuente_OrdenEstricto(t *testing.T) {
	r, events, _ := newHarness(t, lookupFunc(func(ctx context.Context, code string) (*entity.Product, error) {
		return widget(), nil
	}))

	require.NoError(t, r.SwitchSource(entity.SourceBarcode))
	require.NoError(t, r.SwitchSource(entity.SourceManual))

	assert.Equal(t, []string{
		"start:qr",
		"stop:qr", "start:barcode",
		"stop:barcode", "start:manual",
	}, events.snapshot(), "cada cambio detiene el adaptador anterior antes de arrancar el nuevo")

	assert.Equal(t, entity.SourceManual, r.Snapshot().Source)
}

func TestCambioDeFuente_MismaFuenteEsNoOp(t *testing.T) {
	r, events, _ := newHarness(t, lookupFunc(func(ctx context.Context, code string) (*entity.Product, error) {
		return widget(), nil
	}))

	require.NoError(t, r.SwitchSource(entity.SourceQR))
	assert.Equal(t, []string{"start:qr"}, events.snapshot())
}

func TestCambioDeFuente_InvalidoFueraDeCaptura(t *testing.T) {
	release := make(chan struct{})
	defer close(release)
	r, _, adapters := newHarness(t, lookupFunc(func(ctx context.Context, code string) (*entity.Product, error) {
		<-release
		return widget(), nil
	}))

	adapters[entity.SourceQR].emit("123456789012")
	waitForState(t, r, scan.StateResolving)

	err := r.SwitchSource(entity.SourceBarcode)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestCambioDeFuente_FuenteDesconocida(t *testing.T) {
	r, _, _ := newHarness(t, lookupFunc(func(ctx context.Context, code string) (*entity.Product, error) {
		return widget(), nil
	}))
	assert.ErrorIs(t, r.SwitchSource("infrared"), domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Cierre: libera la cámara, cancela el lookup y descarta la respuesta tardía
// ──────────────────────────────────────────────────────────────────────────────

func TestCierreDuranteResolving_DescartaRespuestaTardia(t *testing.T) {
	release := make(chan struct{})
	r, events, adapters := newHarness(t, lookupFunc(func(ctx context.Context, code string) (*entity.Product, error) {
		<-release
		return widget(), nil
	}))

	adapters[entity.SourceQR].emit("123456789012")
	waitForState(t, r, scan.StateResolving)

	r.Close()
	assert.Contains(t, events.snapshot(), "stop:qr",
		"cerrar debe detener la captura activa aunque haya un lookup en vuelo")

	// La promesa "se resuelve" después del cierre: ninguna transición ocurre.
	before := r.Snapshot().State
	close(release)
	time.Sleep(30 * time.Millisecond)

	after := r.Snapshot()
	assert.Equal(t, before, after.State, "una respuesta tardía tras el cierre es un no-op")
	assert.True(t, r.Closed())

	_, ok := r.Resolved()
	assert.False(t, ok)
}

func TestCierreDuranteResolving_CancelaElContextoDelLookup(t *testing.T) {
	canceled := make(chan struct{})
	r, _, adapters := newHarness(t, lookupFunc(func(ctx context.Context, code string) (*entity.Product, error) {
		<-ctx.Done()
		close(canceled)
		return nil, ctx.Err()
	}))

	adapters[entity.SourceQR].emit("123456789012")
	waitForState(t, r, scan.StateResolving)

	r.Close()

	select {
	case <-canceled:
		// El cierre abortó la petición en vuelo, no solo ignoró su resultado.
	case <-time.After(time.Second):
		t.Fatal("cerrar el flujo debe cancelar el contexto del lookup en vuelo")
	}
}

func TestOperacionesTrasCierre(t *testing.T) {
	r, _, _ := newHarness(t, lookupFunc(func(ctx context.Context, code string) (*entity.Product, error) {
		return widget(), nil
	}))
	r.Close()

	assert.ErrorIs(t, r.SwitchSource(entity.SourceBarcode), domain.ErrSessionClosed)
	assert.ErrorIs(t, r.ScanAgain(), domain.ErrSessionClosed)
	assert.ErrorIs(t, r.ManualSubmit(entity.SourceQR, "abc"), domain.ErrSessionClosed)

	// Cerrar dos veces es inocuo.
	r.Close()
}

// ──────────────────────────────────────────────────────────────────────────────
// Errores de captura inline
// ──────────────────────────────────────────────────────────────────────────────

func TestErrorDeCaptura_SeMuestraInlineYPermiteReintento(t *testing.T) {
	r, events, adapters := newHarness(t, lookupFunc(func(ctx context.Context, code string) (*entity.Product, error) {
		return widget(), nil
	}))

	adapters[entity.SourceQR].onError(scan.ErrKindPermissionDenied, "NotAllowedError")

	snap := r.Snapshot()
	assert.Equal(t, scan.StateCapturing, snap.State, "un error de captura no saca al flujo de Capturing")
	require.NotNil(t, snap.Capture)
	assert.Equal(t, scan.ErrKindPermissionDenied, snap.Capture.Kind)

	require.NoError(t, r.RetryCapture())
	assert.Nil(t, r.Snapshot().Capture, "reintentar limpia el aviso")
	assert.Equal(t, []string{"start:qr", "stop:qr", "start:qr"}, events.snapshot())
}

// ──────────────────────────────────────────────────────────────────────────────
// Flujo manual de punta a punta
// ──────────────────────────────────────────────────────────────────────────────

func TestFlujoManual_EnviaYResuelve(t *testing.T) {
	log := logger.New(logger.Config{Env: "production", Level: "error"})
	factory := func(source entity.ScanSource, onDecode scan.DecodeFunc, onError scan.ErrorFunc) scan.CaptureAdapter {
		if source == entity.SourceManual {
			return scan.NewManualAdapter(onDecode, onError)
		}
		return scan.NewStreamAdapter(source, onDecode, onError, log)
	}

	r, err := scan.NewResolver(lookupFunc(func(ctx context.Context, code string) (*entity.Product, error) {
		return widget(), nil
	}), factory, log)
	require.NoError(t, err)
	defer r.Close()

	require.NoError(t, r.SwitchSource(entity.SourceManual))

	// Entrada inválida: error de campo, sin transición.
	err = r.ManualSubmit(entity.SourceBarcode, "1234")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, scan.StateCapturing, r.Snapshot().State)

	// Entrada válida: transición y resolución.
	require.NoError(t, r.ManualSubmit(entity.SourceBarcode, "123456789012"))
	snap := waitForState(t, r, scan.StateResolved)
	assert.Equal(t, "123456789012", snap.Result.RawCode)
}

func TestPushDecode_RechazaFuenteInactiva(t *testing.T) {
	log := logger.New(logger.Config{Env: "production", Level: "error"})
	factory := func(source entity.ScanSource, onDecode scan.DecodeFunc, onError scan.ErrorFunc) scan.CaptureAdapter {
		if source == entity.SourceManual {
			return scan.NewManualAdapter(onDecode, onError)
		}
		return scan.NewStreamAdapter(source, onDecode, onError, log)
	}

	r, err := scan.NewResolver(lookupFunc(func(ctx context.Context, code string) (*entity.Product, error) {
		return widget(), nil
	}), factory, log)
	require.NoError(t, err)
	defer r.Close()

	// La fuente activa es qr; empujar como barcode es conflicto.
	err = r.PushDecode(entity.SourceBarcode, "123456789012")
	assert.ErrorIs(t, err, domain.ErrConflict)
}
