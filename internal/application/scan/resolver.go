package scan

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/jhoicas/Inventario-console/internal/domain"
	"github.com/jhoicas/Inventario-console/internal/domain/entity"
	"github.com/jhoicas/Inventario-console/pkg/logger"
)

// State estado del flujo de escaneo.
type State string

const (
	// StateCapturing esperando que la fuente activa entregue un código.
	StateCapturing State = "capturing"
	// StateResolving hay un lookup en vuelo contra el backend.
	StateResolving State = "resolving"
	// StateResolved el lookup devolvió un producto.
	StateResolved State = "resolved"
	// StateNotFound el backend no tiene producto para el código (404).
	StateNotFound State = "not_found"
	// StateLookupError el lookup falló por red o error del servidor.
	// Distinto de StateNotFound a propósito: un backend caído no debe
	// presentarse como un producto inexistente.
	StateLookupError State = "lookup_error"
)

// Terminal reporta si el estado solo se abandona con "escanear de nuevo" o "cerrar".
func (s State) Terminal() bool {
	return s == StateResolved || s == StateNotFound || s == StateLookupError
}

// ProductLookup puerto hacia la operación de lookup del backend.
type ProductLookup interface {
	LookupByCode(ctx context.Context, code string) (*entity.Product, error)
}

// CaptureNotice error de captura mostrado inline en la UI del escáner, con
// posibilidad de reintento; nunca escapa del componente.
type CaptureNotice struct {
	Kind   CaptureErrorKind `json:"kind"`
	Detail string           `json:"detail"`
}

// Snapshot vista inmutable del flujo para renderizar.
type Snapshot struct {
	State       State
	Source      entity.ScanSource
	Result      entity.ScanResult
	LookupError string
	Capture     *CaptureNotice
}

// Resolver máquina de estados del flujo de escaneo:
//
//	Capturing(source) → Resolving(code) → Resolved | NotFound | LookupError
//
// Invariantes: a lo sumo un adaptador activo a la vez (cambiar de fuente
// detiene el anterior antes de arrancar el siguiente); a lo sumo un lookup en
// vuelo (Resolving solo es alcanzable desde Capturing). Cerrar en cualquier
// estado detiene la captura activa y cancela el lookup en vuelo; una
// respuesta tardía se descarta además por contador de generación.
type Resolver struct {
	mu sync.Mutex

	lookup  ProductLookup
	factory AdapterFactory
	log     *logger.Logger

	state     State
	source    entity.ScanSource
	rawCode   string
	product   *entity.Product
	lookupErr string
	capture   *CaptureNotice

	adapter    CaptureAdapter
	closed     bool
	generation uint64
	cancel     context.CancelFunc
}

// NewResolver construye el flujo en su estado inicial, Capturing(qr), con el
// adaptador QR ya arrancado.
func NewResolver(lookup ProductLookup, factory AdapterFactory, log *logger.Logger) (*Resolver, error) {
	r := &Resolver{
		lookup:  lookup,
		factory: factory,
		log:     log,
		state:   StateCapturing,
		source:  entity.SourceQR,
	}
	adapter := factory(entity.SourceQR, r.handleDecode, r.handleCaptureError)
	if err := adapter.Start(); err != nil {
		return nil, fmt.Errorf("arrancar adaptador inicial: %w", err)
	}
	r.adapter = adapter
	return r, nil
}

// SwitchSource cambia la fuente de captura. Solo es válido en Capturing.
// Detiene el adaptador anterior ANTES de arrancar el nuevo: esa ordenación
// es la única exclusión mutua que la cámara necesita.
func (r *Resolver) SwitchSource(source entity.ScanSource) error {
	if !entity.ValidSource(source) {
		return fmt.Errorf("%w: fuente desconocida %q", domain.ErrInvalidInput, source)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return domain.ErrSessionClosed
	}
	if r.state != StateCapturing {
		return fmt.Errorf("%w: solo se puede cambiar de fuente durante la captura", domain.ErrConflict)
	}
	if source == r.source {
		return nil
	}

	r.adapter.Stop()

	next := r.factory(source, r.handleDecode, r.handleCaptureError)
	if err := next.Start(); err != nil {
		return fmt.Errorf("arrancar adaptador %s: %w", source, err)
	}
	r.adapter = next
	r.source = source
	r.capture = nil
	return nil
}

// handleDecode transición Capturing → Resolving. El código decodificado pasa
// al lookup tal cual, sin recorte ni normalización adicional a la que ya
// validó el adaptador.
func (r *Resolver) handleDecode(code string) {
	r.mu.Lock()

	if r.closed || r.state != StateCapturing {
		// Sin transición alcanzable a Resolving salvo desde Capturing.
		r.mu.Unlock()
		r.log.Debug().Str("code", code).Msg("decodificación ignorada fuera de captura")
		return
	}

	r.state = StateResolving
	r.rawCode = code
	r.capture = nil
	r.generation++
	gen := r.generation

	ctx, cancel := context.WithCancel(context.Background())
	r.cancel = cancel
	r.mu.Unlock()

	go r.runLookup(ctx, gen, code)
}

// runLookup ejecuta el lookup y aplica el resultado si la sesión sigue en la
// misma generación. Una respuesta que llega tras cerrar (o tras un nuevo
// escaneo) es un no-op.
func (r *Resolver) runLookup(ctx context.Context, gen uint64, code string) {
	product, err := r.lookup.LookupByCode(ctx, code)

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed || gen != r.generation {
		r.log.Debug().Str("code", code).Msg("respuesta de lookup descartada: la UI ya avanzó")
		return
	}
	r.cancel = nil

	switch {
	case err == nil:
		r.state = StateResolved
		r.product = product
		r.lookupErr = ""
	case errors.Is(err, domain.ErrNotFound):
		// Condición de usuario, no fatal: se permite reintentar de inmediato.
		r.state = StateNotFound
		r.product = nil
		r.lookupErr = ""
	default:
		r.state = StateLookupError
		r.product = nil
		r.lookupErr = err.Error()
		r.log.Warn().Err(err).Str("code", code).Msg("lookup de producto falló")
	}
}

// handleCaptureError registra un error de captura para mostrarlo inline.
// El flujo permanece en Capturing; el reintento es del usuario.
func (r *Resolver) handleCaptureError(kind CaptureErrorKind, detail string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return
	}
	r.capture = &CaptureNotice{Kind: kind, Detail: detail}
}

// RetryCapture rearma el adaptador activo tras un error de captura fatal
// (permiso denegado, dispositivo ausente).
func (r *Resolver) RetryCapture() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return domain.ErrSessionClosed
	}
	if r.state != StateCapturing {
		return fmt.Errorf("%w: solo se reintenta la captura durante la captura", domain.ErrConflict)
	}

	r.adapter.Stop()
	next := r.factory(r.source, r.handleDecode, r.handleCaptureError)
	if err := next.Start(); err != nil {
		return fmt.Errorf("rearmar adaptador %s: %w", r.source, err)
	}
	r.adapter = next
	r.capture = nil
	return nil
}

// ScanAgain sale de un estado terminal (o aborta un lookup en vuelo) y
// vuelve a Capturing con el código crudo limpio, rearmando el adaptador de
// la fuente actual.
func (r *Resolver) ScanAgain() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return domain.ErrSessionClosed
	}

	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
	// Invalida cualquier respuesta en vuelo.
	r.generation++

	r.adapter.Stop()
	next := r.factory(r.source, r.handleDecode, r.handleCaptureError)
	if err := next.Start(); err != nil {
		return fmt.Errorf("rearmar adaptador %s: %w", r.source, err)
	}
	r.adapter = next

	r.state = StateCapturing
	r.rawCode = ""
	r.product = nil
	r.lookupErr = ""
	r.capture = nil
	return nil
}

// Close cierra el flujo en cualquier estado: detiene el adaptador activo
// (la cámara se libera aunque haya un lookup en vuelo) y cancela el lookup
// pendiente. Idempotente.
func (r *Resolver) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return
	}
	r.closed = true

	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
	if r.adapter != nil {
		r.adapter.Stop()
	}
}

// Closed reporta si el flujo fue cerrado.
func (r *Resolver) Closed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.closed
}

// Resolved devuelve el producto resuelto, si el flujo está en StateResolved.
// Las acciones posteriores (ver detalle, revisar inventario, editar) las
// aporta el llamador; el resolver no navega.
func (r *Resolver) Resolved() (*entity.Product, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.state != StateResolved || r.product == nil {
		return nil, false
	}
	return r.product, true
}

// ManualSubmit entrega una entrada tecleada a la fuente manual activa.
func (r *Resolver) ManualSubmit(kind entity.ScanSource, value string) error {
	adapter, err := r.activeAdapter(entity.SourceManual)
	if err != nil {
		return err
	}
	manual, ok := adapter.(*ManualAdapter)
	if !ok {
		return fmt.Errorf("%w: la fuente activa no es manual", domain.ErrConflict)
	}
	return manual.Submit(kind, value)
}

// PushDecode entrega un código decodificado por la cámara del navegador.
func (r *Resolver) PushDecode(source entity.ScanSource, code string) error {
	adapter, err := r.activeAdapter(source)
	if err != nil {
		return err
	}
	stream, ok := adapter.(*StreamAdapter)
	if !ok {
		return fmt.Errorf("%w: la fuente activa no es un stream de cámara", domain.ErrConflict)
	}
	stream.Push(code)
	return nil
}

// PushError entrega un error de captura reportado por el navegador.
func (r *Resolver) PushError(source entity.ScanSource, kind CaptureErrorKind, detail string) error {
	adapter, err := r.activeAdapter(source)
	if err != nil {
		return err
	}
	stream, ok := adapter.(*StreamAdapter)
	if !ok {
		return fmt.Errorf("%w: la fuente activa no es un stream de cámara", domain.ErrConflict)
	}
	stream.Fail(kind, detail)
	return nil
}

// activeAdapter devuelve el adaptador si la fuente pedida es la activa.
func (r *Resolver) activeAdapter(source entity.ScanSource) (CaptureAdapter, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return nil, domain.ErrSessionClosed
	}
	if r.source != source {
		return nil, fmt.Errorf("%w: la fuente activa es %s, no %s", domain.ErrConflict, r.source, source)
	}
	return r.adapter, nil
}

// Snapshot devuelve la vista del flujo para renderizar.
func (r *Resolver) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	var capture *CaptureNotice
	if r.capture != nil {
		c := *r.capture
		capture = &c
	}

	return Snapshot{
		State:  r.state,
		Source: r.source,
		Result: entity.ScanResult{
			RawCode:         r.rawCode,
			Source:          r.source,
			ResolvedProduct: r.product,
			Status:          statusFor(r.state),
		},
		LookupError: r.lookupErr,
		Capture:     capture,
	}
}

// statusFor mapea el estado de la máquina al estado visible del ScanResult.
func statusFor(s State) entity.ScanStatus {
	switch s {
	case StateResolving:
		return entity.ScanSearching
	case StateResolved:
		return entity.ScanFound
	case StateNotFound:
		return entity.ScanNotFound
	case StateLookupError:
		return entity.ScanError
	default:
		return entity.ScanIdle
	}
}
