package scan

import (
	"sync"

	"github.com/jhoicas/Inventario-console/internal/domain/entity"
	"github.com/jhoicas/Inventario-console/pkg/logger"
)

// StreamAdapter representa del lado servidor un stream de cámara del
// navegador (QR o código de barras). La decodificación de video ocurre en el
// navegador; este adaptador recibe los eventos decodificados de la sesión y
// hace cumplir el contrato de captura: una decodificación → una emisión →
// detención del stream.
//
// Start/Stop son la única disciplina de exclusión mutua sobre la cámara, que
// es el único recurso exclusivo del flujo.
type StreamAdapter struct {
	mu       sync.Mutex
	active   bool
	source   entity.ScanSource
	onDecode DecodeFunc
	onError  ErrorFunc
	log      *logger.Logger
}

// NewStreamAdapter construye el adaptador para una fuente de cámara
// (entity.SourceQR o entity.SourceBarcode).
func NewStreamAdapter(source entity.ScanSource, onDecode DecodeFunc, onError ErrorFunc, log *logger.Logger) *StreamAdapter {
	return &StreamAdapter{
		source:   source,
		onDecode: onDecode,
		onError:  onError,
		log:      log,
	}
}

func (a *StreamAdapter) Source() entity.ScanSource { return a.source }

func (a *StreamAdapter) Start() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.active = true
	return nil
}

// Stop libera el stream. Idempotente; los eventos que lleguen después se
// descartan en silencio.
func (a *StreamAdapter) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.active = false
}

// Push entrega un código decodificado por el navegador. Si el adaptador ya
// no está activo el evento se ignora: esa es la guarda contra decodificar
// dos veces el mismo código físico.
func (a *StreamAdapter) Push(code string) {
	if code == "" {
		return
	}

	a.mu.Lock()
	if !a.active {
		a.mu.Unlock()
		a.log.Debug().Str("source", string(a.source)).Msg("decodificación descartada: stream detenido")
		return
	}
	// Contrato: detenerse antes de emitir, liberando la cámara.
	a.active = false
	a.mu.Unlock()

	a.onDecode(code)
}

// Fail reporta un error de captura del navegador. Los transitorios solo se
// registran y el escaneo continúa; permiso denegado o dispositivo ausente
// detienen el stream y suben al resolver.
func (a *StreamAdapter) Fail(kind CaptureErrorKind, detail string) {
	if kind == ErrKindDecodeTransient {
		a.log.Debug().Str("source", string(a.source)).Str("detail", detail).Msg("error transitorio de decodificación")
		return
	}

	a.mu.Lock()
	if !a.active {
		a.mu.Unlock()
		return
	}
	if kind.Fatal() {
		a.active = false
	}
	a.mu.Unlock()

	a.onError(kind, detail)
}
