// Package scan implementa el flujo de escaneo de la consola: tres fuentes de
// captura intercambiables (stream QR de cámara, stream de código de barras,
// entrada manual) que entregan un código decodificado por un contrato
// uniforme, y una máquina de estados que lo resuelve a un producto contra el
// backend.
//
// Es la única pieza de la consola donde varias fuentes asíncronas confluyen
// en una sola acción (el lookup); todo lo demás es fetch-render-submit.
package scan

import (
	"github.com/jhoicas/Inventario-console/internal/domain/entity"
)

// CaptureErrorKind taxonomía de errores de captura que llega al resolver.
type CaptureErrorKind string

const (
	// ErrKindPermissionDenied el usuario negó el permiso de cámara.
	ErrKindPermissionDenied CaptureErrorKind = "permission_denied"
	// ErrKindDeviceNotFound no hay dispositivo de cámara disponible.
	ErrKindDeviceNotFound CaptureErrorKind = "device_not_found"
	// ErrKindDecodeTransient un cuadro no se pudo decodificar; se registra y
	// el escaneo continúa, no es fatal.
	ErrKindDecodeTransient CaptureErrorKind = "decode_transient"
	// ErrKindValidation solo entrada manual: el código no cumple la
	// precondición de formato y no se envía.
	ErrKindValidation CaptureErrorKind = "validation"
)

// Fatal reporta si el error de captura detiene al adaptador (los transitorios
// y los de validación no lo hacen).
func (k CaptureErrorKind) Fatal() bool {
	return k == ErrKindPermissionDenied || k == ErrKindDeviceNotFound
}

// DecodeFunc callback de decodificación: exactamente una llamada con un
// código no vacío por decodificación exitosa.
type DecodeFunc func(code string)

// ErrorFunc callback de error de captura.
type ErrorFunc func(kind CaptureErrorKind, detail string)

// CaptureAdapter contrato polimórfico de las fuentes de captura.
//
// Contrato de salida: una decodificación exitosa produce una sola llamada a
// onDecode con un string no vacío, y el adaptador se detiene a sí mismo
// (las cámaras liberan el stream de video, la entrada manual limpia su campo)
// para evitar decodificar dos veces el mismo código físico.
type CaptureAdapter interface {
	// Source identifica la fuente del adaptador.
	Source() entity.ScanSource
	// Start activa la captura. Para fuentes de cámara implica que el
	// navegador ya obtuvo (o pedirá) el permiso.
	Start() error
	// Stop desactiva la captura y libera el recurso. Idempotente.
	Stop()
}

// AdapterFactory construye el adaptador para una fuente con los callbacks
// del resolver ya enlazados. Permite sustituir stubs en tests sin que la
// máquina de estados dependa de ninguna librería de decodificación.
type AdapterFactory func(source entity.ScanSource, onDecode DecodeFunc, onError ErrorFunc) CaptureAdapter
