package scan

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/jhoicas/Inventario-console/internal/domain"
	"github.com/jhoicas/Inventario-console/internal/domain/entity"
)

// barcodePattern un código de barras tecleado debe ser numérico, mínimo 8 dígitos.
var barcodePattern = regexp.MustCompile(`^\d{8,}$`)

// minQRLength largo mínimo de un QR tecleado, tras recortar espacios.
const minQRLength = 3

// ManualAdapter fuente de captura por teclado. No requiere permisos; valida
// el formato antes de emitir y limpia su campo tras una decodificación.
type ManualAdapter struct {
	mu       sync.Mutex
	active   bool
	onDecode DecodeFunc
	onError  ErrorFunc
}

// NewManualAdapter construye el adaptador manual.
func NewManualAdapter(onDecode DecodeFunc, onError ErrorFunc) *ManualAdapter {
	return &ManualAdapter{onDecode: onDecode, onError: onError}
}

func (a *ManualAdapter) Source() entity.ScanSource { return entity.SourceManual }

func (a *ManualAdapter) Start() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.active = true
	return nil
}

func (a *ManualAdapter) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.active = false
}

// Submit valida y envía una entrada tecleada. kind indica si el usuario la
// declaró como barcode o como QR (cambia la precondición de formato).
//
// Una violación bloquea el envío con un error de campo y NO invoca onDecode;
// el adaptador sigue activo para que el usuario corrija y reintente.
func (a *ManualAdapter) Submit(kind entity.ScanSource, value string) error {
	a.mu.Lock()
	if !a.active {
		a.mu.Unlock()
		return domain.ErrSessionClosed
	}

	trimmed := strings.TrimSpace(value)
	if err := validateManual(kind, trimmed); err != nil {
		a.mu.Unlock()
		a.onError(ErrKindValidation, err.Error())
		return err
	}

	// Una decodificación exitosa: el adaptador se detiene a sí mismo
	// (equivalente a limpiar el campo) antes de emitir.
	a.active = false
	a.mu.Unlock()

	a.onDecode(trimmed)
	return nil
}

// validateManual precondiciones de formato de la entrada manual.
func validateManual(kind entity.ScanSource, trimmed string) error {
	if trimmed == "" {
		return fmt.Errorf("%w: ingrese un código válido", domain.ErrInvalidInput)
	}
	switch kind {
	case entity.SourceBarcode:
		if !barcodePattern.MatchString(trimmed) {
			return fmt.Errorf("%w: el código de barras debe tener al menos 8 dígitos", domain.ErrInvalidInput)
		}
	case entity.SourceQR:
		if len(trimmed) < minQRLength {
			return fmt.Errorf("%w: el código QR debe tener al menos %d caracteres", domain.ErrInvalidInput, minQRLength)
		}
	default:
		return fmt.Errorf("%w: tipo de entrada desconocido %q", domain.ErrInvalidInput, kind)
	}
	return nil
}
