package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrBackendUnavailable = errors.New("backend de inventario no disponible")

	// Errores de captura (escáner).
	ErrPermissionDenied = errors.New("permiso de cámara denegado")
	ErrDeviceNotFound   = errors.New("dispositivo de cámara no encontrado")
	ErrDecodeTransient  = errors.New("error transitorio de decodificación")

	// ErrSessionClosed indica una operación sobre una sesión de escaneo ya cerrada.
	ErrSessionClosed = errors.New("sesión de escaneo cerrada")

	// ErrUnknownCurrency indica un código de moneda fuera de la tabla fija.
	ErrUnknownCurrency = errors.New("moneda no soportada")
)
