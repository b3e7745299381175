package dto

import (
	"github.com/jhoicas/Inventario-console/internal/application/scan"
)

// ScanSessionResponse estado de una sesión de escaneo para el navegador.
type ScanSessionResponse struct {
	SessionID       string             `json:"session_id"`
	State           string             `json:"state"`
	Source          string             `json:"source"`
	RawCode         string             `json:"raw_code,omitempty"`
	Status          string             `json:"status"`
	ResolvedProduct *ProductResponse   `json:"resolved_product,omitempty"`
	LookupError     string             `json:"lookup_error,omitempty"`
	Capture         *scan.CaptureNotice `json:"capture_error,omitempty"`
	// CanViewDetails habilita las acciones posteriores (ver detalle, revisar
	// inventario, editar); solo con producto resuelto.
	CanViewDetails bool `json:"can_view_details"`
}

// SwitchSourceRequest cambio de fuente de captura.
type SwitchSourceRequest struct {
	Source string `json:"source"` // qr | barcode | manual
}

// ManualSubmitRequest entrada tecleada en la fuente manual.
type ManualSubmitRequest struct {
	InputType string `json:"input_type"` // barcode | qr
	Value     string `json:"value"`
}

// DecodePushRequest código decodificado por la cámara del navegador.
type DecodePushRequest struct {
	Source string `json:"source"` // qr | barcode
	Code   string `json:"code"`
}

// CaptureErrorRequest error de captura reportado por el navegador.
type CaptureErrorRequest struct {
	Source string `json:"source"`
	Kind   string `json:"kind"` // permission_denied | device_not_found | decode_transient
	Detail string `json:"detail"`
}
