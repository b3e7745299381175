package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-console/internal/application/dto"
	"github.com/jhoicas/Inventario-console/internal/application/scan"
	"github.com/jhoicas/Inventario-console/internal/application/usecase"
	"github.com/jhoicas/Inventario-console/internal/domain/entity"
)

// ScannerHandler expone las sesiones de escaneo. El navegador crea una
// sesión, empuja códigos decodificados (o entradas manuales) y consulta el
// estado del flujo hasta llegar a un resultado terminal.
type ScannerHandler struct {
	sessions *scan.Manager
	products *usecase.ProductUseCase
}

// NewScannerHandler construye el handler.
func NewScannerHandler(sessions *scan.Manager, products *usecase.ProductUseCase) *ScannerHandler {
	return &ScannerHandler{sessions: sessions, products: products}
}

// toResponse arma la vista de la sesión a partir del snapshot del flujo.
func (h *ScannerHandler) toResponse(id string, snap scan.Snapshot) dto.ScanSessionResponse {
	resp := dto.ScanSessionResponse{
		SessionID:   id,
		State:       string(snap.State),
		Source:      string(snap.Source),
		RawCode:     snap.Result.RawCode,
		Status:      string(snap.Result.Status),
		LookupError: snap.LookupError,
		Capture:     snap.Capture,
	}
	if snap.Result.ResolvedProduct != nil {
		pv := h.products.View(*snap.Result.ResolvedProduct)
		resp.ResolvedProduct = &pv
		resp.CanViewDetails = true
	}
	return resp
}

// Create godoc
// @Summary      Abrir sesión de escaneo
// @Tags         scanner
// @Produce      json
// @Success      201  {object}  dto.ScanSessionResponse
// @Router       /console/scanner/sessions [post]
func (h *ScannerHandler) Create(c *fiber.Ctx) error {
	id, resolver, err := h.sessions.Create()
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(h.toResponse(id, resolver.Snapshot()))
}

// Get godoc
// @Summary      Estado de la sesión de escaneo
// @Tags         scanner
// @Produce      json
// @Param        id   path  string  true  "ID de la sesión"
// @Success      200  {object}  dto.ScanSessionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /console/scanner/sessions/{id} [get]
func (h *ScannerHandler) Get(c *fiber.Ctx) error {
	resolver, err := h.sessions.Get(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(h.toResponse(c.Params("id"), resolver.Snapshot()))
}

// SwitchSource godoc
// @Summary      Cambiar la fuente de captura
// @Tags         scanner
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la sesión"
// @Param        body  body  dto.SwitchSourceRequest  true  "Fuente destino"
// @Success      200   {object}  dto.ScanSessionResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /console/scanner/sessions/{id}/source [put]
func (h *ScannerHandler) SwitchSource(c *fiber.Ctx) error {
	resolver, err := h.sessions.Get(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	var in dto.SwitchSourceRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := resolver.SwitchSource(entity.ScanSource(in.Source)); err != nil {
		return respondError(c, err)
	}
	return c.JSON(h.toResponse(c.Params("id"), resolver.Snapshot()))
}

// ManualSubmit godoc
// @Summary      Enviar código tecleado (fuente manual)
// @Tags         scanner
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la sesión"
// @Param        body  body  dto.ManualSubmitRequest  true  "Código tecleado"
// @Success      200   {object}  dto.ScanSessionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /console/scanner/sessions/{id}/manual [post]
func (h *ScannerHandler) ManualSubmit(c *fiber.Ctx) error {
	resolver, err := h.sessions.Get(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	var in dto.ManualSubmitRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := resolver.ManualSubmit(entity.ScanSource(in.InputType), in.Value); err != nil {
		return respondError(c, err)
	}
	return c.JSON(h.toResponse(c.Params("id"), resolver.Snapshot()))
}

// PushDecode godoc
// @Summary      Empujar código decodificado por la cámara
// @Tags         scanner
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la sesión"
// @Param        body  body  dto.DecodePushRequest  true  "Código decodificado"
// @Success      200   {object}  dto.ScanSessionResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /console/scanner/sessions/{id}/decode [post]
func (h *ScannerHandler) PushDecode(c *fiber.Ctx) error {
	resolver, err := h.sessions.Get(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	var in dto.DecodePushRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := resolver.PushDecode(entity.ScanSource(in.Source), in.Code); err != nil {
		return respondError(c, err)
	}
	return c.JSON(h.toResponse(c.Params("id"), resolver.Snapshot()))
}

// PushError godoc
// @Summary      Reportar error de captura del navegador
// @Tags         scanner
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la sesión"
// @Param        body  body  dto.CaptureErrorRequest  true  "Error de captura"
// @Success      200   {object}  dto.ScanSessionResponse
// @Router       /console/scanner/sessions/{id}/error [post]
func (h *ScannerHandler) PushError(c *fiber.Ctx) error {
	resolver, err := h.sessions.Get(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	var in dto.CaptureErrorRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := resolver.PushError(entity.ScanSource(in.Source), scan.CaptureErrorKind(in.Kind), in.Detail); err != nil {
		return respondError(c, err)
	}
	return c.JSON(h.toResponse(c.Params("id"), resolver.Snapshot()))
}

// ScanAgain godoc
// @Summary      Iniciar un nuevo escaneo en la misma sesión
// @Tags         scanner
// @Produce      json
// @Param        id   path  string  true  "ID de la sesión"
// @Success      200  {object}  dto.ScanSessionResponse
// @Failure      410  {object}  dto.ErrorResponse
// @Router       /console/scanner/sessions/{id}/scan_again [post]
func (h *ScannerHandler) ScanAgain(c *fiber.Ctx) error {
	resolver, err := h.sessions.Get(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if err := resolver.ScanAgain(); err != nil {
		return respondError(c, err)
	}
	return c.JSON(h.toResponse(c.Params("id"), resolver.Snapshot()))
}

// RetryCapture godoc
// @Summary      Reintentar la captura tras un error de cámara
// @Tags         scanner
// @Produce      json
// @Param        id   path  string  true  "ID de la sesión"
// @Success      200  {object}  dto.ScanSessionResponse
// @Router       /console/scanner/sessions/{id}/retry [post]
func (h *ScannerHandler) RetryCapture(c *fiber.Ctx) error {
	resolver, err := h.sessions.Get(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if err := resolver.RetryCapture(); err != nil {
		return respondError(c, err)
	}
	return c.JSON(h.toResponse(c.Params("id"), resolver.Snapshot()))
}

// Close godoc
// @Summary      Cerrar la sesión de escaneo
// @Tags         scanner
// @Param        id  path  string  true  "ID de la sesión"
// @Success      204
// @Router       /console/scanner/sessions/{id} [delete]
func (h *ScannerHandler) Close(c *fiber.Ctx) error {
	h.sessions.Close(c.Params("id"))
	return c.SendStatus(fiber.StatusNoContent)
}
