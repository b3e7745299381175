// Package restapi implementa el cliente tipado del API REST de inventario.
//
// La consola no posee almacenamiento: cada operación de este paquete es una
// llamada HTTP al sistema de registro remoto. Es un wrapper delgado: un
// método por operación del backend, agrupado por recurso, sin reintentos ni
// backoff más allá de lo que aporta el transporte.
package restapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/jhoicas/Inventario-console/internal/domain"
	"github.com/jhoicas/Inventario-console/pkg/config"
	"github.com/jhoicas/Inventario-console/pkg/logger"
)

// Client cliente del API REST remoto. Construir con New; el *http.Client
// interno lleva el timeout configurado (el backend puede tardar en los jobs ML).
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *logger.Logger
}

// New construye el cliente a partir de la configuración del backend.
func New(cfg config.BackendConfig, log *logger.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        log.Component("restapi"),
	}
}

// backendError cuerpo de error que devuelve el backend ({"error": "..."}).
type backendError struct {
	Error  string `json:"error"`
	Detail string `json:"detail"`
}

// get ejecuta GET path y decodifica el JSON de respuesta en out.
func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

// do ejecuta una petición JSON contra el backend y mapea los códigos de
// estado a errores de dominio. out puede ser nil si no interesa el cuerpo.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("serializar cuerpo %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("crear petición %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.log.Debug().Str("method", method).Str("path", path).Msg("petición al backend")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Cancelación del contexto no es una caída del backend: se propaga tal cual.
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		c.log.Error().Err(err).Str("path", path).Msg("fallo de transporte")
		return fmt.Errorf("%w: %v", domain.ErrBackendUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.mapStatus(resp, method, path)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decodificar respuesta %s %s: %w", method, path, err)
	}
	return nil
}

// download ejecuta GET path y devuelve el cuerpo crudo con su content type,
// para artefactos binarios (reportes PDF/XLSX) que se reenvían sin modificar.
func (c *Client) download(ctx context.Context, path string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, "", fmt.Errorf("crear petición GET %s: %w", path, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, "", err
		}
		return nil, "", fmt.Errorf("%w: %v", domain.ErrBackendUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, "", c.mapStatus(resp, http.MethodGet, path)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("leer descarga %s: %w", path, err)
	}
	return data, resp.Header.Get("Content-Type"), nil
}

// mapStatus traduce un estado HTTP no exitoso al error de dominio que le
// corresponde, conservando el mensaje del backend cuando viene en el cuerpo.
func (c *Client) mapStatus(resp *http.Response, method, path string) error {
	var be backendError
	msg := ""
	if raw, err := io.ReadAll(io.LimitReader(resp.Body, 4096)); err == nil && len(raw) > 0 {
		if json.Unmarshal(raw, &be) == nil {
			msg = be.Error
			if msg == "" {
				msg = be.Detail
			}
		}
	}

	switch resp.StatusCode {
	case http.StatusNotFound:
		if msg != "" {
			return fmt.Errorf("%w: %s", domain.ErrNotFound, msg)
		}
		return fmt.Errorf("%w: %s %s", domain.ErrNotFound, method, path)
	case http.StatusBadRequest:
		if msg != "" {
			return fmt.Errorf("%w: %s", domain.ErrInvalidInput, msg)
		}
		return fmt.Errorf("%w: %s %s", domain.ErrInvalidInput, method, path)
	case http.StatusConflict:
		return fmt.Errorf("%w: %s %s", domain.ErrConflict, method, path)
	default:
		c.log.Warn().Int("status", resp.StatusCode).Str("path", path).Msg("respuesta de error del backend")
		return fmt.Errorf("%w: %s %s devolvió %d", domain.ErrBackendUnavailable, method, path, resp.StatusCode)
	}
}
