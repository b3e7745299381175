package restapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/jhoicas/Inventario-console/internal/domain/entity"
)

// GenerateReportInput parámetros de generación de un reporte en el backend.
type GenerateReportInput struct {
	ReportType string `json:"report_type"`
	Format     string `json:"format"`
	Name       string `json:"name,omitempty"`
	DateFrom   string `json:"date_from,omitempty"`
	DateTo     string `json:"date_to,omitempty"`
}

func (c *Client) ListReports(ctx context.Context) ([]entity.Report, error) {
	var out []entity.Report
	if err := c.get(ctx, "/reports/reports/", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetReport(ctx context.Context, id int64) (*entity.Report, error) {
	var out entity.Report
	if err := c.get(ctx, fmt.Sprintf("/reports/reports/%d/", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GenerateReport pide al backend generar un reporte nuevo.
func (c *Client) GenerateReport(ctx context.Context, in GenerateReportInput) (*entity.Report, error) {
	var out entity.Report
	if err := c.do(ctx, http.MethodPost, "/reports/reports/generate/", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DownloadReport descarga el artefacto binario de un reporte. El blob
// (PDF/XLSX) se devuelve opaco, listo para reenviar al navegador.
func (c *Client) DownloadReport(ctx context.Context, id int64) (*entity.ReportArtifact, error) {
	data, contentType, err := c.download(ctx, fmt.Sprintf("/reports/reports/%d/download/", id))
	if err != nil {
		return nil, err
	}
	ext := "xlsx"
	if contentType == "application/pdf" {
		ext = "pdf"
	}
	return &entity.ReportArtifact{
		ContentType: contentType,
		Filename:    fmt.Sprintf("report_%d.%s", id, ext),
		Data:        data,
		FetchedAt:   time.Now(),
	}, nil
}

func (c *Client) RecentReports(ctx context.Context, days int) ([]entity.Report, error) {
	var out []entity.Report
	path := fmt.Sprintf("/reports/reports/recent/?days=%d", days)
	if err := c.get(ctx, path, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) FailedReports(ctx context.Context) ([]entity.Report, error) {
	var out []entity.Report
	if err := c.get(ctx, "/reports/reports/failed/", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ── Plantillas ────────────────────────────────────────────────────────────────

func (c *Client) ListReportTemplates(ctx context.Context) ([]entity.ReportTemplate, error) {
	var out []entity.ReportTemplate
	if err := c.get(ctx, "/reports/report-templates/", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateReportTemplate(ctx context.Context, in entity.ReportTemplate) (*entity.ReportTemplate, error) {
	var out entity.ReportTemplate
	if err := c.do(ctx, http.MethodPost, "/reports/report-templates/", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateReportTemplate(ctx context.Context, id int64, in entity.ReportTemplate) (*entity.ReportTemplate, error) {
	var out entity.ReportTemplate
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/reports/report-templates/%d/", id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteReportTemplate(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/reports/report-templates/%d/", id), nil, nil)
}

// ── Gestión ───────────────────────────────────────────────────────────────────

// ReportSummary resumen agregado de reportes.
func (c *Client) ReportSummary(ctx context.Context) (json.RawMessage, error) {
	var out json.RawMessage
	if err := c.get(ctx, "/reports/report-management/summary/", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CleanupOldReports pide al backend limpiar reportes con más de days días.
func (c *Client) CleanupOldReports(ctx context.Context, days int) (json.RawMessage, error) {
	var out json.RawMessage
	body := map[string]int{"days": days}
	if err := c.do(ctx, http.MethodPost, "/reports/report-management/cleanup_old_reports/", body, &out); err != nil {
		return nil, err
	}
	return out, nil
}
