package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jhoicas/Inventario-console/internal/application/dto"
	"github.com/jhoicas/Inventario-console/internal/domain"
	"github.com/jhoicas/Inventario-console/internal/domain/entity"
	"github.com/jhoicas/Inventario-console/internal/infrastructure/restapi"
	"github.com/jhoicas/Inventario-console/pkg/logger"
)

// Tipos y formatos de reporte que acepta el backend. La consola valida el
// enum antes de llamar para dar el error cerca del usuario.
var reportTypes = map[string]bool{
	"inventory_summary":  true,
	"stock_transactions": true,
	"low_stock":          true,
	"supplier_analysis":  true,
	"demand_forecast":    true,
}

var reportFormats = map[string]bool{
	"pdf":  true,
	"xlsx": true,
}

// ReportUseCase casos de uso de reportes: generación, descarga pass-through
// y plantillas reutilizables.
type ReportUseCase struct {
	reports ReportGateway
	log     *logger.Logger
}

// NewReportUseCase crea el caso de uso de reportes.
func NewReportUseCase(reports ReportGateway, log *logger.Logger) *ReportUseCase {
	return &ReportUseCase{reports: reports, log: log}
}

func (uc *ReportUseCase) List(ctx context.Context) ([]entity.Report, error) {
	return uc.reports.ListReports(ctx)
}

func (uc *ReportUseCase) Get(ctx context.Context, id int64) (*entity.Report, error) {
	return uc.reports.GetReport(ctx, id)
}

// Generate pide al backend la generación de un reporte nuevo.
func (uc *ReportUseCase) Generate(ctx context.Context, req dto.GenerateReportRequest) (*entity.Report, error) {
	if !reportTypes[req.ReportType] {
		return nil, fmt.Errorf("%w: report_type inválido %q", domain.ErrInvalidInput, req.ReportType)
	}
	if !reportFormats[req.Format] {
		return nil, fmt.Errorf("%w: format inválido %q (pdf|xlsx)", domain.ErrInvalidInput, req.Format)
	}
	r, err := uc.reports.GenerateReport(ctx, restapi.GenerateReportInput{
		ReportType: req.ReportType,
		Format:     req.Format,
		Name:       req.Name,
		DateFrom:   req.DateFrom,
		DateTo:     req.DateTo,
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().
		Int64("report_id", r.ID).
		Str("report_type", r.ReportType).
		Str("format", r.Format).
		Msg("reporte solicitado")
	return r, nil
}

// Download descarga el artefacto binario de un reporte y lo devuelve opaco,
// con los encabezados necesarios para que el navegador lo guarde. El blob
// nunca se interpreta ni se persiste en la consola.
func (uc *ReportUseCase) Download(ctx context.Context, id int64) (*dto.ReportDownload, error) {
	artifact, err := uc.reports.DownloadReport(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.ReportDownload{
		ContentType: artifact.ContentType,
		Filename:    artifact.Filename,
		Data:        artifact.Data,
	}, nil
}

func (uc *ReportUseCase) Recent(ctx context.Context, days int) ([]entity.Report, error) {
	if days < 1 {
		days = 7
	}
	return uc.reports.RecentReports(ctx, days)
}

func (uc *ReportUseCase) Failed(ctx context.Context) ([]entity.Report, error) {
	return uc.reports.FailedReports(ctx)
}

// ── Plantillas ────────────────────────────────────────────────────────────────

func (uc *ReportUseCase) Templates(ctx context.Context) ([]entity.ReportTemplate, error) {
	return uc.reports.ListReportTemplates(ctx)
}

func (uc *ReportUseCase) CreateTemplate(ctx context.Context, in entity.ReportTemplate) (*entity.ReportTemplate, error) {
	if !reportTypes[in.ReportType] {
		return nil, fmt.Errorf("%w: report_type inválido %q", domain.ErrInvalidInput, in.ReportType)
	}
	if !reportFormats[in.Format] {
		return nil, fmt.Errorf("%w: format inválido %q (pdf|xlsx)", domain.ErrInvalidInput, in.Format)
	}
	return uc.reports.CreateReportTemplate(ctx, in)
}

func (uc *ReportUseCase) UpdateTemplate(ctx context.Context, id int64, in entity.ReportTemplate) (*entity.ReportTemplate, error) {
	return uc.reports.UpdateReportTemplate(ctx, id, in)
}

func (uc *ReportUseCase) DeleteTemplate(ctx context.Context, id int64) error {
	return uc.reports.DeleteReportTemplate(ctx, id)
}

func (uc *ReportUseCase) Summary(ctx context.Context) (json.RawMessage, error) {
	return uc.reports.ReportSummary(ctx)
}

// Cleanup borra en el backend los reportes más viejos que N días.
func (uc *ReportUseCase) Cleanup(ctx context.Context, days int) (json.RawMessage, error) {
	if days < 1 {
		return nil, fmt.Errorf("%w: days debe ser positivo", domain.ErrInvalidInput)
	}
	return uc.reports.CleanupOldReports(ctx, days)
}
