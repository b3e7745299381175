package entity

import "time"

// Report metadatos de un reporte generado por el backend. El artefacto
// binario (PDF/XLSX) se descarga aparte y la consola lo pasa sin tocar.
type Report struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	ReportType string    `json:"report_type"` // inventory_summary, stock_transactions, ...
	Format     string    `json:"format"`      // pdf, xlsx
	Status     string    `json:"status"`      // pending, processing, completed, failed
	CreatedAt  time.Time `json:"created_at"`
	FileSizeMB float64   `json:"file_size_mb,omitempty"`
}

// ReportTemplate plantilla reutilizable de generación de reportes.
type ReportTemplate struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	ReportType  string `json:"report_type"`
	Format      string `json:"format"`
	Description string `json:"description,omitempty"`
	IsActive    bool   `json:"is_active"`
}

// ReportArtifact blob descargado del backend, listo para reenviar al
// navegador con su tipo de contenido original.
type ReportArtifact struct {
	ContentType string
	Filename    string
	Data        []byte
	FetchedAt   time.Time
}
