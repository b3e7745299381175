package dto

import "time"

// DashboardStats instantánea agregada del tablero. La calcula el poller a
// partir de lecturas idempotentes; ninguna cifra se persiste localmente.
type DashboardStats struct {
	TotalProducts       int       `json:"total_products"`
	LowStockItems       int       `json:"low_stock_items"`
	TotalInventoryValue string    `json:"total_inventory_value"` // formateada en la moneda de visualización
	RecentTransactions  int       `json:"recent_transactions"`
	RefreshedAt         time.Time `json:"refreshed_at"`
	// Degraded indica que el último refresco fue parcial (por ejemplo,
	// inventario no disponible) y las cifras pueden estar incompletas.
	Degraded bool `json:"degraded,omitempty"`
}

// ReportDownload descarga de un artefacto de reporte: blob opaco más los
// encabezados necesarios para la acción de guardado del navegador.
type ReportDownload struct {
	ContentType string
	Filename    string
	Data        []byte
}

// GenerateReportRequest parámetros de generación de reporte.
type GenerateReportRequest struct {
	ReportType string `json:"report_type"`
	Format     string `json:"format"`
	Name       string `json:"name"`
	DateFrom   string `json:"date_from"`
	DateTo     string `json:"date_to"`
}
