package entity

// ScanSource origen de un código decodificado.
type ScanSource string

const (
	SourceQR      ScanSource = "qr"
	SourceBarcode ScanSource = "barcode"
	SourceManual  ScanSource = "manual"
)

// ValidSource reporta si el origen es uno de los tres adaptadores de captura.
func ValidSource(s ScanSource) bool {
	return s == SourceQR || s == SourceBarcode || s == SourceManual
}

// ScanStatus estado visible de un resultado de escaneo.
type ScanStatus string

const (
	ScanIdle      ScanStatus = "idle"
	ScanSearching ScanStatus = "searching"
	ScanFound     ScanStatus = "found"
	ScanNotFound  ScanStatus = "not_found"
	ScanError     ScanStatus = "error"
)

// ScanResult resultado efímero de un escaneo; existe solo en la consola.
// Se crea cuando un adaptador entrega un código y se destruye al cerrar la
// sesión o iniciar un nuevo escaneo.
type ScanResult struct {
	RawCode         string     `json:"raw_code"`
	Source          ScanSource `json:"source"`
	ResolvedProduct *Product   `json:"resolved_product,omitempty"`
	Status          ScanStatus `json:"status"`
}
