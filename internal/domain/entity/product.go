package entity

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// QRCodeBaseURL prefijo canónico del payload QR que el backend genera cuando
// el producto no trae uno propio: el SKU va embebido al final de la URL.
const QRCodeBaseURL = "https://smart-inventory.com/product/"

// Product representa un producto o SKU del catálogo. El backend es el dueño
// del dato; esta copia vive solo durante el render de una pantalla.
// SKU es la clave humana estable; Barcode y QRCode son claves alternas de
// búsqueda que pueden estar ausentes.
type Product struct {
	ID              int64           `json:"id"`
	SKU             string          `json:"sku"`
	Name            string          `json:"name"`
	Description     string          `json:"description,omitempty"`
	Category        int64           `json:"category"`
	CategoryName    string          `json:"category_name,omitempty"`
	Supplier        *int64          `json:"supplier,omitempty"`
	SupplierName    string          `json:"supplier_name,omitempty"`
	Barcode         string          `json:"barcode,omitempty"`
	QRCode          string          `json:"qr_code,omitempty"`
	Unit            string          `json:"unit"`
	Price           decimal.Decimal `json:"price"` // moneda canónica: INR
	ReorderPoint    int             `json:"reorder_point"`
	ReorderQuantity int             `json:"reorder_quantity"`
	IsActive        bool            `json:"is_active"`
}

// QRPayload devuelve el dato a codificar en el QR del producto: el campo
// qr_code si existe, o la URL canónica con el SKU embebido.
func (p Product) QRPayload() string {
	if p.QRCode != "" {
		return p.QRCode
	}
	return QRCodeBaseURL + p.SKU
}

// EmbeddedSKU extrae el SKU embebido en un payload QR con formato de URL
// canónica. Devuelve "" si el payload no tiene ese formato.
func EmbeddedSKU(qrPayload string) string {
	if !strings.HasPrefix(qrPayload, QRCodeBaseURL) {
		return ""
	}
	parts := strings.Split(qrPayload, "/")
	return parts[len(parts)-1]
}

// QRCodeInfo respuesta del endpoint qr_code del backend: imagen en base64
// más el payload codificado.
type QRCodeInfo struct {
	ProductID   int64  `json:"product_id"`
	ProductName string `json:"product_name"`
	QRCodeImage string `json:"qr_code"` // data:image/png;base64,...
	QRData      string `json:"qr_data"`
}

func (p Product) String() string {
	return fmt.Sprintf("%s - %s", p.SKU, p.Name)
}
