// Package labels genera la etiqueta imprimible de un producto: un PDF
// compacto con nombre, SKU, precio y los códigos escaneables (barras y QR)
// que los adaptadores de captura de la consola saben resolver.
package labels

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/Inventario-console/internal/domain/currency"
	"github.com/jhoicas/Inventario-console/internal/domain/entity"
)

var colorGray = &props.Color{Red: 100, Green: 100, Blue: 100}

// Generator genera etiquetas de producto usando Maroto v2.
type Generator struct {
	display currency.Code
}

// NewGenerator construye el generador. El precio se imprime en la moneda de
// visualización configurada.
func NewGenerator(display currency.Code) *Generator {
	return &Generator{display: display}
}

// ProductLabel genera la etiqueta del producto y devuelve los bytes del PDF.
// El QR codifica QRPayload (el qr_code propio o la URL canónica con el SKU);
// el código de barras solo se imprime si el producto tiene barcode.
func (g *Generator) ProductLabel(p *entity.Product) ([]byte, error) {
	if p == nil {
		return nil, fmt.Errorf("producto nil")
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A5).
		WithLeftMargin(8).WithRightMargin(8).
		WithTopMargin(8).WithBottomMargin(8).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(fmt.Sprintf("Etiqueta %s", p.SKU), true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(
		row.New(10).Add(
			col.New(12).Add(text.New(p.Name, props.Text{
				Size: 14, Style: fontstyle.Bold, Align: align.Center,
			})),
		),
		row.New(6).Add(
			col.New(12).Add(text.New("SKU: "+p.SKU, props.Text{
				Size: 10, Align: align.Center, Color: colorGray,
			})),
		),
	)

	price, err := currency.Format(p.Price, g.display)
	if err == nil {
		unit := p.Unit
		if unit == "" {
			unit = "unidad"
		}
		m.AddRows(row.New(6).Add(
			col.New(12).Add(text.New(fmt.Sprintf("%s / %s", price, unit), props.Text{
				Size: 10, Align: align.Center,
			})),
		))
	}

	m.AddRows(line.NewRow(2, props.Line{Color: colorGray, Thickness: 0.3}))

	if p.Barcode != "" {
		m.AddRows(
			row.New(16).Add(
				col.New(12).Add(code.NewBar(p.Barcode, props.Barcode{
					Center: true, Percent: 90,
				})),
			),
			row.New(4).Add(
				col.New(12).Add(text.New(p.Barcode, props.Text{
					Size: 7, Align: align.Center, Color: colorGray,
				})),
			),
		)
	}

	m.AddRows(row.New(30).Add(
		col.New(12).Add(code.NewQr(p.QRPayload(), props.Rect{
			Center: true, Percent: 80,
		})),
	))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generando etiqueta: %w", err)
	}
	return doc.GetBytes(), nil
}
