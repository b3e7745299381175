// Package currency implementa la conversión de monedas de la consola
// (servicio de dominio, puro y sin estado).
//
// Los precios se almacenan en INR; la conversión es solo una transformación
// de presentación que se recalcula en cada render y no se persiste nunca.
// La tabla de tasas es fija, con INR como pivote: monto → INR → destino.
package currency

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inventario-console/internal/domain"
)

// Code código de moneda soportado.
type Code string

const (
	INR Code = "INR"
	USD Code = "USD"
	EUR Code = "EUR"
)

// rates tasa por unidad de INR (1 INR = rate unidades de la moneda).
var rates = map[Code]decimal.Decimal{
	INR: decimal.NewFromInt(1),
	USD: decimal.NewFromFloat(0.012),
	EUR: decimal.NewFromFloat(0.011),
}

// symbols símbolo de presentación por moneda.
var symbols = map[Code]string{
	INR: "₹",
	USD: "$",
	EUR: "€",
}

// Supported devuelve los códigos soportados en orden estable.
func Supported() []Code {
	return []Code{INR, USD, EUR}
}

// Valid reporta si el código está en la tabla fija.
func Valid(c Code) bool {
	_, ok := rates[c]
	return ok
}

// Convert convierte un monto entre dos monedas usando INR como pivote.
// Convert(x, c, c) == x exactamente, para toda moneda c soportada.
func Convert(amount decimal.Decimal, from, to Code) (decimal.Decimal, error) {
	fromRate, ok := rates[from]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %s", domain.ErrUnknownCurrency, from)
	}
	toRate, ok := rates[to]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %s", domain.ErrUnknownCurrency, to)
	}
	if from == to {
		return amount, nil
	}
	if amount.IsZero() {
		return decimal.Zero, nil
	}

	// A INR primero, luego a la moneda destino.
	inr := amount
	if from != INR {
		inr = amount.Div(fromRate)
	}
	if to == INR {
		return inr, nil
	}
	return inr.Mul(toRate), nil
}

// ExchangeRate devuelve la tasa de cambio directa entre dos monedas.
func ExchangeRate(from, to Code) (decimal.Decimal, error) {
	fromRate, ok := rates[from]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %s", domain.ErrUnknownCurrency, from)
	}
	toRate, ok := rates[to]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %s", domain.ErrUnknownCurrency, to)
	}
	if from == to {
		return decimal.NewFromInt(1), nil
	}
	return toRate.Div(fromRate), nil
}

// Format convierte un monto almacenado en INR a la moneda indicada y lo
// renderiza como símbolo + monto con dos decimales (ej. "$0.12").
func Format(amount decimal.Decimal, to Code) (string, error) {
	converted, err := Convert(amount, INR, to)
	if err != nil {
		return "", err
	}
	return symbols[to] + converted.StringFixed(2), nil
}
