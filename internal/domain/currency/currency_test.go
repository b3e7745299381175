package currency_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-console/internal/domain"
	"github.com/jhoicas/Inventario-console/internal/domain/currency"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tabla de referencia: INR es el pivote.
//   1 INR = 0.012 USD
//   1 INR = 0.011 EUR
// ──────────────────────────────────────────────────────────────────────────────

func TestConvert_IdentidadMismaMoneda(t *testing.T) {
	x := decimal.RequireFromString("1234.5678")
	for _, c := range currency.Supported() {
		got, err := currency.Convert(x, c, c)
		require.NoError(t, err)
		assert.True(t, x.Equal(got), "Convert(x, %s, %s) debe devolver x sin alterar", c, c)
	}
}

func TestConvert_INRPivote(t *testing.T) {
	// 100 INR → USD: 100 * 0.012 = 1.20
	got, err := currency.Convert(decimal.NewFromInt(100), currency.INR, currency.USD)
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("1.2").Equal(got), "100 INR deben ser 1.2 USD, fue %s", got)

	// 1.2 USD → INR: 1.2 / 0.012 = 100
	back, err := currency.Convert(got, currency.USD, currency.INR)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(100).Equal(back))
}

func TestConvert_IdaYVuelta(t *testing.T) {
	// convert(convert(x, a, b), b, a) ≈ x dentro de la tolerancia de división decimal.
	tolerance := decimal.RequireFromString("0.0000001")
	x := decimal.RequireFromString("987.65")

	for _, a := range currency.Supported() {
		for _, b := range currency.Supported() {
			there, err := currency.Convert(x, a, b)
			require.NoError(t, err)
			back, err := currency.Convert(there, b, a)
			require.NoError(t, err)

			diff := back.Sub(x).Abs()
			assert.True(t, diff.LessThanOrEqual(tolerance),
				"%s→%s→%s se desvió %s (más que la tolerancia)", a, b, a, diff)
		}
	}
}

func TestConvert_CeroSiempreCero(t *testing.T) {
	got, err := currency.Convert(decimal.Zero, currency.USD, currency.EUR)
	require.NoError(t, err)
	assert.True(t, got.IsZero())
}

func TestConvert_MonedaDesconocida(t *testing.T) {
	_, err := currency.Convert(decimal.NewFromInt(10), "GBP", currency.INR)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownCurrency)

	_, err = currency.Convert(decimal.NewFromInt(10), currency.INR, "JPY")
	assert.ErrorIs(t, err, domain.ErrUnknownCurrency)
}

func TestExchangeRate(t *testing.T) {
	one := decimal.NewFromInt(1)
	for _, c := range currency.Supported() {
		rate, err := currency.ExchangeRate(c, c)
		require.NoError(t, err)
		assert.True(t, one.Equal(rate), "la tasa de %s a sí misma debe ser 1", c)
	}

	// USD → EUR = 0.011 / 0.012
	rate, err := currency.ExchangeRate(currency.USD, currency.EUR)
	require.NoError(t, err)
	expected := decimal.RequireFromString("0.011").Div(decimal.RequireFromString("0.012"))
	assert.True(t, expected.Equal(rate))
}

func TestFormat_SimboloYDosDecimales(t *testing.T) {
	cases := []struct {
		amountINR string
		to        currency.Code
		want      string
	}{
		// 9.99 INR * 0.012 = 0.11988 → redondea a 0.12
		{"9.99", currency.USD, "$0.12"},
		{"9.99", currency.EUR, "€0.11"},
		{"9.99", currency.INR, "₹9.99"},
		{"0", currency.USD, "$0.00"},
		{"1000", currency.USD, "$12.00"},
	}

	for _, tc := range cases {
		got, err := currency.Format(decimal.RequireFromString(tc.amountINR), tc.to)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "Format(%s INR, %s)", tc.amountINR, tc.to)
	}
}

func TestFormat_MonedaDesconocida(t *testing.T) {
	_, err := currency.Format(decimal.NewFromInt(1), "XXX")
	assert.ErrorIs(t, err, domain.ErrUnknownCurrency)
}
