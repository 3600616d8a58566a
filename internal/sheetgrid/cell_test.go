package sheetgrid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Serial de 2026-02-01 no epoch da planilha (1899-12-30)
const serialFeb2026 = float64(46054)

func TestToNumber(t *testing.T) {
	tests := []struct {
		name     string
		raw      any
		expected *float64
	}{
		{name: "célula vazia vira nil", raw: "", expected: nil},
		{name: "traço vira nil", raw: "-", expected: nil},
		{name: "N/A vira nil", raw: "N/A", expected: nil},
		{name: "erro de divisão por zero vira nil", raw: "#DIV/0!", expected: nil},
		{name: "nil vira nil", raw: nil, expected: nil},
		{name: "vírgula como separador decimal", raw: "1,5", expected: floatPtr(1.5)},
		{name: "ponto como separador decimal", raw: "12.3", expected: floatPtr(12.3)},
		{name: "string com espaços é aparada", raw: "  42 ", expected: floatPtr(42)},
		{name: "número nativo passa direto", raw: 0.136, expected: floatPtr(0.136)},
		{name: "zero é um número, não ausência", raw: float64(0), expected: floatPtr(0)},
		{name: "inteiro nativo é aceito", raw: 500, expected: floatPtr(500)},
		{name: "texto arbitrário vira nil", raw: "abc", expected: nil},
		{name: "tipo inesperado vira nil", raw: []string{"x"}, expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToNumber(tt.raw)
			if tt.expected == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.InDelta(t, *tt.expected, *got, 1e-9)
		})
	}
}

func TestSerialToMonthLabel(t *testing.T) {
	tests := []struct {
		name     string
		raw      any
		expected string
	}{
		{name: "serial válido vira rótulo alemão", raw: serialFeb2026, expected: "Feb 26"},
		{name: "serial abaixo do piso é rejeitado", raw: float64(39999), expected: ""},
		{name: "número pequeno de cabeçalho é rejeitado", raw: float64(3), expected: ""},
		{name: "texto não é data", raw: "Monat", expected: ""},
		{name: "nil não é data", raw: nil, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SerialToMonthLabel(tt.raw))
		})
	}
}

func TestSerialToISODate(t *testing.T) {
	assert.Equal(t, "2026-02-01", SerialToISODate(serialFeb2026))
	assert.Equal(t, "", SerialToISODate(float64(100)))
	assert.Equal(t, "", SerialToISODate("not a serial"))
}

func TestMonthLabelToYearMonth(t *testing.T) {
	tests := []struct {
		label    string
		expected string
	}{
		{label: "Feb 26", expected: "2026-02"},
		{label: "Mär 25", expected: "2025-03"},
		{label: "Dez 24", expected: "2024-12"},
		{label: "  Jan 26 ", expected: "2026-01"},
		{label: "Foo 26", expected: ""},
		{label: "Feb", expected: ""},
		{label: "", expected: ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, MonthLabelToYearMonth(tt.label), "label: %q", tt.label)
	}
}

// O rótulo de mês e a data ISO derivam do mesmo serial: a chave YYYY-MM
// reconstruída do rótulo precisa bater com o prefixo da data ISO.
func TestMonthLabelISODateRoundTrip(t *testing.T) {
	serials := []float64{40000, 43891, serialFeb2026, 47000}

	for _, serial := range serials {
		label := SerialToMonthLabel(serial)
		iso := SerialToISODate(serial)

		require.NotEmpty(t, label, "serial: %v", serial)
		require.NotEmpty(t, iso, "serial: %v", serial)
		assert.Equal(t, iso[:7], MonthLabelToYearMonth(label), "serial: %v", serial)
	}
}

func floatPtr(f float64) *float64 {
	return &f
}
