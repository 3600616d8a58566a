package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatEuro(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{name: "Valor com decimais arredonda para o inteiro mais próximo", raw: "1234.5", expected: "1.235 €"},
		{name: "Valor pequeno fica sem separador de milhar", raw: "950", expected: "950 €"},
		{name: "Valor na casa dos milhões agrupa duas vezes", raw: "1234567", expected: "1.234.567 €"},
		{name: "String vazia vira o placeholder", raw: "", expected: "–"},
		{name: "Valor não numérico vira o placeholder", raw: "abc", expected: "–"},
		{name: "Espaços em volta são tolerados", raw: " 1000 ", expected: "1.000 €"},
		{name: "Zero é um valor válido", raw: "0", expected: "0 €"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatEuro(tt.raw))
		})
	}
}

func TestFormatDealDate(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{name: "Data ISO vira DD.MM.YYYY", raw: "2026-02-14", expected: "14.02.2026"},
		{name: "Data ISO com hora usa só o prefixo de data", raw: "2026-02-14T09:30:00Z", expected: "14.02.2026"},
		{name: "Timestamp em milissegundos é interpretado em UTC", raw: "1767139200000", expected: "31.12.2025"},
		{name: "String vazia vira o placeholder", raw: "", expected: "–"},
		{name: "Valor não reconhecido vira o placeholder", raw: "amanhã", expected: "–"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatDealDate(tt.raw))
		})
	}
}
