package middleware

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePathLabel(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected string
	}{
		{name: "Rota da API mantém o próprio caminho", path: "/v1/dashboard", expected: "/v1/dashboard"},
		{name: "Rota de deals mantém o próprio caminho", path: "/v1/deals", expected: "/v1/deals"},
		{name: "Healthcheck mantém o próprio caminho", path: "/healthcheck", expected: "/healthcheck"},
		{name: "Arquivo estático é agrupado", path: "/index.html", expected: "other"},
		{name: "Caminho arbitrário é agrupado", path: "/qualquer/coisa/123", expected: "other"},
		{name: "Raiz é agrupada", path: "/", expected: "other"},
		{name: "Variação de caixa não conta como rota conhecida", path: "/V1/Dashboard", expected: "other"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, normalizePathLabel(tt.path))
		})
	}
}

// Dois caminhos desconhecidos distintos produzem o mesmo rótulo, então
// requisições a URLs arbitrárias não criam séries novas por caminho.
func TestNormalizePathLabel_CardinalidadeLimitada(t *testing.T) {
	assert.Equal(t, normalizePathLabel("/a"), normalizePathLabel("/b"))
	assert.Equal(t, "other", normalizePathLabel("/a"))
}
