package reporting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-cockpit-api/internal/domain"
)

func TestGenerateInsights_VolumePico(t *testing.T) {
	t.Run("Um único mês gera exatamente o insight de volume", func(t *testing.T) {
		ws := []domain.WebsessionToOfferMonth{
			{Month: "Jan 26", Websessions: 100, CR90d: floatPtr(0.1)},
		}

		insights := GenerateInsights(ws, nil, nil)

		require.Len(t, insights, 1)
		assert.Equal(t,
			"Das Team hatte im Jan 26 das höchste Volumen mit 100 Websessions, aber nur 10.0% CR (90d) – Qualität vor Quantität prüfen.",
			insights[0],
		)
	})

	t.Run("Consultor vira o sujeito da frase pelo primeiro nome", func(t *testing.T) {
		ws := []domain.WebsessionToOfferMonth{
			{Month: "Jan 26", Websessions: 100, CR90d: floatPtr(0.1)},
		}
		agent := domain.AgentLukas

		insights := GenerateInsights(ws, nil, &agent)

		require.Len(t, insights, 1)
		assert.Contains(t, insights[0], "Lukas hatte im Jan 26")
	})

	t.Run("Sem CR de 90 dias no mês de pico usa o texto alternativo", func(t *testing.T) {
		ws := []domain.WebsessionToOfferMonth{
			{Month: "Jan 26", Websessions: 100},
		}

		insights := GenerateInsights(ws, nil, nil)

		require.Len(t, insights, 1)
		assert.Contains(t, insights[0], "noch keine 90d CR")
	})

	t.Run("Empate de volume fica com a primeira ocorrência", func(t *testing.T) {
		ws := []domain.WebsessionToOfferMonth{
			{Month: "Nov 25", Websessions: 100, CR90d: floatPtr(0.2)},
			{Month: "Dez 25", Websessions: 100, CR90d: floatPtr(0.3)},
		}

		insights := GenerateInsights(ws, nil, nil)

		require.NotEmpty(t, insights)
		assert.Contains(t, insights[0], "im Nov 25")
	})

	t.Run("Sequência vazia não gera nenhum insight", func(t *testing.T) {
		assert.Empty(t, GenerateInsights(nil, nil, nil))
	})
}

func TestGenerateInsights_GanhoDaJanelaLonga(t *testing.T) {
	tests := []struct {
		name     string
		cr90     float64
		cr60     float64
		expected string
	}{
		{
			name:     "Ganho médio abaixo de 2 pontos percentuais indica decisão precoce",
			cr90:     0.110,
			cr60:     0.100,
			expected: "Der 90-Tage-View zeigt kaum Verbesserung gegenüber 60 Tagen bei Websession→Angebot – Entscheidungen fallen früh oder gar nicht.",
		},
		{
			name:     "Ganho médio acima do limiar valoriza a janela longa",
			cr90:     0.150,
			cr60:     0.100,
			expected: "Durchschnittlich 5.0% mehr Angebote kommen zwischen Tag 60 und 90 dazu – der längere Zeitraum lohnt sich.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ws := []domain.WebsessionToOfferMonth{
				{Month: "Jan 26", Websessions: 100, CR90d: floatPtr(tt.cr90), CR60d: floatPtr(tt.cr60)},
			}

			insights := GenerateInsights(ws, nil, nil)

			assert.Contains(t, insights, tt.expected)
		})
	}

	t.Run("Ganho negativo acima do limiar não gera mensagem", func(t *testing.T) {
		ws := []domain.WebsessionToOfferMonth{
			{Month: "Jan 26", Websessions: 100, CR90d: floatPtr(0.05), CR60d: floatPtr(0.10)},
		}

		insights := GenerateInsights(ws, nil, nil)

		for _, insight := range insights {
			assert.NotContains(t, insight, "90-Tage-View")
			assert.NotContains(t, insight, "lohnt sich")
		}
	})

	t.Run("Meses sem as duas janelas ficam fora da média", func(t *testing.T) {
		ws := []domain.WebsessionToOfferMonth{
			{Month: "Nov 25", Websessions: 100, CR90d: floatPtr(0.5)},
			{Month: "Dez 25", Websessions: 100, CR60d: floatPtr(0.1)},
			{Month: "Jan 26", Websessions: 100, CR90d: floatPtr(0.15), CR60d: floatPtr(0.10)},
		}

		insights := GenerateInsights(ws, nil, nil)

		assert.Contains(t, insights,
			"Durchschnittlich 5.0% mehr Angebote kommen zwischen Tag 60 und 90 dazu – der längere Zeitraum lohnt sich.",
		)
	})
}

func TestGenerateInsights_OutlierDeLifecycle(t *testing.T) {
	tests := []struct {
		name      string
		lifecycle float64
		triggers  bool
	}{
		{name: "151 dias dispara o alerta de outlier", lifecycle: 151, triggers: true},
		{name: "Exatamente 150 dias não dispara", lifecycle: 150, triggers: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			od := []domain.OfferToDealMonth{
				{Month: "Jan 26", Offers: 10, Lifecycle90d: floatPtr(tt.lifecycle)},
			}

			insights := GenerateInsights(nil, od, nil)

			found := false
			for _, insight := range insights {
				if insight == "Jan 26 zeigt eine außergewöhnlich lange Lifecycle Time (151 Tage) – hier lag vermutlich ein Ausreißer-Deal vor." {
					found = true
				}
			}
			assert.Equal(t, tt.triggers, found)
		})
	}

	t.Run("O mês reportado é o de maior Lifecycle Time", func(t *testing.T) {
		od := []domain.OfferToDealMonth{
			{Month: "Nov 25", Offers: 10, Lifecycle90d: floatPtr(200)},
			{Month: "Dez 25", Offers: 10, Lifecycle90d: floatPtr(180)},
		}

		insights := GenerateInsights(nil, od, nil)

		assert.Contains(t, insights,
			"Nov 25 zeigt eine außergewöhnlich lange Lifecycle Time (200 Tage) – hier lag vermutlich ein Ausreißer-Deal vor.",
		)
	})
}

func TestGenerateInsights_TimeToOffer(t *testing.T) {
	t.Run("Média só considera meses com TTO positivo", func(t *testing.T) {
		ws := []domain.WebsessionToOfferMonth{
			{Month: "Nov 25", Websessions: 100, TTO90d: floatPtr(10)},
			{Month: "Dez 25", Websessions: 100, TTO90d: floatPtr(0)},
			{Month: "Jan 26", Websessions: 100, TTO90d: floatPtr(20)},
		}

		insights := GenerateInsights(ws, nil, nil)

		assert.Contains(t, insights,
			"Die durchschnittliche Time to Offer liegt bei ~15 Tagen – Potenzial für Beschleunigung in der Angebotsphase.",
		)
	})

	t.Run("Sem TTO em nenhum mês não há mensagem", func(t *testing.T) {
		ws := []domain.WebsessionToOfferMonth{
			{Month: "Jan 26", Websessions: 100},
		}

		insights := GenerateInsights(ws, nil, nil)

		for _, insight := range insights {
			assert.NotContains(t, insight, "Time to Offer")
		}
	})
}

func TestGenerateInsights_MelhorEPiorAbschlussrate(t *testing.T) {
	t.Run("Melhor e pior mês de CR 90d aparecem na mesma frase", func(t *testing.T) {
		od := []domain.OfferToDealMonth{
			{Month: "Nov 25", Offers: 10, CRDeal90d: floatPtr(0.30)},
			{Month: "Dez 25", Offers: 10, CRDeal90d: floatPtr(0.10)},
			{Month: "Jan 26", Offers: 10, CRDeal90d: floatPtr(0.20)},
		}

		insights := GenerateInsights(nil, od, nil)

		assert.Contains(t, insights,
			"Beste Abschlussrate: Nov 25 mit 30.0% (90d). Schwächster Monat: Dez 25 mit 10.0%.",
		)
	})

	t.Run("Um único mês com CR não compara nada", func(t *testing.T) {
		od := []domain.OfferToDealMonth{
			{Month: "Jan 26", Offers: 10, CRDeal90d: floatPtr(0.30)},
		}

		insights := GenerateInsights(nil, od, nil)

		for _, insight := range insights {
			assert.NotContains(t, insight, "Beste Abschlussrate")
		}
	})

	t.Run("CR zero não entra na comparação", func(t *testing.T) {
		od := []domain.OfferToDealMonth{
			{Month: "Nov 25", Offers: 10, CRDeal90d: floatPtr(0.30)},
			{Month: "Dez 25", Offers: 10, CRDeal90d: floatPtr(0)},
			{Month: "Jan 26", Offers: 10, CRDeal90d: floatPtr(0.20)},
		}

		insights := GenerateInsights(nil, od, nil)

		assert.Contains(t, insights,
			"Beste Abschlussrate: Nov 25 mit 30.0% (90d). Schwächster Monat: Jan 26 mit 20.0%.",
		)
	})
}
