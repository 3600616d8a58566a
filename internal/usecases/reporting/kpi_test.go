package reporting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-cockpit-api/internal/domain"
)

func floatPtr(f float64) *float64 { return &f }

func TestBestAvailable(t *testing.T) {
	tests := []struct {
		name     string
		v90      *float64
		v60      *float64
		v30      *float64
		expected float64
	}{
		{
			name:     "Prefere a janela de 90 dias quando presente",
			v90:      floatPtr(10),
			v60:      floatPtr(7),
			v30:      floatPtr(3),
			expected: 10,
		},
		{
			name:     "Cai para 60 dias quando 90 está ausente",
			v90:      nil,
			v60:      floatPtr(7),
			v30:      floatPtr(3),
			expected: 7,
		},
		{
			name:     "Cai para 30 dias quando 90 e 60 estão ausentes",
			v90:      nil,
			v60:      nil,
			v30:      floatPtr(3),
			expected: 3,
		},
		{
			name:     "Zero na janela longa vence valor presente na curta",
			v90:      floatPtr(0),
			v60:      floatPtr(7),
			v30:      floatPtr(3),
			expected: 0,
		},
		{
			name:     "Todas ausentes resolve para zero",
			v90:      nil,
			v60:      nil,
			v30:      nil,
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, bestAvailable(tt.v90, tt.v60, tt.v30))
		})
	}
}

func TestCalculateKPIs(t *testing.T) {
	t.Run("Sequências vazias produzem o resumo sentinela", func(t *testing.T) {
		summary := CalculateKPIs(nil, nil)

		assert.Equal(t, domain.NoDataPeriod, summary.Period)
		assert.Equal(t, float64(0), summary.TotalWebsessions)
		assert.Equal(t, float64(0), summary.TotalOffers)
		assert.Equal(t, float64(0), summary.TotalDeals)
		assert.Nil(t, summary.CRWsToOffer)
		assert.Nil(t, summary.CROfferToDeal)
	})

	t.Run("Período vai do primeiro ao último mês com Websessions, na ordem da planilha", func(t *testing.T) {
		ws := []domain.WebsessionToOfferMonth{
			{Month: "Nov 25", Websessions: 100},
			{Month: "Dez 25", Websessions: 200},
			{Month: "Jan 26", Websessions: 150},
		}

		summary := CalculateKPIs(ws, nil)

		assert.Equal(t, "Nov 25 – Jan 26", summary.Period)
		assert.Equal(t, float64(450), summary.TotalWebsessions)
	})

	t.Run("Cada mês resolve sua janela de forma independente", func(t *testing.T) {
		ws := []domain.WebsessionToOfferMonth{
			{Month: "Nov 25", Websessions: 100, Offers90d: floatPtr(20)},
			{Month: "Dez 25", Websessions: 100, Offers60d: floatPtr(10)},
			{Month: "Jan 26", Websessions: 100, Offers30d: floatPtr(5)},
		}
		od := []domain.OfferToDealMonth{
			{Month: "Nov 25", Offers: 20, Deals90d: floatPtr(4)},
			{Month: "Dez 25", Offers: 10, Deals60d: floatPtr(5), Deals30d: floatPtr(2)},
			{Month: "Jan 26", Offers: 5, Deals30d: floatPtr(1)},
		}

		summary := CalculateKPIs(ws, od)

		assert.Equal(t, float64(300), summary.TotalWebsessions)
		assert.Equal(t, float64(35), summary.TotalOffers)
		// 4 (90d) + 5 (60d) + 1 (30d)
		assert.Equal(t, float64(10), summary.TotalDeals)

		require.NotNil(t, summary.CRWsToOffer)
		assert.InDelta(t, 35.0/300.0, *summary.CRWsToOffer, 1e-9)

		require.NotNil(t, summary.CROfferToDeal)
		assert.InDelta(t, 10.0/35.0, *summary.CROfferToDeal, 1e-9)
	})

	t.Run("Registro com janelas 60 e 30 contribui com o valor da 60", func(t *testing.T) {
		od := []domain.OfferToDealMonth{
			{Month: "Jan 26", Offers: 10, Deals60d: floatPtr(5), Deals30d: floatPtr(2)},
		}

		summary := CalculateKPIs(nil, od)

		assert.Equal(t, float64(5), summary.TotalDeals)
	})

	t.Run("Meses com zero Angebote ficam fora dos KPIs da segunda etapa", func(t *testing.T) {
		od := []domain.OfferToDealMonth{
			{Month: "Nov 25", Offers: 0, Deals90d: floatPtr(3)},
			{Month: "Dez 25", Offers: 10, Deals90d: floatPtr(2)},
		}

		summary := CalculateKPIs(nil, od)

		assert.Equal(t, float64(10), summary.TotalOffers)
		assert.Equal(t, float64(2), summary.TotalDeals)
	})

	t.Run("Taxas ficam nulas quando o denominador é zero", func(t *testing.T) {
		od := []domain.OfferToDealMonth{
			{Month: "Jan 26", Offers: 0},
		}

		summary := CalculateKPIs(nil, od)

		assert.Nil(t, summary.CRWsToOffer)
		assert.Nil(t, summary.CROfferToDeal)
		assert.Equal(t, domain.NoDataPeriod, summary.Period)
	})
}
