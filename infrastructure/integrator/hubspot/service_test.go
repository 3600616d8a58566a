package hubspot

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	hubspotdomain "github.com/vfg2006/sales-cockpit-api/infrastructure/integrator/hubspot/domain"
	clientmocks "github.com/vfg2006/sales-cockpit-api/infrastructure/integrator/hubspot/hubspotclient/mocks"
	"github.com/vfg2006/sales-cockpit-api/internal/config"
	"github.com/vfg2006/sales-cockpit-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func testConfig() *config.Config {
	return &config.Config{
		HubSpot: config.HubSpot{
			PortalID: "123456",
		},
		HubSpotOwners: map[string]string{
			"Lukas Eisele":   "901",
			"Sam Holdenried": "902",
			"Tobias Hagl":    "903",
		},
	}
}

func TestDealService_GetDealsByAgentMonth(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := clientmocks.NewMockClient(ctrl)
	service := New(testConfig(), mockClient)

	var captured hubspotdomain.SearchRequest
	mockClient.EXPECT().
		SearchDeals(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, request hubspotdomain.SearchRequest) (*hubspotdomain.SearchResponse, error) {
			captured = request
			return &hubspotdomain.SearchResponse{
				Total: 2,
				Results: []hubspotdomain.SearchResult{
					{
						ID: "555",
						Properties: map[string]string{
							"dealname":         "Brillen-Paket Nord",
							"websession_datum": "2026-01-14",
							"amount":           "1234.5",
							"dealstage":        "Angebot versendet",
						},
					},
					{
						ID: "556",
						Properties: map[string]string{
							"dealname":         "Einzelglas Süd",
							"websession_datum": "",
							"amount":           "",
							"dealstage":        "",
						},
					},
				},
			}, nil
		})

	list, err := service.GetDealsByAgentMonth(context.Background(), domain.AgentLukas, "2026-01")

	require.NoError(t, err)
	require.NotNil(t, list)
	assert.Equal(t, 2, list.Total)
	require.Len(t, list.Deals, 2)

	// Filtros enviados ao CRM: owner do consultor e janela do mês em ms
	require.Len(t, captured.FilterGroups, 1)
	filters := captured.FilterGroups[0].Filters
	require.Len(t, filters, 2)
	assert.Equal(t, "hubspot_owner_id", filters[0].PropertyName)
	assert.Equal(t, "901", filters[0].Value)
	assert.Equal(t, "websession_datum", filters[1].PropertyName)
	assert.Equal(t, "BETWEEN", filters[1].Operator)
	assert.Equal(t, "1767225600000", filters[1].Value) // 2026-01-01T00:00:00Z
	assert.NotEmpty(t, filters[1].HighValue)

	// Primeiro deal: campos formatados para exibição
	assert.Equal(t, "Brillen-Paket Nord", list.Deals[0].Name)
	assert.Equal(t, "14.01.2026", list.Deals[0].WebsessionDate)
	assert.Equal(t, "1.235 €", list.Deals[0].Amount)
	assert.Equal(t, "Angebot versendet", list.Deals[0].Stage)
	assert.Equal(t, "https://app.hubspot.com/contacts/123456/deal/555", list.Deals[0].Permalink)

	// Segundo deal: ausências viram o placeholder
	assert.Equal(t, "–", list.Deals[1].WebsessionDate)
	assert.Equal(t, "–", list.Deals[1].Amount)
	assert.Equal(t, "–", list.Deals[1].Stage)
}

func TestDealService_GetDealsByAgentMonth_Falhas(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := clientmocks.NewMockClient(ctrl)

	t.Run("Consultor sem owner configurado", func(t *testing.T) {
		cfg := testConfig()
		cfg.HubSpotOwners["Lukas Eisele"] = ""
		service := New(cfg, mockClient)

		list, err := service.GetDealsByAgentMonth(context.Background(), domain.AgentLukas, "2026-01")

		require.Error(t, err)
		assert.Nil(t, list)
	})

	t.Run("Mês fora do formato YYYY-MM", func(t *testing.T) {
		service := New(testConfig(), mockClient)

		list, err := service.GetDealsByAgentMonth(context.Background(), domain.AgentLukas, "Jan 26")

		require.Error(t, err)
		assert.Nil(t, list)
	})

	t.Run("Erro do CRM é propagado", func(t *testing.T) {
		service := New(testConfig(), mockClient)

		mockClient.EXPECT().
			SearchDeals(gomock.Any(), gomock.Any()).
			Return(nil, fmt.Errorf("requisição falhou com status: 429"))

		list, err := service.GetDealsByAgentMonth(context.Background(), domain.AgentLukas, "2026-01")

		require.Error(t, err)
		assert.Nil(t, list)
	})
}
