package hubspotclient

import (
	"context"
	"net/http"
	"time"

	hubspotdomain "github.com/vfg2006/sales-cockpit-api/infrastructure/integrator/hubspot/domain"
	"github.com/vfg2006/sales-cockpit-api/internal/config"
)

type Client interface {
	SearchDeals(ctx context.Context, request hubspotdomain.SearchRequest) (*hubspotdomain.SearchResponse, error)
}

type HubSpotClient struct {
	httpClient *http.Client
	config     *config.Config
}

// NewClient cria uma nova instância do cliente da API do HubSpot
func NewClient(cfg *config.Config) Client {
	return &HubSpotClient{
		httpClient: &http.Client{
			// Mesmo limite do contexto por chamada: as buscas do CRM podem
			// ser lentas em meses com muitos deals
			Timeout: 45 * time.Second,
		},
		config: cfg,
	}
}
