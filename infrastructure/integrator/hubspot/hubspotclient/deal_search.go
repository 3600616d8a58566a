package hubspotclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"time"

	hubspotdomain "github.com/vfg2006/sales-cockpit-api/infrastructure/integrator/hubspot/domain"
)

func (c *HubSpotClient) SearchDeals(ctx context.Context, request hubspotdomain.SearchRequest) (*hubspotdomain.SearchResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, 45*time.Second)
	defer cancel()

	// Construir a URL da requisição.
	endpoint, err := url.Parse(c.config.HubSpot.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("erro ao analisar a URL base: %w", err)
	}
	endpoint.Path = path.Join(endpoint.Path, "/crm/v3/objects/deals/search")

	// Serializar o corpo da busca.
	body, err := json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("erro ao serializar a busca: %w", err)
	}

	// Criar a requisição HTTP.
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	// Adicionar cabeçalhos necessários.
	req.Header.Set("Authorization", "Bearer "+c.config.HubSpot.AccessToken)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	// Executar a requisição.
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	// Verificar o código de status da resposta.
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("requisição falhou com status: %s", resp.Status)
	}

	// Decodificar a resposta JSON.
	var response hubspotdomain.SearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	return &response, nil
}
