package gsheetsclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/vfg2006/sales-cockpit-api/internal/config"
)

// Client busca valores crus de ranges nomeados da API de planilhas
type Client interface {
	GetValues(ctx context.Context, spreadsheetID, a1Range, renderOption string) ([][]any, error)
}

// valueRangeResponse é a resposta de spreadsheets.values.get. Values omite
// linhas e células vazias no final do range.
type valueRangeResponse struct {
	Range          string  `json:"range"`
	MajorDimension string  `json:"majorDimension"`
	Values         [][]any `json:"values"`
}

type SheetsClient struct {
	httpClient   *http.Client
	tokenManager *TokenManager
	baseURL      string
}

// NewClient cria um cliente da API do Google Sheets autenticado pelo
// gerenciador de tokens da service account
func NewClient(cfg *config.Config, tokenManager *TokenManager) Client {
	return &SheetsClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		tokenManager: tokenManager,
		baseURL:      cfg.Google.BaseURL,
	}
}

// GetValues busca um range em notação A1 e retorna a grade de células como
// veio da API: linhas de tamanhos variados, células como número, string ou
// nil conforme o renderOption.
func (c *SheetsClient) GetValues(ctx context.Context, spreadsheetID, a1Range, renderOption string) ([][]any, error) {
	token, err := c.tokenManager.AccessToken(ctx)
	if err != nil {
		return nil, fmt.Errorf("erro ao obter access token: %w", err)
	}

	endpoint := fmt.Sprintf(
		"%s/v4/spreadsheets/%s/values/%s?valueRenderOption=%s",
		c.baseURL,
		url.PathEscape(spreadsheetID),
		url.PathEscape(a1Range),
		url.QueryEscape(renderOption),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler a resposta: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("requisição ao range %q falhou com status %s: %s", a1Range, resp.Status, string(body))
	}

	var valueRange valueRangeResponse
	if err := json.Unmarshal(body, &valueRange); err != nil {
		return nil, fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	if valueRange.Values == nil {
		return [][]any{}, nil
	}

	return valueRange.Values, nil
}
