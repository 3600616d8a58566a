package gsheetsclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	defaultTokenURI = "https://oauth2.googleapis.com/token"
	jwtBearerGrant  = "urn:ietf:params:oauth:grant-type:jwt-bearer"

	// Tempo de vida pedido para cada access token (máximo aceito pelo Google)
	assertionLifetime = time.Hour
)

// ServiceAccountCredentials são os campos relevantes do JSON de credenciais
// de uma service account do Google
type ServiceAccountCredentials struct {
	ClientEmail string `json:"client_email"`
	PrivateKey  string `json:"private_key"`
	TokenURI    string `json:"token_uri"`
}

// ParseCredentials decodifica o JSON de credenciais e valida os campos
// obrigatórios. Credencial inválida é erro fatal de configuração, não algo
// a tolerar em tempo de requisição.
func ParseCredentials(raw []byte) (*ServiceAccountCredentials, error) {
	var creds ServiceAccountCredentials
	if err := json.Unmarshal(raw, &creds); err != nil {
		return nil, fmt.Errorf("erro ao decodificar credenciais da service account: %w", err)
	}

	if creds.ClientEmail == "" || creds.PrivateKey == "" {
		return nil, fmt.Errorf("credenciais incompletas: client_email e private_key são obrigatórios")
	}

	if creds.TokenURI == "" {
		creds.TokenURI = defaultTokenURI
	}

	return &creds, nil
}

// SignAssertion monta e assina a assertion JWT (RS256) do fluxo
// jwt-bearer do OAuth2 do Google para o escopo informado
func (c *ServiceAccountCredentials) SignAssertion(scope string, now time.Time) (string, error) {
	key, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(c.PrivateKey))
	if err != nil {
		return "", fmt.Errorf("erro ao parsear a chave privada da service account: %w", err)
	}

	claims := jwt.MapClaims{
		"iss":   c.ClientEmail,
		"scope": scope,
		"aud":   c.TokenURI,
		"iat":   now.Unix(),
		"exp":   now.Add(assertionLifetime).Unix(),
	}

	assertion, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(key)
	if err != nil {
		return "", fmt.Errorf("erro ao assinar a assertion JWT: %w", err)
	}

	return assertion, nil
}

// TokenResponse é a resposta do endpoint de token do Google
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
	TokenType   string `json:"token_type"`
}

// ExchangeAssertion troca a assertion assinada por um access token
func ExchangeAssertion(ctx context.Context, httpClient *http.Client, tokenURI, assertion string) (*TokenResponse, error) {
	form := url.Values{}
	form.Set("grant_type", jwtBearerGrant)
	form.Set("assertion", assertion)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, tokenURI, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição de token: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a requisição de token: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler a resposta de token: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("requisição de token falhou com status %s: %s", resp.Status, string(body))
	}

	var tokenResp TokenResponse
	if err := json.Unmarshal(body, &tokenResp); err != nil {
		return nil, fmt.Errorf("erro ao decodificar a resposta de token: %w", err)
	}

	if tokenResp.AccessToken == "" {
		return nil, fmt.Errorf("resposta de token sem access_token")
	}

	return &tokenResp, nil
}
