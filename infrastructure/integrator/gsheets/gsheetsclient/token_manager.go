package gsheetsclient

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// expiryMargin é a antecedência com que um token ainda válido passa a ser
// considerado expirado, para nunca usar um token no limite
const expiryMargin = time.Minute

// TokenManager gerencia o access token do Google Sheets: troca a assertion
// da service account por um token e o reutiliza até perto da expiração.
// Seguro para uso concorrente pelas buscas paralelas de ranges.
type TokenManager struct {
	creds      *ServiceAccountCredentials
	scope      string
	httpClient *http.Client

	mu          sync.Mutex
	accessToken string
	expiresAt   time.Time
}

// NewTokenManager cria um gerenciador de tokens para o escopo informado
func NewTokenManager(creds *ServiceAccountCredentials, scope string) *TokenManager {
	return &TokenManager{
		creds: creds,
		scope: scope,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// AccessToken retorna um token válido, renovando sob demanda quando o atual
// não existe ou está perto de expirar
func (tm *TokenManager) AccessToken(ctx context.Context) (string, error) {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	if tm.accessToken != "" && time.Until(tm.expiresAt) > expiryMargin {
		return tm.accessToken, nil
	}

	if err := tm.refreshLocked(ctx); err != nil {
		return "", err
	}

	return tm.accessToken, nil
}

// Refresh força a renovação do token, independente da validade do atual.
// Usado pelo agendador de renovação proativa.
func (tm *TokenManager) Refresh(ctx context.Context) error {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	return tm.refreshLocked(ctx)
}

// ExpiresAt retorna quando o token atual expira (zero se nunca houve token)
func (tm *TokenManager) ExpiresAt() time.Time {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	return tm.expiresAt
}

func (tm *TokenManager) refreshLocked(ctx context.Context) error {
	now := time.Now()

	assertion, err := tm.creds.SignAssertion(tm.scope, now)
	if err != nil {
		return err
	}

	tokenResp, err := ExchangeAssertion(ctx, tm.httpClient, tm.creds.TokenURI, assertion)
	if err != nil {
		return err
	}

	tm.accessToken = tokenResp.AccessToken
	tm.expiresAt = now.Add(time.Duration(tokenResp.ExpiresIn) * time.Second)

	logrus.WithFields(logrus.Fields{
		"expires_at": tm.expiresAt.Format(time.RFC3339),
	}).Debug("Access token do Google Sheets renovado")

	return nil
}
