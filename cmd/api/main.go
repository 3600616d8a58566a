package main

import (
	"context"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-cockpit-api/infrastructure/integrator/gsheets"
	"github.com/vfg2006/sales-cockpit-api/infrastructure/integrator/gsheets/gsheetsclient"
	"github.com/vfg2006/sales-cockpit-api/infrastructure/integrator/hubspot"
	"github.com/vfg2006/sales-cockpit-api/infrastructure/integrator/hubspot/hubspotclient"
	"github.com/vfg2006/sales-cockpit-api/internal/api"
	"github.com/vfg2006/sales-cockpit-api/internal/config"
	"github.com/vfg2006/sales-cockpit-api/internal/scheduler"
	"github.com/vfg2006/sales-cockpit-api/internal/usecases/reporting"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	creds := serviceAccountCredentials(cfg)
	tokenManager := gsheetsclient.NewTokenManager(creds, cfg.Google.Scope)

	sheetsClient := gsheetsclient.NewClient(cfg, tokenManager)
	sheetsIntegrator := gsheets.New(cfg, sheetsClient)

	hubspotClient := hubspotclient.NewClient(cfg)
	dealIntegrator := hubspot.New(cfg, hubspotClient)

	reportingService := reporting.NewService(cfg, sheetsIntegrator)

	// Inicializa o agendador de renovação proativa do token do Sheets
	tokenRefreshService := scheduler.NewTokenRefreshService(tokenManager, cfg)
	if err := tokenRefreshService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de renovação de token")
	} else {
		logrus.Info("Agendador de renovação de token iniciado com sucesso")
	}

	server, err := api.New(cfg, reportingService, dealIntegrator)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// serviceAccountCredentials carrega as credenciais da service account do
// Google, inline pela variável de ambiente ou de um arquivo
func serviceAccountCredentials(cfg *config.Config) *gsheetsclient.ServiceAccountCredentials {
	raw := []byte(cfg.Google.CredentialsJSON)

	if len(raw) == 0 && cfg.Google.CredentialsFile != "" {
		content, err := os.ReadFile(cfg.Google.CredentialsFile)
		if err != nil {
			logrus.WithError(err).Fatal("Erro ao ler o arquivo de credenciais do Google")
		}
		raw = content
	}

	if len(raw) == 0 {
		logrus.Fatal("Credenciais do Google ausentes: defina GOOGLE_CREDENTIALS ou GOOGLE_CREDENTIALS_FILE")
	}

	creds, err := gsheetsclient.ParseCredentials(raw)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar credenciais da service account")
	}

	logrus.WithField("client_email", creds.ClientEmail).Info("Credenciais do Google carregadas com sucesso")
	return creds
}
