package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-cockpit-api/infrastructure/integrator/gsheets/gsheetsclient"
	"github.com/vfg2006/sales-cockpit-api/internal/config"
)

// TokenRefreshConfig representa a configuração do agendador de renovação de token
type TokenRefreshConfig struct {
	CronSchedule string
	Enabled      bool
}

// TokenRefreshService renova proativamente o access token do Google Sheets,
// para que nenhuma requisição do dashboard pague a latência da troca de
// token no caminho crítico.
type TokenRefreshService struct {
	scheduler         *gocron.Scheduler
	config            TokenRefreshConfig
	tokenManager      *gsheetsclient.TokenManager
	refreshRunning    bool
	refreshMutex      sync.Mutex
	lastRefreshAt     time.Time
	lastRefreshFailed bool
}

// NewTokenRefreshService cria uma nova instância do serviço de renovação de token
func NewTokenRefreshService(tokenManager *gsheetsclient.TokenManager, appConfig *config.Config) *TokenRefreshService {
	refreshConfig := TokenRefreshConfig{
		CronSchedule: appConfig.TokenRefresh.CronSchedule,
		Enabled:      appConfig.TokenRefresh.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": refreshConfig.CronSchedule,
		"enabled":       refreshConfig.Enabled,
	}).Info("Configuração do agendador de renovação de token carregada")

	return &TokenRefreshService{
		scheduler:    scheduler,
		config:       refreshConfig,
		tokenManager: tokenManager,
	}
}

// Start inicia o agendador
func (s *TokenRefreshService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Renovação proativa de token desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de renovação de token")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.refreshToken(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar renovação de token: %w", err)
	}

	// Executar o agendador em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de renovação de token")
		s.scheduler.Stop()
	}()

	return nil
}

// refreshToken executa uma renovação, ignorando disparos sobrepostos
func (s *TokenRefreshService) refreshToken(ctx context.Context) {
	s.refreshMutex.Lock()
	if s.refreshRunning {
		s.refreshMutex.Unlock()
		logrus.Info("Renovação de token já em andamento, ignorando")
		return
	}
	s.refreshRunning = true
	s.refreshMutex.Unlock()

	defer func() {
		s.refreshMutex.Lock()
		s.refreshRunning = false
		s.refreshMutex.Unlock()
	}()

	refreshCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	err := s.tokenManager.Refresh(refreshCtx)

	s.refreshMutex.Lock()
	s.lastRefreshAt = time.Now()
	s.lastRefreshFailed = err != nil
	s.refreshMutex.Unlock()

	if err != nil {
		// A próxima requisição ainda renova sob demanda; o agendador só
		// perde a antecipação
		logrus.WithError(err).Error("Falha na renovação proativa do token")
		return
	}

	logrus.WithFields(logrus.Fields{
		"expires_at": s.tokenManager.ExpiresAt().Format(time.RFC3339),
	}).Info("Token do Google Sheets renovado proativamente")
}

// Status retorna o estado da última renovação
func (s *TokenRefreshService) Status() (lastRefreshAt time.Time, lastFailed bool) {
	s.refreshMutex.Lock()
	defer s.refreshMutex.Unlock()

	return s.lastRefreshAt, s.lastRefreshFailed
}
