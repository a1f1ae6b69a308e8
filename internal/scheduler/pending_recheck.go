package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/shop-manager-api/internal/config"
	"github.com/vfg2006/shop-manager-api/internal/usecases/holding"
)

// PendingRecheckConfig representa a configuração do tick de reavaliação do
// banner de pendências
type PendingRecheckConfig struct {
	CronSchedule string
	Enabled      bool
}

// PendingRecheckService gerencia o tick periódico que reavalia os marcadores
// de supressão do banner (sonecas expiradas voltam a deixar o banner visível
// mesmo sem nenhuma mudança no store)
type PendingRecheckService struct {
	scheduler          *gocron.Scheduler
	config             PendingRecheckConfig
	tracker            holding.Tracker
	running            bool
	runMutex           sync.Mutex
	lastRunStartedAt   time.Time
	lastRunCompletedAt time.Time
}

// NewPendingRecheckService cria uma nova instância do serviço de reavaliação
func NewPendingRecheckService(tracker holding.Tracker, appConfig *config.Config) *PendingRecheckService {
	recheckConfig := PendingRecheckConfig{
		CronSchedule: appConfig.PendingRecheck.CronSchedule,
		Enabled:      appConfig.PendingRecheck.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": recheckConfig.CronSchedule,
		"enabled":       recheckConfig.Enabled,
	}).Info("Configuração do agendador de reavaliação de pendências carregada")

	return &PendingRecheckService{
		scheduler: scheduler,
		config:    recheckConfig,
		tracker:   tracker,
	}
}

// Start inicia o agendador
func (s *PendingRecheckService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Reavaliação periódica de pendências desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de reavaliação de pendências")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.recheck()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar reavaliação de pendências: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de reavaliação de pendências")
		s.scheduler.Stop()
	}()

	return nil
}

// recheck executa uma passada de reavaliação dos marcadores do banner
func (s *PendingRecheckService) recheck() {
	s.runMutex.Lock()
	if s.running {
		s.runMutex.Unlock()
		logrus.Debug("Reavaliação de pendências já em andamento, ignorando")
		return
	}
	s.running = true
	s.runMutex.Unlock()

	s.lastRunStartedAt = time.Now()

	defer func() {
		s.runMutex.Lock()
		s.running = false
		s.runMutex.Unlock()
	}()

	s.tracker.Reevaluate(time.Now())

	s.lastRunCompletedAt = time.Now()
}

// TriggerManualRecheck dispara manualmente uma reavaliação
func (s *PendingRecheckService) TriggerManualRecheck() {
	s.runMutex.Lock()
	if s.running {
		s.runMutex.Unlock()
		logrus.Info("Reavaliação de pendências já em andamento, ignorando solicitação manual")
		return
	}
	s.runMutex.Unlock()

	logrus.Info("Iniciando reavaliação manual de pendências")
	go s.recheck()
}

// GetStatus retorna o status atual do agendador
func (s *PendingRecheckService) GetStatus() map[string]any {
	return map[string]any{
		"recheck_enabled":       s.config.Enabled,
		"recheck_cron":          s.config.CronSchedule,
		"last_run_started_at":   s.lastRunStartedAt,
		"last_run_completed_at": s.lastRunCompletedAt,
	}
}
