package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/margin-insights-api/infrastructure/repository"
	"github.com/vfg2006/margin-insights-api/internal/config"
	"github.com/vfg2006/margin-insights-api/internal/domain"
	"github.com/vfg2006/margin-insights-api/internal/usecases/insighting"
)

// InsightSnapshotSyncConfig representa a configuração do agendador de insights diários
type InsightSnapshotSyncConfig struct {
	CronSchedule      string
	Period            domain.Period
	MaxConcurrentJobs int
	SyncEnabled       bool
}

// InsightSnapshotSyncService avalia periodicamente os insights de todos os negócios.
// O último headline de cada negócio fica em memória e só é salvo um novo insight quando ele muda.
type InsightSnapshotSyncService struct {
	scheduler           *gocron.Scheduler
	config              InsightSnapshotSyncConfig
	businessRepo        repository.BusinessConfigRepository
	insighter           insighting.Insighter
	lastHeadlines       map[string]string
	headlinesMutex      sync.Mutex
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncFailures    int
}

// NewInsightSnapshotSyncService cria uma nova instância do agendador de insights
func NewInsightSnapshotSyncService(
	businessRepo repository.BusinessConfigRepository,
	insighter insighting.Insighter,
	appConfig *config.Config,
) (*InsightSnapshotSyncService, error) {
	period, err := domain.ParsePeriod(appConfig.InsightSnapshotSync.Period)
	if err != nil {
		return nil, fmt.Errorf("configuração do agendador de insights: %w", err)
	}

	syncConfig := InsightSnapshotSyncConfig{
		CronSchedule:      appConfig.InsightSnapshotSync.CronSchedule,
		Period:            period,
		MaxConcurrentJobs: appConfig.InsightSnapshotSync.MaxConcurrentJobs,
		SyncEnabled:       appConfig.InsightSnapshotSync.Enabled,
	}
	if syncConfig.MaxConcurrentJobs <= 0 {
		syncConfig.MaxConcurrentJobs = 1
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":       syncConfig.CronSchedule,
		"period":              syncConfig.Period,
		"max_concurrent_jobs": syncConfig.MaxConcurrentJobs,
		"sync_enabled":        syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de insights carregada")

	return &InsightSnapshotSyncService{
		scheduler:     gocron.NewScheduler(time.Local),
		config:        syncConfig,
		businessRepo:  businessRepo,
		insighter:     insighter,
		lastHeadlines: make(map[string]string),
	}, nil
}

// Start inicia o agendador
func (s *InsightSnapshotSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Avaliação agendada de insights desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de insights")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncInsights(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar avaliação de insights: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de insights")
		s.scheduler.Stop()
	}()

	return nil
}

// syncInsights avalia os insights de todos os negócios cadastrados
func (s *InsightSnapshotSyncService) syncInsights(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Avaliação de insights já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	businessIDs, err := s.businessRepo.ListBusinessIDs(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar negócios para avaliação de insights")
		return
	}

	if len(businessIDs) == 0 {
		logrus.Info("Nenhum negócio encontrado para avaliação de insights")
		return
	}

	failures := s.processBusinesses(ctx, businessIDs)

	s.syncMutex.Lock()
	s.lastSyncCompletedAt = time.Now()
	s.lastSyncFailures = failures
	duration := s.lastSyncCompletedAt.Sub(s.lastSyncStartedAt)
	s.syncMutex.Unlock()

	logrus.WithFields(logrus.Fields{
		"duration":   duration.String(),
		"businesses": len(businessIDs),
		"failures":   failures,
	}).Info("Avaliação de insights concluída")
}

// processBusinesses avalia os negócios em paralelo, limitado por MaxConcurrentJobs.
// Retorna a quantidade de negócios que falharam.
func (s *InsightSnapshotSyncService) processBusinesses(ctx context.Context, businessIDs []string) int {
	semaphore := make(chan struct{}, s.config.MaxConcurrentJobs)
	var (
		wg       sync.WaitGroup
		failures int
		mu       sync.Mutex
	)

	for i, businessID := range businessIDs {
		if !acquireSlot(ctx, semaphore) {
			logrus.WithField("skipped", len(businessIDs)-i).Warn("Avaliação de insights interrompida pelo cancelamento do contexto")
			break
		}

		wg.Add(1)
		go func(id string) {
			defer func() {
				<-semaphore
				wg.Done()
			}()

			if err := s.evaluateBusiness(ctx, id); err != nil {
				logrus.WithError(err).WithField("business_id", id).Error("Erro ao avaliar insights do negócio")
				mu.Lock()
				failures++
				mu.Unlock()
			}
		}(businessID)
	}

	wg.Wait()
	return failures
}

// acquireSlot ocupa uma vaga do semáforo e retorna false se o contexto foi cancelado
func acquireSlot(ctx context.Context, semaphore chan struct{}) bool {
	select {
	case <-ctx.Done():
		return false
	case semaphore <- struct{}{}:
	}

	if ctx.Err() != nil {
		<-semaphore
		return false
	}
	return true
}

func (s *InsightSnapshotSyncService) evaluateBusiness(ctx context.Context, businessID string) error {
	previous := s.LastHeadline(businessID)

	result, err := s.insighter.Evaluate(ctx, businessID, s.config.Period, previous)
	if err != nil {
		return err
	}

	if result.ZeroState {
		return nil
	}

	s.headlinesMutex.Lock()
	s.lastHeadlines[businessID] = result.Main.Headline
	s.headlinesMutex.Unlock()

	logrus.WithFields(logrus.Fields{
		"business_id": businessID,
		"kind":        result.Main.Kind,
		"changed":     result.Changed,
	}).Debug("Insights do negócio avaliados")

	return nil
}

// LastHeadline retorna o último headline avaliado para o negócio nesta execução do serviço
func (s *InsightSnapshotSyncService) LastHeadline(businessID string) string {
	s.headlinesMutex.Lock()
	defer s.headlinesMutex.Unlock()
	return s.lastHeadlines[businessID]
}

// TriggerManualSync inicia manualmente uma avaliação de insights
func (s *InsightSnapshotSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Avaliação de insights já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando avaliação manual de insights")
	go s.syncInsights(context.Background())
}

// GetStatus retorna o status atual do agendador
func (s *InsightSnapshotSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_running":           s.syncRunning,
		"sync_cron":              s.config.CronSchedule,
		"sync_enabled":           s.config.SyncEnabled,
		"period":                 s.config.Period,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_failures":     s.lastSyncFailures,
	}
}
