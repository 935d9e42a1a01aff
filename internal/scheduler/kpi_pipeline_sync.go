package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-kpi-pipeline/internal/config"
	"github.com/vfg2006/campaign-kpi-pipeline/internal/domain"
	"github.com/vfg2006/campaign-kpi-pipeline/internal/usecases/kpi"
)

// KPIPipelineSyncConfig representa a configuração do agendador do pipeline de KPIs
type KPIPipelineSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// KPIPipelineSyncService gerencia o agendamento e execução da reconstrução da
// tabela mart.daily_campaign_kpi
type KPIPipelineSyncService struct {
	scheduler           *gocron.Scheduler
	config              KPIPipelineSyncConfig
	builder             kpi.Builder
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncStatus      string
}

// NewKPIPipelineSyncService cria uma nova instância do serviço de sincronização do pipeline
func NewKPIPipelineSyncService(
	builder kpi.Builder,
	appConfig *config.Config,
) *KPIPipelineSyncService {
	// Criar a configuração com base na config global
	syncConfig := KPIPipelineSyncConfig{
		CronSchedule: appConfig.PipelineSync.CronSchedule,
		SyncEnabled:  appConfig.PipelineSync.Enabled,
	}

	// Criar o agendador
	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador do pipeline de KPIs carregada")

	return &KPIPipelineSyncService{
		scheduler:   scheduler,
		config:      syncConfig,
		builder:     builder,
		syncRunning: false,
	}
}

// Start inicia o agendador
func (s *KPIPipelineSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Execução agendada do pipeline de KPIs desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador do pipeline de KPIs")

	// Agendar a reconstrução da tabela mart
	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runPipeline(context.Background(), domain.PipelineTriggerCron)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar execução do pipeline de KPIs: %w", err)
	}

	// Executar o agendador em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador do pipeline de KPIs")
		s.scheduler.Stop()
	}()

	return nil
}

// runPipeline executa uma reconstrução completa da tabela mart, garantindo que
// nunca haja duas execuções simultâneas (a substituição da mart é um escritor
// único por definição)
func (s *KPIPipelineSyncService) runPipeline(ctx context.Context, triggeredBy string) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Execução do pipeline de KPIs já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.syncMutex.Lock()
	s.lastSyncStartedAt = startTime
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.WithField("triggered_by", triggeredBy).Info("Iniciando execução do pipeline de KPIs")

	run, err := s.builder.Run(ctx, triggeredBy)
	if err != nil {
		s.syncMutex.Lock()
		s.lastSyncStatus = domain.PipelineRunStatusFailed
		s.syncMutex.Unlock()

		logrus.WithError(err).Error("Execução do pipeline de KPIs falhou")
		return
	}

	s.syncMutex.Lock()
	s.lastSyncStatus = run.Status
	s.lastSyncCompletedAt = time.Now()
	s.syncMutex.Unlock()

	logrus.WithFields(logrus.Fields{
		"run_id":       run.ID,
		"rows_written": run.RowsWritten,
		"duration":     time.Since(startTime).String(),
	}).Info("Execução agendada do pipeline de KPIs concluída")
}

// TriggerManualSync inicia manualmente uma execução do pipeline de KPIs.
// Retorna domain.ErrPipelineRunning se já houver uma em andamento.
func (s *KPIPipelineSyncService) TriggerManualSync() error {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Execução do pipeline de KPIs já em andamento, ignorando solicitação manual")
		return domain.ErrPipelineRunning
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando execução manual do pipeline de KPIs")
	go s.runPipeline(context.Background(), domain.PipelineTriggerManual)

	return nil
}

// GetStatus retorna o status atual do agendador
func (s *KPIPipelineSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_status":       s.lastSyncStatus,
	}
}
