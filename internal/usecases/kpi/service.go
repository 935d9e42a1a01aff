package kpi

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-kpi-pipeline/infrastructure/repository"
	"github.com/vfg2006/campaign-kpi-pipeline/internal/domain"
	"github.com/vfg2006/campaign-kpi-pipeline/internal/metrics"
	"github.com/vfg2006/campaign-kpi-pipeline/pkg/utils"
)

// Service implementa a interface Builder
type Service struct {
	adEventRepo      repository.AdEventRepository
	paymentEventRepo repository.PaymentEventRepository
	kpiRepo          repository.DailyCampaignKPIRepository
	runRepo          repository.PipelineRunRepository
	collector        *metrics.Collector
}

// NewService cria uma nova instância do serviço de construção de KPIs
func NewService(
	adEventRepo repository.AdEventRepository,
	paymentEventRepo repository.PaymentEventRepository,
	kpiRepo repository.DailyCampaignKPIRepository,
	runRepo repository.PipelineRunRepository,
) *Service {
	return &Service{
		adEventRepo:      adEventRepo,
		paymentEventRepo: paymentEventRepo,
		kpiRepo:          kpiRepo,
		runRepo:          runRepo,
	}
}

// WithMetrics habilita a publicação de métricas Prometheus das execuções
func (s *Service) WithMetrics(collector *metrics.Collector) *Service {
	s.collector = collector
	return s
}

// Run executa a transformação completa: lê as duas coleções raw, agrega cada
// uma por (data, campanha), faz o full outer join, calcula as taxas e
// substitui a tabela mart em uma transação única.
//
// As duas agregações são independentes e rodam em paralelo (fan-out); o join
// só começa quando as duas terminam (fan-in). Qualquer erro aborta a execução
// sem tocar na tabela mart.
func (s *Service) Run(ctx context.Context, triggeredBy string) (*domain.PipelineRun, error) {
	runID, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar ID da execução: %w", err)
	}

	run := &domain.PipelineRun{
		ID:          runID,
		TriggeredBy: triggeredBy,
		Status:      domain.PipelineRunStatusRunning,
		StartedAt:   time.Now(),
	}

	if err := s.runRepo.Insert(ctx, run); err != nil {
		return nil, fmt.Errorf("erro ao registrar início da execução: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"run_id":       run.ID,
		"triggered_by": triggeredBy,
	}).Info("Iniciando reconstrução da tabela mart.daily_campaign_kpi")

	var (
		adAggregates      map[domain.KPIKey]*AdAggregate
		paymentAggregates map[domain.KPIKey]*PaymentAggregate
		adEvents          int
		paymentEvents     int
		adErr             error
		paymentErr        error
	)

	// Fan-out: os dois lados leem e agregam em paralelo, sem estado
	// compartilhado entre eles
	wg := sync.WaitGroup{}
	wg.Add(2)

	go func() {
		defer wg.Done()
		adAggregates, adEvents, adErr = s.aggregateAdSide(ctx)
	}()

	go func() {
		defer wg.Done()
		paymentAggregates, paymentEvents, paymentErr = s.aggregatePaymentSide(ctx)
	}()

	wg.Wait()

	run.AdEvents = adEvents
	run.PaymentEvents = paymentEvents

	if adErr != nil {
		return s.finishWithError(ctx, run, adErr)
	}
	if paymentErr != nil {
		return s.finishWithError(ctx, run, paymentErr)
	}

	// Fan-in: join + taxas só depois das duas agregações completas
	kpis := MergeAggregates(adAggregates, paymentAggregates)

	// Coleções raw vazias produzem legitimamente zero linhas; não é erro
	if err := s.kpiRepo.ReplaceAll(ctx, kpis); err != nil {
		return s.finishWithError(ctx, run, fmt.Errorf("erro ao substituir a tabela mart: %w", err))
	}

	run.Status = domain.PipelineRunStatusSuccess
	run.RowsWritten = len(kpis)
	now := time.Now()
	run.FinishedAt = &now

	if err := s.runRepo.Update(ctx, run); err != nil {
		logrus.WithFields(logrus.Fields{
			"run_id": run.ID,
			"error":  err.Error(),
		}).Error("Erro ao atualizar registro da execução no histórico")
	}

	if s.collector != nil {
		s.collector.ObserveRun(run.Status, now.Sub(run.StartedAt), run.RowsWritten)
	}

	logrus.WithFields(logrus.Fields{
		"run_id":         run.ID,
		"ad_events":      run.AdEvents,
		"payment_events": run.PaymentEvents,
		"rows_written":   run.RowsWritten,
		"duration":       now.Sub(run.StartedAt).String(),
	}).Info("Tabela mart.daily_campaign_kpi reconstruída com sucesso")

	return run, nil
}

// ListRuns retorna o histórico recente de execuções
func (s *Service) ListRuns(ctx context.Context, limit int) ([]*domain.PipelineRun, error) {
	return s.runRepo.ListRecent(ctx, limit)
}

func (s *Service) aggregateAdSide(ctx context.Context) (map[domain.KPIKey]*AdAggregate, int, error) {
	events, err := s.adEventRepo.ListAll(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("erro ao ler raw.ad_events: %w", err)
	}

	aggregates, err := AggregateAdEvents(events)
	if err != nil {
		return nil, len(events), err
	}

	return aggregates, len(events), nil
}

func (s *Service) aggregatePaymentSide(ctx context.Context) (map[domain.KPIKey]*PaymentAggregate, int, error) {
	events, err := s.paymentEventRepo.ListAll(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("erro ao ler raw.payment_events: %w", err)
	}

	aggregates, err := AggregatePaymentEvents(events)
	if err != nil {
		return nil, len(events), err
	}

	return aggregates, len(events), nil
}

// finishWithError marca a execução como falha no histórico e propaga o erro
// para o chamador, responsável por decidir o retry (a transformação é
// idempotente: nada foi escrito na mart)
func (s *Service) finishWithError(ctx context.Context, run *domain.PipelineRun, cause error) (*domain.PipelineRun, error) {
	run.Status = domain.PipelineRunStatusFailed
	message := cause.Error()
	run.Error = &message
	now := time.Now()
	run.FinishedAt = &now

	if err := s.runRepo.Update(ctx, run); err != nil {
		logrus.WithFields(logrus.Fields{
			"run_id": run.ID,
			"error":  err.Error(),
		}).Error("Erro ao registrar falha da execução no histórico")
	}

	if s.collector != nil {
		s.collector.ObserveRun(run.Status, now.Sub(run.StartedAt), 0)
	}

	logrus.WithFields(logrus.Fields{
		"run_id": run.ID,
		"error":  message,
	}).Error("Execução do pipeline abortada; tabela mart anterior permanece vigente")

	return run, cause
}
