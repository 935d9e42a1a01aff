package kpi

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/campaign-kpi-pipeline/infrastructure/repository/mocks"
	"github.com/vfg2006/campaign-kpi-pipeline/internal/domain"
	"github.com/vfg2006/campaign-kpi-pipeline/pkg/log"
	"go.uber.org/mock/gomock"
)

type serviceMocks struct {
	adEventRepo      *mocks.MockAdEventRepository
	paymentEventRepo *mocks.MockPaymentEventRepository
	kpiRepo          *mocks.MockDailyCampaignKPIRepository
	runRepo          *mocks.MockPipelineRunRepository
}

func newServiceWithMocks(t *testing.T) (*Service, serviceMocks) {
	ctrl := gomock.NewController(t)

	m := serviceMocks{
		adEventRepo:      mocks.NewMockAdEventRepository(ctrl),
		paymentEventRepo: mocks.NewMockPaymentEventRepository(ctrl),
		kpiRepo:          mocks.NewMockDailyCampaignKPIRepository(ctrl),
		runRepo:          mocks.NewMockPipelineRunRepository(ctrl),
	}

	service := NewService(m.adEventRepo, m.paymentEventRepo, m.kpiRepo, m.runRepo)
	return service, m
}

func TestService_Run(t *testing.T) {
	log.SetupTestLogger()
	ctx := context.Background()

	t.Run("Execução completa substitui a mart e marca sucesso", func(t *testing.T) {
		service, m := newServiceWithMocks(t)

		adEvents := []*domain.AdEvent{
			adEvent("2025-01-01", domain.AdEventTypeImpression, "c1", 1.0, 0),
			adEvent("2025-01-01", domain.AdEventTypeClick, "c1", 0.5, 0),
		}
		paymentEvents := []*domain.PaymentEvent{
			paymentEvent("2025-01-01", "c1", domain.PaymentStatusSuccess, 10.0),
		}

		m.runRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
		m.adEventRepo.EXPECT().ListAll(gomock.Any()).Return(adEvents, nil)
		m.paymentEventRepo.EXPECT().ListAll(gomock.Any()).Return(paymentEvents, nil)

		var written []*domain.DailyCampaignKPI
		m.kpiRepo.EXPECT().
			ReplaceAll(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, kpis []*domain.DailyCampaignKPI) error {
				written = kpis
				return nil
			})

		m.runRepo.EXPECT().
			Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, run *domain.PipelineRun) error {
				assert.Equal(t, domain.PipelineRunStatusSuccess, run.Status)
				assert.NotNil(t, run.FinishedAt)
				return nil
			})

		run, err := service.Run(ctx, domain.PipelineTriggerManual)
		require.NoError(t, err)

		assert.Equal(t, domain.PipelineRunStatusSuccess, run.Status)
		assert.Equal(t, domain.PipelineTriggerManual, run.TriggeredBy)
		assert.Equal(t, 2, run.AdEvents)
		assert.Equal(t, 1, run.PaymentEvents)
		assert.Equal(t, 1, run.RowsWritten)

		require.Len(t, written, 1)
		assert.Equal(t, "c1", written[0].CampaignID)
		assert.Equal(t, 1, written[0].Impressions)
		assert.Equal(t, 1, written[0].Clicks)
		assert.InDelta(t, 1.0, written[0].PaymentSuccessRate, 1e-9)
	})

	t.Run("Coleções raw vazias produzem mart vazia com sucesso", func(t *testing.T) {
		service, m := newServiceWithMocks(t)

		m.runRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
		m.adEventRepo.EXPECT().ListAll(gomock.Any()).Return([]*domain.AdEvent{}, nil)
		m.paymentEventRepo.EXPECT().ListAll(gomock.Any()).Return([]*domain.PaymentEvent{}, nil)
		m.kpiRepo.EXPECT().
			ReplaceAll(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, kpis []*domain.DailyCampaignKPI) error {
				assert.Empty(t, kpis)
				return nil
			})
		m.runRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

		run, err := service.Run(ctx, domain.PipelineTriggerCron)
		require.NoError(t, err)

		assert.Equal(t, domain.PipelineRunStatusSuccess, run.Status)
		assert.Equal(t, 0, run.RowsWritten)
	})

	t.Run("Data malformada aborta sem tocar na mart", func(t *testing.T) {
		service, m := newServiceWithMocks(t)

		adEvents := []*domain.AdEvent{
			adEvent("2025-01-XX", domain.AdEventTypeImpression, "c1", 0, 0),
		}

		m.runRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
		m.adEventRepo.EXPECT().ListAll(gomock.Any()).Return(adEvents, nil)
		m.paymentEventRepo.EXPECT().ListAll(gomock.Any()).Return([]*domain.PaymentEvent{}, nil)

		// ReplaceAll nunca é chamado: a mart anterior permanece vigente
		m.runRepo.EXPECT().
			Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, run *domain.PipelineRun) error {
				assert.Equal(t, domain.PipelineRunStatusFailed, run.Status)
				require.NotNil(t, run.Error)
				assert.Contains(t, *run.Error, "event_date inválido")
				return nil
			})

		run, err := service.Run(ctx, domain.PipelineTriggerManual)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrMalformedDate))
		assert.Equal(t, domain.PipelineRunStatusFailed, run.Status)
	})

	t.Run("Schema incompatível na leitura aborta a execução", func(t *testing.T) {
		service, m := newServiceWithMocks(t)

		schemaErr := &domain.SchemaMismatchError{Table: "raw.payment_events", Column: "status"}

		m.runRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
		m.adEventRepo.EXPECT().ListAll(gomock.Any()).Return([]*domain.AdEvent{}, nil)
		m.paymentEventRepo.EXPECT().ListAll(gomock.Any()).Return(nil, schemaErr)
		m.runRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

		run, err := service.Run(ctx, domain.PipelineTriggerCron)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrSchemaMismatch))
		assert.Equal(t, domain.PipelineRunStatusFailed, run.Status)
	})

	t.Run("Erro ao substituir a mart marca a execução como falha", func(t *testing.T) {
		service, m := newServiceWithMocks(t)

		m.runRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
		m.adEventRepo.EXPECT().ListAll(gomock.Any()).Return([]*domain.AdEvent{}, nil)
		m.paymentEventRepo.EXPECT().ListAll(gomock.Any()).Return([]*domain.PaymentEvent{}, nil)
		m.kpiRepo.EXPECT().ReplaceAll(gomock.Any(), gomock.Any()).Return(errors.New("connection reset"))
		m.runRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

		run, err := service.Run(ctx, domain.PipelineTriggerManual)
		require.Error(t, err)
		assert.Equal(t, domain.PipelineRunStatusFailed, run.Status)
	})

	t.Run("Falha ao registrar o início impede a execução", func(t *testing.T) {
		service, m := newServiceWithMocks(t)

		m.runRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("tabela de histórico indisponível"))

		run, err := service.Run(ctx, domain.PipelineTriggerManual)
		require.Error(t, err)
		assert.Nil(t, run)
	})
}

func TestService_ListRuns(t *testing.T) {
	log.SetupTestLogger()
	service, m := newServiceWithMocks(t)

	expected := []*domain.PipelineRun{
		{ID: "abc123", Status: domain.PipelineRunStatusSuccess},
	}
	m.runRepo.EXPECT().ListRecent(gomock.Any(), 10).Return(expected, nil)

	runs, err := service.ListRuns(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, expected, runs)
}
