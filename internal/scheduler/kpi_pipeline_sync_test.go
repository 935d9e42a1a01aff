package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/campaign-kpi-pipeline/internal/config"
	"github.com/vfg2006/campaign-kpi-pipeline/internal/domain"
	"github.com/vfg2006/campaign-kpi-pipeline/internal/usecases/kpi/mocks"
	"go.uber.org/mock/gomock"
)

func testConfig(enabled bool) *config.Config {
	return &config.Config{
		PipelineSync: config.PipelineSync{
			CronSchedule: "0 2 * * *",
			Enabled:      enabled,
		},
	}
}

func TestKPIPipelineSyncService_Start_Desabilitado(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockBuilder := mocks.NewMockBuilder(ctrl)

	service := NewKPIPipelineSyncService(mockBuilder, testConfig(false))

	// Com o agendamento desabilitado o Start retorna sem agendar nada e o
	// builder nunca é chamado
	err := service.Start(context.Background())
	require.NoError(t, err)

	status := service.GetStatus()
	assert.Equal(t, false, status["sync_enabled"])
	assert.Equal(t, "0 2 * * *", status["sync_cron"])
}

func TestKPIPipelineSyncService_TriggerManualSync(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockBuilder := mocks.NewMockBuilder(ctrl)

	done := make(chan struct{})
	mockBuilder.EXPECT().
		Run(gomock.Any(), domain.PipelineTriggerManual).
		DoAndReturn(func(_ context.Context, _ string) (*domain.PipelineRun, error) {
			defer close(done)
			return &domain.PipelineRun{
				ID:          "run001",
				Status:      domain.PipelineRunStatusSuccess,
				RowsWritten: 7,
			}, nil
		})

	service := NewKPIPipelineSyncService(mockBuilder, testConfig(true))

	err := service.TriggerManualSync()
	require.NoError(t, err)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("execução manual não completou no tempo esperado")
	}

	// Aguardar o runPipeline liberar o estado de execução
	require.Eventually(t, func() bool {
		return service.GetStatus()["sync_running"] == false
	}, 2*time.Second, 10*time.Millisecond)

	assert.Equal(t, domain.PipelineRunStatusSuccess, service.GetStatus()["last_sync_status"])
}

func TestKPIPipelineSyncService_TriggerManualSync_JaEmAndamento(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockBuilder := mocks.NewMockBuilder(ctrl)

	started := make(chan struct{})
	release := make(chan struct{})

	mockBuilder.EXPECT().
		Run(gomock.Any(), domain.PipelineTriggerManual).
		DoAndReturn(func(_ context.Context, _ string) (*domain.PipelineRun, error) {
			close(started)
			<-release
			return &domain.PipelineRun{Status: domain.PipelineRunStatusSuccess}, nil
		})

	service := NewKPIPipelineSyncService(mockBuilder, testConfig(true))

	require.NoError(t, service.TriggerManualSync())

	// Esperar a primeira execução estar em andamento antes do segundo disparo
	select {
	case <-started:
	case <-time.After(2 * time.Second):
		t.Fatal("primeira execução não iniciou no tempo esperado")
	}

	err := service.TriggerManualSync()
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrPipelineRunning))

	close(release)

	require.Eventually(t, func() bool {
		return service.GetStatus()["sync_running"] == false
	}, 2*time.Second, 10*time.Millisecond)
}

func TestKPIPipelineSyncService_FalhaDoPipeline(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockBuilder := mocks.NewMockBuilder(ctrl)

	done := make(chan struct{})
	mockBuilder.EXPECT().
		Run(gomock.Any(), domain.PipelineTriggerManual).
		DoAndReturn(func(_ context.Context, _ string) (*domain.PipelineRun, error) {
			defer close(done)
			return nil, errors.New("erro ao ler raw.ad_events")
		})

	service := NewKPIPipelineSyncService(mockBuilder, testConfig(true))

	require.NoError(t, service.TriggerManualSync())

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("execução não completou no tempo esperado")
	}

	require.Eventually(t, func() bool {
		return service.GetStatus()["sync_running"] == false
	}, 2*time.Second, 10*time.Millisecond)

	assert.Equal(t, domain.PipelineRunStatusFailed, service.GetStatus()["last_sync_status"])
}
