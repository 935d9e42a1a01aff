package ingesting

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/campaign-kpi-pipeline/infrastructure/repository/mocks"
	"github.com/vfg2006/campaign-kpi-pipeline/internal/domain"
	"go.uber.org/mock/gomock"
)

const adEventsCSV = `event_date,event_ts,event_type,campaign_id,ad_id,user_id,device_os,country,cost,revenue
2025-01-01,2025-01-01 10:00:00,impression,c1,ad1,u1,android,BR,0.5,0.0
2025-01-01,2025-01-01 10:05:00,click,c1,ad1,u1,android,BR,0.2,0.0
2025-01-01,2025-01-01 10:10:00,conversion,c1,ad1,u1,android,BR,0.0,15.0
`

const paymentEventsCSV = `event_date,event_ts,order_id,user_id,campaign_id,amount,currency,status,fail_reason
2025-01-01,2025-01-01 11:00:00,o1,u1,c1,25.0,BRL,success,
2025-01-01,2025-01-01 11:30:00,o2,u2,c1,40.0,BRL,failed,insufficient_funds
`

func writeRawFiles(t *testing.T, dir, adContent, paymentContent string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ad_events_20250101.csv"), []byte(adContent), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "payment_events_20250101.csv"), []byte(paymentContent), 0o644))
}

func TestService_LoadDate(t *testing.T) {
	ctx := context.Background()

	t.Run("Carga completa remove a data e reinsere os eventos", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		adRepo := mocks.NewMockAdEventRepository(ctrl)
		paymentRepo := mocks.NewMockPaymentEventRepository(ctrl)

		dir := t.TempDir()
		writeRawFiles(t, dir, adEventsCSV, paymentEventsCSV)

		adRepo.EXPECT().DeleteByDate(gomock.Any(), "2025-01-01").Return(int64(0), nil)
		paymentRepo.EXPECT().DeleteByDate(gomock.Any(), "2025-01-01").Return(int64(0), nil)

		adRepo.EXPECT().
			BulkInsert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, events []*domain.AdEvent) error {
				require.Len(t, events, 3)
				assert.Equal(t, "2025-01-01", events[0].EventDate)
				assert.Equal(t, domain.AdEventTypeImpression, events[0].EventType)
				assert.InDelta(t, 0.5, events[0].Cost, 1e-9)
				assert.InDelta(t, 15.0, events[2].Revenue, 1e-9)
				return nil
			})

		paymentRepo.EXPECT().
			BulkInsert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, events []*domain.PaymentEvent) error {
				require.Len(t, events, 2)
				assert.Equal(t, domain.PaymentStatusSuccess, events[0].Status)
				assert.Nil(t, events[0].FailReason)
				require.NotNil(t, events[1].FailReason)
				assert.Equal(t, "insufficient_funds", *events[1].FailReason)
				return nil
			})

		service := NewService(adRepo, paymentRepo, dir)

		result, err := service.LoadDate(ctx, "2025-01-01")
		require.NoError(t, err)
		assert.Equal(t, "2025-01-01", result.EventDate)
		assert.Equal(t, 3, result.AdEvents)
		assert.Equal(t, 2, result.PaymentEvents)
	})

	t.Run("Arquivos ausentes retornam ErrRawFilesNotFound", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		adRepo := mocks.NewMockAdEventRepository(ctrl)
		paymentRepo := mocks.NewMockPaymentEventRepository(ctrl)

		service := NewService(adRepo, paymentRepo, t.TempDir())

		_, err := service.LoadDate(ctx, "2025-01-01")
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrRawFilesNotFound))
	})

	t.Run("Coluna ausente no cabeçalho é SchemaMismatchError", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		adRepo := mocks.NewMockAdEventRepository(ctrl)
		paymentRepo := mocks.NewMockPaymentEventRepository(ctrl)

		// Cabeçalho de anúncios sem campaign_id
		brokenCSV := `event_date,event_ts,event_type,ad_id,user_id,device_os,country,cost,revenue
2025-01-01,2025-01-01 10:00:00,impression,ad1,u1,android,BR,0.5,0.0
`
		dir := t.TempDir()
		writeRawFiles(t, dir, brokenCSV, paymentEventsCSV)

		service := NewService(adRepo, paymentRepo, dir)

		_, err := service.LoadDate(ctx, "2025-01-01")
		require.Error(t, err)

		var schemaErr *domain.SchemaMismatchError
		require.ErrorAs(t, err, &schemaErr)
		assert.Equal(t, "raw.ad_events", schemaErr.Table)
		assert.Equal(t, "campaign_id", schemaErr.Column)
	})

	t.Run("Colunas em ordem diferente do padrão são aceitas", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		adRepo := mocks.NewMockAdEventRepository(ctrl)
		paymentRepo := mocks.NewMockPaymentEventRepository(ctrl)

		reorderedCSV := `campaign_id,event_date,event_ts,event_type,ad_id,user_id,device_os,country,revenue,cost
c7,2025-01-01,2025-01-01 09:00:00,impression,ad9,u3,ios,BR,0.0,1.25
`
		dir := t.TempDir()
		writeRawFiles(t, dir, reorderedCSV, paymentEventsCSV)

		adRepo.EXPECT().DeleteByDate(gomock.Any(), "2025-01-01").Return(int64(0), nil)
		paymentRepo.EXPECT().DeleteByDate(gomock.Any(), "2025-01-01").Return(int64(0), nil)

		adRepo.EXPECT().
			BulkInsert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, events []*domain.AdEvent) error {
				require.Len(t, events, 1)
				assert.Equal(t, "c7", events[0].CampaignID)
				assert.InDelta(t, 1.25, events[0].Cost, 1e-9)
				return nil
			})
		paymentRepo.EXPECT().BulkInsert(gomock.Any(), gomock.Any()).Return(nil)

		service := NewService(adRepo, paymentRepo, dir)

		result, err := service.LoadDate(ctx, "2025-01-01")
		require.NoError(t, err)
		assert.Equal(t, 1, result.AdEvents)
	})

	t.Run("Valor numérico inválido aborta a carga antes de escrever", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		adRepo := mocks.NewMockAdEventRepository(ctrl)
		paymentRepo := mocks.NewMockPaymentEventRepository(ctrl)

		invalidCSV := `event_date,event_ts,event_type,campaign_id,ad_id,user_id,device_os,country,cost,revenue
2025-01-01,2025-01-01 10:00:00,impression,c1,ad1,u1,android,BR,not-a-number,0.0
`
		dir := t.TempDir()
		writeRawFiles(t, dir, invalidCSV, paymentEventsCSV)

		service := NewService(adRepo, paymentRepo, dir)

		// Nenhum DeleteByDate nem BulkInsert acontece
		_, err := service.LoadDate(ctx, "2025-01-01")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cost inválido")
	})
}
