package kpi

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/campaign-kpi-pipeline/internal/domain"
)

func day(year int, month time.Month, dayOfMonth int) time.Time {
	return time.Date(year, month, dayOfMonth, 0, 0, 0, 0, time.UTC)
}

func TestMergeAggregates(t *testing.T) {
	tests := []struct {
		name              string
		adAggregates      map[domain.KPIKey]*AdAggregate
		paymentAggregates map[domain.KPIKey]*PaymentAggregate
		validate          func(t *testing.T, result []*domain.DailyCampaignKPI)
	}{
		{
			name: "Campanha com os dois lados calcula todas as taxas",
			adAggregates: map[domain.KPIKey]*AdAggregate{
				{EventDate: day(2025, 1, 1), CampaignID: "c42"}: {
					Impressions: 100,
					Clicks:      10,
					Conversions: 2,
					Cost:        50.0,
					Revenue:     20.0,
				},
			},
			paymentAggregates: map[domain.KPIKey]*PaymentAggregate{
				{EventDate: day(2025, 1, 1), CampaignID: "c42"}: {
					Total:         3,
					Success:       2,
					Failed:        1,
					AmountSuccess: 25.0,
				},
			},
			validate: func(t *testing.T, result []*domain.DailyCampaignKPI) {
				require.Len(t, result, 1)

				row := result[0]
				assert.Equal(t, "c42", row.CampaignID)
				assert.Equal(t, day(2025, 1, 1), row.EventDate)
				assert.Equal(t, 100, row.Impressions)
				assert.Equal(t, 10, row.Clicks)
				assert.Equal(t, 2, row.Conversions)
				assert.InDelta(t, 0.1, row.CTR, 1e-9)
				assert.InDelta(t, 0.2, row.CVR, 1e-9)
				assert.InDelta(t, 50.0, row.AdCost, 1e-9)
				assert.InDelta(t, 20.0, row.AdRevenue, 1e-9)
				assert.Equal(t, 3, row.PaymentsTotal)
				assert.Equal(t, 2, row.PaymentsSuccess)
				assert.Equal(t, 1, row.PaymentsFailed)
				assert.InDelta(t, 0.6667, row.PaymentSuccessRate, 1e-9)
				assert.InDelta(t, 25.0, row.PayAmountSuccess, 1e-9)
			},
		},
		{
			name: "Campanha só com anúncios zera o lado de pagamentos",
			adAggregates: map[domain.KPIKey]*AdAggregate{
				{EventDate: day(2025, 1, 1), CampaignID: "c1"}: {
					Impressions: 50,
					Clicks:      5,
				},
			},
			paymentAggregates: map[domain.KPIKey]*PaymentAggregate{},
			validate: func(t *testing.T, result []*domain.DailyCampaignKPI) {
				require.Len(t, result, 1)

				row := result[0]
				assert.Equal(t, 50, row.Impressions)
				assert.Equal(t, 0, row.PaymentsTotal)
				assert.Equal(t, 0, row.PaymentsSuccess)
				assert.Equal(t, 0, row.PaymentsFailed)
				assert.Zero(t, row.PaymentSuccessRate)
				assert.Zero(t, row.PayAmountSuccess)
				assert.InDelta(t, 0.1, row.CTR, 1e-9)
			},
		},
		{
			name:         "Campanha só com pagamentos zera o lado de anúncios",
			adAggregates: map[domain.KPIKey]*AdAggregate{},
			paymentAggregates: map[domain.KPIKey]*PaymentAggregate{
				{EventDate: day(2025, 1, 1), CampaignID: "c9"}: {
					Total:         4,
					Success:       4,
					AmountSuccess: 100.0,
				},
			},
			validate: func(t *testing.T, result []*domain.DailyCampaignKPI) {
				require.Len(t, result, 1)

				row := result[0]
				assert.Equal(t, "c9", row.CampaignID)
				assert.Equal(t, 0, row.Impressions)
				assert.Equal(t, 0, row.Clicks)
				assert.Equal(t, 0, row.Conversions)
				assert.Zero(t, row.CTR)
				assert.Zero(t, row.CVR)
				assert.Zero(t, row.AdCost)
				assert.Zero(t, row.AdRevenue)
				assert.InDelta(t, 1.0, row.PaymentSuccessRate, 1e-9)
			},
		},
		{
			name: "Denominador zero resulta em taxa zero, nunca NaN",
			adAggregates: map[domain.KPIKey]*AdAggregate{
				{EventDate: day(2025, 1, 1), CampaignID: "c1"}: {
					Conversions: 3,
					Cost:        10.0,
				},
			},
			paymentAggregates: map[domain.KPIKey]*PaymentAggregate{},
			validate: func(t *testing.T, result []*domain.DailyCampaignKPI) {
				require.Len(t, result, 1)

				row := result[0]
				// Sem impressões nem cliques: CTR e CVR valem 0 por política
				assert.Zero(t, row.CTR)
				assert.Zero(t, row.CVR)
				assert.Equal(t, 3, row.Conversions)
			},
		},
		{
			name:              "Dois lados vazios produzem tabela vazia",
			adAggregates:      map[domain.KPIKey]*AdAggregate{},
			paymentAggregates: map[domain.KPIKey]*PaymentAggregate{},
			validate: func(t *testing.T, result []*domain.DailyCampaignKPI) {
				assert.Empty(t, result)
			},
		},
		{
			name: "Saída ordenada por data e campanha",
			adAggregates: map[domain.KPIKey]*AdAggregate{
				{EventDate: day(2025, 1, 2), CampaignID: "c1"}: {Impressions: 1},
				{EventDate: day(2025, 1, 1), CampaignID: "c2"}: {Impressions: 1},
				{EventDate: day(2025, 1, 1), CampaignID: "c1"}: {Impressions: 1},
			},
			paymentAggregates: map[domain.KPIKey]*PaymentAggregate{
				{EventDate: day(2025, 1, 2), CampaignID: "c0"}: {Total: 1},
			},
			validate: func(t *testing.T, result []*domain.DailyCampaignKPI) {
				require.Len(t, result, 4)

				assert.Equal(t, "c1", result[0].CampaignID)
				assert.Equal(t, day(2025, 1, 1), result[0].EventDate)
				assert.Equal(t, "c2", result[1].CampaignID)
				assert.Equal(t, "c0", result[2].CampaignID)
				assert.Equal(t, day(2025, 1, 2), result[2].EventDate)
				assert.Equal(t, "c1", result[3].CampaignID)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := MergeAggregates(tt.adAggregates, tt.paymentAggregates)
			tt.validate(t, result)
		})
	}
}

func TestMergeAggregates_Determinismo(t *testing.T) {
	adAggregates := map[domain.KPIKey]*AdAggregate{
		{EventDate: day(2025, 3, 1), CampaignID: "a"}: {Impressions: 10, Clicks: 2},
		{EventDate: day(2025, 3, 1), CampaignID: "b"}: {Impressions: 20, Clicks: 4},
		{EventDate: day(2025, 3, 2), CampaignID: "a"}: {Impressions: 30, Clicks: 6},
	}
	paymentAggregates := map[domain.KPIKey]*PaymentAggregate{
		{EventDate: day(2025, 3, 1), CampaignID: "b"}: {Total: 2, Success: 1, AmountSuccess: 7.5},
		{EventDate: day(2025, 3, 3), CampaignID: "z"}: {Total: 1, Success: 1, AmountSuccess: 3.0},
	}

	first := MergeAggregates(adAggregates, paymentAggregates)

	// Mapas iteram em ordem aleatória; a saída precisa ser idêntica em
	// qualquer execução
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, MergeAggregates(adAggregates, paymentAggregates))
	}
}
