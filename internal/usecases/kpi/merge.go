package kpi

import (
	"sort"

	"github.com/vfg2006/campaign-kpi-pipeline/internal/domain"
	"github.com/vfg2006/campaign-kpi-pipeline/pkg/utils"
)

// MergeAggregates faz o full outer join dos dois agregados na chave
// (data, campanha): a saída cobre a união das chaves dos dois lados, e o
// lado ausente entra zerado — nunca propagamos null para a aritmética.
//
// As taxas derivadas são calculadas depois do preenchimento com zero, com
// divisão guardada: denominador zero resulta em taxa 0 por política de
// negócio (campanha sem impressão tem CTR 0%, não "indefinido"). Nunca
// NaN, nunca erro.
func MergeAggregates(
	adAggregates map[domain.KPIKey]*AdAggregate,
	paymentAggregates map[domain.KPIKey]*PaymentAggregate,
) []*domain.DailyCampaignKPI {
	keys := make(map[domain.KPIKey]struct{}, len(adAggregates)+len(paymentAggregates))
	for key := range adAggregates {
		keys[key] = struct{}{}
	}
	for key := range paymentAggregates {
		keys[key] = struct{}{}
	}

	kpis := make([]*domain.DailyCampaignKPI, 0, len(keys))
	for key := range keys {
		ad := adAggregates[key]
		if ad == nil {
			ad = &AdAggregate{}
		}

		payment := paymentAggregates[key]
		if payment == nil {
			payment = &PaymentAggregate{}
		}

		kpi := &domain.DailyCampaignKPI{
			EventDate:        key.EventDate,
			CampaignID:       key.CampaignID,
			Impressions:      ad.Impressions,
			Clicks:           ad.Clicks,
			Conversions:      ad.Conversions,
			AdCost:           utils.RoundWithTwoDecimalPlace(ad.Cost),
			AdRevenue:        utils.RoundWithTwoDecimalPlace(ad.Revenue),
			PaymentsTotal:    payment.Total,
			PaymentsSuccess:  payment.Success,
			PaymentsFailed:   payment.Failed,
			PayAmountSuccess: utils.RoundWithTwoDecimalPlace(payment.AmountSuccess),
		}

		if kpi.Impressions > 0 {
			kpi.CTR = utils.RoundWithFourDecimalPlace(float64(kpi.Clicks) / float64(kpi.Impressions))
		}
		if kpi.Clicks > 0 {
			kpi.CVR = utils.RoundWithFourDecimalPlace(float64(kpi.Conversions) / float64(kpi.Clicks))
		}
		if kpi.PaymentsTotal > 0 {
			kpi.PaymentSuccessRate = utils.RoundWithFourDecimalPlace(float64(kpi.PaymentsSuccess) / float64(kpi.PaymentsTotal))
		}

		kpis = append(kpis, kpi)
	}

	// Ordem determinista: duas execuções sobre o mesmo raw produzem a mesma
	// tabela, linha a linha
	sort.Slice(kpis, func(i, j int) bool {
		if !kpis[i].EventDate.Equal(kpis[j].EventDate) {
			return kpis[i].EventDate.Before(kpis[j].EventDate)
		}
		return kpis[i].CampaignID < kpis[j].CampaignID
	})

	return kpis
}
