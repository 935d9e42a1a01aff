package kpi

import (
	"time"

	"github.com/vfg2006/campaign-kpi-pipeline/internal/domain"
)

// AdAggregate acumula as medidas de anúncio de um grupo (data, campanha)
type AdAggregate struct {
	Impressions int
	Clicks      int
	Conversions int
	Cost        float64
	Revenue     float64
}

// PaymentAggregate acumula as medidas de pagamento de um grupo (data, campanha)
type PaymentAggregate struct {
	Total         int
	Success       int
	Failed        int
	AmountSuccess float64
}

// parseEventDate converte o token de texto da camada raw em data tipada.
// Este é o único ponto do pipeline onde o token é validado: qualquer valor
// fora de YYYY-MM-DD aborta a execução inteira, sem skip nem data default.
func parseEventDate(table, token string) (time.Time, error) {
	date, err := time.Parse("2006-01-02", token)
	if err != nil {
		return time.Time{}, &domain.MalformedDateError{Table: table, Value: token}
	}
	return date, nil
}

// AggregateAdEvents agrupa a coleção raw de anúncios por (data, campanha).
// Cost e Revenue somam todas as linhas do grupo, sem filtrar por event_type —
// semântica literal da camada raw: o que a origem mandou, soma.
func AggregateAdEvents(events []*domain.AdEvent) (map[domain.KPIKey]*AdAggregate, error) {
	aggregates := make(map[domain.KPIKey]*AdAggregate)

	for _, event := range events {
		date, err := parseEventDate("raw.ad_events", event.EventDate)
		if err != nil {
			return nil, err
		}

		key := domain.KPIKey{EventDate: date, CampaignID: event.CampaignID}

		agg, ok := aggregates[key]
		if !ok {
			agg = &AdAggregate{}
			aggregates[key] = agg
		}

		switch event.EventType {
		case domain.AdEventTypeImpression:
			agg.Impressions++
		case domain.AdEventTypeClick:
			agg.Clicks++
		case domain.AdEventTypeConversion:
			agg.Conversions++
		}

		agg.Cost += event.Cost
		agg.Revenue += event.Revenue
	}

	return aggregates, nil
}

// AggregatePaymentEvents agrupa a coleção raw de pagamentos por (data, campanha).
// AmountSuccess soma apenas linhas com status success: valores de pagamentos
// falhos nunca entram na soma.
func AggregatePaymentEvents(events []*domain.PaymentEvent) (map[domain.KPIKey]*PaymentAggregate, error) {
	aggregates := make(map[domain.KPIKey]*PaymentAggregate)

	for _, event := range events {
		date, err := parseEventDate("raw.payment_events", event.EventDate)
		if err != nil {
			return nil, err
		}

		key := domain.KPIKey{EventDate: date, CampaignID: event.CampaignID}

		agg, ok := aggregates[key]
		if !ok {
			agg = &PaymentAggregate{}
			aggregates[key] = agg
		}

		agg.Total++

		switch event.Status {
		case domain.PaymentStatusSuccess:
			agg.Success++
			agg.AmountSuccess += event.Amount
		case domain.PaymentStatusFailed:
			agg.Failed++
		}
	}

	return aggregates, nil
}
