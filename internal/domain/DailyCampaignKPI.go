package domain

import (
	"time"
)

// KPIKey é a chave de agrupamento das agregações e do join:
// data já tipada + campanha.
type KPIKey struct {
	EventDate  time.Time
	CampaignID string
}

// DailyCampaignKPI é uma linha da tabela mart.daily_campaign_kpi:
// uma linha por (event_date, campaign_id), recomputada integralmente a cada
// execução do pipeline.
type DailyCampaignKPI struct {
	EventDate          time.Time `json:"event_date"`
	CampaignID         string    `json:"campaign_id"`
	Impressions        int       `json:"impressions"`
	Clicks             int       `json:"clicks"`
	Conversions        int       `json:"conversions"`
	CTR                float64   `json:"ctr"`
	CVR                float64   `json:"cvr"`
	AdCost             float64   `json:"ad_cost"`
	AdRevenue          float64   `json:"ad_revenue"`
	PaymentsTotal      int       `json:"payments_total"`
	PaymentsSuccess    int       `json:"payments_success"`
	PaymentsFailed     int       `json:"payments_failed"`
	PaymentSuccessRate float64   `json:"payment_success_rate"`
	PayAmountSuccess   float64   `json:"pay_amount_success"`
}

// Key retorna a chave (event_date, campaign_id) da linha
func (k *DailyCampaignKPI) Key() KPIKey {
	return KPIKey{EventDate: k.EventDate, CampaignID: k.CampaignID}
}
