package domain

import (
	"time"
)

// Tipos de evento de anúncio aceitos na camada raw
const (
	AdEventTypeImpression = "impression"
	AdEventTypeClick      = "click"
	AdEventTypeConversion = "conversion"
)

// AdEvent representa um evento de anúncio na camada raw.
// EventDate é mantido como texto (token YYYY-MM-DD) de propósito: a ingestão
// não faz parsing de data; a conversão para data tipada acontece somente
// dentro da agregação.
type AdEvent struct {
	EventDate  string    `json:"event_date"`
	EventTs    time.Time `json:"event_ts"`
	EventType  string    `json:"event_type"`
	CampaignID string    `json:"campaign_id"`
	AdID       string    `json:"ad_id"`
	UserID     string    `json:"user_id"`
	DeviceOS   string    `json:"device_os"`
	Country    string    `json:"country"`
	Cost       float64   `json:"cost"`
	Revenue    float64   `json:"revenue"`
}
