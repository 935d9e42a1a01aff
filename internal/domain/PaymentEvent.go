package domain

import (
	"time"
)

// Status possíveis de um evento de pagamento
const (
	PaymentStatusSuccess = "success"
	PaymentStatusFailed  = "failed"
)

// PaymentEvent representa um evento de pagamento na camada raw.
// Assim como AdEvent, EventDate é um token de texto sem validação.
// FailReason só é preenchido quando Status = failed (não validado aqui —
// a camada raw confia na origem).
type PaymentEvent struct {
	EventDate  string    `json:"event_date"`
	EventTs    time.Time `json:"event_ts"`
	OrderID    string    `json:"order_id"`
	UserID     string    `json:"user_id"`
	CampaignID string    `json:"campaign_id"`
	Amount     float64   `json:"amount"`
	Currency   string    `json:"currency"`
	Status     string    `json:"status"`
	FailReason *string   `json:"fail_reason,omitempty"`
}
