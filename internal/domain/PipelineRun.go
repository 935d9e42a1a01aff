package domain

import (
	"time"
)

// Status de uma execução do pipeline
const (
	PipelineRunStatusRunning = "running"
	PipelineRunStatusSuccess = "success"
	PipelineRunStatusFailed  = "failed"
)

// Origens de disparo de uma execução
const (
	PipelineTriggerCron   = "cron"
	PipelineTriggerManual = "manual"
)

// PipelineRun registra uma execução do pipeline de KPIs no histórico.
// Uma execução ou termina com sucesso e substitui a tabela mart inteira,
// ou falha sem escrever nada — não existe estado parcial.
type PipelineRun struct {
	ID            string     `json:"id"`
	TriggeredBy   string     `json:"triggered_by"`
	Status        string     `json:"status"`
	AdEvents      int        `json:"ad_events"`
	PaymentEvents int        `json:"payment_events"`
	RowsWritten   int        `json:"rows_written"`
	Error         *string    `json:"error,omitempty"`
	StartedAt     time.Time  `json:"started_at"`
	FinishedAt    *time.Time `json:"finished_at,omitempty"`
}
