package kpi

import (
	"context"

	"github.com/vfg2006/campaign-kpi-pipeline/internal/domain"
)

// Builder reconstrói a tabela mart.daily_campaign_kpi a partir das coleções
// raw. A reconstrução é sempre total: não existe computação incremental.
type Builder interface {
	// Run executa o pipeline completo (agregações, join, taxas, troca da
	// tabela mart) e retorna o registro da execução. Em caso de erro a
	// tabela mart anterior permanece intacta.
	Run(ctx context.Context, triggeredBy string) (*domain.PipelineRun, error)

	// ListRuns retorna o histórico recente de execuções
	ListRuns(ctx context.Context, limit int) ([]*domain.PipelineRun, error)
}
