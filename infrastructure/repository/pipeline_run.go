package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/campaign-kpi-pipeline/infrastructure/database/postgres"
	"github.com/vfg2006/campaign-kpi-pipeline/internal/domain"
)

const (
	pipelineRunsTable = "mart.pipeline_runs"
)

type PipelineRunRepository interface {
	Insert(ctx context.Context, run *domain.PipelineRun) error
	Update(ctx context.Context, run *domain.PipelineRun) error
	ListRecent(ctx context.Context, limit int) ([]*domain.PipelineRun, error)
}

type pipelineRunRepository struct {
	conn *postgres.Connection
}

func NewPipelineRunRepository(conn *postgres.Connection) PipelineRunRepository {
	return &pipelineRunRepository{
		conn: conn,
	}
}

func (r *pipelineRunRepository) Insert(ctx context.Context, run *domain.PipelineRun) error {
	query, args, err := squirrel.
		Insert(pipelineRunsTable).
		Columns("id", "triggered_by", "status", "ad_events", "payment_events", "rows_written", "error", "started_at", "finished_at").
		Values(
			run.ID,
			run.TriggeredBy,
			run.Status,
			run.AdEvents,
			run.PaymentEvents,
			run.RowsWritten,
			run.Error,
			run.StartedAt,
			run.FinishedAt,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao registrar execução do pipeline: %w", err)
	}

	return nil
}

func (r *pipelineRunRepository) Update(ctx context.Context, run *domain.PipelineRun) error {
	query, args, err := squirrel.
		Update(pipelineRunsTable).
		Set("status", run.Status).
		Set("ad_events", run.AdEvents).
		Set("payment_events", run.PaymentEvents).
		Set("rows_written", run.RowsWritten).
		Set("error", run.Error).
		Set("finished_at", run.FinishedAt).
		Where(squirrel.Eq{"id": run.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao atualizar execução do pipeline: %w", err)
	}

	return nil
}

func (r *pipelineRunRepository) ListRecent(ctx context.Context, limit int) ([]*domain.PipelineRun, error) {
	query, args, err := squirrel.
		Select("id", "triggered_by", "status", "ad_events", "payment_events", "rows_written", "error", "started_at", "finished_at").
		From(pipelineRunsTable).
		OrderBy("started_at DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	runs := make([]*domain.PipelineRun, 0)
	for rows.Next() {
		run := &domain.PipelineRun{}
		var runErr sql.NullString
		var finishedAt sql.NullTime

		err := rows.Scan(
			&run.ID,
			&run.TriggeredBy,
			&run.Status,
			&run.AdEvents,
			&run.PaymentEvents,
			&run.RowsWritten,
			&runErr,
			&run.StartedAt,
			&finishedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear execução do pipeline: %w", err)
		}

		if runErr.Valid {
			run.Error = &runErr.String
		}
		if finishedAt.Valid {
			run.FinishedAt = &finishedAt.Time
		}

		runs = append(runs, run)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return runs, nil
}
