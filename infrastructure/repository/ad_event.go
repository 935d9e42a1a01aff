package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/campaign-kpi-pipeline/infrastructure/database/postgres"
	"github.com/vfg2006/campaign-kpi-pipeline/internal/domain"
)

const (
	adEventsTable = "raw.ad_events"
)

var adEventColumns = []string{
	"event_date", "event_ts", "event_type", "campaign_id", "ad_id",
	"user_id", "device_os", "country", "cost", "revenue",
}

type AdEventRepository interface {
	// ListAll retorna a coleção raw inteira; event_date volta como texto cru
	ListAll(ctx context.Context) ([]*domain.AdEvent, error)
	BulkInsert(ctx context.Context, events []*domain.AdEvent) error
	DeleteByDate(ctx context.Context, eventDate string) (int64, error)
	Count(ctx context.Context) (int, error)
}

type adEventRepository struct {
	conn *postgres.Connection
}

func NewAdEventRepository(conn *postgres.Connection) AdEventRepository {
	return &adEventRepository{
		conn: conn,
	}
}

func (r *adEventRepository) ListAll(ctx context.Context) ([]*domain.AdEvent, error) {
	query, args, err := squirrel.
		Select(adEventColumns...).
		From(adEventsTable).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		if schemaErr := asSchemaMismatch(err, adEventsTable); schemaErr != nil {
			return nil, schemaErr
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	events := make([]*domain.AdEvent, 0)
	for rows.Next() {
		event := &domain.AdEvent{}
		err := rows.Scan(
			&event.EventDate,
			&event.EventTs,
			&event.EventType,
			&event.CampaignID,
			&event.AdID,
			&event.UserID,
			&event.DeviceOS,
			&event.Country,
			&event.Cost,
			&event.Revenue,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear evento de anúncio: %w", err)
		}
		events = append(events, event)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return events, nil
}

// BulkInsert insere os eventos via COPY dentro de uma transação única
func (r *adEventRepository) BulkInsert(ctx context.Context, events []*domain.AdEvent) error {
	if len(events) == 0 {
		return nil
	}

	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, pq.CopyInSchema("raw", "ad_events", adEventColumns...))
		if err != nil {
			return fmt.Errorf("erro ao preparar o COPY de ad_events: %w", err)
		}
		defer stmt.Close()

		for _, event := range events {
			_, err := stmt.ExecContext(ctx,
				event.EventDate,
				event.EventTs,
				event.EventType,
				event.CampaignID,
				event.AdID,
				event.UserID,
				event.DeviceOS,
				event.Country,
				event.Cost,
				event.Revenue,
			)
			if err != nil {
				return fmt.Errorf("erro ao inserir evento de anúncio: %w", err)
			}
		}

		// Exec sem argumentos descarrega o buffer do COPY
		if _, err := stmt.ExecContext(ctx); err != nil {
			return fmt.Errorf("erro ao finalizar o COPY de ad_events: %w", err)
		}

		return nil
	})
}

// DeleteByDate remove os eventos de uma data para recarga segura (backfill).
// eventDate é o token de texto cru, sem parsing.
func (r *adEventRepository) DeleteByDate(ctx context.Context, eventDate string) (int64, error) {
	query, args, err := squirrel.
		Delete(adEventsTable).
		Where(squirrel.Eq{"event_date": eventDate}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected, nil
}

func (r *adEventRepository) Count(ctx context.Context) (int, error) {
	return countRows(ctx, r.conn, adEventsTable)
}
