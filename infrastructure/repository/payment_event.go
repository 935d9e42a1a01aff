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
	paymentEventsTable = "raw.payment_events"
)

var paymentEventColumns = []string{
	"event_date", "event_ts", "order_id", "user_id", "campaign_id",
	"amount", "currency", "status", "fail_reason",
}

type PaymentEventRepository interface {
	// ListAll retorna a coleção raw inteira; event_date volta como texto cru
	ListAll(ctx context.Context) ([]*domain.PaymentEvent, error)
	BulkInsert(ctx context.Context, events []*domain.PaymentEvent) error
	DeleteByDate(ctx context.Context, eventDate string) (int64, error)
	Count(ctx context.Context) (int, error)
}

type paymentEventRepository struct {
	conn *postgres.Connection
}

func NewPaymentEventRepository(conn *postgres.Connection) PaymentEventRepository {
	return &paymentEventRepository{
		conn: conn,
	}
}

func (r *paymentEventRepository) ListAll(ctx context.Context) ([]*domain.PaymentEvent, error) {
	query, args, err := squirrel.
		Select(paymentEventColumns...).
		From(paymentEventsTable).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		if schemaErr := asSchemaMismatch(err, paymentEventsTable); schemaErr != nil {
			return nil, schemaErr
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	events := make([]*domain.PaymentEvent, 0)
	for rows.Next() {
		event := &domain.PaymentEvent{}
		var failReason sql.NullString

		err := rows.Scan(
			&event.EventDate,
			&event.EventTs,
			&event.OrderID,
			&event.UserID,
			&event.CampaignID,
			&event.Amount,
			&event.Currency,
			&event.Status,
			&failReason,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear evento de pagamento: %w", err)
		}

		if failReason.Valid {
			event.FailReason = &failReason.String
		}

		events = append(events, event)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return events, nil
}

// BulkInsert insere os eventos via COPY dentro de uma transação única
func (r *paymentEventRepository) BulkInsert(ctx context.Context, events []*domain.PaymentEvent) error {
	if len(events) == 0 {
		return nil
	}

	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, pq.CopyInSchema("raw", "payment_events", paymentEventColumns...))
		if err != nil {
			return fmt.Errorf("erro ao preparar o COPY de payment_events: %w", err)
		}
		defer stmt.Close()

		for _, event := range events {
			var failReason sql.NullString
			if event.FailReason != nil {
				failReason = sql.NullString{String: *event.FailReason, Valid: true}
			}

			_, err := stmt.ExecContext(ctx,
				event.EventDate,
				event.EventTs,
				event.OrderID,
				event.UserID,
				event.CampaignID,
				event.Amount,
				event.Currency,
				event.Status,
				failReason,
			)
			if err != nil {
				return fmt.Errorf("erro ao inserir evento de pagamento: %w", err)
			}
		}

		if _, err := stmt.ExecContext(ctx); err != nil {
			return fmt.Errorf("erro ao finalizar o COPY de payment_events: %w", err)
		}

		return nil
	})
}

// DeleteByDate remove os eventos de uma data para recarga segura (backfill)
func (r *paymentEventRepository) DeleteByDate(ctx context.Context, eventDate string) (int64, error) {
	query, args, err := squirrel.
		Delete(paymentEventsTable).
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

func (r *paymentEventRepository) Count(ctx context.Context) (int, error) {
	return countRows(ctx, r.conn, paymentEventsTable)
}
