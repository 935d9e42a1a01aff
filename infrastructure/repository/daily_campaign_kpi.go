package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/campaign-kpi-pipeline/infrastructure/database/postgres"
	"github.com/vfg2006/campaign-kpi-pipeline/internal/domain"
)

const (
	dailyCampaignKPITable = "mart.daily_campaign_kpi"
)

var dailyCampaignKPIColumns = []string{
	"event_date", "campaign_id",
	"impressions", "clicks", "conversions", "ctr", "cvr", "ad_cost", "ad_revenue",
	"payments_total", "payments_success", "payments_failed",
	"payment_success_rate", "pay_amount_success",
}

type DailyCampaignKPIRepository interface {
	// ReplaceAll substitui a tabela mart inteira em uma única transação
	ReplaceAll(ctx context.Context, kpis []*domain.DailyCampaignKPI) error
	GetByDateRange(ctx context.Context, startDate, endDate time.Time) ([]*domain.DailyCampaignKPI, error)
}

type dailyCampaignKPIRepository struct {
	conn *postgres.Connection
}

func NewDailyCampaignKPIRepository(conn *postgres.Connection) DailyCampaignKPIRepository {
	return &dailyCampaignKPIRepository{
		conn: conn,
	}
}

// ReplaceAll apaga e regrava mart.daily_campaign_kpi dentro de uma transação.
// Escritor único: leitores concorrentes enxergam a tabela antiga até o commit,
// nunca uma mistura das duas. Uma lista vazia é válida e resulta em tabela
// vazia (entrada raw vazia não é erro).
func (r *dailyCampaignKPIRepository) ReplaceAll(ctx context.Context, kpis []*domain.DailyCampaignKPI) error {
	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s", dailyCampaignKPITable)); err != nil {
			return fmt.Errorf("erro ao limpar a tabela mart: %w", err)
		}

		if len(kpis) == 0 {
			return nil
		}

		stmt, err := tx.PrepareContext(ctx, pq.CopyInSchema("mart", "daily_campaign_kpi", dailyCampaignKPIColumns...))
		if err != nil {
			return fmt.Errorf("erro ao preparar o COPY de daily_campaign_kpi: %w", err)
		}
		defer stmt.Close()

		for _, kpi := range kpis {
			_, err := stmt.ExecContext(ctx,
				kpi.EventDate,
				kpi.CampaignID,
				kpi.Impressions,
				kpi.Clicks,
				kpi.Conversions,
				kpi.CTR,
				kpi.CVR,
				kpi.AdCost,
				kpi.AdRevenue,
				kpi.PaymentsTotal,
				kpi.PaymentsSuccess,
				kpi.PaymentsFailed,
				kpi.PaymentSuccessRate,
				kpi.PayAmountSuccess,
			)
			if err != nil {
				return fmt.Errorf("erro ao inserir linha de KPI: %w", err)
			}
		}

		if _, err := stmt.ExecContext(ctx); err != nil {
			return fmt.Errorf("erro ao finalizar o COPY de daily_campaign_kpi: %w", err)
		}

		return nil
	})
}

func (r *dailyCampaignKPIRepository) GetByDateRange(ctx context.Context, startDate, endDate time.Time) ([]*domain.DailyCampaignKPI, error) {
	query, args, err := squirrel.
		Select(dailyCampaignKPIColumns...).
		From(dailyCampaignKPITable).
		Where(squirrel.GtOrEq{"event_date": startDate.Format("2006-01-02")}).
		Where(squirrel.LtOrEq{"event_date": endDate.Format("2006-01-02")}).
		OrderBy("event_date ASC", "campaign_id ASC").
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

	kpis := make([]*domain.DailyCampaignKPI, 0)
	for rows.Next() {
		kpi, err := r.scanKPI(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear linha de KPI: %w", err)
		}
		kpis = append(kpis, kpi)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return kpis, nil
}

func (r *dailyCampaignKPIRepository) scanKPI(rows *sql.Rows) (*domain.DailyCampaignKPI, error) {
	kpi := &domain.DailyCampaignKPI{}

	err := rows.Scan(
		&kpi.EventDate,
		&kpi.CampaignID,
		&kpi.Impressions,
		&kpi.Clicks,
		&kpi.Conversions,
		&kpi.CTR,
		&kpi.CVR,
		&kpi.AdCost,
		&kpi.AdRevenue,
		&kpi.PaymentsTotal,
		&kpi.PaymentsSuccess,
		&kpi.PaymentsFailed,
		&kpi.PaymentSuccessRate,
		&kpi.PayAmountSuccess,
	)
	if err != nil {
		return nil, err
	}

	return kpi, nil
}
