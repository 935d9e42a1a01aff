package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/campaign-kpi-pipeline/infrastructure/database/postgres"
	"github.com/vfg2006/campaign-kpi-pipeline/internal/domain"
)

// Códigos do Postgres para coluna/tabela inexistente
const (
	pgUndefinedColumn = "42703"
	pgUndefinedTable  = "42P01"
)

// asSchemaMismatch traduz erros de coluna/tabela ausente do Postgres para o
// erro de domínio SchemaMismatchError. Qualquer outro erro retorna nil e segue
// o tratamento normal.
func asSchemaMismatch(err error, table string) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return nil
	}

	if pqErr.Code != pgUndefinedColumn && pqErr.Code != pgUndefinedTable {
		return nil
	}

	return &domain.SchemaMismatchError{
		Table:  table,
		Column: pqErr.Column,
	}
}

func countRows(ctx context.Context, conn postgres.Queryer, table string) (int, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From(table).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var total int
	if err := conn.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("erro ao contar linhas de %s: %w", table, err)
	}

	return total, nil
}
