package repository

import (
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/shop-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/shop-manager-api/internal/domain"
)

const stockLogTable = "stock_log sl"

// StockLogRepository expõe o acesso somente-leitura ao histórico de
// movimentações de estoque
type StockLogRepository interface {
	ListEntries() ([]*domain.StockLogEntry, error)
}

type stockLogRepository struct {
	conn *postgres.Connection
}

func NewStockLogRepository(conn *postgres.Connection) StockLogRepository {
	return &stockLogRepository{
		conn: conn,
	}
}

func (r *stockLogRepository) ListEntries() ([]*domain.StockLogEntry, error) {
	query, args, err := squirrel.
		Select("sl.id, sl.product_id, sl.change, sl.reason, sl.created_at").
		From(stockLogTable).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query do log de estoque")
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao executar a query do log de estoque")
	}
	defer rows.Close()

	entries := make([]*domain.StockLogEntry, 0)
	for rows.Next() {
		var (
			entry     domain.StockLogEntry
			reason    sql.NullString
			createdAt sql.NullTime
		)

		err := rows.Scan(
			&entry.ID,
			&entry.ProductID,
			&entry.Change,
			&reason,
			&createdAt,
		)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao escanear movimentação de estoque")
		}

		if reason.Valid {
			entry.Reason = reason.String
		}
		if createdAt.Valid {
			entry.Timestamp = createdAt.Time
		}

		entries = append(entries, &entry)
	}

	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração do log de estoque")
	}

	return entries, nil
}
