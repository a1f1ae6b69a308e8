package repository

import (
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/shop-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/shop-manager-api/internal/domain"
)

const repairsTable = "repairs r"

// RepairRepository expõe o acesso somente-leitura aos consertos em loja
type RepairRepository interface {
	ListRepairs() ([]*domain.Repair, error)
}

type repairRepository struct {
	conn *postgres.Connection
}

func NewRepairRepository(conn *postgres.Connection) RepairRepository {
	return &repairRepository{
		conn: conn,
	}
}

func (r *repairRepository) ListRepairs() ([]*domain.Repair, error) {
	query, args, err := squirrel.
		Select("r.id, r.device, r.description, r.status, r.cost, r.created_at").
		From(repairsTable).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query de consertos")
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao executar a query de consertos")
	}
	defer rows.Close()

	repairs := make([]*domain.Repair, 0)
	for rows.Next() {
		var (
			repair      domain.Repair
			description sql.NullString
			createdAt   sql.NullTime
		)

		err := rows.Scan(
			&repair.ID,
			&repair.Device,
			&description,
			&repair.Status,
			&repair.Cost,
			&createdAt,
		)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao escanear conserto")
		}

		if description.Valid {
			repair.Description = description.String
		}
		if createdAt.Valid {
			repair.CreatedAt = createdAt.Time
		}

		repairs = append(repairs, &repair)
	}

	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de consertos")
	}

	return repairs, nil
}
