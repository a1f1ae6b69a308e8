package repository

import (
	"database/sql"
	"encoding/json"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/shop-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/shop-manager-api/internal/domain"
	"github.com/vfg2006/shop-manager-api/pkg/log"
)

const salesTable = "sales s"

// SaleRepository expõe o acesso somente-leitura à coleção de vendas.
// A filtragem por período é responsabilidade do núcleo de analytics; aqui
// a coleção é devolvida inteira, sem ordenação garantida.
type SaleRepository interface {
	ListSales() ([]*domain.Sale, error)
}

type saleRepository struct {
	conn *postgres.Connection
}

func NewSaleRepository(conn *postgres.Connection) SaleRepository {
	return &saleRepository{
		conn: conn,
	}
}

func (r *saleRepository) ListSales() ([]*domain.Sale, error) {
	query, args, err := squirrel.
		Select("s.id, s.receipt_number, s.items, s.total, s.payment_method, s.customer_name, s.created_at").
		From(salesTable).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query de vendas")
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao executar a query de vendas")
	}
	defer rows.Close()

	sales := make([]*domain.Sale, 0)
	for rows.Next() {
		sale, err := scanSale(rows)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao escanear venda")
		}
		sales = append(sales, sale)
	}

	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de vendas")
	}

	return sales, nil
}

func scanSale(rows *sql.Rows) (*domain.Sale, error) {
	var (
		sale         domain.Sale
		itemsJSON    []byte
		customerName sql.NullString
		createdAt    sql.NullTime
	)

	err := rows.Scan(
		&sale.ID,
		&sale.ReceiptNumber,
		&itemsJSON,
		&sale.Total,
		&sale.PaymentMethod,
		&customerName,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	if customerName.Valid {
		sale.CustomerName = customerName.String
	}

	// Timestamp inválido fica zerado; o agregador exclui o registro dos
	// buckets que não consegue calcular em vez de abortar a agregação.
	if createdAt.Valid {
		sale.Timestamp = createdAt.Time
	}

	sale.Items = make([]domain.SaleItem, 0)
	if len(itemsJSON) > 0 {
		if err := json.Unmarshal(itemsJSON, &sale.Items); err != nil {
			log.L.WithError(err).WithField("sale_id", sale.ID).
				Warn("Itens da venda com JSON malformado, mantendo lista vazia")
			sale.Items = make([]domain.SaleItem, 0)
		}
	}

	return &sale, nil
}
