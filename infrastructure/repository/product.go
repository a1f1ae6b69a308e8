package repository

import (
	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/shop-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/shop-manager-api/internal/domain"
)

const productsTable = "products p"

// ProductRepository expõe o acesso somente-leitura ao catálogo de produtos
type ProductRepository interface {
	ListProducts() ([]*domain.Product, error)
}

type productRepository struct {
	conn *postgres.Connection
}

func NewProductRepository(conn *postgres.Connection) ProductRepository {
	return &productRepository{
		conn: conn,
	}
}

func (r *productRepository) ListProducts() ([]*domain.Product, error) {
	query, args, err := squirrel.
		Select("p.id, p.name, p.sku, p.type, p.cost_price, p.selling_price, p.stock_quantity, p.reorder_level").
		From(productsTable).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query de produtos")
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao executar a query de produtos")
	}
	defer rows.Close()

	products := make([]*domain.Product, 0)
	for rows.Next() {
		var product domain.Product

		err := rows.Scan(
			&product.ID,
			&product.Name,
			&product.SKU,
			&product.Type,
			&product.CostPrice,
			&product.SellingPrice,
			&product.StockQuantity,
			&product.ReorderLevel,
		)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao escanear produto")
		}

		products = append(products, &product)
	}

	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de produtos")
	}

	return products, nil
}
