package domain

// ProductType é a categoria do produto no catálogo
type ProductType string

const (
	ProductTypePhone     ProductType = "phone"
	ProductTypeAccessory ProductType = "accessory"
	ProductTypeSparePart ProductType = "spare_part"
	ProductTypeService   ProductType = "service"

	// ProductTypeOther é usado quando o produto referenciado pela venda
	// não pode ser resolvido (produto removido após a venda).
	ProductTypeOther ProductType = "Other"
)

type Product struct {
	ID            string      `json:"id"`
	Name          string      `json:"name"`
	SKU           string      `json:"sku"`
	Type          ProductType `json:"type"`
	CostPrice     float64     `json:"cost_price"`
	SellingPrice  float64     `json:"selling_price"`
	StockQuantity int         `json:"stock_quantity"`
	ReorderLevel  int         `json:"reorder_level"`
}

// LowStock indica se o produto está abaixo do nível de reposição
func (p Product) LowStock() bool {
	return p.StockQuantity <= p.ReorderLevel
}
