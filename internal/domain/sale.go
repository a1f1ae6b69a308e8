// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import "time"

// PaymentMethod representa a forma de pagamento de uma venda
type PaymentMethod string

const (
	PaymentCash        PaymentMethod = "cash"
	PaymentMobileMoney PaymentMethod = "mobile_money"
	PaymentBank        PaymentMethod = "bank"
	PaymentOther       PaymentMethod = "other"
)

// WalkInCustomer é o rótulo-sentinela para vendas sem nome de cliente.
// Todas as vendas anônimas são agregadas sob esse único rótulo.
const WalkInCustomer = "Walk-in"

// SaleItem é uma linha de uma venda. ProductID pode referenciar um produto
// já removido do catálogo; a agregação precisa tolerar essa referência pendente.
type SaleItem struct {
	ProductID string  `json:"product_id"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	LineTotal float64 `json:"line_total"`
}

// Sale é imutável depois de criada; o núcleo de analytics apenas a lê.
type Sale struct {
	ID            string        `json:"id"`
	ReceiptNumber string        `json:"receipt_number"`
	Items         []SaleItem    `json:"items"`
	Total         float64       `json:"total"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	CustomerName  string        `json:"customer_name,omitempty"`
	Timestamp     time.Time     `json:"timestamp"`
}

// Customer retorna o nome do cliente, normalizando vendas anônimas
// para o rótulo-sentinela de cliente avulso.
func (s Sale) Customer() string {
	if s.CustomerName == "" {
		return WalkInCustomer
	}
	return s.CustomerName
}
