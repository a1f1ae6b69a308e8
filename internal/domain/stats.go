package domain

// RankMetric é a métrica selecionável para o ranking de produtos
type RankMetric string

const (
	RankByQuantity RankMetric = "quantity"
	RankByRevenue  RankMetric = "revenue"
)

// ParseRankMetric valida o parâmetro de métrica vindo da API.
// Valores desconhecidos caem em quantidade.
func ParseRankMetric(raw string) RankMetric {
	if RankMetric(raw) == RankByRevenue {
		return RankByRevenue
	}
	return RankByQuantity
}

// AggregateStats é o conjunto de totais derivados de um período. Nunca é
// persistido: é recalculado integralmente a cada gatilho relevante e duas
// execuções com as mesmas entradas produzem saída idêntica.
type AggregateStats struct {
	Revenue         float64 `json:"revenue"`
	RevenueTrendPct float64 `json:"revenue_trend_pct"`
	Orders          int     `json:"orders"`
	OrdersTrendPct  float64 `json:"orders_trend_pct"`
	Profit          float64 `json:"profit"`
	Margin          float64 `json:"margin"`
	QtySold         int     `json:"qty_sold"`
	TopCustomer     string  `json:"top_customer,omitempty"`

	CashRevenue        float64 `json:"cash_revenue"`
	MobileMoneyRevenue float64 `json:"mobile_money_revenue"`
	BankRevenue        float64 `json:"bank_revenue"`

	// Contagens independentes de período (feed de atividade)
	InventoryValue float64 `json:"inventory_value"`
	LowStockCount  int     `json:"low_stock_count"`
	OpenRepairs    int     `json:"open_repairs"`
	StockChanges   int     `json:"stock_changes"`
}

// ChartBucket é um ponto ordenável da série do gráfico. A chave é sempre
// ordenável lexicograficamente: "00".."23" para hora, "2006-01-02" para dia
// e "2006-01" para mês. Buckets populados fora de ordem ainda renderizam
// da esquerda para a direita no tempo.
type ChartBucket struct {
	Key     string  `json:"key"`
	Label   string  `json:"label"`
	Revenue float64 `json:"revenue"`
	Orders  int     `json:"orders"`
}

// TopProduct é uma linha do ranking de produtos mais vendidos
type TopProduct struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	SKU       string  `json:"sku"`
	Quantity  int     `json:"quantity"`
	Revenue   float64 `json:"revenue"`
}

// TopCustomer é uma linha do ranking de clientes por gasto no período
type TopCustomer struct {
	Name     string  `json:"name"`
	Total    float64 `json:"total"`
	Orders   int     `json:"orders"`
	TrendPct float64 `json:"trend_pct"`
}

// CategoryCount é a quantidade de unidades vendidas por categoria de produto
type CategoryCount struct {
	Category ProductType `json:"category"`
	Units    int         `json:"units"`
}
