package dashboarding

import (
	"github.com/vfg2006/shop-manager-api/internal/domain"
	"github.com/vfg2006/shop-manager-api/pkg/utils"
)

// saleAccumulator acumula os totais de um subconjunto de vendas em uma
// única passada
type saleAccumulator struct {
	revenue     float64
	orders      int
	qty         int
	profit      float64
	cash        float64
	mobileMoney float64
	bank        float64
}

// foldSales percorre as vendas uma única vez acumulando receita, pedidos,
// quantidade, lucro e a quebra por forma de pagamento. O lucro de cada item
// parte do total da linha (que já carrega descontos), não de unitPrice vezes
// quantidade. Itens cujo produto não existe mais no catálogo contam
// quantidade e receita normalmente, mas contribuem custo zero para o lucro.
func foldSales(sales []*domain.Sale, products map[string]*domain.Product) saleAccumulator {
	var acc saleAccumulator

	for _, sale := range sales {
		acc.revenue += sale.Total
		acc.orders++

		switch sale.PaymentMethod {
		case domain.PaymentCash:
			acc.cash += sale.Total
		case domain.PaymentMobileMoney:
			acc.mobileMoney += sale.Total
		case domain.PaymentBank:
			acc.bank += sale.Total
		}

		for _, item := range sale.Items {
			acc.qty += item.Quantity

			cost := 0.0
			if product, ok := products[item.ProductID]; ok {
				cost = product.CostPrice
			}
			acc.profit += item.LineTotal - cost*float64(item.Quantity)
		}
	}

	return acc
}

// buildStats monta as estatísticas agregadas comparando os dois períodos
func buildStats(current, previous saleAccumulator) domain.AggregateStats {
	margin := 0.0
	if current.revenue > 0 {
		margin = utils.RoundWithTwoDecimalPlace(current.profit / current.revenue * 100)
	}

	return domain.AggregateStats{
		Revenue:            utils.RoundWithTwoDecimalPlace(current.revenue),
		RevenueTrendPct:    domain.TrendPercent(current.revenue, previous.revenue),
		Orders:             current.orders,
		OrdersTrendPct:     domain.TrendPercent(float64(current.orders), float64(previous.orders)),
		Profit:             utils.RoundWithTwoDecimalPlace(current.profit),
		Margin:             margin,
		QtySold:            current.qty,
		CashRevenue:        utils.RoundWithTwoDecimalPlace(current.cash),
		MobileMoneyRevenue: utils.RoundWithTwoDecimalPlace(current.mobileMoney),
		BankRevenue:        utils.RoundWithTwoDecimalPlace(current.bank),
	}
}
