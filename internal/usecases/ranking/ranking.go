// Package ranking agrupa vendas em rankings de produtos, clientes e
// categorias para o dashboard.
package ranking

import (
	"sort"

	"github.com/vfg2006/shop-manager-api/internal/domain"
	"github.com/vfg2006/shop-manager-api/pkg/utils"
)

// TopListSize é o tamanho dos rankings exibidos no dashboard
const TopListSize = 5

// TopProducts agrupa os itens vendidos por produto e devolve os maiores pela
// métrica escolhida. Itens de produtos removidos do catálogo ficam fora do
// ranking (mas continuam contando nos agregados e nas categorias). A receita
// de cada produto vem do total das linhas, preservando descontos. A ordenação
// é estável: em empate vence o produto que apareceu primeiro no fluxo de vendas.
func TopProducts(sales []*domain.Sale, products map[string]*domain.Product, metric domain.RankMetric, limit int) []domain.TopProduct {
	grouped := make(map[string]*domain.TopProduct)
	order := make([]string, 0)

	for _, sale := range sales {
		for _, item := range sale.Items {
			product, found := products[item.ProductID]
			if !found {
				continue
			}

			entry, ok := grouped[item.ProductID]
			if !ok {
				entry = &domain.TopProduct{
					ProductID: item.ProductID,
					Name:      product.Name,
					SKU:       product.SKU,
				}
				grouped[item.ProductID] = entry
				order = append(order, item.ProductID)
			}

			entry.Quantity += item.Quantity
			entry.Revenue += item.LineTotal
		}
	}

	out := make([]domain.TopProduct, 0, len(order))
	for _, productID := range order {
		entry := grouped[productID]
		entry.Revenue = utils.RoundWithTwoDecimalPlace(entry.Revenue)
		out = append(out, *entry)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if metric == domain.RankByRevenue {
			return out[i].Revenue > out[j].Revenue
		}
		return out[i].Quantity > out[j].Quantity
	})

	if len(out) > limit {
		out = out[:limit]
	}

	return out
}

// TopCustomers agrupa as vendas por cliente (vendas sem nome caem no
// comprador avulso) e devolve os maiores por total gasto. A tendência de
// cada cliente compara o gasto no período corrente com o anterior; sem
// período de comparação a tendência é zero.
func TopCustomers(currentSales, previousSales []*domain.Sale, noComparison bool, limit int) []domain.TopCustomer {
	previousTotals := make(map[string]float64)
	for _, sale := range previousSales {
		previousTotals[sale.Customer()] += sale.Total
	}

	grouped := make(map[string]*domain.TopCustomer)
	order := make([]string, 0)

	for _, sale := range currentSales {
		name := sale.Customer()
		entry, ok := grouped[name]
		if !ok {
			entry = &domain.TopCustomer{Name: name}
			grouped[name] = entry
			order = append(order, name)
		}
		entry.Total += sale.Total
		entry.Orders++
	}

	out := make([]domain.TopCustomer, 0, len(order))
	for _, name := range order {
		entry := grouped[name]
		entry.Total = utils.RoundWithTwoDecimalPlace(entry.Total)
		if !noComparison {
			entry.TrendPct = domain.TrendPercent(entry.Total, previousTotals[name])
		}
		out = append(out, *entry)
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Total > out[j].Total })

	if len(out) > limit {
		out = out[:limit]
	}

	return out
}

// CategoryDistribution conta unidades vendidas por categoria de produto.
// Itens de produto desconhecido caem na categoria "Other". A saída sai
// ordenada por unidades, estável pela primeira aparição.
func CategoryDistribution(sales []*domain.Sale, products map[string]*domain.Product) []domain.CategoryCount {
	grouped := make(map[domain.ProductType]*domain.CategoryCount)
	order := make([]domain.ProductType, 0)

	for _, sale := range sales {
		for _, item := range sale.Items {
			category := domain.ProductTypeOther
			if product, ok := products[item.ProductID]; ok {
				category = product.Type
			}

			entry, found := grouped[category]
			if !found {
				entry = &domain.CategoryCount{Category: category}
				grouped[category] = entry
				order = append(order, category)
			}
			entry.Units += item.Quantity
		}
	}

	out := make([]domain.CategoryCount, 0, len(order))
	for _, category := range order {
		out = append(out, *grouped[category])
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Units > out[j].Units })

	return out
}
