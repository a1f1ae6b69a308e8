package domain

import "github.com/vfg2006/shop-manager-api/pkg/utils"

// TrendPercent calcula a variação percentual entre o período corrente e o
// anterior, com regra definida para base zero:
//
//	anterior == 0 e corrente > 0  → +100
//	anterior == 0 e corrente == 0 → 0
//	caso contrário                → (corrente − anterior) / anterior × 100
//
// A mesma regra vale para todo trend reportado (receita, pedidos, por cliente,
// por produto) e nunca produz NaN nem Inf.
func TrendPercent(current, previous float64) float64 {
	if previous == 0 {
		if current > 0 {
			return 100
		}
		return 0
	}

	return utils.RoundWithTwoDecimalPlace((current - previous) / previous * 100)
}
