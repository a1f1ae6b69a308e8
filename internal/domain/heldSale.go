package domain

import "time"

// HeldSale é uma venda "pendurada" pelo caixa (transação incompleta guardada
// para retomada posterior). A lista de vendas em espera pertence ao fluxo de
// PDV; este núcleo apenas a observa via o store compartilhado.
type HeldSale struct {
	ID        string     `json:"id"`
	Items     []SaleItem `json:"items"`
	Note      string     `json:"note,omitempty"`
	Timestamp time.Time  `json:"timestamp"`
}

// Value calcula o valor da venda em espera somando unitPrice × quantity
// de cada item. O campo LineTotal não é usado aqui de propósito: itens
// pendurados podem ainda não ter o total de linha consolidado.
func (h HeldSale) Value() float64 {
	var total float64
	for _, item := range h.Items {
		total += item.UnitPrice * float64(item.Quantity)
	}
	return total
}

// HeldSaleSummary é o resumo exposto para a camada de apresentação
type HeldSaleSummary struct {
	Count           int        `json:"count"`
	OldestTimestamp *time.Time `json:"oldest_timestamp,omitempty"`
	TotalValue      float64    `json:"total_value"`
}

// SummarizeHeldSales produz o resumo agregado da lista de vendas em espera
func SummarizeHeldSales(holds []HeldSale) HeldSaleSummary {
	summary := HeldSaleSummary{Count: len(holds)}

	for _, hold := range holds {
		summary.TotalValue += hold.Value()

		if hold.Timestamp.IsZero() {
			continue
		}
		if summary.OldestTimestamp == nil || hold.Timestamp.Before(*summary.OldestTimestamp) {
			ts := hold.Timestamp
			summary.OldestTimestamp = &ts
		}
	}

	return summary
}
