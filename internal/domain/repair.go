package domain

import "time"

// RepairStatus representa o estado de um conserto em loja
type RepairStatus string

const (
	RepairStatusPending    RepairStatus = "pending"
	RepairStatusInProgress RepairStatus = "in_progress"
	RepairStatusCompleted  RepairStatus = "completed"
	RepairStatusDelivered  RepairStatus = "delivered"
)

// Repair alimenta apenas contagens independentes de período no dashboard
// (consertos em aberto); não entra nos agregados de venda.
type Repair struct {
	ID          string       `json:"id"`
	Device      string       `json:"device"`
	Description string       `json:"description,omitempty"`
	Status      RepairStatus `json:"status"`
	Cost        float64      `json:"cost"`
	CreatedAt   time.Time    `json:"created_at"`
}

// Open indica se o conserto ainda está em andamento
func (r Repair) Open() bool {
	return r.Status == RepairStatusPending || r.Status == RepairStatusInProgress
}

// StockLogEntry registra uma movimentação de estoque (entrada ou saída)
type StockLogEntry struct {
	ID        string    `json:"id"`
	ProductID string    `json:"product_id"`
	Change    int       `json:"change"`
	Reason    string    `json:"reason,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
