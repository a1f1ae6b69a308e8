package dashboarding

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/shop-manager-api/infrastructure/repository/mocks"
	"github.com/vfg2006/shop-manager-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func newLoadedService(t *testing.T, sales []*domain.Sale, products []*domain.Product, repairs []*domain.Repair, stockLog []*domain.StockLogEntry) *Service {
	ctrl := gomock.NewController(t)

	saleRepo := mocks.NewMockSaleRepository(ctrl)
	productRepo := mocks.NewMockProductRepository(ctrl)
	repairRepo := mocks.NewMockRepairRepository(ctrl)
	stockLogRepo := mocks.NewMockStockLogRepository(ctrl)

	saleRepo.EXPECT().ListSales().Return(sales, nil)
	productRepo.EXPECT().ListProducts().Return(products, nil)
	repairRepo.EXPECT().ListRepairs().Return(repairs, nil)
	stockLogRepo.EXPECT().ListEntries().Return(stockLog, nil)

	service := NewService(saleRepo, productRepo, repairRepo, stockLogRepo)
	assert.NoError(t, service.Load(context.Background()))

	return service
}

func TestService_Snapshot_BeforeLoad(t *testing.T) {
	ctrl := gomock.NewController(t)

	service := NewService(
		mocks.NewMockSaleRepository(ctrl),
		mocks.NewMockProductRepository(ctrl),
		mocks.NewMockRepairRepository(ctrl),
		mocks.NewMockStockLogRepository(ctrl),
	)

	_, err := service.Snapshot(Query{Mode: domain.PeriodToday}, time.Now())
	assert.ErrorIs(t, err, ErrNotLoaded)
}

func TestService_Load_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)

	saleRepo := mocks.NewMockSaleRepository(ctrl)
	saleRepo.EXPECT().ListSales().Return(nil, errors.New("conexão perdida"))

	service := NewService(
		saleRepo,
		mocks.NewMockProductRepository(ctrl),
		mocks.NewMockRepairRepository(ctrl),
		mocks.NewMockStockLogRepository(ctrl),
	)

	err := service.Load(context.Background())
	assert.Error(t, err)

	// Uma carga com erro não libera o snapshot
	_, err = service.Snapshot(Query{Mode: domain.PeriodToday}, time.Now())
	assert.ErrorIs(t, err, ErrNotLoaded)
}

func TestService_Snapshot_TodayAggregates(t *testing.T) {
	now := time.Date(2024, 3, 15, 18, 0, 0, 0, time.UTC)

	products := []*domain.Product{
		{ID: "p1", Name: "Capa de celular", SKU: "CAP-01", Type: domain.ProductTypeAccessory, CostPrice: 400, StockQuantity: 10, ReorderLevel: 2},
	}

	sales := []*domain.Sale{
		{
			ID:            "s1",
			Items:         []domain.SaleItem{{ProductID: "p1", Quantity: 1, UnitPrice: 1000, LineTotal: 1000}},
			Total:         1000,
			PaymentMethod: domain.PaymentCash,
			CustomerName:  "Maria",
			Timestamp:     time.Date(2024, 3, 15, 9, 15, 0, 0, time.UTC),
		},
		{
			ID:            "s2",
			Items:         []domain.SaleItem{{ProductID: "p1", Quantity: 2, UnitPrice: 1000, LineTotal: 2000}},
			Total:         2000,
			PaymentMethod: domain.PaymentMobileMoney,
			Timestamp:     time.Date(2024, 3, 15, 14, 45, 0, 0, time.UTC),
		},
		{
			// Venda de ontem: só entra no período de comparação
			ID:            "s3",
			Items:         []domain.SaleItem{{ProductID: "p1", Quantity: 1, UnitPrice: 1500, LineTotal: 1500}},
			Total:         1500,
			PaymentMethod: domain.PaymentCash,
			Timestamp:     time.Date(2024, 3, 14, 10, 0, 0, 0, time.UTC),
		},
	}

	service := newLoadedService(t, sales, products, nil, nil)

	response, err := service.Snapshot(Query{Mode: domain.PeriodToday}, now)
	assert.NoError(t, err)

	assert.Equal(t, 3000.0, response.Stats.Revenue)
	assert.Equal(t, 2, response.Stats.Orders)
	assert.Equal(t, 3, response.Stats.QtySold)
	assert.Equal(t, 100.0, response.Stats.RevenueTrendPct)
	assert.Equal(t, 100.0, response.Stats.OrdersTrendPct)

	// Lucro: (1000-400)*1 + (1000-400)*2 = 1800; margem 60%
	assert.Equal(t, 1800.0, response.Stats.Profit)
	assert.Equal(t, 60.0, response.Stats.Margin)

	assert.Equal(t, 1000.0, response.Stats.CashRevenue)
	assert.Equal(t, 2000.0, response.Stats.MobileMoneyRevenue)
	assert.Equal(t, 0.0, response.Stats.BankRevenue)

	// Gráfico por hora: 24 buckets pré-semeados, receita nas horas certas
	assert.Len(t, response.Chart, 24)
	assert.Equal(t, "00", response.Chart[0].Key)
	assert.Equal(t, "23", response.Chart[23].Key)
	assert.Equal(t, 1000.0, response.Chart[9].Revenue)
	assert.Equal(t, 2000.0, response.Chart[14].Revenue)

	// A soma dos buckets bate com a receita do período
	var sum float64
	for _, bucket := range response.Chart {
		sum += bucket.Revenue
	}
	assert.Equal(t, response.Stats.Revenue, sum)

	// Cliente avulso e nomeado agrupados separadamente
	assert.Len(t, response.TopCustomers, 2)
	assert.Equal(t, domain.WalkInCustomer, response.TopCustomers[0].Name)
	assert.Equal(t, 2000.0, response.TopCustomers[0].Total)
	assert.Equal(t, domain.WalkInCustomer, response.Stats.TopCustomer)
}

func TestService_Snapshot_DiscountedLineProfit(t *testing.T) {
	now := time.Date(2024, 3, 15, 18, 0, 0, 0, time.UTC)

	products := []*domain.Product{
		{ID: "p1", Name: "Fone", CostPrice: 100, StockQuantity: 10, ReorderLevel: 2},
	}

	sales := []*domain.Sale{
		{
			ID: "s1",
			// Linha com desconto: lineTotal menor que unitPrice × quantity
			Items:         []domain.SaleItem{{ProductID: "p1", Quantity: 2, UnitPrice: 500, LineTotal: 800}},
			Total:         800,
			PaymentMethod: domain.PaymentCash,
			Timestamp:     time.Date(2024, 3, 15, 11, 0, 0, 0, time.UTC),
		},
	}

	service := newLoadedService(t, sales, products, nil, nil)

	response, err := service.Snapshot(Query{Mode: domain.PeriodToday}, now)
	assert.NoError(t, err)

	// Lucro parte do total da linha: 800 - 100×2 = 600
	assert.Equal(t, 600.0, response.Stats.Profit)
	assert.Equal(t, 75.0, response.Stats.Margin)
}

func TestService_Snapshot_DanglingProduct(t *testing.T) {
	now := time.Date(2024, 3, 15, 18, 0, 0, 0, time.UTC)

	sales := []*domain.Sale{
		{
			ID:            "s1",
			Items:         []domain.SaleItem{{ProductID: "ghost", Quantity: 2, UnitPrice: 500, LineTotal: 1000}},
			Total:         1000,
			PaymentMethod: domain.PaymentCash,
			Timestamp:     time.Date(2024, 3, 15, 11, 0, 0, 0, time.UTC),
		},
	}

	service := newLoadedService(t, sales, nil, nil, nil)

	response, err := service.Snapshot(Query{Mode: domain.PeriodToday}, now)
	assert.NoError(t, err)

	// Produto removido: quantidade e receita contam, custo vale zero
	assert.Equal(t, 1000.0, response.Stats.Revenue)
	assert.Equal(t, 2, response.Stats.QtySold)
	assert.Equal(t, 1000.0, response.Stats.Profit)

	// E a categoria cai em "Other"
	assert.Len(t, response.Categories, 1)
	assert.Equal(t, domain.ProductTypeOther, response.Categories[0].Category)
	assert.Equal(t, 2, response.Categories[0].Units)
}

func TestService_Snapshot_MalformedTimestampExcluded(t *testing.T) {
	now := time.Date(2024, 3, 15, 18, 0, 0, 0, time.UTC)

	sales := []*domain.Sale{
		{
			ID:        "s1",
			Total:     100,
			Timestamp: time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC),
		},
		{
			// Data malformada no banco vira timestamp zerado: fica fora de
			// qualquer período, inclusive do AllTime
			ID:    "s2",
			Total: 999,
		},
	}

	service := newLoadedService(t, sales, nil, nil, nil)

	today, err := service.Snapshot(Query{Mode: domain.PeriodToday}, now)
	assert.NoError(t, err)
	assert.Equal(t, 100.0, today.Stats.Revenue)

	allTime, err := service.Snapshot(Query{Mode: domain.PeriodAllTime}, now)
	assert.NoError(t, err)
	assert.Equal(t, 100.0, allTime.Stats.Revenue)
	assert.Equal(t, 1, allTime.Stats.Orders)
}

func TestService_Snapshot_ActivityCounts(t *testing.T) {
	now := time.Date(2024, 3, 15, 18, 0, 0, 0, time.UTC)

	products := []*domain.Product{
		{ID: "p1", CostPrice: 100, StockQuantity: 5, ReorderLevel: 2},
		{ID: "p2", CostPrice: 50, StockQuantity: 1, ReorderLevel: 3},
	}

	repairs := []*domain.Repair{
		{ID: "r1", Status: domain.RepairStatusPending},
		{ID: "r2", Status: domain.RepairStatusInProgress},
		{ID: "r3", Status: domain.RepairStatusCompleted},
	}

	stockLog := []*domain.StockLogEntry{
		{ID: "l1", ProductID: "p1", Change: -1},
		{ID: "l2", ProductID: "p2", Change: 10},
	}

	service := newLoadedService(t, nil, products, repairs, stockLog)

	response, err := service.Snapshot(Query{Mode: domain.PeriodToday}, now)
	assert.NoError(t, err)

	assert.Equal(t, 550.0, response.Stats.InventoryValue)
	assert.Equal(t, 1, response.Stats.LowStockCount)
	assert.Equal(t, 2, response.Stats.OpenRepairs)
	assert.Equal(t, 2, response.Stats.StockChanges)
}

func TestService_Snapshot_Idempotent(t *testing.T) {
	now := time.Date(2024, 3, 15, 18, 0, 0, 0, time.UTC)

	sales := []*domain.Sale{
		{
			ID:            "s1",
			Items:         []domain.SaleItem{{ProductID: "p1", Quantity: 1, UnitPrice: 700, LineTotal: 700}},
			Total:         700,
			PaymentMethod: domain.PaymentBank,
			CustomerName:  "Ana",
			Timestamp:     time.Date(2024, 3, 15, 8, 0, 0, 0, time.UTC),
		},
	}

	service := newLoadedService(t, sales, nil, nil, nil)

	first, err := service.Snapshot(Query{Mode: domain.PeriodToday}, now)
	assert.NoError(t, err)

	second, err := service.Snapshot(Query{Mode: domain.PeriodToday}, now)
	assert.NoError(t, err)

	assert.Equal(t, first, second)
}
