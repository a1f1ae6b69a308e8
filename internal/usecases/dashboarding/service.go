// Package dashboarding contém o núcleo de analytics do dashboard operacional:
// resolução de período, agregação comparativa, buckets de gráfico e rankings.
package dashboarding

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/shop-manager-api/infrastructure/repository"
	"github.com/vfg2006/shop-manager-api/internal/domain"
	"github.com/vfg2006/shop-manager-api/internal/usecases/ranking"
)

// ErrNotLoaded indica que as coleções ainda não foram carregadas do banco
var ErrNotLoaded = errors.New("coleções ainda não carregadas")

// Query são os parâmetros de uma consulta ao dashboard
type Query struct {
	Mode        domain.PeriodMode
	CustomStart time.Time
	CustomEnd   time.Time
	Metric      domain.RankMetric
}

// Response é o conjunto completo de dados derivados expostos à apresentação
type Response struct {
	Period       domain.Period          `json:"period"`
	Stats        domain.AggregateStats  `json:"stats"`
	Chart        []domain.ChartBucket   `json:"chart"`
	TopProducts  []domain.TopProduct    `json:"top_products"`
	TopCustomers []domain.TopCustomer   `json:"top_customers"`
	Categories   []domain.CategoryCount `json:"categories"`
}

// Dashboarder é a interface do núcleo de analytics do dashboard
type Dashboarder interface {
	// Load busca as quatro coleções de origem de uma vez e as mantém em
	// memória; toda agregação é bloqueada até a carga completar
	Load(ctx context.Context) error

	// Snapshot deriva todos os agregados para a consulta informada.
	// É puro e idempotente: duas execuções com as mesmas entradas e o
	// mesmo relógio produzem saída idêntica.
	Snapshot(query Query, now time.Time) (*Response, error)
}

// Service implementa Dashboarder sobre as coleções carregadas em memória
type Service struct {
	saleRepo     repository.SaleRepository
	productRepo  repository.ProductRepository
	repairRepo   repository.RepairRepository
	stockLogRepo repository.StockLogRepository

	mu       sync.RWMutex
	loaded   bool
	sales    []*domain.Sale
	products map[string]*domain.Product
	repairs  []*domain.Repair
	stockLog []*domain.StockLogEntry
}

func NewService(
	saleRepo repository.SaleRepository,
	productRepo repository.ProductRepository,
	repairRepo repository.RepairRepository,
	stockLogRepo repository.StockLogRepository,
) *Service {
	return &Service{
		saleRepo:     saleRepo,
		productRepo:  productRepo,
		repairRepo:   repairRepo,
		stockLogRepo: stockLogRepo,
	}
}

// Load busca as coleções de vendas, produtos, consertos e log de estoque.
// A busca acontece uma única vez por chamada; as coleções chegam sem ordem
// garantida e toda filtragem/ordenação é feita aqui no núcleo.
func (s *Service) Load(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	sales, err := s.saleRepo.ListSales()
	if err != nil {
		return errors.Wrap(err, "erro ao carregar vendas")
	}

	products, err := s.productRepo.ListProducts()
	if err != nil {
		return errors.Wrap(err, "erro ao carregar produtos")
	}

	repairs, err := s.repairRepo.ListRepairs()
	if err != nil {
		return errors.Wrap(err, "erro ao carregar consertos")
	}

	stockLog, err := s.stockLogRepo.ListEntries()
	if err != nil {
		return errors.Wrap(err, "erro ao carregar log de estoque")
	}

	productIndex := make(map[string]*domain.Product, len(products))
	for _, product := range products {
		productIndex[product.ID] = product
	}

	s.mu.Lock()
	s.sales = sales
	s.products = productIndex
	s.repairs = repairs
	s.stockLog = stockLog
	s.loaded = true
	s.mu.Unlock()

	logrus.WithFields(logrus.Fields{
		"sales":     len(sales),
		"products":  len(products),
		"repairs":   len(repairs),
		"stock_log": len(stockLog),
	}).Info("Coleções do dashboard carregadas")

	return nil
}

// Snapshot deriva os agregados do período. Os dois subconjuntos filtrados
// (corrente e anterior) são calculados uma única vez e alimentam agregador,
// gráfico e rankings: a mesma fonte para todos os números.
func (s *Service) Snapshot(query Query, now time.Time) (*Response, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.loaded {
		return nil, ErrNotLoaded
	}

	period := domain.ResolvePeriod(query.Mode, query.CustomStart, query.CustomEnd, now)

	currentSales := filterByInterval(s.sales, period.Current)
	previousSales := filterByInterval(s.sales, period.Previous)

	current := foldSales(currentSales, s.products)
	previous := foldSales(previousSales, s.products)

	stats := buildStats(current, previous)
	s.fillActivityCounts(&stats)

	topCustomers := ranking.TopCustomers(currentSales, previousSales, period.Previous.Empty(), ranking.TopListSize)
	if len(topCustomers) > 0 {
		stats.TopCustomer = topCustomers[0].Name
	}

	return &Response{
		Period:       period,
		Stats:        stats,
		Chart:        BuildChartBuckets(currentSales, period.Grain),
		TopProducts:  ranking.TopProducts(currentSales, s.products, query.Metric, ranking.TopListSize),
		TopCustomers: topCustomers,
		Categories:   ranking.CategoryDistribution(currentSales, s.products),
	}, nil
}

// fillActivityCounts adiciona as contagens independentes de período
func (s *Service) fillActivityCounts(stats *domain.AggregateStats) {
	for _, product := range s.products {
		stats.InventoryValue += product.CostPrice * float64(product.StockQuantity)
		if product.LowStock() {
			stats.LowStockCount++
		}
	}

	for _, repair := range s.repairs {
		if repair.Open() {
			stats.OpenRepairs++
		}
	}

	stats.StockChanges = len(s.stockLog)
}

// filterByInterval restringe as vendas ao intervalo. Nenhuma venda é contada
// duas vezes nem omitida: este é o único ponto de filtragem por período.
func filterByInterval(sales []*domain.Sale, interval domain.Interval) []*domain.Sale {
	filtered := make([]*domain.Sale, 0, len(sales))
	for _, sale := range sales {
		if interval.Contains(sale.Timestamp) {
			filtered = append(filtered, sale)
		}
	}
	return filtered
}
