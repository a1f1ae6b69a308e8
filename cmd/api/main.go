package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/shop-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/shop-manager-api/infrastructure/kvstore"
	"github.com/vfg2006/shop-manager-api/infrastructure/repository"
	"github.com/vfg2006/shop-manager-api/internal/api"
	"github.com/vfg2006/shop-manager-api/internal/config"
	"github.com/vfg2006/shop-manager-api/internal/scheduler"
	"github.com/vfg2006/shop-manager-api/internal/usecases/dashboarding"
	"github.com/vfg2006/shop-manager-api/internal/usecases/holding"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	saleRepo := repository.NewSaleRepository(pgConn)
	productRepo := repository.NewProductRepository(pgConn)
	repairRepo := repository.NewRepairRepository(pgConn)
	stockLogRepo := repository.NewStockLogRepository(pgConn)

	dashboardService := dashboarding.NewService(saleRepo, productRepo, repairRepo, stockLogRepo)

	// Carrega as coleções de origem antes de aceitar requisições de dashboard
	if err := dashboardService.Load(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao carregar as coleções do dashboard na inicialização")
	}

	// Store compartilhado das vendas em espera e marcadores de banner
	store := kvstore.NewMemoryStore()

	holdTracker := holding.NewService(store, cfg.Dashboard)
	defer holdTracker.Close()

	pendingRecheckService := scheduler.NewPendingRecheckService(holdTracker, cfg)

	if err := pendingRecheckService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de reavaliação de pendências")
	} else {
		logrus.Info("Agendador de reavaliação de pendências iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		dashboardService,
		holdTracker,
		pendingRecheckService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
