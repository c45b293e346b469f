package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/margin-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/margin-insights-api/infrastructure/repository"
	"github.com/vfg2006/margin-insights-api/internal/api"
	"github.com/vfg2006/margin-insights-api/internal/config"
	"github.com/vfg2006/margin-insights-api/internal/domain"
	"github.com/vfg2006/margin-insights-api/internal/scheduler"
	"github.com/vfg2006/margin-insights-api/internal/usecases/authenticating"
	"github.com/vfg2006/margin-insights-api/internal/usecases/insighting"
	"github.com/vfg2006/margin-insights-api/internal/usecases/pricing"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

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

	productRepo := repository.NewProductRepository(pgConn)
	saleRepo := repository.NewSaleRepository(pgConn)
	businessConfigRepo := repository.NewBusinessConfigRepository(pgConn)
	channelFeeRepo := repository.NewChannelFeeRepository(pgConn)
	fixedCostRepo := repository.NewFixedCostRepository(pgConn)
	priceHistoryRepo := repository.NewPriceHistoryRepository(pgConn)
	insightRepo := repository.NewInsightRepository(pgConn)

	defaults := engineDefaults(cfg.Engine)

	authenticator := authenticating.NewService(cfg)

	engine := insighting.NewEngine(insighting.DefaultRules(), cfg.Engine.MaxSecondaryInsights, defaults)
	insightService := insighting.NewService(
		engine,
		productRepo,
		saleRepo,
		channelFeeRepo,
		fixedCostRepo,
		businessConfigRepo,
		priceHistoryRepo,
		insightRepo,
		cfg.Engine.HistoryLimit,
	)

	pricingService := pricing.NewService(
		productRepo,
		saleRepo,
		channelFeeRepo,
		fixedCostRepo,
		businessConfigRepo,
		defaults,
	)

	insightSyncService, err := scheduler.NewInsightSnapshotSyncService(businessConfigRepo, insightService, cfg)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := insightSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de insights")
	} else {
		logrus.Info("Agendador de insights iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		insightService,
		pricingService,
		authenticator,
		insightSyncService,
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

// engineDefaults converte os padrões do motor configurados no ambiente
func engineDefaults(cfg config.Engine) domain.ResolvedBusinessConfig {
	return domain.ResolvedBusinessConfig{
		TargetMarginPercent: cfg.DefaultTargetMarginPercent,
		AverageTaxPercent:   cfg.DefaultAverageTaxPercent,
		TargetCMVPercent:    cfg.DefaultTargetCMVPercent,
	}
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
