package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-kpi-pipeline/infrastructure/database/postgres"
	"github.com/vfg2006/campaign-kpi-pipeline/infrastructure/repository"
	"github.com/vfg2006/campaign-kpi-pipeline/internal/api"
	"github.com/vfg2006/campaign-kpi-pipeline/internal/config"
	"github.com/vfg2006/campaign-kpi-pipeline/internal/metrics"
	"github.com/vfg2006/campaign-kpi-pipeline/internal/scheduler"
	"github.com/vfg2006/campaign-kpi-pipeline/internal/usecases/ingesting"
	"github.com/vfg2006/campaign-kpi-pipeline/internal/usecases/kpi"
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

	adEventRepo := repository.NewAdEventRepository(pgConn)
	paymentEventRepo := repository.NewPaymentEventRepository(pgConn)
	kpiRepo := repository.NewDailyCampaignKPIRepository(pgConn)
	runRepo := repository.NewPipelineRunRepository(pgConn)

	kpiService := kpi.NewService(adEventRepo, paymentEventRepo, kpiRepo, runRepo).
		WithMetrics(metrics.NewCollector())

	ingestService := ingesting.NewService(adEventRepo, paymentEventRepo, cfg.Ingestion.RawDir)

	// Inicializa o agendador do pipeline
	pipelineSyncService := scheduler.NewKPIPipelineSyncService(kpiService, cfg)

	// Inicia o agendador em background
	if err := pipelineSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador do pipeline de KPIs")
	} else {
		logrus.Info("Agendador do pipeline de KPIs iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		kpiService,
		ingestService,
		kpiRepo,
		pipelineSyncService,
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
