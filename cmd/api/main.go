package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/akozyrev/basket-analytics-api/infrastructure/database/postgres"
	"github.com/akozyrev/basket-analytics-api/infrastructure/repository"
	"github.com/akozyrev/basket-analytics-api/internal/api"
	"github.com/akozyrev/basket-analytics-api/internal/config"
	"github.com/akozyrev/basket-analytics-api/internal/scheduler"
	"github.com/akozyrev/basket-analytics-api/internal/usecases/reporting"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("invalid log level: %s, falling back to 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	basketRepo := repository.NewBasketRepository(pgConn)
	affinityRepo := repository.NewAffinityRepository(pgConn)
	momentumRepo := repository.NewMomentumRepository(pgConn)
	snapshotRepo := repository.NewSummarySnapshotRepository(pgConn)

	reportingService := reporting.NewService(cfg, basketRepo, affinityRepo, momentumRepo)

	summarySnapshotService := scheduler.NewSummarySnapshotService(reportingService, snapshotRepo, cfg)

	if err := summarySnapshotService.Start(ctx); err != nil {
		logrus.WithError(err).Error("failed to start summary snapshot scheduler")
	} else {
		logrus.Info("summary snapshot scheduler started")
	}

	server, err := api.New(
		cfg,
		reportingService,
		snapshotRepo,
		summarySnapshotService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("failed to connect to PostgreSQL")
	}

	if err := conn.Ping(ctx); err != nil {
		logrus.WithError(err).Fatal("failed to ping PostgreSQL")
	}

	logrus.Info("PostgreSQL connection established")
	return conn
}
