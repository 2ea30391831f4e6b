package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/betpicks/betsites-api/infrastructure/database/postgres"
	"github.com/betpicks/betsites-api/infrastructure/repository"
	"github.com/betpicks/betsites-api/internal/api"
	"github.com/betpicks/betsites-api/internal/config"
	"github.com/betpicks/betsites-api/internal/usecases/listing"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("invalid log level %q, falling back to info", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	conn, err := postgres.NewConnection(cfg.Database)
	if err != nil {
		logrus.Fatal(err)
	}
	defer conn.Close()

	// The listener starts regardless of connection outcome; an unreachable
	// database surfaces as operation-level errors, not a startup failure.
	go checkConnection(ctx, conn)

	rankItemRepo := repository.NewRankItemRepository(conn)
	listingService := listing.NewRankItemService(rankItemRepo)

	server, err := api.New(cfg, listingService)
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

// checkConnection pings the database in the background and only logs the
// outcome.
func checkConnection(ctx context.Context, conn *postgres.Connection) {
	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := conn.Ping(pingCtx); err != nil {
		logrus.WithError(err).Error("could not reach PostgreSQL, requests will fail until it recovers")
		return
	}

	logrus.Info("PostgreSQL connection established")
}
