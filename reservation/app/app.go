package app

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/tpfoyer/foyer-service/pkg/kafka"
	"github.com/tpfoyer/foyer-service/pkg/logger"
	"github.com/tpfoyer/foyer-service/pkg/postgres"
	"github.com/tpfoyer/foyer-service/reservation/config"
	"github.com/tpfoyer/foyer-service/reservation/internal/events"
	"github.com/tpfoyer/foyer-service/reservation/internal/handler"
	"github.com/tpfoyer/foyer-service/reservation/internal/repository"
	"github.com/tpfoyer/foyer-service/reservation/internal/server"
	"github.com/tpfoyer/foyer-service/reservation/internal/service"
	"github.com/tpfoyer/foyer-service/reservation/migrations"
)

func Run(cfg *config.Config) error {
	log := logger.NewLogger(cfg.Log, "reservation")
	defer log.Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := postgres.NewPostgresDB(ctx, &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		return fmt.Errorf("db init: %w", err)
	}
	defer db.Close()

	repo, err := repository.NewRepository(db, log)
	if err != nil {
		return fmt.Errorf("repo: %w", err)
	}

	var opts []service.Option
	if cfg.Kafka.Enabled() {
		producer, err := kafka.NewProducer(cfg.Kafka)
		if err != nil {
			return fmt.Errorf("kafka.NewProducer: %w", err)
		}
		defer func() {
			if err := producer.Close(); err != nil {
				log.Error("producer.Close", zap.Error(err))
			}
		}()
		opts = append(opts, service.WithPublisher(events.NewPublisher(kafka.NewEnqueuer(producer), log)))
	} else {
		log.Warn("kafka is not configured, reservation events are disabled")
	}

	svc := service.NewService(repo, log, opts...)
	h := handler.New(svc, log)
	srv := server.NewServer(cfg.Server, h.NewRouter())

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("http server start ON: ",
			zap.String("addr",
				net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))
		return srv.Run()
	})
	g.Go(func() error {
		<-gCtx.Done()
		log.Debug("Graceful shutdown", zap.Error(context.Cause(gCtx)))

		closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
		defer cancel()
		return srv.Stop(closeCtx)
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	log.Info("Graceful shutdown finished")
	return nil
}
