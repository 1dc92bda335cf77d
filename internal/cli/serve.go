package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/spf13/cobra"

	"github.com/samandr77/microservices/settlement/internal/api"
	"github.com/samandr77/microservices/settlement/internal/service"
	"github.com/samandr77/microservices/settlement/pkg/broker"
	"github.com/samandr77/microservices/settlement/pkg/config"
	"github.com/samandr77/microservices/settlement/pkg/job"
	"github.com/samandr77/microservices/settlement/pkg/logger"
)

const (
	ReadTimeout     = 3 * time.Second
	WriteTimeout    = 2 * time.Minute
	ShutdownTimeout = 10 * time.Second
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the settlement API, periodic runs and run requests from Kafka",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.New(opts.envPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			return serve(cmd.Context(), cfg)
		},
	}
}

func serve(ctx context.Context, cfg config.Config) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	l, err := logger.New(cfg.Logger.Level, cfg.Logger.Format)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}

	s, closeFn := newService(cfg, l)
	defer closeFn()

	jobs := job.NewService().
		TryRegisterJob(cfg.Settlement.Interval > 0, "settle pending invoices", cfg.Settlement.Interval, s.RunJob)
	jobs.Start(ctx)
	defer jobs.Stop()

	if cfg.Kafka.Enabled() {
		consumer := broker.NewConsumer(cfg.Kafka.BrokerAddrs(), cfg.Kafka.GroupID, cfg.Kafka.RequestedTopic).
			Handle(cfg.Kafka.RequestedTopic, settlementRequestedHandler(s)).
			Consume(ctx)
		defer consumer.Close()
	}

	handler := api.NewHandler(s)
	mw := api.NewMiddleware(cfg.HTTP.AuthEnabled, cfg.HTTP.AuthSecret)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      api.NewRouter(handler, mw),
		ReadTimeout:  ReadTimeout,
		WriteTimeout: WriteTimeout,
	}

	errCh := make(chan error, 1)

	go func() {
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("listen and serve: %w", err)
		}

		close(errCh)
	}()

	slog.InfoContext(ctx, "service started",
		"port", cfg.HTTP.Port,
		"jobs", jobs.Len(),
		"kafka", cfg.Kafka.Enabled(),
	)

	select {
	case err := <-errCh:
		stop()
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		slog.Error("server shutdown", "error", err)
	}

	return <-errCh
}

func settlementRequestedHandler(s *service.Service) broker.Handler {
	return func(ctx context.Context, m kafka.Message) error {
		event, err := broker.DecodeSettlementRequested(m)
		if err != nil {
			return err
		}

		if event.RequestID != "" {
			ctx = logger.WithRequestID(ctx, event.RequestID)
		}

		_, err = s.Run(ctx)
		if err != nil {
			return fmt.Errorf("run settlement: %w", err)
		}

		return nil
	}
}
