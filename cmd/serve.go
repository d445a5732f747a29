package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/antoniocesar16/addon-api-mkauth/internal/api"
	"github.com/antoniocesar16/addon-api-mkauth/internal/repository"
	"github.com/antoniocesar16/addon-api-mkauth/internal/service"
	"github.com/antoniocesar16/addon-api-mkauth/pkg/broker"
	"github.com/antoniocesar16/addon-api-mkauth/pkg/config"
	"github.com/antoniocesar16/addon-api-mkauth/pkg/logger"
	"github.com/antoniocesar16/addon-api-mkauth/pkg/postgres"
)

func newServeCmd() *cobra.Command {
	var skipMigrations bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context(), skipMigrations)
		},
	}

	cmd.Flags().BoolVar(&skipMigrations, "skip-migrations", false, "do not apply pending migrations on start")

	return cmd
}

func serve(ctx context.Context, skipMigrations bool) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	cfg, err := config.New(envPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	l, err := logger.New(cfg.Logger.Level)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}

	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	if !skipMigrations {
		err = postgres.UpMigrations(ctx, cfg.Postgres.DSN)
		if err != nil {
			return fmt.Errorf("up migrations: %w", err)
		}
	}

	pool, err := postgres.Connect(ctx, cfg.Postgres.DSN, cfg.Postgres.MaxConn)
	if err != nil {
		return fmt.Errorf("connect to postgres: %w", err)
	}
	defer pool.Close()

	repo := repository.New(pool)

	var producer service.Producer = broker.Nop{}

	if len(cfg.Kafka.Brokers) > 0 {
		p := broker.NewProducer(l, cfg.Kafka.Brokers, cfg.Kafka.InvoiceEventsTopic)
		defer p.Close()

		producer = p
	}

	ledger := service.NewLedger(repo, producer, loc)
	s := service.New(repo)

	handler := api.NewHandler(ledger, s, loc)

	router := api.NewRouter(api.NewAuthGate(cfg.HTTP.APIKey), cfg.HTTP.BasePath, loc)
	handler.Register(router)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      api.NewServer(handler, router, api.NewMiddleware()),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	var (
		wg        sync.WaitGroup
		listenErr error
	)

	wg.Add(1)

	go func() {
		defer wg.Done()

		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			listenErr = fmt.Errorf("listen and serve: %w", err)
			cancel()
		}
	}()

	slog.InfoContext(ctx, "service started", "port", cfg.HTTP.Port)

	wg.Add(1)

	go func() {
		defer wg.Done()

		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)

		select {
		case sig := <-ch:
			slog.InfoContext(ctx, "got OS signal", "signal", sig.String())
		case <-ctx.Done():
		}

		err := server.Shutdown(context.WithoutCancel(ctx))
		if err != nil {
			slog.ErrorContext(ctx, "server shutdown", "error", err)
		}
	}()

	wg.Wait()

	return listenErr
}
