package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/ozgarage/workshop-tracker/internal/async"
	"github.com/ozgarage/workshop-tracker/internal/common"
	"github.com/ozgarage/workshop-tracker/internal/export"
	"github.com/ozgarage/workshop-tracker/internal/inspection"
	"github.com/ozgarage/workshop-tracker/internal/invoice"
	"github.com/ozgarage/workshop-tracker/internal/lookup"
	"github.com/ozgarage/workshop-tracker/internal/mail"
	"github.com/ozgarage/workshop-tracker/internal/repository"
	"github.com/ozgarage/workshop-tracker/internal/server"
	"github.com/ozgarage/workshop-tracker/internal/services/customers"
	"github.com/ozgarage/workshop-tracker/internal/services/invoicing"
	"github.com/ozgarage/workshop-tracker/internal/services/jobs"
	"github.com/ozgarage/workshop-tracker/internal/services/vehicles"
	"github.com/ozgarage/workshop-tracker/internal/sms"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	_ = godotenv.Load()

	cfg := common.LoadConfig(nil)
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, closeDB, err := repository.Open(ctx, repository.Config{
		URL:             cfg.Database.URL,
		MaxConns:        cfg.Database.MaxConns,
		MinConns:        cfg.Database.MinConns,
		MaxConnLifetime: cfg.Database.MaxConnLifetime,
		MaxConnIdleTime: cfg.Database.MaxConnIdleTime,
		DialTimeout:     cfg.Database.DialTimeout,
	}, logger)
	if err != nil {
		logger.Error("open database", "error", err)
		os.Exit(1)
	}
	defer closeDB()

	if err := repository.HealthCheck(ctx, db, cfg.Database.DialTimeout, logger); err != nil {
		logger.Error("database health check failed", "error", err)
		os.Exit(1)
	}
	logger.Info("database health ok")

	// Lookup pipeline: HTTP client wrapped by the deduplicating service.
	client := lookup.NewClient(lookup.Config{
		BaseURL: cfg.Lookup.BaseURL,
		APIKey:  cfg.Lookup.APIKey,
		Timeout: cfg.Lookup.Timeout,
	}, logger)
	lookups := lookup.NewService(client, logger)

	vehicleRepo := repository.NewVehicleRepository(db, logger)
	vehicleSvc := vehicles.NewService(lookups, vehicleRepo, logger)
	if err := vehicleSvc.Load(ctx); err != nil {
		logger.Error("load registry", "error", err)
		os.Exit(1)
	}

	customerSvc := customers.NewService(logger)

	var mailer mail.Mailer
	if cfg.Mail.Host != "" {
		mailer = mail.NewSMTPMailer(cfg.Mail, logger)
	} else {
		logger.Warn("SMTP_HOST not set, outbound mail will be logged and dropped")
		mailer = mail.NewLogMailer(logger)
	}
	outbox := async.NewOutbox(mailer, logger)

	composer := invoice.NewComposer(cfg.Invoice.OutputDir, logger)
	invoiceSvc := invoicing.NewService(composer, vehicleSvc, customerSvc, outbox, logger)

	jobSvc := jobs.NewService(vehicleSvc, logger)
	exportSvc := export.NewService(logger)
	smsSvc := sms.NewService(sms.NewSimulatedSender(logger), logger)
	printer := inspection.NewPrinter(cfg.Invoice.OutputDir, logger)

	srv := server.New(vehicleSvc, customerSvc, invoiceSvc, jobSvc, exportSvc, smsSvc, printer, logger)
	httpServer := &http.Server{
		Addr:              cfg.Server.HTTPAddr,
		Handler:           srv.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("http serving", "addr", cfg.Server.HTTPAddr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http serve", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown", "error", err)
	}
	outbox.Shutdown(shutdownCtx)
	logger.Info("stopped")
}
