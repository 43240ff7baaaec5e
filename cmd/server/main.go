package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "rentacar-crm/internal/api/http"
	"rentacar-crm/internal/config"
	"rentacar-crm/internal/jobs"
	"rentacar-crm/internal/logger"
	"rentacar-crm/internal/repository/rest"
	"rentacar-crm/internal/scheduler"
	"rentacar-crm/internal/service"
	"rentacar-crm/internal/store"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting rental CRM backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Booking API configuration", "base_url", cfg.BookingAPI.BaseURL, "timeout_seconds", cfg.BookingAPI.TimeoutSeconds)

	// Initialize booking API client
	apiClient := rest.NewClient(cfg.BookingAPI.BaseURL, time.Duration(cfg.BookingAPI.TimeoutSeconds)*time.Second)

	// Initialize store and services
	bookingStore := store.New(apiClient)
	companySvc := service.NewCompanyService(apiClient)
	bookingSvc := service.NewBookingService(bookingStore, apiClient, companySvc)
	noteSvc := service.NewNoteService(bookingStore, apiClient)

	// Initialize HTTP handlers
	bookingHandler := httpapi.NewBookingHandler(bookingStore, bookingSvc)
	noteHandler := httpapi.NewNoteHandler(noteSvc)
	dashboardHandler := httpapi.NewDashboardHandler(bookingStore, cfg.Dashboard.PageSize)
	companyHandler := httpapi.NewCompanyHandler(companySvc)

	router := httpapi.NewRouter(bookingHandler, noteHandler, dashboardHandler, companyHandler)

	// Initialize scheduler
	jobRunner := jobs.NewJobRunner(bookingStore, cfg)
	sched := scheduler.NewScheduler(jobRunner)
	sched.Start()
	defer sched.Stop()

	server := &http.Server{
		Addr:    cfg.GetServerAddress(),
		Handler: router,
	}

	go func() {
		logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Graceful shutdown failed", "error", err)
	}
	logger.Info("Server stopped")
}
