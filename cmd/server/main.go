package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"faqbot/internal/answers"
	"faqbot/internal/bot"
	"faqbot/internal/config"
	"faqbot/internal/db"
	"faqbot/internal/email"
	"faqbot/internal/jobs"
	"faqbot/internal/metrics"
	"faqbot/internal/resolver"
	"faqbot/internal/server"
	"faqbot/internal/sheets"
	"faqbot/internal/telegram"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Initialize database
	database, err := db.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	// Run migrations
	if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Migrations completed successfully")

	metrics.Init(database)

	// Answer store: restore the durable snapshot first so the bot can answer
	// before the initial sheet fetch completes or if the sheet is down.
	store, err := answers.New(answers.DefaultInstantResponses(), database)
	if err != nil {
		log.Fatalf("Invalid instant response table: %v", err)
	}
	if count, err := store.Restore(ctx); err != nil {
		log.Printf("Warning: failed to restore FAQ snapshot: %v", err)
	} else {
		log.Printf("Restored %d FAQ entries from snapshot", count)
	}

	// Spreadsheet source of truth
	source, err := sheets.NewClient(ctx, cfg.SheetID, cfg.SheetRange, cfg.CredentialsFile)
	if err != nil {
		log.Fatalf("Failed to initialize sheets client: %v", err)
	}
	if err := source.SeedIfEmpty(ctx); err != nil {
		log.Printf("Warning: FAQ seeding failed: %v", err)
	}

	// Telegram transport
	transport, err := telegram.New(cfg.TelegramToken)
	if err != nil {
		log.Fatalf("Failed to connect to Telegram: %v", err)
	}

	var notifier *email.Notifier
	if cfg.IsEmailEnabled() {
		notifier = email.NewNotifier(cfg)
	}

	res := resolver.New(store, cfg.FuzzyThreshold)
	faqBot := bot.New(store, res, database, source, transport, notifier, cfg.ModeratorChatID)

	// Background FAQ reloads (runs once immediately, then on the interval)
	reloader := jobs.NewReloader(store, source, cfg.ReloadInterval)
	go reloader.Start(ctx)

	// Chat update loop
	go transport.Run(ctx, faqBot)

	// HTTP server: keep-alive, probes, metrics, moderator dashboard
	srv := server.New(cfg)
	if err := srv.RegisterRoutes(ctx, database, store, faqBot); err != nil {
		log.Fatalf("Failed to register routes: %v", err)
	}

	go func() {
		if err := srv.Start(); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down...")
	cancel()
	if err := srv.Shutdown(); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exited")
}
