package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/silkshine/booking-bot/pkg/bot"
	"github.com/silkshine/booking-bot/pkg/bot/telegramadapter"
	"github.com/silkshine/booking-bot/pkg/config"
	"github.com/silkshine/booking-bot/pkg/fsm"
	"github.com/silkshine/booking-bot/pkg/i18n"
	"github.com/silkshine/booking-bot/pkg/scheduling"
	"github.com/silkshine/booking-bot/pkg/state"
	"github.com/silkshine/booking-bot/pkg/webhook"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Panicf("Failed to load configuration: %v", err)
	}
	log.Println("Configuration loaded successfully.")

	texts, err := i18n.Load(cfg.TextsPath)
	if err != nil {
		log.Panicf("Failed to load localization texts: %v", err)
	}

	var backend state.Backend
	if cfg.DatabaseURL != "" {
		backend, err = state.NewPostgresBackend(cfg.DatabaseURL)
		if err != nil {
			log.Panicf("Failed to initialize session storage: %v", err)
		}
	} else {
		log.Println("Warning: DATABASE_URL not set, sessions will not survive restarts.")
		backend = state.NewMemoryBackend()
	}
	store := state.NewStore(backend)

	botClient, err := bot.NewClient(cfg.BotToken)
	if err != nil {
		log.Panicf("Failed to initialize bot client: %v", err)
	}
	log.Printf("Authorized on account %s", botClient.Self.UserName)

	botPort, err := telegramadapter.New(botClient, log.Default())
	if err != nil {
		log.Panicf("Failed to create telegram adapter: %v", err)
	}

	gateway := scheduling.NewCalendlyClient(cfg.CalendlyAPIToken)
	engine := fsm.NewEngine(botPort, gateway, texts, store)
	engine.SetAdminContact(cfg.AdminContact)

	if url := cfg.WebhookURL(); url != "" {
		if err := botClient.RegisterWebhook(url); err != nil {
			log.Panicf("Failed to register webhook: %v", err)
		}
		log.Printf("Webhook registered at %s", url)
	} else {
		log.Println("Warning: PUBLIC_BASE_URL not set, skipping webhook registration.")
	}

	server := &http.Server{
		Addr:    cfg.Addr(),
		Handler: webhook.New(cfg.BotToken, engine).Handler(),
	}

	go func() {
		log.Printf("Listening on %s", cfg.Addr())
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Panicf("Server error: %v", err)
		}
	}()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	log.Println("Shutdown signal received...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}
	log.Println("Server stopped.")
}
