package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"todo-assistant/config"
	_ "todo-assistant/docs" // Swagger docs
	"todo-assistant/internal/httpserver"
	"todo-assistant/internal/middleware"
	"todo-assistant/migration"
	"todo-assistant/pkg/llmprovider"
	"todo-assistant/pkg/log"
	"todo-assistant/pkg/postgres"
	"todo-assistant/pkg/telegram"
)

// @title       Todo Assistant API
// @description Conversational todo assistant with keyword intent routing and LLM chat.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	rootCmd := &cobra.Command{
		Use:           "todo-assistant",
		Short:         "Conversational todo assistant API",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), false)
		},
	}

	var migrate bool
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API and Telegram webhook",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), migrate)
		},
	}
	serveCmd.Flags().BoolVar(&migrate, "migrate", false, "apply database migrations before serving")

	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigrate(cmd.Context())
		},
	}

	rootCmd.AddCommand(serveCmd, migrateCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}

// bootstrap loads config, builds the logger and opens the database.
func bootstrap(ctx context.Context) (*config.Config, log.Logger, *sql.DB, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	db, err := postgres.Connect(ctx, postgres.Config{
		DSN:             cfg.Postgres.DSN,
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		ConnMaxLifetime: cfg.Postgres.ConnMaxLifetime,
	})
	if err != nil {
		return nil, nil, nil, err
	}

	return cfg, logger, db, nil
}

func runMigrate(ctx context.Context) error {
	_, logger, db, err := bootstrap(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := migration.Apply(ctx, db); err != nil {
		return err
	}
	logger.Info(ctx, "Migrations applied")
	return nil
}

func runServe(ctx context.Context, migrate bool) error {
	// 1. Configuration, logger, storage
	cfg, logger, db, err := bootstrap(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	logger.Info(ctx, "Starting Todo Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	if migrate {
		if err := migration.Apply(ctx, db); err != nil {
			return err
		}
		logger.Info(ctx, "Migrations applied")
	}

	// 2. AI completion provider
	provider, err := llmprovider.New(ctx, llmprovider.Config{
		Provider: cfg.LLM.Provider,
		APIKey:   cfg.LLM.APIKey,
		BaseURL:  cfg.LLM.BaseURL,
		Model:    cfg.LLM.Model,
		Timeout:  cfg.LLM.Timeout,
	})
	if err != nil {
		if errors.Is(err, llmprovider.ErrMissingAPIKey) {
			logger.Errorf(ctx, "LLM API key is not configured for provider %s", cfg.LLM.Provider)
		}
		return err
	}
	logger.Infof(ctx, "LLM provider: %s (%s)", provider.Name(), provider.Model())

	// 3. Telegram delivery (optional)
	var bot *telegram.Bot
	if cfg.Telegram.BotToken != "" {
		bot = telegram.NewBot(cfg.Telegram.BotToken)

		webhookURL, whErr := resolveWebhookURL(ctx, cfg.Telegram.WebhookURL, cfg.Telegram.NgrokAPIURL, ngrokInterval)
		switch {
		case whErr != nil:
			logger.Warnf(ctx, "Could not detect ngrok URL: %v", whErr)
		case webhookURL == "":
			logger.Warn(ctx, "Telegram webhook URL not configured, register it manually")
		default:
			if err := bot.SetWebhook(ctx, webhookURL, cfg.Telegram.WebhookSecret); err != nil {
				logger.Warnf(ctx, "Failed to set Telegram webhook: %v", err)
			} else {
				logger.Infof(ctx, "Telegram webhook registered at %s", webhookURL)
			}
		}
	} else {
		logger.Warn(ctx, "Telegram delivery skipped: TELEGRAM_BOT_TOKEN is missing")
	}

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		PostgresDB:  db,
		LLM:         provider,
		Middleware: middleware.Config{
			InternalKey:    cfg.Auth.InternalKey,
			RequestsPerMin: cfg.RateLimit.RequestsPerMin,
			MaxKeys:        cfg.RateLimit.MaxKeys,
			KeyTTL:         cfg.RateLimit.KeyTTL,
		},
		TelegramBot:    bot,
		TelegramSecret: cfg.Telegram.WebhookSecret,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize HTTP server: %w", err)
	}

	// 5. Run
	if err := httpServer.Run(ctx); err != nil {
		return fmt.Errorf("failed to run server: %w", err)
	}

	logger.Info(ctx, "Server stopped gracefully")
	return nil
}
