package httpserver

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"

	"todo-assistant/internal/middleware"
	"todo-assistant/pkg/llmprovider"
	"todo-assistant/pkg/log"
	pkgTelegram "todo-assistant/pkg/telegram"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Storage
	postgresDB *sql.DB

	// AI completion
	llm llmprovider.Provider

	// Delivery
	middlewareCfg  middleware.Config
	telegramBot    *pkgTelegram.Bot
	telegramSecret string
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	PostgresDB *sql.DB
	LLM        llmprovider.Provider
	Middleware middleware.Config

	// Telegram delivery is skipped when TelegramBot is nil.
	TelegramBot    *pkgTelegram.Bot
	TelegramSecret string
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:              logger,
		gin:            gin.New(),
		port:           cfg.Port,
		mode:           cfg.Mode,
		environment:    cfg.Environment,
		postgresDB:     cfg.PostgresDB,
		llm:            cfg.LLM,
		middlewareCfg:  cfg.Middleware,
		telegramBot:    cfg.TelegramBot,
		telegramSecret: cfg.TelegramSecret,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.postgresDB == nil {
		return errors.New("postgres db is required")
	}
	if srv.llm == nil {
		return errors.New("llm provider is required")
	}
	return nil
}
