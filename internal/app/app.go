package app

import (
	"errors"
	"net/http"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/pkoloveas/InsightGUIDE-ICTAI25/internal/config"
	"github.com/pkoloveas/InsightGUIDE-ICTAI25/internal/middleware"
	"go.uber.org/zap"
)

// App holds all application dependencies.
type App struct {
	cfg     *config.Settings
	router  *gin.Engine
	logger  *zap.Logger
	clients *Clients
}

// New wires clients, services and routes from validated settings.
func New(logger *zap.Logger, cfg *config.Settings) (*App, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	if os.Getenv(gin.EnvGinMode) == "" {
		if cfg.LogLevel == "DEBUG" {
			gin.SetMode(gin.DebugMode)
		} else {
			gin.SetMode(gin.ReleaseMode)
		}
	}
	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger))
	router.Use(cors.New(corsConfig(cfg.FrontendURL)))

	app := &App{
		cfg:     cfg,
		router:  router,
		logger:  logger,
		clients: NewClients(cfg, logger),
	}
	app.registerRoutes()
	return app, nil
}

// Addr returns the listen address.
func (a *App) Addr() string { return a.cfg.Addr() }

// Router returns the HTTP handler.
func (a *App) Router() http.Handler { return a.router }
