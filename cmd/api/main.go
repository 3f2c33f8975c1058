// Command api serves the law firm portal: public pages, role dashboards and
// the document questionnaire API.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/nats-io/nats.go"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/iamigrante/portal/internal/config"
	"github.com/iamigrante/portal/internal/events"
	"github.com/iamigrante/portal/internal/middleware"
	"github.com/iamigrante/portal/internal/services"
	"github.com/iamigrante/portal/internal/web"
)

const (
	apiTitle   = "Portal API"
	apiVersion = "0.1.0"
)

// App holds the dependencies shared by API operations and pages
type App struct {
	Catalog  services.QuestionCatalog
	Answers  *services.AnswerService
	Users    *services.UserDirectory
	Renderer *web.Renderer
	Logger   *slog.Logger
	NC       *nats.Conn
}

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	logger, err := newLogger(cfg.Logging)
	if err != nil {
		log.Fatal("Failed to set up logger:", err)
	}
	logger.Info("Starting API server...")

	// Connect to NATS when configured
	var publisher events.Publisher = events.NopPublisher{}
	var nc *nats.Conn
	if cfg.NATS.URL != "" {
		nc, err = nats.Connect(cfg.NATS.URL)
		if err != nil {
			log.Fatal("Unable to connect to NATS:", err)
		}
		defer nc.Close()

		js, err := nc.JetStream()
		if err != nil {
			log.Fatal("Unable to create JetStream context:", err)
		}
		if err := events.EnsureStream(js); err != nil {
			log.Fatal("Unable to create answers stream:", err)
		}
		publisher = events.NewPublisher(js)
		logger.Info("Connected to NATS with JetStream", "url", cfg.NATS.URL)
	} else {
		logger.Info("NATS not configured, answer events disabled")
	}

	app, err := newApp(cfg, publisher, logger)
	if err != nil {
		log.Fatal("Failed to initialize app:", err)
	}
	app.NC = nc

	router := newRouter(app, cfg.Server)

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      h2c.NewHandler(router, &http2.Server{}),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("Server listening", "address", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed", "error", err)
	}
}

// newLogger builds the process logger from the logging config
func newLogger(cfg config.LoggingConfig) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	return slog.New(handler), nil
}

// newApp wires services from configuration
func newApp(cfg *config.Config, publisher events.Publisher, logger *slog.Logger) (*App, error) {
	templates := services.DefaultQuestionTemplates()
	if cfg.Catalog.TemplatePath != "" {
		loaded, err := services.LoadQuestionTemplates(cfg.Catalog.TemplatePath)
		if err != nil {
			return nil, err
		}
		templates = loaded
		logger.Info("Loaded question templates", "path", cfg.Catalog.TemplatePath, "count", len(templates))
	}

	users := services.DefaultUsers()
	if len(cfg.Users) > 0 {
		users = make([]services.User, len(cfg.Users))
		for i, u := range cfg.Users {
			users[i] = services.User{ID: u.ID, Email: u.Email, Name: u.Name, Role: services.Role(u.Role)}
		}
	}
	directory, err := services.NewUserDirectory(users)
	if err != nil {
		return nil, err
	}

	renderer, err := web.NewRenderer(web.Site{
		FirmName:     cfg.Site.FirmName,
		ContactEmail: cfg.Site.ContactEmail,
		Phone:        cfg.Site.Phone,
	})
	if err != nil {
		return nil, err
	}

	return &App{
		Catalog:  services.NewTemplateCatalog(templates),
		Answers:  services.NewAnswerService(publisher, logger),
		Users:    directory,
		Renderer: renderer,
		Logger:   logger,
	}, nil
}

// newRouter assembles middleware, API operations and pages
func newRouter(app *App, cfg config.ServerConfig) *chi.Mux {
	router := chi.NewRouter()
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.Logger)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.RateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst))
	router.Use(middleware.MaxBodySize(cfg.MaxBodySize))

	humaConfig := huma.DefaultConfig(apiTitle, apiVersion)
	humaConfig.Servers = []*huma.Server{
		{URL: cfg.BaseURL},
	}
	// Response bodies keep the documented shape without a $schema link
	humaConfig.CreateHooks = nil
	if !cfg.EnableDocs {
		humaConfig.DocsPath = ""
		humaConfig.OpenAPIPath = ""
	}
	api := humachi.New(router, humaConfig)

	RegisterRoutes(api, app)
	registerPages(router, app)

	return router
}
