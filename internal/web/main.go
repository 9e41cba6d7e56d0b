// Package web assembles the fiber app: middleware, the JSON api, the public
// page, static files and the operational endpoints.
package web

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/template/html/v2"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/gamelanding/gamelanding/internal/config"
	accesslog "github.com/gamelanding/gamelanding/internal/logger/adapter/fiber"
	"github.com/gamelanding/gamelanding/internal/web/handler"
	"github.com/gamelanding/gamelanding/internal/web/handler/api/auth"
	"github.com/gamelanding/gamelanding/internal/web/handler/api/button"
	"github.com/gamelanding/gamelanding/internal/web/handler/api/game"
	"github.com/gamelanding/gamelanding/internal/web/handler/api/settings"
	"github.com/gamelanding/gamelanding/internal/web/handler/api/upload"
	"github.com/gamelanding/gamelanding/internal/web/handler/home"
	authmiddleware "github.com/gamelanding/gamelanding/internal/web/middleware/auth"
)

const (
	// CheckAlivePath answers 200 while serving and 503 while draining.
	CheckAlivePath = "/checkalive"

	// StaticPath serves the embedded css and js.
	StaticPath = "/static"
)

// ErrNilDeps is returned by New when a dependency is missing.
var ErrNilDeps = errors.New("web: config, db, sessions or uploads is nil")

// Service represents the web service.
type Service struct {
	App          *fiber.App
	cfg          *config.Config
	fastShutDown bool
	alive        atomic.Bool
}

// Start starts the web service on the given address.
func (s *Service) Start(addr string) error {
	var doneFiber = make(chan error, 1)

	go func() {
		if err := s.App.Listen(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			doneFiber <- fmt.Errorf("fiber listen: %w", err)
			return
		}

		doneFiber <- nil
	}()

	return <-doneFiber // wait for fiber to stop
}

// Addr returns the listen address from the config.
func (s *Service) Addr() string {
	return fmt.Sprintf(":%d", s.cfg.Webserver.Port)
}

// WaitShutdown waits for SIGINT or SIGTERM and shuts the server down gracefully.
func (s *Service) WaitShutdown() {
	irqSig := make(chan os.Signal, 1)
	signal.Notify(irqSig, syscall.SIGINT, syscall.SIGTERM)

	sig := <-irqSig
	log.Info().Msgf("shutdown request (signal: %v)", sig)

	s.Shutdown()
}

// Shutdown drains and stops the http server.
func (s *Service) Shutdown() {
	// Graceful shutdown for reverse proxies: set status to fail, so checkalive returns fail.
	if !s.fastShutDown {
		log.Info().Msgf(
			"graceful shutdown: return 503 while %d seconds to let LB to remove this pod from active targets",
			s.cfg.Webserver.ShutDownTime,
		)

		s.alive.Store(false)
		time.Sleep(time.Duration(s.cfg.Webserver.ShutDownTime) * time.Second)
	}

	log.Info().Msg("stopping http server ...")

	if err := s.App.Shutdown(); err != nil {
		log.Error().Err(err).Msg("")
	}

	log.Info().Msg("http server was stopped ... good bye...")
}

// New creates the web service and registers every route.
func New(deps *handler.Deps) (*Service, error) {
	if deps.Check() != nil || deps.Sessions == nil || deps.Uploads == nil {
		return nil, ErrNilDeps
	}

	cfg := deps.Cfg

	httpFS := http.FS(templateEmbedFS{embeddedTemplates})
	templateEngine := html.NewFileSystem(httpFS, ".gohtml")

	// in debug mode, use local filesystem for templates
	if cfg.DevMode {
		templateEngine = html.New("./internal/web/templates", ".gohtml")
		templateEngine.ShouldReload = true

		log.Warn().Msg("debug mode enabled: using local filesystem for templates")
	}

	app := fiber.New(
		fiber.Config{
			ReadBufferSize: 8192,
			AppName:        cfg.Title,
			CaseSensitive:  true,
			Prefork:        false,
			Immutable:      true,
			BodyLimit:      cfg.Webserver.BodyLimit,
			Views:          templateEngine,
			ErrorHandler:   handler.ErrorHandler,
		},
	)

	service := &Service{
		App:          app,
		cfg:          cfg,
		fastShutDown: cfg.DevMode || cfg.Webserver.ShutDownTime <= 0,
	}
	service.alive.Store(true)

	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(accesslog.New(accesslog.Config{Config: cfg.Log, CheckAliveURI: CheckAlivePath}))

	if !cfg.Webserver.DisableRecover {
		app.Use(recover.New(recover.Config{EnableStackTrace: cfg.DevMode}))
	}

	app.Get(CheckAlivePath, service.checkAlive)

	if cfg.Webserver.Metrics {
		app.Get(cfg.Webserver.MetricsPath, adaptor.HTTPHandler(promhttp.Handler()))
	}

	// serve embedded static files
	app.Use(StaticPath,
		filesystem.New(
			filesystem.Config{
				Root:       http.FS(embeddedStaticFiles),
				PathPrefix: "static",
			},
		),
	)

	app.Static(cfg.Upload.URLPrefix, cfg.Upload.Dir, fiber.Static{ByteRange: true})

	app.Use(authmiddleware.New(deps.Sessions))

	api := app.Group(handler.APIPath)

	for _, h := range []handler.Service{
		&auth.Service{},
		&settings.Service{},
		&game.Service{},
		&button.Service{},
		&upload.Service{},
	} {
		if err := h.Init(api, deps); err != nil {
			return nil, err
		}
	}

	if err := (&home.Service{}).Init(app, deps); err != nil {
		return nil, err
	}

	return service, nil
}

func (s *Service) checkAlive(c *fiber.Ctx) error {
	if !s.alive.Load() {
		return c.SendStatus(fiber.StatusServiceUnavailable)
	}

	return c.SendString("OK")
}
