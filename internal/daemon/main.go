// Package daemon wires storage, sessions, uploads and the web service together.
package daemon

import (
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/gamelanding/gamelanding/internal/config"
	"github.com/gamelanding/gamelanding/internal/db"
	"github.com/gamelanding/gamelanding/internal/upload"
	"github.com/gamelanding/gamelanding/internal/web"
	"github.com/gamelanding/gamelanding/internal/web/handler"
	"github.com/gamelanding/gamelanding/internal/web/session"
)

// ErrConfigNil is returned by New without a config.
var ErrConfigNil = errors.New("config is nil")

// Daemon represents the main application daemon.
type Daemon struct {
	webService *web.Service
	db         *gorm.DB
}

// Start serves until the listener stops.
func (d *Daemon) Start() error {
	go d.webService.WaitShutdown()

	addr := d.webService.Addr()
	log.Info().Str("addr", addr).Msg("starting web service")

	return d.webService.Start(addr)
}

// New opens the database, seeds it and builds the web service.
func New(cfg *config.Config) (*Daemon, error) {
	if cfg == nil {
		return nil, ErrConfigNil
	}

	gdb, err := db.Open(cfg)
	if err != nil {
		return nil, err
	}

	return newWithDB(cfg, gdb)
}

func newWithDB(cfg *config.Config, gdb *gorm.DB) (*Daemon, error) {
	if err := seed(cfg, gdb, time.Now()); err != nil {
		return nil, errors.Wrap(err, "failed to seed database")
	}

	storage, err := session.NewStorage(cfg)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create session storage")
	}

	uploads, err := upload.NewLocal(cfg.Upload.Dir, cfg.Upload.URLPrefix)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create upload store")
	}

	webService, err := web.New(&handler.Deps{
		Cfg:       cfg,
		DB:        gdb,
		Sessions:  session.New(cfg, storage),
		Uploads:   uploads,
		Validator: handler.NewValidator(),
	})
	if err != nil {
		return nil, err
	}

	return &Daemon{
		webService: webService,
		db:         gdb,
	}, nil
}
