package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/gamelanding/gamelanding/internal/config"
	"github.com/gamelanding/gamelanding/internal/upload"
	"github.com/gamelanding/gamelanding/internal/web/session"
)

// ErrNilDeps is returned by Init when a required dependency is missing.
var ErrNilDeps = errors.New(ErrNilDepsMsg)

// Deps are shared by all handler services.
type Deps struct {
	Cfg       *config.Config
	DB        *gorm.DB
	Sessions  *session.Store
	Uploads   upload.Store
	Validator *Validator
}

// Check returns ErrNilDeps unless config, db and validator are set.
func (d *Deps) Check() error {
	if d == nil || d.Cfg == nil || d.DB == nil || d.Validator == nil {
		return ErrNilDeps
	}

	return nil
}

// Service is the interface for a web handler service.
type Service interface {
	Init(router fiber.Router, deps *Deps) error
}
