// Package settings serves the site settings endpoints.
package settings

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/gamelanding/gamelanding/internal/db/controller/settings"
	"github.com/gamelanding/gamelanding/internal/db/models"
	"github.com/gamelanding/gamelanding/internal/metrics"
	"github.com/gamelanding/gamelanding/internal/web/handler"
	"github.com/gamelanding/gamelanding/internal/web/middleware/auth"
)

// Path is the settings resource.
const Path = "/settings"

// Service is the settings handler service.
type Service struct {
	handler.Service
	deps *handler.Deps
}

// Init registers the settings routes.
func (s *Service) Init(router fiber.Router, deps *handler.Deps) error {
	if router == nil || deps.Check() != nil {
		return handler.ErrNilDeps
	}

	s.deps = deps

	router.Route(Path, func(r fiber.Router) {
		r.Get(handler.RootPath, s.Get)
		r.Patch(handler.RootPath, auth.RequireAdmin, s.Patch)
	}, "settings.")

	return nil
}

// Get returns the settings, creating them with defaults on first use.
func (s *Service) Get(c *fiber.Ctx) error {
	out, err := settings.Get(s.deps.DB.WithContext(c.UserContext()))
	if err != nil {
		return err
	}

	return c.JSON(out)
}

// Patch merges the body into the stored settings.
func (s *Service) Patch(c *fiber.Ctx) error {
	var patch models.SettingsPatch
	if err := s.deps.Validator.BindJSON(c, &patch); err != nil {
		return err
	}

	out, err := settings.Update(s.deps.DB.WithContext(c.UserContext()), &patch)
	if err != nil {
		return err
	}

	metrics.Record(metrics.EntitySettings, metrics.OpUpdate)
	log.Debug().Msg("settings updated")

	return c.JSON(out)
}
