// Package home renders the public landing page.
package home

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/gamelanding/gamelanding/internal/db/controller/button"
	"github.com/gamelanding/gamelanding/internal/db/controller/game"
	"github.com/gamelanding/gamelanding/internal/db/controller/settings"
	"github.com/gamelanding/gamelanding/internal/web/handler"
)

const (
	// Path is the path of the public page.
	Path = "/"

	// TemplateName is the name of the page template.
	TemplateName = "index"
)

// Service is the public page handler service.
type Service struct {
	handler.Service
	deps *handler.Deps
}

// Init registers the page route.
func (s *Service) Init(router fiber.Router, deps *handler.Deps) error {
	if router == nil || deps.Check() != nil {
		return handler.ErrNilDeps
	}

	s.deps = deps

	router.Get(Path, s.Get)

	return nil
}

// Get renders settings, visible buttons and published games.
func (s *Service) Get(c *fiber.Ctx) error {
	db := s.deps.DB.WithContext(c.UserContext())

	st, err := settings.Get(db)
	if err != nil {
		return err
	}

	buttons, err := button.List(db, button.Filter{VisibleOnly: true})
	if err != nil {
		return err
	}

	games, err := game.List(db, game.Filter{PublishedOnly: true})
	if err != nil {
		return err
	}

	return c.Render(TemplateName, NewPage(s.deps.Cfg.Title, st, buttons, games, time.Now()), handler.BaseLayout)
}
