// Package game serves the gallery game endpoints.
package game

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/gamelanding/gamelanding/internal/db/controller/game"
	"github.com/gamelanding/gamelanding/internal/db/models"
	"github.com/gamelanding/gamelanding/internal/metrics"
	"github.com/gamelanding/gamelanding/internal/web/handler"
	"github.com/gamelanding/gamelanding/internal/web/middleware/auth"
)

const (
	// Path is the games resource.
	Path = "/games"
	// DuplicatePath copies a game.
	DuplicatePath = handler.IDPath + "/duplicate"

	msgNotFound = "Game not found"
)

// Service is the game handler service.
type Service struct {
	handler.Service
	deps *handler.Deps
}

// Init registers the game routes.
func (s *Service) Init(router fiber.Router, deps *handler.Deps) error {
	if router == nil || deps.Check() != nil {
		return handler.ErrNilDeps
	}

	s.deps = deps

	router.Route(Path, func(r fiber.Router) {
		r.Get(handler.RootPath, s.List)
		r.Post(handler.RootPath, auth.RequireAdmin, s.Create)
		r.Put(handler.IDPath, auth.RequireAdmin, s.Update)
		r.Delete(handler.IDPath, auth.RequireAdmin, s.Delete)
		r.Post(DuplicatePath, auth.RequireAdmin, s.Duplicate)
	}, "games.")

	return nil
}

// List returns all games oldest first. ?published=true hides drafts.
func (s *Service) List(c *fiber.Ctx) error {
	games, err := game.List(s.deps.DB.WithContext(c.UserContext()), game.Filter{
		PublishedOnly: c.QueryBool("published"),
	})
	if err != nil {
		return err
	}

	return c.JSON(games)
}

// Create stores a new game.
func (s *Service) Create(c *fiber.Ctx) error {
	var in models.GameInput
	if err := s.deps.Validator.BindJSON(c, &in); err != nil {
		return err
	}

	g := in.Game()

	out, err := game.Create(s.deps.DB.WithContext(c.UserContext()), &g)
	if err != nil {
		return err
	}

	metrics.Record(metrics.EntityGame, metrics.OpCreate)
	log.Debug().Uint64("id", out.ID).Str("name", out.Name).Msg("game created")

	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update merges the body into an existing game.
func (s *Service) Update(c *fiber.Ctx) error {
	id, err := handler.ParseID(c)
	if err != nil {
		return err
	}

	db := s.deps.DB.WithContext(c.UserContext())

	if _, err = game.Get(db, id); err != nil {
		return mapErr(err)
	}

	var patch models.GamePatch
	if err = s.deps.Validator.BindJSON(c, &patch); err != nil {
		return err
	}

	out, err := game.Update(db, id, &patch)
	if err != nil {
		return mapErr(err)
	}

	metrics.Record(metrics.EntityGame, metrics.OpUpdate)

	return c.JSON(out)
}

// Delete removes a game.
func (s *Service) Delete(c *fiber.Ctx) error {
	id, err := handler.ParseID(c)
	if err != nil {
		return err
	}

	if err = game.Delete(s.deps.DB.WithContext(c.UserContext()), id); err != nil {
		return mapErr(err)
	}

	metrics.Record(metrics.EntityGame, metrics.OpDelete)

	return c.SendStatus(fiber.StatusNoContent)
}

// Duplicate stores a copy of a game.
func (s *Service) Duplicate(c *fiber.Ctx) error {
	id, err := handler.ParseID(c)
	if err != nil {
		return err
	}

	out, err := game.Duplicate(s.deps.DB.WithContext(c.UserContext()), id)
	if err != nil {
		return mapErr(err)
	}

	metrics.Record(metrics.EntityGame, metrics.OpDuplicate)

	return c.Status(fiber.StatusCreated).JSON(out)
}

func mapErr(err error) error {
	if errors.Is(err, game.ErrGameNotFound) {
		return handler.NotFound(msgNotFound)
	}

	return err
}
