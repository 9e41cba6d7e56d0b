// Package button serves the call to action button endpoints.
package button

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/gamelanding/gamelanding/internal/db/controller/button"
	"github.com/gamelanding/gamelanding/internal/db/models"
	"github.com/gamelanding/gamelanding/internal/metrics"
	"github.com/gamelanding/gamelanding/internal/web/handler"
	"github.com/gamelanding/gamelanding/internal/web/middleware/auth"
)

const (
	// Path is the buttons resource.
	Path = "/buttons"

	msgNotFound = "Button not found"
)

// Service is the button handler service.
type Service struct {
	handler.Service
	deps *handler.Deps
}

// Init registers the button routes.
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
	}, "buttons.")

	return nil
}

// List returns buttons by sort order. ?visible=true hides hidden ones.
func (s *Service) List(c *fiber.Ctx) error {
	buttons, err := button.List(s.deps.DB.WithContext(c.UserContext()), button.Filter{
		VisibleOnly: c.QueryBool("visible"),
	})
	if err != nil {
		return err
	}

	return c.JSON(buttons)
}

// Create stores a new button. Omitted fields get defaults.
func (s *Service) Create(c *fiber.Ctx) error {
	var in models.ButtonInput
	if err := s.deps.Validator.BindJSON(c, &in); err != nil {
		return err
	}

	b := in.Button()

	out, err := button.Create(s.deps.DB.WithContext(c.UserContext()), &b)
	if err != nil {
		return err
	}

	metrics.Record(metrics.EntityButton, metrics.OpCreate)

	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update merges the body into an existing button. Existence is checked first.
func (s *Service) Update(c *fiber.Ctx) error {
	id, err := handler.ParseID(c)
	if err != nil {
		return err
	}

	db := s.deps.DB.WithContext(c.UserContext())

	if _, err = button.Get(db, id); err != nil {
		return mapErr(err)
	}

	var patch models.ButtonPatch
	if err = s.deps.Validator.BindJSON(c, &patch); err != nil {
		return err
	}

	out, err := button.Update(db, id, &patch)
	if err != nil {
		return mapErr(err)
	}

	metrics.Record(metrics.EntityButton, metrics.OpUpdate)

	return c.JSON(out)
}

// Delete removes a button.
func (s *Service) Delete(c *fiber.Ctx) error {
	id, err := handler.ParseID(c)
	if err != nil {
		return err
	}

	if err = button.Delete(s.deps.DB.WithContext(c.UserContext()), id); err != nil {
		return mapErr(err)
	}

	metrics.Record(metrics.EntityButton, metrics.OpDelete)

	return c.SendStatus(fiber.StatusNoContent)
}

func mapErr(err error) error {
	if errors.Is(err, button.ErrButtonNotFound) {
		return handler.NotFound(msgNotFound)
	}

	return err
}
