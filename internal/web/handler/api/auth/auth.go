// Package auth serves the login, logout and current user endpoints.
package auth

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/gamelanding/gamelanding/internal/db/controller/user"
	"github.com/gamelanding/gamelanding/internal/metrics"
	"github.com/gamelanding/gamelanding/internal/web/handler"
	"github.com/gamelanding/gamelanding/internal/web/session"
)

const (
	// LoginPath logs an admin in.
	LoginPath = "/login"
	// LogoutPath ends the session.
	LogoutPath = "/logout"
	// UserPath returns the logged in user or null.
	UserPath = "/user"

	msgInvalidCredentials = "Invalid credentials"
	msgLoggedIn           = "Logged in successfully"
)

// Service is the auth handler service.
type Service struct {
	handler.Service
	deps *handler.Deps
}

// LoginInput is the login request body.
type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Init registers the auth routes.
func (s *Service) Init(router fiber.Router, deps *handler.Deps) error {
	if router == nil || deps.Check() != nil || deps.Sessions == nil {
		return handler.ErrNilDeps
	}

	s.deps = deps

	router.Post(LoginPath, s.Login)
	router.Post(LogoutPath, s.Logout)
	router.Get(UserPath, s.User)

	return nil
}

// Login checks the credentials and starts a session. Nothing is stored on failure.
func (s *Service) Login(c *fiber.Ctx) error {
	var in LoginInput
	if err := s.deps.Validator.BindJSON(c, &in); err != nil {
		return err
	}

	u, err := user.Authenticate(s.deps.DB.WithContext(c.UserContext()), in.Username, in.Password)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			metrics.Record(metrics.EntitySession, metrics.OpLoginFail)
			log.Info().Str("username", in.Username).Str("IP", c.IP()).Msg("login failed")

			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": msgInvalidCredentials})
		}

		return err
	}

	if err = s.deps.Sessions.Login(c, u); err != nil {
		return err
	}

	metrics.Record(metrics.EntitySession, metrics.OpLogin)
	log.Info().Str("username", u.Username).Msg("user logged in")

	return c.JSON(fiber.Map{"message": msgLoggedIn})
}

// Logout destroys the session. It succeeds without one too.
func (s *Service) Logout(c *fiber.Ctx) error {
	if err := s.deps.Sessions.Logout(c); err != nil {
		return err
	}

	metrics.Record(metrics.EntitySession, metrics.OpLogout)

	return c.SendStatus(fiber.StatusOK)
}

// User returns the session user, or null when logged out.
func (s *Service) User(c *fiber.Ctx) error {
	caller := session.FromCtx(c)
	if !caller.LoggedIn() {
		return c.JSON(nil)
	}

	u, err := user.GetByID(s.deps.DB.WithContext(c.UserContext()), caller.UserID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return c.JSON(nil)
		}

		return err
	}

	return c.JSON(u)
}
