package auth

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/gamelanding/gamelanding/internal/web/session"
)

// New returns a middleware that attaches the session caller to every request.
// A broken or unknown session continues anonymously.
func New(store *session.Store) fiber.Handler {
	if store == nil {
		panic("session store is nil")
	}

	return func(c *fiber.Ctx) error {
		caller, err := store.Load(c)
		if err != nil {
			log.Warn().Err(err).Str("path", c.Path()).Msg("can't load session")
		}

		session.SetCaller(c, caller)

		return c.Next()
	}
}

// RequireAdmin stops the chain with 401 and no body unless an admin is logged in.
func RequireAdmin(c *fiber.Ctx) error {
	if caller := session.FromCtx(c); !caller.LoggedIn() || !caller.IsAdmin {
		c.Status(fiber.StatusUnauthorized)

		return nil
	}

	return c.Next()
}
