// Package session keeps the admin login state in a fiber session.
package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/gofiber/storage/mysql/v2"
	"github.com/gofiber/storage/postgres/v3"

	"github.com/gamelanding/gamelanding/internal/config"
	"github.com/gamelanding/gamelanding/internal/db/dsn"
	"github.com/gamelanding/gamelanding/internal/db/models"
	"github.com/gamelanding/gamelanding/internal/uniuri"
)

const (
	// CookieName is the name of the session cookie.
	CookieName = "session"

	// KeyUserID holds the logged in user id.
	KeyUserID = "userId"
	// KeyIsAdmin holds whether the logged in user is an admin.
	KeyIsAdmin = "isAdmin"

	// StorageMemory keeps sessions in process memory.
	StorageMemory = "memory"
	// StorageDatabase keeps sessions in a table of the configured database.
	StorageDatabase = "database"

	localsKey = "caller"
)

// ErrStorageUnsupported is returned when database sessions are requested for sqlite.
var ErrStorageUnsupported = errors.New("database session storage needs postgres or mysql")

// Caller is the identity attached to a request.
type Caller struct {
	UserID  uint64
	IsAdmin bool
}

// LoggedIn reports whether a user is attached.
func (c Caller) LoggedIn() bool {
	return c.UserID > 0
}

// Store wraps the fiber session store.
type Store struct {
	sessions *session.Store
}

// NewStorage returns the storage backend for cfg. Nil means fiber's in-memory storage.
func NewStorage(cfg *config.Config) (fiber.Storage, error) {
	switch cfg.Session.Storage {
	case StorageMemory, "":
		return nil, nil //nolint:nilnil // nil selects fiber's memory storage
	case StorageDatabase:
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrUnknownSessionStorage, cfg.Session.Storage)
	}

	switch cfg.DB.GormEngine {
	case config.EnginePostgres:
		return postgres.New(postgres.Config{
			ConnectionURI: dsn.Create(cfg),
			Table:         cfg.Session.Table,
		}), nil
	case config.EngineMySQL:
		return mysql.New(mysql.Config{
			ConnectionURI: dsn.Create(cfg),
			Table:         cfg.Session.Table,
		}), nil
	default:
		return nil, ErrStorageUnsupported
	}
}

// New creates the store. Cookies are http only, same site lax, and secure
// unless running in dev mode.
func New(cfg *config.Config, storage fiber.Storage) *Store {
	expiry := cfg.Session.ExpiryTime
	if expiry <= 0 {
		expiry = 24 * time.Hour
	}

	return &Store{
		sessions: session.New(session.Config{
			Expiration:     expiry,
			Storage:        storage,
			KeyLookup:      "cookie:" + CookieName,
			CookieSecure:   !cfg.DevMode,
			CookieHTTPOnly: true,
			CookieSameSite: fiber.CookieSameSiteLaxMode,
			KeyGenerator:   uniuri.NewSessionID,
		}),
	}
}

// Login binds user to a fresh session id and sets the cookie.
func (s *Store) Login(c *fiber.Ctx, user *models.User) error {
	sess, err := s.sessions.Get(c)
	if err != nil {
		return fmt.Errorf("get session: %w", err)
	}

	if err = sess.Regenerate(); err != nil {
		return fmt.Errorf("regenerate session: %w", err)
	}

	sess.Set(KeyUserID, user.ID)
	sess.Set(KeyIsAdmin, user.IsAdmin)

	if err = sess.Save(); err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	return nil
}

// Logout destroys the session. A request without a session is fine.
func (s *Store) Logout(c *fiber.Ctx) error {
	sess, err := s.sessions.Get(c)
	if err != nil {
		return fmt.Errorf("get session: %w", err)
	}

	if err = sess.Destroy(); err != nil {
		return fmt.Errorf("destroy session: %w", err)
	}

	return nil
}

// Load reads the caller from the session cookie without creating a session.
func (s *Store) Load(c *fiber.Ctx) (Caller, error) {
	if c.Cookies(CookieName) == "" {
		return Caller{}, nil
	}

	sess, err := s.sessions.Get(c)
	if err != nil {
		return Caller{}, fmt.Errorf("get session: %w", err)
	}

	var caller Caller

	if id, ok := sess.Get(KeyUserID).(uint64); ok {
		caller.UserID = id
	}

	if admin, ok := sess.Get(KeyIsAdmin).(bool); ok {
		caller.IsAdmin = admin
	}

	return caller, nil
}

// SetCaller attaches caller to the request.
func SetCaller(c *fiber.Ctx, caller Caller) {
	c.Locals(localsKey, caller)
}

// FromCtx returns the caller attached by the auth middleware, or an anonymous one.
func FromCtx(c *fiber.Ctx) Caller {
	caller, _ := c.Locals(localsKey).(Caller)

	return caller
}
