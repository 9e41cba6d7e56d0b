// Package handlertest wires handler services into a throwaway fiber app backed
// by an in-memory sqlite database.
package handlertest

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/gamelanding/gamelanding/internal/config"
	"github.com/gamelanding/gamelanding/internal/db"
	"github.com/gamelanding/gamelanding/internal/db/controller/user"
	"github.com/gamelanding/gamelanding/internal/upload"
	"github.com/gamelanding/gamelanding/internal/web/handler"
	"github.com/gamelanding/gamelanding/internal/web/middleware/auth"
	"github.com/gamelanding/gamelanding/internal/web/session"
)

const (
	// AdminUsername is the admin created by NewDeps.
	AdminUsername = "admin"
	// AdminPassword is the password of AdminUsername.
	AdminPassword = "bell2026"

	adminLoginPath = "/__test/admin-login"
)

// NewDB returns a migrated in-memory database.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.Migrate(gdb))

	return gdb
}

// NewDeps returns dependencies with a fresh database, memory sessions, a temp
// upload dir and a seeded admin.
func NewDeps(t *testing.T) *handler.Deps {
	t.Helper()

	cfg := &config.Config{
		DevMode: true,
		Session: config.Session{ExpiryTime: time.Hour, Storage: session.StorageMemory},
		Upload:  config.Upload{Dir: t.TempDir(), URLPrefix: "/uploads"},
		Admin:   config.Admin{Username: AdminUsername, Password: AdminPassword},
	}

	gdb := NewDB(t)

	_, err := user.EnsureAdmin(gdb, AdminUsername, AdminPassword)
	require.NoError(t, err)

	uploads, err := upload.NewLocal(cfg.Upload.Dir, cfg.Upload.URLPrefix)
	require.NoError(t, err)

	return &handler.Deps{
		Cfg:       cfg,
		DB:        gdb,
		Sessions:  session.New(cfg, nil),
		Uploads:   uploads,
		Validator: handler.NewValidator(),
	}
}

// NewApp mounts services under /api the way the web service does, plus a
// route handing out admin sessions.
func NewApp(t *testing.T, deps *handler.Deps, services ...handler.Service) *fiber.App {
	t.Helper()

	app := fiber.New(fiber.Config{ErrorHandler: handler.ErrorHandler})
	app.Use(auth.New(deps.Sessions))

	app.Post(adminLoginPath, func(c *fiber.Ctx) error {
		u, err := user.GetByUsername(deps.DB, AdminUsername)
		if err != nil {
			return err
		}

		return deps.Sessions.Login(c, u)
	})

	api := app.Group(handler.APIPath)
	for _, s := range services {
		require.NoError(t, s.Init(api, deps))
	}

	return app
}

// AdminCookie logs the seeded admin in and returns the session cookie.
func AdminCookie(t *testing.T, app *fiber.App) *http.Cookie {
	t.Helper()

	resp, err := app.Test(httptest.NewRequest(fiber.MethodPost, adminLoginPath, nil))
	require.NoError(t, err)

	cookie := SessionCookie(resp)
	require.NotNil(t, cookie, "no session cookie")

	return cookie
}

// SessionCookie returns the session cookie set by resp, if any.
func SessionCookie(resp *http.Response) *http.Cookie {
	for _, c := range resp.Cookies() {
		if c.Name == session.CookieName {
			return c
		}
	}

	return nil
}

// Do sends a request with an optional JSON body and cookie.
func Do(t *testing.T, app *fiber.App, method, target string, body any, cookie *http.Cookie) *http.Response {
	t.Helper()

	var reader io.Reader

	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)

		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	if reader != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}

	if cookie != nil {
		req.AddCookie(cookie)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	return resp
}

// Decode reads a JSON response body into v.
func Decode(t *testing.T, resp *http.Response, v any) {
	t.Helper()

	defer resp.Body.Close()

	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}

// Body returns the raw response body.
func Body(t *testing.T, resp *http.Response) string {
	t.Helper()

	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return string(raw)
}
