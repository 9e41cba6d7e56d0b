package home_test

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gamelanding/gamelanding/internal/db/controller/button"
	"github.com/gamelanding/gamelanding/internal/db/controller/game"
	"github.com/gamelanding/gamelanding/internal/db/controller/settings"
	"github.com/gamelanding/gamelanding/internal/db/models"
	"github.com/gamelanding/gamelanding/internal/web/handler"
	"github.com/gamelanding/gamelanding/internal/web/handler/handlertest"
	"github.com/gamelanding/gamelanding/internal/web/handler/home"
)

func ptr[T any](v T) *T { return &v }

func newTestApp(t *testing.T, deps *handler.Deps) *fiber.App {
	t.Helper()

	app := fiber.New(fiber.Config{
		Views:        html.New("../../templates", ".gohtml"),
		ErrorHandler: handler.ErrorHandler,
	})

	require.NoError(t, (&home.Service{}).Init(app, deps))

	return app
}

func TestRenderEmpty(t *testing.T) {
	deps := handlertest.NewDeps(t)
	app := newTestApp(t, deps)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := handlertest.Body(t, resp)
	assert.Contains(t, body, "Landing Page")
	assert.Contains(t, body, `data-testid="button-login"`)
	assert.Contains(t, body, "No games available yet.")
	assert.NotContains(t, body, `id="snow"`)
}

func TestRenderContent(t *testing.T) {
	deps := handlertest.NewDeps(t)
	app := newTestApp(t, deps)

	_, err := settings.Update(deps.DB, &models.SettingsPatch{
		SiteTitle:      ptr("Bell Casino"),
		MarqueeEnabled: ptr(true),
		MarqueeText:    ptr("Jackpot <b>every</b> day"),
		SnowEnabled:    ptr(true),
	})
	require.NoError(t, err)

	_, err = button.Create(deps.DB, &models.Button{Label: "Daftar", URL: "https://example.com/r", IsVisible: true})
	require.NoError(t, err)
	_, err = button.Create(deps.DB, &models.Button{Label: "Hidden", URL: "#"})
	require.NoError(t, err)

	_, err = game.Create(deps.DB, &models.Game{Provider: "PG SOFT", Name: "MAHJONG WAYS 2", ImageURL: "/uploads/m.png", IsPublished: true})
	require.NoError(t, err)
	_, err = game.Create(deps.DB, &models.Game{Provider: "PG SOFT", Name: "DRAFT GAME", ImageURL: "/uploads/d.png"})
	require.NoError(t, err)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := handlertest.Body(t, resp)
	assert.Contains(t, body, "<title>Bell Casino</title>")
	assert.Contains(t, body, "Daftar")
	assert.NotContains(t, body, "Hidden")
	assert.NotContains(t, body, `data-testid="button-login"`)
	assert.Contains(t, body, "MAHJONG WAYS 2")
	assert.NotContains(t, body, "DRAFT GAME")
	assert.Contains(t, body, "Jackpot &lt;b&gt;every&lt;/b&gt; day")
	assert.Contains(t, body, `id="snow"`)
}

func TestNewPageFallbacks(t *testing.T) {
	s := models.Settings{BgColor: "red;}body{display:none", GameCardSize: 50, SnowAmount: 1000}

	p := home.NewPage("Fallback", &s, nil, []models.Game{{OutlineColor: "nope("}}, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))

	assert.Equal(t, "Fallback", p.Title)
	assert.Equal(t, 4, p.Settings.DesktopColumns)
	assert.Equal(t, 500, p.Settings.SnowAmount)
	assert.Equal(t, 2026, p.Year)
	assert.Equal(t, "background-color:#020617", string(p.BodyCSS))
	assert.Contains(t, string(p.GridCSS), "--card-size:120px")
	require.Len(t, p.Games, 1)
	assert.Contains(t, string(p.Games[0].OutlineCSS), models.DefaultOutlineColor)
}

func TestNewPageStyles(t *testing.T) {
	s := models.DefaultSettings()
	s.CardBgColor = "#101010"
	s.MarqueeBgColor = "url(javascript:x)"
	s.MarqueeColor = "#abcdef"
	s.SiteDescriptionColor = "</style><script>"
	s.SiteDescriptionSize = 18

	buttons := []models.Button{{ID: 1, Label: "DAFTAR", Color: "#00ff00", OutlineColor: "expression(x)"}}
	games := []models.Game{{ID: 2, OutlineColor: "#111111", OutlineColorEnd: "#222222"}}

	p := home.NewPage("Styles", &s, buttons, games, time.Now())
	def := models.DefaultSettings()

	assert.Equal(t, "background-color:#101010", string(p.CardCSS))
	assert.Equal(t, "background-color:"+def.MarqueeBgColor, string(p.MarqueeCSS))
	assert.Contains(t, string(p.TickerCSS), "color:#abcdef;")
	assert.Equal(t, "font-size:18px;color:"+def.SiteDescriptionColor, string(p.DescCSS))

	require.Len(t, p.Buttons, 1)
	assert.Contains(t, string(p.Buttons[0].Style), "linear-gradient(135deg,#00ff00,#00ff00)")
	assert.Contains(t, string(p.Buttons[0].Style), "border-color:"+def.ButtonOutlineColor)

	require.Len(t, p.Games, 1)
	assert.Contains(t, string(p.Games[0].OutlineCSS), "#111111,#222222 50%,#111111")
	assert.Equal(t, "color:#111111", string(p.Games[0].AccentCSS))
}
