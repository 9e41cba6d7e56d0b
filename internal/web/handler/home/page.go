package home

import (
	"fmt"
	"html/template"
	"regexp"
	"time"

	"github.com/gamelanding/gamelanding/internal/db/models"
)

const (
	minCardSize     = 120
	maxSnowFlakes   = 500
	minSnowFlakes   = 10
	marqueeBase     = 51
	marqueeMinSecs  = 3
	marqueeSpeedMul = 5
)

var cssColorRe = regexp.MustCompile(`^(#[0-9a-fA-F]{3,8}|[a-zA-Z]{3,20}|rgba?\([0-9.,%\s]+\)|hsla?\([0-9.,%\s]+\))$`)

// Page is the view model of the public page. Zero settings fall back to
// the page defaults.
type Page struct {
	Title       string
	Settings    models.Settings
	Buttons     []ButtonView
	Games       []GameView
	SnowImages  []string
	MarqueeSecs int
	GridCSS     template.CSS
	BodyCSS     template.CSS
	CardCSS     template.CSS
	DescCSS     template.CSS
	MarqueeCSS  template.CSS
	TickerCSS   template.CSS
	Year        int
}

// ButtonView is a visible button with its resolved style.
type ButtonView struct {
	ID    uint64
	Label string
	URL   string
	Style template.CSS
}

// GameView is a published game with its resolved card style.
type GameView struct {
	models.Game
	OutlineCSS template.CSS
	AccentCSS  template.CSS
}

// NewPage resolves settings, buttons and games into the page model.
func NewPage(title string, s *models.Settings, buttons []models.Button, games []models.Game, now time.Time) Page {
	def := models.DefaultSettings()

	cur := *s
	orInt(&cur.DesktopColumns, def.DesktopColumns)
	orInt(&cur.MobileColumns, def.MobileColumns)
	orInt(&cur.LogoSize, def.LogoSize)
	orInt(&cur.GameCardSize, def.GameCardSize)
	orInt(&cur.OutlineThickness, def.OutlineThickness)
	orInt(&cur.OutlineAnimationSpeed, def.OutlineAnimationSpeed)
	orInt(&cur.GameIconSize, def.GameIconSize)
	orInt(&cur.ButtonHeight, def.ButtonHeight)
	orInt(&cur.ButtonWidth, def.ButtonWidth)
	orInt(&cur.SnowAmount, def.SnowAmount)
	orInt(&cur.SnowSpeed, def.SnowSpeed)
	orInt(&cur.SnowParticleSize, def.SnowParticleSize)
	orInt(&cur.SiteDescriptionSize, def.SiteDescriptionSize)
	orInt(&cur.MarqueeSpeed, def.MarqueeSpeed)
	cur.SnowAmount = clamp(cur.SnowAmount, minSnowFlakes, maxSnowFlakes)

	if cur.SiteTitle == "" && title != "" {
		cur.SiteTitle = title
	}

	p := Page{
		Title:       cur.SiteTitle,
		Settings:    cur,
		MarqueeSecs: max(marqueeBase-cur.MarqueeSpeed*marqueeSpeedMul, marqueeMinSecs),
		Year:        now.Year(),
	}

	for _, u := range []string{cur.SnowImageURL1, cur.SnowImageURL2, cur.SnowImageURL3, cur.SnowImageURL4} {
		if u != "" {
			p.SnowImages = append(p.SnowImages, u)
		}
	}

	cardSize := max(cur.GameCardSize, minCardSize)
	p.GridCSS = css(fmt.Sprintf(
		"--card-size:%dpx;--mobile-cols:%d;--desktop-cols:%d",
		cardSize, cur.MobileColumns, cur.DesktopColumns,
	))
	p.BodyCSS = css("background-color:" + color(cur.BgColor, def.BgColor))
	p.CardCSS = css("background-color:" + color(cur.CardBgColor, def.CardBgColor))
	p.DescCSS = css(fmt.Sprintf(
		"font-size:%dpx;color:%s", cur.SiteDescriptionSize, color(cur.SiteDescriptionColor, def.SiteDescriptionColor),
	))
	p.MarqueeCSS = css("background-color:" + color(cur.MarqueeBgColor, def.MarqueeBgColor))
	p.TickerCSS = css(fmt.Sprintf(
		"color:%s;animation-duration:%ds", color(cur.MarqueeColor, def.MarqueeColor), p.MarqueeSecs,
	))

	btnColor := color(cur.ButtonColor, def.ButtonColor)
	btnOutline := color(cur.ButtonOutlineColor, def.ButtonOutlineColor)

	for _, b := range buttons {
		fill := color(b.Color, btnColor)
		p.Buttons = append(p.Buttons, ButtonView{
			ID:    b.ID,
			Label: b.Label,
			URL:   orString(b.URL, "#"),
			Style: css(fmt.Sprintf(
				"background:linear-gradient(135deg,%s,%s);border-color:%s;height:%dpx;line-height:%dpx",
				fill, fill, color(b.OutlineColor, btnOutline), cur.ButtonHeight, cur.ButtonHeight-4,
			)),
		})
	}

	thickness := max(cur.OutlineThickness, 1)

	for _, g := range games {
		start := color(g.OutlineColor, models.DefaultOutlineColor)
		end := color(g.OutlineColorEnd, models.DefaultOutlineColorEnd)

		p.Games = append(p.Games, GameView{
			Game: g,
			OutlineCSS: css(fmt.Sprintf(
				"inset:-%dpx;background:linear-gradient(135deg,%s,%s 50%%,%s);animation-duration:%ds",
				thickness, start, end, start, cur.OutlineAnimationSpeed,
			)),
			AccentCSS: css("color:" + start),
		})
	}

	return p
}

// css marks s as safe style text. Callers pass integers and colors filtered by color only.
func css(s string) template.CSS {
	return template.CSS(s) //nolint:gosec // see above
}

// color returns v if it looks like a css color, def otherwise.
func color(v, def string) string {
	if cssColorRe.MatchString(v) {
		return v
	}

	return def
}

func orInt(v *int, def int) {
	if *v <= 0 {
		*v = def
	}
}

func orString(v, def string) string {
	if v == "" {
		return def
	}

	return v
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
