package models

import (
	"time"
)

const (
	// DefaultOutlineColor is the start color of a game card outline gradient.
	DefaultOutlineColor = "#ffffff"
	// DefaultOutlineColorEnd is the end color of a game card outline gradient.
	DefaultOutlineColorEnd = "#ff0000"
	// CopySuffix is appended to the name of a duplicated game.
	CopySuffix = " (Copy)"
)

// Game is a single gallery entry. Deposit, Withdraw, Bet and DateTime are
// display text, not numbers.
type Game struct {
	ID              uint64    `gorm:"primaryKey" json:"id"`
	Provider        string    `gorm:"not null" json:"provider"`
	Name            string    `gorm:"not null" json:"name"`
	Deposit         string    `gorm:"not null" json:"deposit"`
	Withdraw        string    `gorm:"not null" json:"withdraw"`
	Bet             string    `gorm:"not null" json:"bet"`
	DateTime        string    `gorm:"column:date_time;not null" json:"dateTime"`
	ImageURL        string    `gorm:"column:image_url;not null" json:"imageUrl"`
	IconURL         *string   `gorm:"column:icon_url" json:"iconUrl"`
	IconURL2        *string   `gorm:"column:icon_url_2" json:"iconUrl2"`
	OutlineColor    string    `gorm:"column:outline_color" json:"outlineColor"`
	OutlineColorEnd string    `gorm:"column:outline_color_end" json:"outlineColorEnd"`
	IsPublished     bool      `gorm:"column:is_published;index" json:"isPublished"`
	Description     string    `gorm:"size:200" json:"description"`
	CreatedAt       time.Time `gorm:"autoCreateTime;index" json:"createdAt"`
}

// TableName pins the table name.
func (Game) TableName() string {
	return "games"
}

// Copy returns an unsaved duplicate of g with a fresh identity and a marked name.
func (g *Game) Copy() Game {
	out := *g
	out.ID = 0
	out.CreatedAt = time.Time{}
	out.Name = g.Name + CopySuffix
	out.IconURL = cloneString(g.IconURL)
	out.IconURL2 = cloneString(g.IconURL2)

	return out
}

// GameInput is the body of a create request.
type GameInput struct {
	Provider        string  `json:"provider" validate:"required"`
	Name            string  `json:"name" validate:"required"`
	Deposit         *string `json:"deposit" validate:"required"`
	Withdraw        *string `json:"withdraw" validate:"required"`
	Bet             *string `json:"bet" validate:"required"`
	DateTime        *string `json:"dateTime" validate:"required"`
	ImageURL        string  `json:"imageUrl" validate:"required"`
	IconURL         *string `json:"iconUrl"`
	IconURL2        *string `json:"iconUrl2"`
	OutlineColor    *string `json:"outlineColor"`
	OutlineColorEnd *string `json:"outlineColorEnd"`
	IsPublished     *bool   `json:"isPublished"`
	Description     *string `json:"description" validate:"omitnil,max=200"`
}

// Game builds the model, filling defaults for omitted optional fields.
func (in *GameInput) Game() Game {
	g := Game{
		Provider:        in.Provider,
		Name:            in.Name,
		Deposit:         deref(in.Deposit, ""),
		Withdraw:        deref(in.Withdraw, ""),
		Bet:             deref(in.Bet, ""),
		DateTime:        deref(in.DateTime, ""),
		ImageURL:        in.ImageURL,
		IconURL:         nullable(in.IconURL),
		IconURL2:        nullable(in.IconURL2),
		OutlineColor:    deref(in.OutlineColor, DefaultOutlineColor),
		OutlineColorEnd: deref(in.OutlineColorEnd, DefaultOutlineColorEnd),
		IsPublished:     deref(in.IsPublished, true),
		Description:     deref(in.Description, ""),
	}

	return g
}

// GamePatch is a partial game update. Nil fields keep their current value,
// an empty icon url clears the icon.
type GamePatch struct {
	Provider        *string `json:"provider" validate:"omitnil,min=1"`
	Name            *string `json:"name" validate:"omitnil,min=1"`
	Deposit         *string `json:"deposit"`
	Withdraw        *string `json:"withdraw"`
	Bet             *string `json:"bet"`
	DateTime        *string `json:"dateTime"`
	ImageURL        *string `json:"imageUrl" validate:"omitnil,min=1"`
	IconURL         *string `json:"iconUrl"`
	IconURL2        *string `json:"iconUrl2"`
	OutlineColor    *string `json:"outlineColor"`
	OutlineColorEnd *string `json:"outlineColorEnd"`
	IsPublished     *bool   `json:"isPublished"`
	Description     *string `json:"description" validate:"omitnil,max=200"`
}

// Apply merges p into g. ID and CreatedAt are never touched.
func (p *GamePatch) Apply(g *Game) {
	setIf(&g.Provider, p.Provider)
	setIf(&g.Name, p.Name)
	setIf(&g.Deposit, p.Deposit)
	setIf(&g.Withdraw, p.Withdraw)
	setIf(&g.Bet, p.Bet)
	setIf(&g.DateTime, p.DateTime)
	setIf(&g.ImageURL, p.ImageURL)
	setIf(&g.OutlineColor, p.OutlineColor)
	setIf(&g.OutlineColorEnd, p.OutlineColorEnd)
	setIf(&g.IsPublished, p.IsPublished)
	setIf(&g.Description, p.Description)

	if p.IconURL != nil {
		g.IconURL = nullable(p.IconURL)
	}

	if p.IconURL2 != nil {
		g.IconURL2 = nullable(p.IconURL2)
	}
}

func deref[T any](v *T, def T) T {
	if v == nil {
		return def
	}

	return *v
}

// nullable maps nil and "" to NULL.
func nullable(v *string) *string {
	if v == nil || *v == "" {
		return nil
	}

	return cloneString(v)
}

func cloneString(v *string) *string {
	if v == nil {
		return nil
	}

	s := *v

	return &s
}
