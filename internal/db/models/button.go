package models

import "time"

// Button defaults, shared with the create input.
const (
	DefaultButtonLabel        = "Button"
	DefaultButtonURL          = "#"
	DefaultButtonColor        = "#3b82f6"
	DefaultButtonOutlineColor = "#60a5fa"
	DefaultButtonWidth        = 300
	DefaultButtonHeight       = 48
)

// Button is a call to action link on the public page. Public order is
// SortOrder ascending, ties broken by ID.
type Button struct {
	ID           uint64    `gorm:"primaryKey" json:"id"`
	Label        string    `gorm:"not null" json:"label"`
	URL          string    `gorm:"column:url;not null" json:"url"`
	Color        string    `json:"color"`
	OutlineColor string    `gorm:"column:outline_color" json:"outlineColor"`
	Width        int       `json:"width"`
	Height       int       `json:"height"`
	SortOrder    int       `gorm:"column:sort_order;index" json:"sortOrder"`
	IsVisible    bool      `gorm:"column:is_visible" json:"isVisible"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

// TableName pins the table name.
func (Button) TableName() string {
	return "buttons"
}

// ButtonInput is the body of a create request. Every field is optional.
type ButtonInput struct {
	Label        *string `json:"label"`
	URL          *string `json:"url"`
	Color        *string `json:"color"`
	OutlineColor *string `json:"outlineColor"`
	Width        *int    `json:"width" validate:"omitnil,gte=0"`
	Height       *int    `json:"height" validate:"omitnil,gte=0"`
	SortOrder    *int    `json:"sortOrder"`
	IsVisible    *bool   `json:"isVisible"`
}

// Button builds the model, filling defaults for omitted fields.
func (in *ButtonInput) Button() Button {
	return Button{
		Label:        deref(in.Label, DefaultButtonLabel),
		URL:          deref(in.URL, DefaultButtonURL),
		Color:        deref(in.Color, DefaultButtonColor),
		OutlineColor: deref(in.OutlineColor, DefaultButtonOutlineColor),
		Width:        deref(in.Width, DefaultButtonWidth),
		Height:       deref(in.Height, DefaultButtonHeight),
		SortOrder:    deref(in.SortOrder, 0),
		IsVisible:    deref(in.IsVisible, true),
	}
}

// ButtonPatch is a partial button update.
type ButtonPatch ButtonInput

// Apply merges p into b.
func (p *ButtonPatch) Apply(b *Button) {
	setIf(&b.Label, p.Label)
	setIf(&b.URL, p.URL)
	setIf(&b.Color, p.Color)
	setIf(&b.OutlineColor, p.OutlineColor)
	setIf(&b.Width, p.Width)
	setIf(&b.Height, p.Height)
	setIf(&b.SortOrder, p.SortOrder)
	setIf(&b.IsVisible, p.IsVisible)
}
