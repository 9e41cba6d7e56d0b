// Package models contains the gorm models of the landing page content and
// the typed patch structs used to change them.
package models

// SettingsID is the primary key of the only settings row.
const SettingsID uint64 = 1

// Settings is the site wide display configuration. Exactly one row exists.
type Settings struct {
	ID                    uint64 `gorm:"primaryKey" json:"id"`
	LogoURL               string `gorm:"column:logo_url" json:"logoUrl"`
	BackgroundURL         string `gorm:"column:background_url" json:"backgroundUrl"`
	ButtonColor           string `gorm:"column:button_color" json:"buttonColor"`
	ButtonOutlineColor    string `gorm:"column:button_outline_color" json:"buttonOutlineColor"`
	ButtonShape           string `gorm:"column:button_shape" json:"buttonShape"`
	LoginURL              string `gorm:"column:login_url" json:"loginUrl"`
	RegisterURL           string `gorm:"column:register_url" json:"registerUrl"`
	DesktopColumns        int    `gorm:"column:desktop_columns" json:"desktopColumns"`
	MobileColumns         int    `gorm:"column:mobile_columns" json:"mobileColumns"`
	GameIconSize          int    `gorm:"column:game_icon_size" json:"gameIconSize"`
	LogoSize              int    `gorm:"column:logo_size" json:"logoSize"`
	SiteTitle             string `gorm:"column:site_title" json:"siteTitle"`
	OutlineAnimation      string `gorm:"column:outline_animation" json:"outlineAnimation"`
	OutlineAnimationSpeed int    `gorm:"column:outline_animation_speed" json:"outlineAnimationSpeed"`
	GameCardSize          int    `gorm:"column:game_card_size" json:"gameCardSize"`
	OutlineThickness      int    `gorm:"column:outline_thickness" json:"outlineThickness"`
	SnowEnabled           bool   `gorm:"column:snow_enabled" json:"snowEnabled"`
	SnowSpeed             int    `gorm:"column:snow_speed" json:"snowSpeed"`
	SnowAmount            int    `gorm:"column:snow_amount" json:"snowAmount"`
	SnowParticleSize      int    `gorm:"column:snow_particle_size" json:"snowParticleSize"`
	SnowImageURL1         string `gorm:"column:snow_image_url_1" json:"snowImageUrl1"`
	SnowImageURL2         string `gorm:"column:snow_image_url_2" json:"snowImageUrl2"`
	SnowImageURL3         string `gorm:"column:snow_image_url_3" json:"snowImageUrl3"`
	SnowImageURL4         string `gorm:"column:snow_image_url_4" json:"snowImageUrl4"`
	CardBgColor           string `gorm:"column:card_bg_color" json:"cardBgColor"`
	ButtonHeight          int    `gorm:"column:button_height" json:"buttonHeight"`
	ButtonWidth           int    `gorm:"column:button_width" json:"buttonWidth"`
	BgColor               string `gorm:"column:bg_color" json:"bgColor"`
	SiteDescription       string `gorm:"column:site_description" json:"siteDescription"`
	SiteDescriptionSize   int    `gorm:"column:site_description_size" json:"siteDescriptionSize"`
	SiteDescriptionColor  string `gorm:"column:site_description_color" json:"siteDescriptionColor"`
	MarqueeText           string `gorm:"column:marquee_text" json:"marqueeText"`
	MarqueeSpeed          int    `gorm:"column:marquee_speed" json:"marqueeSpeed"`
	MarqueeColor          string `gorm:"column:marquee_color" json:"marqueeColor"`
	MarqueeBgColor        string `gorm:"column:marquee_bg_color" json:"marqueeBgColor"`
	MarqueeEnabled        bool   `gorm:"column:marquee_enabled" json:"marqueeEnabled"`
}

// TableName pins the table name.
func (Settings) TableName() string {
	return "settings"
}

// DefaultSettings returns the values a fresh settings row is created with.
func DefaultSettings() Settings {
	return Settings{
		ID:                    SettingsID,
		ButtonColor:           "#3b82f6",
		ButtonOutlineColor:    "#60a5fa",
		ButtonShape:           "rounded-full",
		LoginURL:              "#",
		RegisterURL:           "#",
		DesktopColumns:        4,
		MobileColumns:         3,
		GameIconSize:          50,
		LogoSize:              220,
		SiteTitle:             "Landing Page",
		OutlineAnimation:      "pulse",
		OutlineAnimationSpeed: 3,
		GameCardSize:          200,
		OutlineThickness:      2,
		SnowSpeed:             5,
		SnowAmount:            50,
		SnowParticleSize:      20,
		CardBgColor:           "#0c1929",
		ButtonHeight:          48,
		ButtonWidth:           300,
		BgColor:               "#020617",
		SiteDescriptionSize:   16,
		SiteDescriptionColor:  "#ffffff",
		MarqueeSpeed:          10,
		MarqueeColor:          "#ffffff",
		MarqueeBgColor:        "#1e293b",
	}
}

// SettingsPatch is a partial settings update. Nil fields keep their current value.
type SettingsPatch struct {
	LogoURL               *string `json:"logoUrl"`
	BackgroundURL         *string `json:"backgroundUrl"`
	ButtonColor           *string `json:"buttonColor"`
	ButtonOutlineColor    *string `json:"buttonOutlineColor"`
	ButtonShape           *string `json:"buttonShape"`
	LoginURL              *string `json:"loginUrl"`
	RegisterURL           *string `json:"registerUrl"`
	DesktopColumns        *int    `json:"desktopColumns" validate:"omitnil,min=1,max=12"`
	MobileColumns         *int    `json:"mobileColumns" validate:"omitnil,min=1,max=12"`
	GameIconSize          *int    `json:"gameIconSize" validate:"omitnil,gte=0"`
	LogoSize              *int    `json:"logoSize" validate:"omitnil,gte=0"`
	SiteTitle             *string `json:"siteTitle"`
	OutlineAnimation      *string `json:"outlineAnimation"`
	OutlineAnimationSpeed *int    `json:"outlineAnimationSpeed" validate:"omitnil,gte=0"`
	GameCardSize          *int    `json:"gameCardSize" validate:"omitnil,gte=0"`
	OutlineThickness      *int    `json:"outlineThickness" validate:"omitnil,gte=0"`
	SnowEnabled           *bool   `json:"snowEnabled"`
	SnowSpeed             *int    `json:"snowSpeed" validate:"omitnil,gte=0"`
	SnowAmount            *int    `json:"snowAmount" validate:"omitnil,gte=0"`
	SnowParticleSize      *int    `json:"snowParticleSize" validate:"omitnil,gte=0"`
	SnowImageURL1         *string `json:"snowImageUrl1"`
	SnowImageURL2         *string `json:"snowImageUrl2"`
	SnowImageURL3         *string `json:"snowImageUrl3"`
	SnowImageURL4         *string `json:"snowImageUrl4"`
	CardBgColor           *string `json:"cardBgColor"`
	ButtonHeight          *int    `json:"buttonHeight" validate:"omitnil,gte=0"`
	ButtonWidth           *int    `json:"buttonWidth" validate:"omitnil,gte=0"`
	BgColor               *string `json:"bgColor"`
	SiteDescription       *string `json:"siteDescription"`
	SiteDescriptionSize   *int    `json:"siteDescriptionSize" validate:"omitnil,gte=0"`
	SiteDescriptionColor  *string `json:"siteDescriptionColor"`
	MarqueeText           *string `json:"marqueeText"`
	MarqueeSpeed          *int    `json:"marqueeSpeed" validate:"omitnil,gte=0"`
	MarqueeColor          *string `json:"marqueeColor"`
	MarqueeBgColor        *string `json:"marqueeBgColor"`
	MarqueeEnabled        *bool   `json:"marqueeEnabled"`
}

// Apply merges p into s.
func (p *SettingsPatch) Apply(s *Settings) {
	setIf(&s.LogoURL, p.LogoURL)
	setIf(&s.BackgroundURL, p.BackgroundURL)
	setIf(&s.ButtonColor, p.ButtonColor)
	setIf(&s.ButtonOutlineColor, p.ButtonOutlineColor)
	setIf(&s.ButtonShape, p.ButtonShape)
	setIf(&s.LoginURL, p.LoginURL)
	setIf(&s.RegisterURL, p.RegisterURL)
	setIf(&s.DesktopColumns, p.DesktopColumns)
	setIf(&s.MobileColumns, p.MobileColumns)
	setIf(&s.GameIconSize, p.GameIconSize)
	setIf(&s.LogoSize, p.LogoSize)
	setIf(&s.SiteTitle, p.SiteTitle)
	setIf(&s.OutlineAnimation, p.OutlineAnimation)
	setIf(&s.OutlineAnimationSpeed, p.OutlineAnimationSpeed)
	setIf(&s.GameCardSize, p.GameCardSize)
	setIf(&s.OutlineThickness, p.OutlineThickness)
	setIf(&s.SnowEnabled, p.SnowEnabled)
	setIf(&s.SnowSpeed, p.SnowSpeed)
	setIf(&s.SnowAmount, p.SnowAmount)
	setIf(&s.SnowParticleSize, p.SnowParticleSize)
	setIf(&s.SnowImageURL1, p.SnowImageURL1)
	setIf(&s.SnowImageURL2, p.SnowImageURL2)
	setIf(&s.SnowImageURL3, p.SnowImageURL3)
	setIf(&s.SnowImageURL4, p.SnowImageURL4)
	setIf(&s.CardBgColor, p.CardBgColor)
	setIf(&s.ButtonHeight, p.ButtonHeight)
	setIf(&s.ButtonWidth, p.ButtonWidth)
	setIf(&s.BgColor, p.BgColor)
	setIf(&s.SiteDescription, p.SiteDescription)
	setIf(&s.SiteDescriptionSize, p.SiteDescriptionSize)
	setIf(&s.SiteDescriptionColor, p.SiteDescriptionColor)
	setIf(&s.MarqueeText, p.MarqueeText)
	setIf(&s.MarqueeSpeed, p.MarqueeSpeed)
	setIf(&s.MarqueeColor, p.MarqueeColor)
	setIf(&s.MarqueeBgColor, p.MarqueeBgColor)
	setIf(&s.MarqueeEnabled, p.MarqueeEnabled)
}

// Empty reports whether p changes nothing.
func (p *SettingsPatch) Empty() bool {
	return *p == SettingsPatch{}
}

func setIf[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}
