package daemon

import (
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/gamelanding/gamelanding/internal/config"
	"github.com/gamelanding/gamelanding/internal/db/controller/game"
	"github.com/gamelanding/gamelanding/internal/db/controller/user"
	"github.com/gamelanding/gamelanding/internal/db/models"
)

const seedTimeFormat = "1/2/2006, 3:04:05 PM"

type demoGame struct {
	provider, name, deposit, withdraw, bet, image, icon, outline string
}

var demoGames = []demoGame{ //nolint:gochecknoglobals
	{
		provider: "PRAGMATIC PLAY", name: "GATES OF OLYMPUS", deposit: "20.000", withdraw: "50.000", bet: "200",
		image:   "https://placehold.co/300x300/1e3a8a/FFFFFF/png?text=OLYMPUS",
		icon:    "https://placehold.co/50x50/1e3a8a/FFFFFF/png?text=P",
		outline: "#fbbf24",
	},
	{
		provider: "PG SOFT", name: "MAHJONG WAYS 2", deposit: "20.000", withdraw: "50.000", bet: "200",
		image:   "https://placehold.co/300x300/991b1b/FFFFFF/png?text=MAHJONG",
		icon:    "https://placehold.co/50x50/991b1b/FFFFFF/png?text=PG",
		outline: "#ef4444",
	},
	{
		provider: "HABANERO", name: "KOI GATE", deposit: "10.000", withdraw: "50.000", bet: "180",
		image:   "https://placehold.co/300x300/065f46/FFFFFF/png?text=KOI",
		icon:    "https://placehold.co/50x50/065f46/FFFFFF/png?text=H",
		outline: "#34d399",
	},
	{
		provider: "SPADEGAMING", name: "BROTHERS KINGDOM", deposit: "20.000", withdraw: "50.000", bet: "200",
		image:   "https://placehold.co/300x300/4c1d95/FFFFFF/png?text=KINGDOM",
		icon:    "https://placehold.co/50x50/4c1d95/FFFFFF/png?text=S",
		outline: "#a78bfa",
	},
}

// seed creates the configured admin when no admin exists and, if enabled,
// fills an empty games table with demo content.
func seed(cfg *config.Config, db *gorm.DB, now time.Time) error {
	created, err := user.EnsureAdmin(db, cfg.Admin.Username, cfg.Admin.Password)
	if err != nil {
		return err
	}

	if created {
		log.Info().Str("username", cfg.Admin.Username).Msg("admin user seeded")
	}

	if !cfg.Seed.DemoGames {
		return nil
	}

	n, err := game.Count(db)
	if err != nil {
		return err
	}

	if n > 0 {
		return nil
	}

	stamp := now.Format(seedTimeFormat)

	for _, d := range demoGames {
		icon := d.icon

		if _, err = game.Create(db, &models.Game{
			Provider:        d.provider,
			Name:            d.name,
			Deposit:         d.deposit,
			Withdraw:        d.withdraw,
			Bet:             d.bet,
			DateTime:        stamp,
			ImageURL:        d.image,
			IconURL:         &icon,
			OutlineColor:    d.outline,
			OutlineColorEnd: models.DefaultOutlineColorEnd,
			IsPublished:     true,
		}); err != nil {
			return err
		}
	}

	log.Info().Int("count", len(demoGames)).Msg("demo games seeded")

	return nil
}
