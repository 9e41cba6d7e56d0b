package config

import (
	"time"

	"github.com/gamelanding/gamelanding/internal/logger"
)

// Session settings.
type Session struct {
	ExpiryTime time.Duration // lifetime of an admin session
	Storage    string        // memory or database
	Table      string        // table name used by database backed session storage
}

// Config overall data structure.
type Config struct {
	DevMode   bool // enable dev mode for development
	Title     string
	DB        DB
	Log       logger.Log
	Webserver Webserver
	Session   Session
	Upload    Upload
	Admin     Admin
	Seed      Seed
}

// Webserver implement webserver settings.
type Webserver struct {
	DisableRecover bool   // disable recover middleware
	Port           int    // listening port for the webserver
	ShutDownTime   int    // wait time for shutdown
	URL            string // base url for the webserver
	BodyLimit      int    // max request body size in bytes, bounds uploads too
	Metrics        bool   // expose prometheus metrics
	MetricsPath    string
}

// Upload holds where uploaded files are written and how they are addressed.
type Upload struct {
	Dir       string // local directory receiving uploaded files
	URLPrefix string // public path prefix the files are served under
}

// Admin is the account seeded at startup when no admin exists.
type Admin struct {
	Username string
	Password string
}

// Seed controls optional demo content.
type Seed struct {
	DemoGames bool // insert demo games into an empty games table
}
