// Package db opens the configured gorm database and migrates the schema.
package db

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/pkg/errors"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/gamelanding/gamelanding/internal/config"
	"github.com/gamelanding/gamelanding/internal/db/dsn"
	"github.com/gamelanding/gamelanding/internal/db/models"
	"github.com/gamelanding/gamelanding/internal/logger/adapter/gormlog"
)

// Models lists every table owned by the application.
func Models() []any {
	return []any{
		&models.Settings{},
		&models.Game{},
		&models.Button{},
		&models.User{},
	}
}

// Dialector returns the gorm driver for the configured engine.
func Dialector(cfg *config.Config) (gorm.Dialector, error) {
	source := dsn.Create(cfg)

	switch cfg.DB.GormEngine {
	case config.EngineMySQL:
		return mysql.Open(source), nil
	case config.EnginePostgres:
		return postgres.Open(source), nil
	case config.EngineSQLite, "":
		if err := ensureDir(cfg.DB.Name); err != nil {
			return nil, err
		}

		return sqlite.Open(source), nil
	default:
		return nil, errors.Wrapf(config.ErrUnknownDBEngine, "engine %q", cfg.DB.GormEngine)
	}
}

// Open connects to the database and migrates the schema.
func Open(cfg *config.Config) (*gorm.DB, error) {
	dialector, err := Dialector(cfg)
	if err != nil {
		return nil, err
	}

	level := gormlogger.Warn
	if cfg.DevMode {
		level = gormlogger.Info
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlog.New(level, time.Duration(cfg.Log.SlowQuery)*time.Millisecond),
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to connect %s database", cfg.DB.GormEngine)
	}

	if cfg.DB.GormEngine == config.EngineSQLite || cfg.DB.GormEngine == "" {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, errors.Wrap(err, "failed to get sql db")
		}

		// sqlite allows one writer; a single connection also keeps :memory: databases shared.
		sqlDB.SetMaxOpenConns(1)
	}

	if err = Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate creates or updates all tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return errors.Wrap(err, "failed to migrate database")
	}

	return nil
}

func ensureDir(name string) error {
	if name == "" || strings.HasPrefix(name, ":memory:") || strings.HasPrefix(name, "file:") {
		return nil
	}

	dir := filepath.Dir(name)
	if dir == "." {
		return nil
	}

	if err := os.MkdirAll(dir, 0o750); err != nil {
		return errors.Wrapf(err, "failed to create database directory %s", dir)
	}

	return nil
}
