package config

import (
	"errors"
)

var (
	// ErrEmptyURL error if config webserver.URL is empty.
	ErrEmptyURL = errors.New("toml config webserver.url can not be empty")

	// ErrWebServerPortCanNotBeZero error if config webserver listening port is 0.
	ErrWebServerPortCanNotBeZero = errors.New("toml config webserver.port listening port can not be 0")

	// ErrUnknownDBEngine error if config db.gormengine is not supported.
	ErrUnknownDBEngine = errors.New("toml config db.gormengine must be sqlite, postgres or mysql")

	// ErrUnknownSessionStorage error if config session.storage is not supported.
	ErrUnknownSessionStorage = errors.New("toml config session.storage must be memory or database")

	// ErrEmptyAdminPassword error if no password for the seeded admin is configured.
	ErrEmptyAdminPassword = errors.New("toml config admin.password can not be empty")
)
