// Package config handles input from etc/*.toml files
package config

import (
	"bytes"
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const (
	// EnvPrefix prefixes every env override, e.g. GAMELANDING_WEBSERVER_PORT.
	EnvPrefix = "GAMELANDING"

	// EnvConfigJSON holds a JSON document merged over the file config.
	EnvConfigJSON = EnvPrefix + "_CONFIG_JSON"

	// DefaultPath is used if no config path was given.
	DefaultPath = "./etc/"

	fileName = "main.toml"
)

// ReadConfig from config file.
//
// Order of precedence, lowest first: main.toml, .env file, GAMELANDING_* env vars,
// GAMELANDING_CONFIG_JSON.
func ReadConfig(path string) (Config, error) {
	var (
		c             Config
		JSONConfigEnv string
		err           error
	)

	if path == "" {
		path = DefaultPath
	}

	if err = loadDotEnv(filepath.Join(path, ".env"), ".env"); err != nil {
		return Config{}, err
	}

	v := viper.New()
	v.SetConfigFile(filepath.Join(path, fileName))
	v.SetConfigType("toml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err = v.ReadInConfig(); err != nil {
		return Config{}, errors.Wrap(err, "failed to read main config file")
	}

	if err = v.Unmarshal(&c); err != nil {
		return Config{}, errors.Wrap(err, "failed to decode main config file")
	}

	// override it from env
	JSONConfigEnv = os.Getenv(EnvConfigJSON)

	if JSONConfigEnv != "" {
		c, err = decodeAndMergeConfig(c, JSONConfigEnv)
		if err != nil {
			return c, err
		}
	}

	return c, validate(&c)
}

// loadDotEnv loads the given env files if they exist. Already set variables win.
func loadDotEnv(files ...string) error {
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}

			return errors.Wrapf(err, "failed to load env file %s", f)
		}
	}

	return nil
}

func decodeAndMergeConfig(c Config, configAsJSON string) (Config, error) {
	err := json.Unmarshal([]byte(configAsJSON), &c)
	if err != nil {
		return Config{}, errors.Wrap(err, "failed to read json config override")
	}

	return c, nil
}

// DumpConfig config as TOML String.
func DumpConfig(c *Config) (string, error) {
	var buffer bytes.Buffer
	t := toml.NewEncoder(&buffer)
	t.SetIndentTables(true)

	if err := t.Encode(c); err != nil {
		return "", err //nolint: wrapcheck
	}

	return buffer.String(), nil
}

// DumpConfigJSON config as JSON String.
func DumpConfigJSON(c *Config) (string, error) {
	var buffer bytes.Buffer
	j := json.NewEncoder(&buffer)
	j.SetIndent("", "  ")

	if err := j.Encode(c); err != nil {
		return "", err //nolint: wrapcheck
	}

	return buffer.String(), nil
}

// validate the config and fill in defaults for optional values.
func validate(c *Config) error {
	invalidErrMessage := "invalid config"

	if c.Webserver.Port == 0 {
		return errors.Wrap(ErrWebServerPortCanNotBeZero, invalidErrMessage)
	}

	if c.Webserver.URL == "" {
		return errors.Wrap(ErrEmptyURL, invalidErrMessage)
	}

	if c.Webserver.ShutDownTime == 0 {
		c.Webserver.ShutDownTime = 5 // set default of 5 seconds
	}

	if c.Webserver.BodyLimit == 0 {
		c.Webserver.BodyLimit = 4 * 1024 * 1024 //nolint: mnd // fiber default
	}

	if c.Webserver.MetricsPath == "" {
		c.Webserver.MetricsPath = "/metrics"
	}

	switch c.DB.GormEngine {
	case "":
		c.DB.GormEngine = EngineSQLite
	case EngineSQLite, EnginePostgres, EngineMySQL:
	default:
		return errors.Wrapf(ErrUnknownDBEngine, "%s: %q", invalidErrMessage, c.DB.GormEngine)
	}

	if c.DB.GormEngine == EngineSQLite && c.DB.Name == "" {
		c.DB.Name = "gamelanding.db"
	}

	switch c.Session.Storage {
	case "":
		c.Session.Storage = "memory"
	case "memory", "database":
	default:
		return errors.Wrapf(ErrUnknownSessionStorage, "%s: %q", invalidErrMessage, c.Session.Storage)
	}

	if c.Session.ExpiryTime == 0 {
		c.Session.ExpiryTime = 24 * time.Hour //nolint: mnd
	}

	if c.Session.Table == "" {
		c.Session.Table = "sessions"
	}

	if c.Upload.Dir == "" {
		c.Upload.Dir = "./public/uploads"
	}

	if c.Upload.URLPrefix == "" {
		c.Upload.URLPrefix = "/uploads"
	}

	if c.Admin.Username == "" {
		c.Admin.Username = "admin"
	}

	if c.Admin.Password == "" {
		return errors.Wrap(ErrEmptyAdminPassword, invalidErrMessage)
	}

	return nil
}
