// Package settings reads and updates the singleton settings row.
package settings

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/gamelanding/gamelanding/internal/db/models"
)

var (
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
	// ErrPatchNil is returned when Update is called without a patch.
	ErrPatchNil = errors.New("settings patch is nil")
)

// Get returns the settings row. A missing row is created with defaults, so Get never
// reports not found.
func Get(db *gorm.DB) (*models.Settings, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var s models.Settings

	result := db.First(&s, models.SettingsID)
	if result.Error == nil {
		return &s, nil
	}

	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("load settings: %w", result.Error)
	}

	// a concurrent request may have created the row in the meantime
	s = models.DefaultSettings()
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&s).Error; err != nil {
		return nil, fmt.Errorf("create default settings: %w", err)
	}

	if err := db.First(&s, models.SettingsID).Error; err != nil {
		return nil, fmt.Errorf("reload settings: %w", err)
	}

	return &s, nil
}

// Update merges patch into the settings row, creating the row first if needed.
// Fields left nil in patch keep their stored value.
func Update(db *gorm.DB, patch *models.SettingsPatch) (*models.Settings, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	if patch == nil {
		return nil, ErrPatchNil
	}

	var out models.Settings

	err := db.Transaction(func(tx *gorm.DB) error {
		current, err := Get(tx)
		if err != nil {
			return err
		}

		patch.Apply(current)

		if err = tx.Save(current).Error; err != nil {
			return fmt.Errorf("save settings: %w", err)
		}

		out = *current

		return nil
	})
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	return &out, nil
}
