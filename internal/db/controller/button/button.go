// Package button provides CRUD operations for call to action buttons.
package button

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/gamelanding/gamelanding/internal/db/models"
)

var (
	// ErrButtonNotFound is returned when no button has the requested id.
	ErrButtonNotFound = errors.New("button not found")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
	// ErrButtonNil is returned when Create is called without a button.
	ErrButtonNil = errors.New("button is nil")
)

// Filter narrows List.
type Filter struct {
	VisibleOnly bool
}

// List returns buttons by sort order, ties broken by id.
func List(db *gorm.DB, f Filter) ([]models.Button, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	q := db.Order("sort_order ASC").Order("id ASC")
	if f.VisibleOnly {
		q = q.Where("is_visible = ?", true)
	}

	buttons := make([]models.Button, 0)
	if err := q.Find(&buttons).Error; err != nil {
		return nil, fmt.Errorf("list buttons: %w", err)
	}

	return buttons, nil
}

// Get retrieves a button by its ID.
func Get(db *gorm.DB, id uint64) (*models.Button, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var b models.Button

	result := db.First(&b, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrButtonNotFound
		}

		return nil, fmt.Errorf("get button %d: %w", id, result.Error)
	}

	return &b, nil
}

// Create inserts b.
func Create(db *gorm.DB, b *models.Button) (*models.Button, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	if b == nil {
		return nil, ErrButtonNil
	}

	b.ID = 0

	if err := db.Create(b).Error; err != nil {
		return nil, fmt.Errorf("create button: %w", err)
	}

	return b, nil
}

// Update applies patch to the button with the given id.
func Update(db *gorm.DB, id uint64, patch *models.ButtonPatch) (*models.Button, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var out models.Button

	err := db.Transaction(func(tx *gorm.DB) error {
		b, err := Get(tx, id)
		if err != nil {
			return err
		}

		if patch != nil {
			patch.Apply(b)
		}

		if err = tx.Save(b).Error; err != nil {
			return fmt.Errorf("update button %d: %w", id, err)
		}

		out = *b

		return nil
	})
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	return &out, nil
}

// Delete removes the button permanently.
func Delete(db *gorm.DB, id uint64) error {
	if db == nil {
		return ErrDBNil
	}

	result := db.Delete(&models.Button{}, id)
	if result.Error != nil {
		return fmt.Errorf("delete button %d: %w", id, result.Error)
	}

	if result.RowsAffected == 0 {
		return ErrButtonNotFound
	}

	return nil
}
