// Package game provides CRUD operations for gallery games.
package game

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/gamelanding/gamelanding/internal/db/models"
)

var (
	// ErrGameNotFound is returned when no game has the requested id.
	ErrGameNotFound = errors.New("game not found")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
	// ErrGameNil is returned when Create is called without a game.
	ErrGameNil = errors.New("game is nil")
)

// Filter narrows List.
type Filter struct {
	PublishedOnly bool
}

// List returns games in creation order, oldest first.
func List(db *gorm.DB, f Filter) ([]models.Game, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	q := db.Order("created_at ASC").Order("id ASC")
	if f.PublishedOnly {
		q = q.Where("is_published = ?", true)
	}

	games := make([]models.Game, 0)
	if err := q.Find(&games).Error; err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}

	return games, nil
}

// Get retrieves a game by its ID.
func Get(db *gorm.DB, id uint64) (*models.Game, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var g models.Game

	result := db.First(&g, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrGameNotFound
		}

		return nil, fmt.Errorf("get game %d: %w", id, result.Error)
	}

	return &g, nil
}

// Create inserts g. ID and CreatedAt are assigned by the database.
func Create(db *gorm.DB, g *models.Game) (*models.Game, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	if g == nil {
		return nil, ErrGameNil
	}

	g.ID = 0

	if err := db.Create(g).Error; err != nil {
		return nil, fmt.Errorf("create game: %w", err)
	}

	return g, nil
}

// Update applies patch to the game with the given id.
func Update(db *gorm.DB, id uint64, patch *models.GamePatch) (*models.Game, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var out models.Game

	err := db.Transaction(func(tx *gorm.DB) error {
		g, err := Get(tx, id)
		if err != nil {
			return err
		}

		if patch != nil {
			patch.Apply(g)
		}

		if err = tx.Save(g).Error; err != nil {
			return fmt.Errorf("update game %d: %w", id, err)
		}

		out = *g

		return nil
	})
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	return &out, nil
}

// Delete removes the game permanently.
func Delete(db *gorm.DB, id uint64) error {
	if db == nil {
		return ErrDBNil
	}

	result := db.Delete(&models.Game{}, id)
	if result.Error != nil {
		return fmt.Errorf("delete game %d: %w", id, result.Error)
	}

	if result.RowsAffected == 0 {
		return ErrGameNotFound
	}

	return nil
}

// Duplicate stores a copy of the game under a new id with " (Copy)" appended
// to its name. The source row is left unchanged.
func Duplicate(db *gorm.DB, id uint64) (*models.Game, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var out models.Game

	err := db.Transaction(func(tx *gorm.DB) error {
		src, err := Get(tx, id)
		if err != nil {
			return err
		}

		out = src.Copy()

		if err = tx.Create(&out).Error; err != nil {
			return fmt.Errorf("duplicate game %d: %w", id, err)
		}

		return nil
	})
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	return &out, nil
}

// Count returns the number of stored games.
func Count(db *gorm.DB) (int64, error) {
	if db == nil {
		return 0, ErrDBNil
	}

	var n int64
	if err := db.Model(&models.Game{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count games: %w", err)
	}

	return n, nil
}
