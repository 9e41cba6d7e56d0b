package game

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/gamelanding/gamelanding/internal/db/models"
)

// setupTestDB creates an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to create test database")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.Game{}), "failed to migrate test database")

	return db
}

func ptr[T any](v T) *T { return &v }

func newGame(name string, published bool) *models.Game {
	return &models.Game{
		Provider:        "PRAGMATIC PLAY",
		Name:            name,
		Deposit:         "20.000",
		Withdraw:        "50.000",
		Bet:             "200",
		DateTime:        "now",
		ImageURL:        "/uploads/" + name + ".png",
		OutlineColor:    models.DefaultOutlineColor,
		OutlineColorEnd: models.DefaultOutlineColorEnd,
		IsPublished:     published,
	}
}

// seedGames inserts test data into the database.
func seedGames(t *testing.T, db *gorm.DB, games ...*models.Game) []*models.Game {
	t.Helper()

	for _, g := range games {
		_, err := Create(db, g)
		require.NoError(t, err, "failed to seed test data")
	}

	return games
}

func TestNilDB(t *testing.T) {
	_, err := List(nil, Filter{})
	require.ErrorIs(t, err, ErrDBNil)

	_, err = Get(nil, 1)
	require.ErrorIs(t, err, ErrDBNil)

	_, err = Create(nil, newGame("x", true))
	require.ErrorIs(t, err, ErrDBNil)

	_, err = Update(nil, 1, &models.GamePatch{})
	require.ErrorIs(t, err, ErrDBNil)

	require.ErrorIs(t, Delete(nil, 1), ErrDBNil)

	_, err = Duplicate(nil, 1)
	require.ErrorIs(t, err, ErrDBNil)

	_, err = Count(nil)
	require.ErrorIs(t, err, ErrDBNil)
}

func TestCreateAndGet(t *testing.T) {
	db := setupTestDB(t)

	_, err := Create(db, nil)
	require.ErrorIs(t, err, ErrGameNil)

	g, err := Create(db, newGame("Olympus", true))
	require.NoError(t, err)
	assert.NotZero(t, g.ID)
	assert.False(t, g.CreatedAt.IsZero())

	got, err := Get(db, g.ID)
	require.NoError(t, err)
	assert.Equal(t, "Olympus", got.Name)
	assert.Equal(t, "20.000", got.Deposit)

	_, err = Get(db, g.ID+100)
	require.ErrorIs(t, err, ErrGameNotFound)
}

func TestList(t *testing.T) {
	db := setupTestDB(t)

	testCases := []struct {
		name     string
		seed     []*models.Game
		filter   Filter
		expected []string
	}{
		{
			name:     "empty table returns empty slice",
			expected: []string{},
		},
		{
			name:     "creation order",
			seed:     []*models.Game{newGame("a", true), newGame("b", false), newGame("c", true)},
			expected: []string{"a", "b", "c"},
		},
		{
			name:     "published only",
			seed:     []*models.Game{newGame("a", true), newGame("b", false), newGame("c", true)},
			filter:   Filter{PublishedOnly: true},
			expected: []string{"a", "c"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			db.Exec("DELETE FROM games")
			seedGames(t, db, tc.seed...)

			games, err := List(db, tc.filter)
			require.NoError(t, err)
			require.NotNil(t, games)

			names := make([]string, 0, len(games))
			for _, g := range games {
				names = append(names, g.Name)
			}

			assert.Equal(t, tc.expected, names)
		})
	}
}

func TestListTieBrokenByID(t *testing.T) {
	db := setupTestDB(t)

	same := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)

	second := newGame("second", true)
	second.ID = 2
	second.CreatedAt = same
	first := newGame("first", true)
	first.ID = 1
	first.CreatedAt = same

	require.NoError(t, db.Create(second).Error)
	require.NoError(t, db.Create(first).Error)

	games, err := List(db, Filter{})
	require.NoError(t, err)
	require.Len(t, games, 2)
	assert.Equal(t, "first", games[0].Name)
	assert.Equal(t, "second", games[1].Name)
}

func TestUpdate(t *testing.T) {
	db := setupTestDB(t)

	g := seedGames(t, db, newGame("Koi Gate", true))[0]
	created := g.CreatedAt

	updated, err := Update(db, g.ID, &models.GamePatch{
		Name:        ptr("Koi Gate Deluxe"),
		IsPublished: ptr(false),
		Description: ptr(""),
	})
	require.NoError(t, err)

	assert.Equal(t, "Koi Gate Deluxe", updated.Name)
	assert.False(t, updated.IsPublished)
	assert.Equal(t, "PRAGMATIC PLAY", updated.Provider)

	stored, err := Get(db, g.ID)
	require.NoError(t, err)
	assert.Equal(t, "Koi Gate Deluxe", stored.Name)
	assert.False(t, stored.IsPublished)
	assert.True(t, created.Equal(stored.CreatedAt), "createdAt is immutable")

	_, err = Update(db, g.ID+100, &models.GamePatch{Name: ptr("x")})
	require.ErrorIs(t, err, ErrGameNotFound)
}

func TestDelete(t *testing.T) {
	db := setupTestDB(t)

	g := seedGames(t, db, newGame("Brothers Kingdom", true))[0]

	require.NoError(t, Delete(db, g.ID))

	_, err := Get(db, g.ID)
	require.ErrorIs(t, err, ErrGameNotFound)

	require.ErrorIs(t, Delete(db, g.ID), ErrGameNotFound)
}

func TestDuplicate(t *testing.T) {
	db := setupTestDB(t)

	src := newGame("Mahjong Ways 2", false)
	src.IconURL = ptr("/uploads/icon.png")
	src.Description = "desc"
	seedGames(t, db, src)

	dup, err := Duplicate(db, src.ID)
	require.NoError(t, err)

	assert.NotEqual(t, src.ID, dup.ID)
	assert.Equal(t, "Mahjong Ways 2 (Copy)", dup.Name)
	assert.Equal(t, src.Provider, dup.Provider)
	assert.Equal(t, "desc", dup.Description)
	assert.False(t, dup.IsPublished)
	require.NotNil(t, dup.IconURL)
	assert.Equal(t, "/uploads/icon.png", *dup.IconURL)

	orig, err := Get(db, src.ID)
	require.NoError(t, err)
	assert.Equal(t, "Mahjong Ways 2", orig.Name)

	n, err := Count(db)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	_, err = Duplicate(db, 999)
	require.ErrorIs(t, err, ErrGameNotFound)
}
