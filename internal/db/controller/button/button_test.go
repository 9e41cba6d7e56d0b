package button

import (
	"testing"

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

	require.NoError(t, db.AutoMigrate(&models.Button{}), "failed to migrate test database")

	return db
}

func ptr[T any](v T) *T { return &v }

func newButton(label string, sortOrder int, visible bool) *models.Button {
	b := (&models.ButtonInput{Label: ptr(label), SortOrder: ptr(sortOrder), IsVisible: ptr(visible)}).Button()
	return &b
}

func labels(buttons []models.Button) []string {
	out := make([]string, 0, len(buttons))
	for _, b := range buttons {
		out = append(out, b.Label)
	}

	return out
}

func TestNilDB(t *testing.T) {
	_, err := List(nil, Filter{})
	require.ErrorIs(t, err, ErrDBNil)

	_, err = Get(nil, 1)
	require.ErrorIs(t, err, ErrDBNil)

	_, err = Create(nil, newButton("x", 0, true))
	require.ErrorIs(t, err, ErrDBNil)

	_, err = Update(nil, 1, nil)
	require.ErrorIs(t, err, ErrDBNil)

	require.ErrorIs(t, Delete(nil, 1), ErrDBNil)
}

func TestList(t *testing.T) {
	db := setupTestDB(t)

	testCases := []struct {
		name     string
		seed     []*models.Button
		filter   Filter
		expected []string
	}{
		{
			name:     "empty",
			expected: []string{},
		},
		{
			name: "sort order ascending ties by id",
			seed: []*models.Button{
				newButton("c", 2, true),
				newButton("a", 1, true),
				newButton("b", 1, true),
				newButton("first", -1, true),
			},
			expected: []string{"first", "a", "b", "c"},
		},
		{
			name: "visible only",
			seed: []*models.Button{
				newButton("hidden", 0, false),
				newButton("shown", 1, true),
			},
			filter:   Filter{VisibleOnly: true},
			expected: []string{"shown"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			db.Exec("DELETE FROM buttons")

			for _, b := range tc.seed {
				_, err := Create(db, b)
				require.NoError(t, err)
			}

			buttons, err := List(db, tc.filter)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, labels(buttons))
		})
	}
}

func TestCreateDefaults(t *testing.T) {
	db := setupTestDB(t)

	_, err := Create(db, nil)
	require.ErrorIs(t, err, ErrButtonNil)

	in := (&models.ButtonInput{}).Button()

	b, err := Create(db, &in)
	require.NoError(t, err)

	stored, err := Get(db, b.ID)
	require.NoError(t, err)
	assert.Equal(t, "Button", stored.Label)
	assert.Equal(t, "#", stored.URL)
	assert.Equal(t, 300, stored.Width)
	assert.Equal(t, 48, stored.Height)
	assert.True(t, stored.IsVisible)
}

func TestUpdate(t *testing.T) {
	db := setupTestDB(t)

	b, err := Create(db, newButton("Login", 0, true))
	require.NoError(t, err)

	updated, err := Update(db, b.ID, &models.ButtonPatch{IsVisible: ptr(false), SortOrder: ptr(3)})
	require.NoError(t, err)
	assert.False(t, updated.IsVisible)
	assert.Equal(t, 3, updated.SortOrder)
	assert.Equal(t, "Login", updated.Label)

	stored, err := Get(db, b.ID)
	require.NoError(t, err)
	assert.False(t, stored.IsVisible)

	_, err = Update(db, 999, &models.ButtonPatch{})
	require.ErrorIs(t, err, ErrButtonNotFound)
}

func TestDelete(t *testing.T) {
	db := setupTestDB(t)

	b, err := Create(db, newButton("Daftar", 0, true))
	require.NoError(t, err)

	require.NoError(t, Delete(db, b.ID))
	require.ErrorIs(t, Delete(db, b.ID), ErrButtonNotFound)

	_, err = Get(db, b.ID)
	require.ErrorIs(t, err, ErrButtonNotFound)
}
