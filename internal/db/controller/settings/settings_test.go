package settings

import (
	"sync"
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

	require.NoError(t, db.AutoMigrate(&models.Settings{}), "failed to migrate test database")

	return db
}

func ptr[T any](v T) *T { return &v }

func countRows(t *testing.T, db *gorm.DB) int64 {
	t.Helper()

	var n int64
	require.NoError(t, db.Model(&models.Settings{}).Count(&n).Error)

	return n
}

func TestGet(t *testing.T) {
	db := setupTestDB(t)

	testCases := []struct {
		name          string
		dbParam       *gorm.DB
		seed          *models.Settings
		expectedError error
		expectedTitle string
	}{
		{
			name:          "nil database",
			dbParam:       nil,
			expectedError: ErrDBNil,
		},
		{
			name:          "missing row is created with defaults",
			dbParam:       db,
			expectedTitle: "Landing Page",
		},
		{
			name:    "existing row is returned",
			dbParam: db,
			seed: func() *models.Settings {
				s := models.DefaultSettings()
				s.SiteTitle = "Stored"
				return &s
			}(),
			expectedTitle: "Stored",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.dbParam != nil {
				tc.dbParam.Exec("DELETE FROM settings")
			}

			if tc.seed != nil {
				require.NoError(t, tc.dbParam.Create(tc.seed).Error)
			}

			s, err := Get(tc.dbParam)

			if tc.expectedError != nil {
				require.ErrorIs(t, err, tc.expectedError)
				assert.Nil(t, s)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expectedTitle, s.SiteTitle)
			assert.Equal(t, models.SettingsID, s.ID)
			assert.Equal(t, int64(1), countRows(t, tc.dbParam))
		})
	}
}

func TestGetConcurrentCreatesOneRow(t *testing.T) {
	db := setupTestDB(t)

	var wg sync.WaitGroup

	for range 8 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			_, err := Get(db)
			assert.NoError(t, err)
		}()
	}

	wg.Wait()

	assert.Equal(t, int64(1), countRows(t, db))
}

func TestUpdate(t *testing.T) {
	db := setupTestDB(t)

	t.Run("nil database", func(t *testing.T) {
		_, err := Update(nil, &models.SettingsPatch{})
		require.ErrorIs(t, err, ErrDBNil)
	})

	t.Run("nil patch", func(t *testing.T) {
		_, err := Update(db, nil)
		require.ErrorIs(t, err, ErrPatchNil)
	})

	t.Run("creates row when missing", func(t *testing.T) {
		db.Exec("DELETE FROM settings")

		s, err := Update(db, &models.SettingsPatch{SiteTitle: ptr("Fresh")})
		require.NoError(t, err)

		assert.Equal(t, "Fresh", s.SiteTitle)
		assert.Equal(t, 4, s.DesktopColumns)
		assert.Equal(t, int64(1), countRows(t, db))
	})

	t.Run("partial updates keep unspecified fields", func(t *testing.T) {
		db.Exec("DELETE FROM settings")

		_, err := Update(db, &models.SettingsPatch{
			MarqueeText:    ptr("Welcome"),
			MarqueeEnabled: ptr(true),
			DesktopColumns: ptr(5),
		})
		require.NoError(t, err)

		s, err := Update(db, &models.SettingsPatch{SiteTitle: ptr("Second")})
		require.NoError(t, err)

		stored, err := Get(db)
		require.NoError(t, err)

		for _, got := range []*models.Settings{s, stored} {
			assert.Equal(t, "Second", got.SiteTitle)
			assert.Equal(t, "Welcome", got.MarqueeText)
			assert.True(t, got.MarqueeEnabled)
			assert.Equal(t, 5, got.DesktopColumns)
			assert.Equal(t, "#0c1929", got.CardBgColor)
		}
	})

	t.Run("false and empty values are stored", func(t *testing.T) {
		db.Exec("DELETE FROM settings")

		_, err := Update(db, &models.SettingsPatch{SnowEnabled: ptr(true), SiteTitle: ptr("x")})
		require.NoError(t, err)

		_, err = Update(db, &models.SettingsPatch{SnowEnabled: ptr(false), SiteTitle: ptr("")})
		require.NoError(t, err)

		stored, err := Get(db)
		require.NoError(t, err)
		assert.False(t, stored.SnowEnabled)
		assert.Empty(t, stored.SiteTitle)
	})

	t.Run("empty patch is a no-op", func(t *testing.T) {
		before, err := Get(db)
		require.NoError(t, err)

		after, err := Update(db, &models.SettingsPatch{})
		require.NoError(t, err)

		assert.Equal(t, before, after)
	})
}
