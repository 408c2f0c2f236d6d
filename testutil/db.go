package testutil

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/restaurant-concierge/database"
	"github.com/yeremiapane/restaurant-concierge/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewTestDB membuka SQLite in-memory yang terpisah per test dan sudah dimigrasi
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, database.AutoMigrate(db))
	return db
}

// SeedTables membuat meja bernomor numbers, masing-masing 4 kursi dan tersedia
func SeedTables(t *testing.T, db *gorm.DB, numbers ...int) []models.Table {
	t.Helper()

	tables := make([]models.Table, 0, len(numbers))
	for _, n := range numbers {
		table := models.Table{TableNumber: n, Seats: 4, IsAvailable: true}
		require.NoError(t, db.Create(&table).Error)
		tables = append(tables, table)
	}
	return tables
}

func SeedMenu(t *testing.T, db *gorm.DB, name string, price float64) models.Menu {
	t.Helper()

	menu := models.Menu{Name: name, Price: price, Category: models.CategoryMainCourse, Image: models.DefaultMenuImage}
	require.NoError(t, db.Create(&menu).Error)
	return menu
}

// RecordingNotifier mencatat event yang disiarkan
type RecordingNotifier struct {
	Events []string
}

func (r *RecordingNotifier) Broadcast(event string, _ interface{}) {
	r.Events = append(r.Events, event)
}
