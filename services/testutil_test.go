package services

import (
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/maojude27/FInal-project-itmajor/entity"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.Restaurant{}, &entity.Category{}, &entity.MenuItem{},
		&entity.CartItem{},
		&entity.Order{}, &entity.OrderDetail{},
		&entity.Payment{}, &entity.Delivery{},
		&entity.Review{},
		&entity.Notification{},
	))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, email string) *entity.User {
	t.Helper()
	u := &entity.User{Name: "Test User", Email: email, Password: "x", Role: entity.RoleCustomer}
	require.NoError(t, db.Create(u).Error)
	return u
}

func seedItem(t *testing.T, db *gorm.DB, name string, price int64) *entity.MenuItem {
	t.Helper()

	cat := &entity.Category{}
	require.NoError(t, db.FirstOrCreate(cat, entity.Category{Name: "Mains"}).Error)
	rest := &entity.Restaurant{}
	require.NoError(t, db.FirstOrCreate(rest, entity.Restaurant{Name: "Testaurant"}).Error)

	item := &entity.MenuItem{
		Name:         name,
		Description:  name + " description",
		Price:        price,
		CategoryID:   cat.ID,
		RestaurantID: rest.ID,
	}
	require.NoError(t, db.Create(item).Error)
	return item
}
