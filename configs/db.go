package configs

import (
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/maojude27/FInal-project-itmajor/entity"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(dsn string) {
	database, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		panic("failed to connect database")
	}
	db = database
}

// SetupDatabase migrates the schema; safe to call repeatedly (/initdb).
func SetupDatabase() error {
	return db.AutoMigrate(
		&entity.User{},
		&entity.Restaurant{}, &entity.Category{}, &entity.MenuItem{},
		&entity.CartItem{},
		&entity.Order{}, &entity.OrderDetail{},
		&entity.Payment{}, &entity.Delivery{},
		&entity.Review{},
		&entity.Notification{},
	)
}
