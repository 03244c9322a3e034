package configs

import (
	"github.com/GermanChai/germanchai/entity"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(source string) {
	database, err := gorm.Open(sqlite.Open(source), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	db = database
}

func SetupDatabase() {
	db.AutoMigrate(
		&entity.User{}, &entity.Profile{}, &entity.Address{},
		&entity.MenuItem{},
		&entity.Order{}, &entity.OrderItem{},
	)
}
