package db

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/diegorodrguez7/carta-digital-qr/internal/model"
)

// NewMySQL returns a connected GORM DB instance. TranslateError is enabled so
// duplicate-key violations surface as gorm.ErrDuplicatedKey, which the
// provisioning path relies on to resolve concurrent creates.
func NewMySQL(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("connect mysql: %w", err)
	}
	return db, nil
}

// Migrate runs AutoMigrate for all models.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Restaurant{},
		&model.Category{},
		&model.Dish{},
	)
}
