package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DishTranslation holds the translated text for a single target language.
type DishTranslation struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Translations maps a language code ("en", "de") to translated dish text.
// Nil means no translation has been produced for the dish.
type Translations map[string]DishTranslation

// Dish is a menu entry. CategoryID must reference a category of the same
// restaurant; cross-restaurant assignment is rejected at the service layer.
type Dish struct {
	ID           uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	Title        string          `json:"title" gorm:"size:255;not null"`
	Description  string          `json:"description" gorm:"type:text;not null"`
	Price        decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	Allergens    []string        `json:"allergens" gorm:"type:json;serializer:json"`
	ImageURL     *string         `json:"imageUrl" gorm:"size:1024"`
	Translations Translations    `json:"translations" gorm:"type:json;serializer:json"`
	RestaurantID uuid.UUID       `json:"restaurantId" gorm:"type:char(36);not null;index"`
	CategoryID   uuid.UUID       `json:"categoryId" gorm:"type:char(36);not null;index"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// BeforeCreate sets the UUID before creating the record.
func (d *Dish) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}
