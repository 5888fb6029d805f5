package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RestaurantStatus is the business-suspension axis, independent of the
// published flag (a paused business can still hold a published menu draft).
type RestaurantStatus string

const (
	StatusActive RestaurantStatus = "ACTIVE"
	StatusPaused RestaurantStatus = "PAUSED"
)

// Restaurant is the single menu-bearing record owned by a CLIENT user.
// The uniqueIndex on OwnerID is what makes provisioning races converge on
// one row instead of creating duplicates.
type Restaurant struct {
	ID             uuid.UUID        `json:"id" gorm:"type:char(36);primaryKey"`
	OwnerID        uuid.UUID        `json:"ownerId" gorm:"type:char(36);uniqueIndex;not null"`
	Owner          *User            `json:"owner,omitempty" gorm:"foreignKey:OwnerID"`
	CompanyName    string           `json:"companyName" gorm:"size:255;not null;default:''"`
	Address        string           `json:"address" gorm:"size:255;not null;default:''"`
	Phone          string           `json:"phone" gorm:"size:64;not null;default:''"`
	QRColor        string           `json:"qrColor" gorm:"size:16;not null;default:'#111827'"`
	Tagline        string           `json:"tagline" gorm:"size:255;not null;default:''"`
	Status         RestaurantStatus `json:"status" gorm:"size:20;not null;default:'ACTIVE'"`
	Published      bool             `json:"published" gorm:"not null;default:false"`
	MenuLink       *string          `json:"menuLink" gorm:"size:512"`
	SetupCompleted bool             `json:"setupCompleted" gorm:"not null;default:false"`
	CreatedAt      time.Time        `json:"createdAt"`
	UpdatedAt      time.Time        `json:"updatedAt"`

	Categories []Category `json:"categories,omitempty" gorm:"foreignKey:RestaurantID"`
	Dishes     []Dish     `json:"dishes,omitempty" gorm:"foreignKey:RestaurantID"`
}

// BeforeCreate sets the UUID before creating the record.
func (r *Restaurant) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// Category groups dishes within a single restaurant. Five starter
// categories are seeded at provisioning time; owners may add more.
// Duplicate names are permitted.
type Category struct {
	ID           uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Name         string    `json:"name" gorm:"size:255;not null"`
	RestaurantID uuid.UUID `json:"restaurantId" gorm:"type:char(36);not null;index"`
	CreatedAt    time.Time `json:"createdAt"`
}

// BeforeCreate sets the UUID before creating the record.
func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
