package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/diegorodrguez7/carta-digital-qr/internal/model"
)

// DishRepository defines dish persistence operations.
type DishRepository interface {
	Create(ctx context.Context, dish *model.Dish) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Dish, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// DeleteByRestaurant removes every dish of a restaurant (menu deletion).
	DeleteByRestaurant(ctx context.Context, restaurantID uuid.UUID) error
}

type dishRepository struct {
	db *gorm.DB
}

// NewDishRepository creates a new dish repository.
func NewDishRepository(db *gorm.DB) DishRepository {
	return &dishRepository{db: db}
}

// Create creates a new dish.
func (r *dishRepository) Create(ctx context.Context, dish *model.Dish) error {
	return r.db.WithContext(ctx).Create(dish).Error
}

// FindByID finds a dish by ID.
func (r *dishRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Dish, error) {
	var dish model.Dish
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&dish).Error; err != nil {
		return nil, err
	}
	return &dish, nil
}

// Delete removes a dish by ID.
func (r *dishRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Dish{}).Error
}

// DeleteByRestaurant removes all dishes of a restaurant.
func (r *dishRepository) DeleteByRestaurant(ctx context.Context, restaurantID uuid.UUID) error {
	return r.db.WithContext(ctx).Where("restaurant_id = ?", restaurantID).Delete(&model.Dish{}).Error
}
