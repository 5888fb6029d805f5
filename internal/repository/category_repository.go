package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/diegorodrguez7/carta-digital-qr/internal/model"
)

// CategoryRepository defines category persistence operations.
type CategoryRepository interface {
	Create(ctx context.Context, category *model.Category) error
	// FindByIDForRestaurant finds a category by ID scoped to a restaurant,
	// so cross-restaurant references come back as not found.
	FindByIDForRestaurant(ctx context.Context, id, restaurantID uuid.UUID) (*model.Category, error)
	ListByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]model.Category, error)
}

type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository.
func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

// Create creates a new category.
func (r *categoryRepository) Create(ctx context.Context, category *model.Category) error {
	return r.db.WithContext(ctx).Create(category).Error
}

// FindByIDForRestaurant finds a category by ID within a restaurant.
func (r *categoryRepository) FindByIDForRestaurant(ctx context.Context, id, restaurantID uuid.UUID) (*model.Category, error) {
	var category model.Category
	if err := r.db.WithContext(ctx).
		Where("id = ? AND restaurant_id = ?", id, restaurantID).
		First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// ListByRestaurant lists categories of a restaurant.
func (r *categoryRepository) ListByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]model.Category, error) {
	var categories []model.Category
	if err := r.db.WithContext(ctx).
		Where("restaurant_id = ?", restaurantID).
		Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}
