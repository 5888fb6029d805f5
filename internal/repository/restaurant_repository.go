package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/diegorodrguez7/carta-digital-qr/internal/model"
)

// RestaurantRepository defines restaurant persistence operations.
type RestaurantRepository interface {
	// CreateWithCategories atomically creates a restaurant together with its
	// starter categories. Either all rows exist afterwards or none do.
	CreateWithCategories(ctx context.Context, restaurant *model.Restaurant, categoryNames []string) error
	Update(ctx context.Context, restaurant *model.Restaurant) error
	// UpdateFields applies a partial column update by restaurant ID. Nil
	// values in the map clear nullable columns.
	UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Restaurant, error)
	FindByOwnerID(ctx context.Context, ownerID uuid.UUID) (*model.Restaurant, error)
	// FindByOwnerIDFull loads the restaurant with its categories and dishes.
	FindByOwnerIDFull(ctx context.Context, ownerID uuid.UUID) (*model.Restaurant, error)
	// ListAllFull loads every restaurant with categories, dishes and owner,
	// newest first.
	ListAllFull(ctx context.Context) ([]model.Restaurant, error)
}

type restaurantRepository struct {
	db *gorm.DB
}

// NewRestaurantRepository creates a new restaurant repository.
func NewRestaurantRepository(db *gorm.DB) RestaurantRepository {
	return &restaurantRepository{db: db}
}

// CreateWithCategories creates the restaurant and its starter categories in
// one transaction. A duplicate-key error on the ownerId unique index is
// returned untranslated so callers can re-fetch the winning row.
func (r *restaurantRepository) CreateWithCategories(ctx context.Context, restaurant *model.Restaurant, categoryNames []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(restaurant).Error; err != nil {
			return err
		}
		for _, name := range categoryNames {
			category := &model.Category{
				Name:         name,
				RestaurantID: restaurant.ID,
			}
			if err := tx.Create(category).Error; err != nil {
				return err
			}
			restaurant.Categories = append(restaurant.Categories, *category)
		}
		return nil
	})
}

// Update saves an existing restaurant.
func (r *restaurantRepository) Update(ctx context.Context, restaurant *model.Restaurant) error {
	return r.db.WithContext(ctx).Save(restaurant).Error
}

// UpdateFields applies a partial column update by restaurant ID.
func (r *restaurantRepository) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&model.Restaurant{}).
		Where("id = ?", id).
		Updates(fields).Error
}

// FindByID finds a restaurant by ID.
func (r *restaurantRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Restaurant, error) {
	var restaurant model.Restaurant
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&restaurant).Error; err != nil {
		return nil, err
	}
	return &restaurant, nil
}

// FindByOwnerID finds a restaurant by its owner's user ID.
func (r *restaurantRepository) FindByOwnerID(ctx context.Context, ownerID uuid.UUID) (*model.Restaurant, error) {
	var restaurant model.Restaurant
	if err := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).First(&restaurant).Error; err != nil {
		return nil, err
	}
	return &restaurant, nil
}

// FindByOwnerIDFull finds a restaurant by owner with categories and dishes loaded.
func (r *restaurantRepository) FindByOwnerIDFull(ctx context.Context, ownerID uuid.UUID) (*model.Restaurant, error) {
	var restaurant model.Restaurant
	if err := r.db.WithContext(ctx).
		Preload("Categories").
		Preload("Dishes").
		Where("owner_id = ?", ownerID).
		First(&restaurant).Error; err != nil {
		return nil, err
	}
	return &restaurant, nil
}

// ListAllFull lists every restaurant with relations, newest first.
func (r *restaurantRepository) ListAllFull(ctx context.Context) ([]model.Restaurant, error) {
	var restaurants []model.Restaurant
	if err := r.db.WithContext(ctx).
		Preload("Categories").
		Preload("Dishes").
		Preload("Owner").
		Order("created_at DESC").
		Find(&restaurants).Error; err != nil {
		return nil, err
	}
	return restaurants, nil
}
