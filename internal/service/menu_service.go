package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/diegorodrguez7/carta-digital-qr/internal/cache"
	apperrors "github.com/diegorodrguez7/carta-digital-qr/internal/errors"
	"github.com/diegorodrguez7/carta-digital-qr/internal/model"
	"github.com/diegorodrguez7/carta-digital-qr/internal/repository"
)

// Translator produces best-effort dish translations. Implementations never
// fail; degraded service yields tagged passthrough text.
type Translator interface {
	TranslateDish(ctx context.Context, title, description string) model.Translations
}

// DishInput carries a dish-creation request. Pointer fields distinguish
// absent from zero so validation can name exactly the missing fields.
type DishInput struct {
	Title        string
	Description  string
	Price        *decimal.Decimal
	CategoryID   uuid.UUID
	Allergens    []string
	ImageURL     *string
	Translations model.Translations
}

// MenuService mutates categories and dishes, always scoped to the caller's
// own restaurant derived from their user id.
type MenuService interface {
	CreateCategory(ctx context.Context, ownerID uuid.UUID, name string) (*model.Category, error)
	CreateDish(ctx context.Context, ownerID uuid.UUID, input DishInput) (*model.Dish, error)
	DeleteDish(ctx context.Context, ownerID, dishID uuid.UUID) error
}

type menuService struct {
	restaurants repository.RestaurantRepository
	categories  repository.CategoryRepository
	dishes      repository.DishRepository
	translator  Translator
	cache       *cache.Client
}

// NewMenuService creates a new menu service.
func NewMenuService(
	restaurants repository.RestaurantRepository,
	categories repository.CategoryRepository,
	dishes repository.DishRepository,
	translator Translator,
	cache *cache.Client,
) MenuService {
	return &menuService{
		restaurants: restaurants,
		categories:  categories,
		dishes:      dishes,
		translator:  translator,
		cache:       cache,
	}
}

// ownRestaurant re-derives the caller's restaurant by owner id. Client
// supplied restaurant ids are never trusted.
func (s *menuService) ownRestaurant(ctx context.Context, ownerID uuid.UUID) (*model.Restaurant, error) {
	restaurant, err := s.restaurants.FindByOwnerID(ctx, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRestaurantNotFound
		}
		return nil, err
	}
	return restaurant, nil
}

// CreateCategory appends a category to the caller's restaurant. Duplicate
// names are permitted.
func (s *menuService) CreateCategory(ctx context.Context, ownerID uuid.UUID, name string) (*model.Category, error) {
	if name == "" {
		return nil, apperrors.NewValidation("name")
	}

	restaurant, err := s.ownRestaurant(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	category := &model.Category{
		Name:         name,
		RestaurantID: restaurant.ID,
	}
	if err := s.categories.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}

	_ = s.cache.Delete(ctx, cache.PublicMenuKey(ownerID))
	return category, nil
}

// CreateDish validates the input, checks that the category belongs to the
// caller's restaurant, and fills in missing translations best-effort.
func (s *menuService) CreateDish(ctx context.Context, ownerID uuid.UUID, input DishInput) (*model.Dish, error) {
	var missing []string
	if input.Title == "" {
		missing = append(missing, "title")
	}
	if input.Description == "" {
		missing = append(missing, "description")
	}
	if input.Price == nil {
		missing = append(missing, "price")
	}
	if input.CategoryID == uuid.Nil {
		missing = append(missing, "categoryId")
	}
	if len(missing) > 0 {
		return nil, apperrors.NewValidation(missing...)
	}
	if input.Price.IsNegative() {
		return nil, apperrors.Validationf("price must not be negative")
	}

	restaurant, err := s.ownRestaurant(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	if _, err := s.categories.FindByIDForRestaurant(ctx, input.CategoryID, restaurant.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, err
	}

	allergens := input.Allergens
	if allergens == nil {
		allergens = []string{}
	}

	translations := input.Translations
	if translations == nil {
		translations = s.translator.TranslateDish(ctx, input.Title, input.Description)
	}

	dish := &model.Dish{
		Title:        input.Title,
		Description:  input.Description,
		Price:        *input.Price,
		Allergens:    allergens,
		ImageURL:     input.ImageURL,
		Translations: translations,
		RestaurantID: restaurant.ID,
		CategoryID:   input.CategoryID,
	}
	if err := s.dishes.Create(ctx, dish); err != nil {
		return nil, fmt.Errorf("create dish: %w", err)
	}

	_ = s.cache.Delete(ctx, cache.PublicMenuKey(ownerID))
	return dish, nil
}

// DeleteDish removes a dish after re-verifying ownership. A dish owned by
// another restaurant fails with ErrForbidden, an unknown id with
// ErrDishNotFound.
func (s *menuService) DeleteDish(ctx context.Context, ownerID, dishID uuid.UUID) error {
	dish, err := s.dishes.FindByID(ctx, dishID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrDishNotFound
		}
		return err
	}

	restaurant, err := s.restaurants.FindByOwnerID(ctx, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrForbidden
		}
		return err
	}
	if dish.RestaurantID != restaurant.ID {
		return apperrors.ErrForbidden
	}

	if err := s.dishes.Delete(ctx, dishID); err != nil {
		return fmt.Errorf("delete dish: %w", err)
	}

	_ = s.cache.Delete(ctx, cache.PublicMenuKey(ownerID))
	return nil
}
