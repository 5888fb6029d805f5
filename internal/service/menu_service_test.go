package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "github.com/diegorodrguez7/carta-digital-qr/internal/errors"
	"github.com/diegorodrguez7/carta-digital-qr/internal/model"
)

func price(v string) *decimal.Decimal {
	d, _ := decimal.NewFromString(v)
	return &d
}

func TestMenuService_CreateCategory(t *testing.T) {
	ownerID := uuid.New()
	restaurant := &model.Restaurant{ID: uuid.New(), OwnerID: ownerID}

	t.Run("empty name fails validation", func(t *testing.T) {
		service := NewMenuService(new(MockRestaurantRepository), new(MockCategoryRepository), new(MockDishRepository), new(MockTranslator), nil)

		_, err := service.CreateCategory(context.Background(), ownerID, "")

		var vErr *apperrors.ValidationError
		assert.ErrorAs(t, err, &vErr)
	})

	t.Run("no restaurant fails with not found", func(t *testing.T) {
		mockRestaurants := new(MockRestaurantRepository)
		mockRestaurants.On("FindByOwnerID", mock.Anything, ownerID).Return(nil, gorm.ErrRecordNotFound)

		service := NewMenuService(mockRestaurants, new(MockCategoryRepository), new(MockDishRepository), new(MockTranslator), nil)
		_, err := service.CreateCategory(context.Background(), ownerID, "Postres")

		assert.ErrorIs(t, err, apperrors.ErrRestaurantNotFound)
	})

	t.Run("duplicate starter names are permitted", func(t *testing.T) {
		mockRestaurants := new(MockRestaurantRepository)
		mockRestaurants.On("FindByOwnerID", mock.Anything, ownerID).Return(restaurant, nil)
		mockCategories := new(MockCategoryRepository)
		mockCategories.On("Create", mock.Anything, mock.MatchedBy(func(c *model.Category) bool {
			return c.Name == "Postres" && c.RestaurantID == restaurant.ID
		})).Return(nil)

		service := NewMenuService(mockRestaurants, mockCategories, new(MockDishRepository), new(MockTranslator), nil)
		category, err := service.CreateCategory(context.Background(), ownerID, "Postres")

		assert.NoError(t, err)
		assert.Equal(t, restaurant.ID, category.RestaurantID)
		mockCategories.AssertExpectations(t)
	})
}

func TestMenuService_CreateDish(t *testing.T) {
	ownerID := uuid.New()
	restaurant := &model.Restaurant{ID: uuid.New(), OwnerID: ownerID}
	categoryID := uuid.New()

	t.Run("missing fields are listed", func(t *testing.T) {
		service := NewMenuService(new(MockRestaurantRepository), new(MockCategoryRepository), new(MockDishRepository), new(MockTranslator), nil)

		_, err := service.CreateDish(context.Background(), ownerID, DishInput{Title: "Flan"})

		var vErr *apperrors.ValidationError
		assert.ErrorAs(t, err, &vErr)
		assert.ElementsMatch(t, []string{"description", "price", "categoryId"}, vErr.Fields)
	})

	t.Run("negative price is rejected", func(t *testing.T) {
		service := NewMenuService(new(MockRestaurantRepository), new(MockCategoryRepository), new(MockDishRepository), new(MockTranslator), nil)

		_, err := service.CreateDish(context.Background(), ownerID, DishInput{
			Title:       "Flan",
			Description: "Casero",
			Price:       price("-1"),
			CategoryID:  categoryID,
		})

		var vErr *apperrors.ValidationError
		assert.ErrorAs(t, err, &vErr)
	})

	t.Run("cross-restaurant category fails regardless of field validity", func(t *testing.T) {
		mockRestaurants := new(MockRestaurantRepository)
		mockRestaurants.On("FindByOwnerID", mock.Anything, ownerID).Return(restaurant, nil)
		mockCategories := new(MockCategoryRepository)
		mockCategories.On("FindByIDForRestaurant", mock.Anything, categoryID, restaurant.ID).Return(nil, gorm.ErrRecordNotFound)

		service := NewMenuService(mockRestaurants, mockCategories, new(MockDishRepository), new(MockTranslator), nil)
		_, err := service.CreateDish(context.Background(), ownerID, DishInput{
			Title:       "Flan",
			Description: "Casero",
			Price:       price("4.50"),
			CategoryID:  categoryID,
		})

		assert.ErrorIs(t, err, apperrors.ErrCategoryNotFound)
	})

	t.Run("allergens default empty and missing translations are filled", func(t *testing.T) {
		mockRestaurants := new(MockRestaurantRepository)
		mockRestaurants.On("FindByOwnerID", mock.Anything, ownerID).Return(restaurant, nil)
		mockCategories := new(MockCategoryRepository)
		mockCategories.On("FindByIDForRestaurant", mock.Anything, categoryID, restaurant.ID).Return(&model.Category{ID: categoryID, RestaurantID: restaurant.ID}, nil)
		mockDishes := new(MockDishRepository)
		mockDishes.On("Create", mock.Anything, mock.AnythingOfType("*model.Dish")).Return(nil)
		mockTranslator := new(MockTranslator)
		mockTranslator.On("TranslateDish", mock.Anything, "Flan", "Casero").Return(model.Translations{
			"en": {Title: "[EN] Flan", Description: "[EN] Casero"},
			"de": {Title: "[DE] Flan", Description: "[DE] Casero"},
		})

		service := NewMenuService(mockRestaurants, mockCategories, mockDishes, mockTranslator, nil)
		dish, err := service.CreateDish(context.Background(), ownerID, DishInput{
			Title:       "Flan",
			Description: "Casero",
			Price:       price("4.50"),
			CategoryID:  categoryID,
		})

		assert.NoError(t, err)
		assert.NotNil(t, dish.Allergens)
		assert.Empty(t, dish.Allergens)
		assert.Equal(t, "[EN] Flan", dish.Translations["en"].Title)
		assert.Equal(t, restaurant.ID, dish.RestaurantID)
		mockTranslator.AssertExpectations(t)
	})

	t.Run("client-supplied translations are kept as-is", func(t *testing.T) {
		mockRestaurants := new(MockRestaurantRepository)
		mockRestaurants.On("FindByOwnerID", mock.Anything, ownerID).Return(restaurant, nil)
		mockCategories := new(MockCategoryRepository)
		mockCategories.On("FindByIDForRestaurant", mock.Anything, categoryID, restaurant.ID).Return(&model.Category{ID: categoryID, RestaurantID: restaurant.ID}, nil)
		mockDishes := new(MockDishRepository)
		mockDishes.On("Create", mock.Anything, mock.AnythingOfType("*model.Dish")).Return(nil)
		mockTranslator := new(MockTranslator)

		service := NewMenuService(mockRestaurants, mockCategories, mockDishes, mockTranslator, nil)
		dish, err := service.CreateDish(context.Background(), ownerID, DishInput{
			Title:        "Flan",
			Description:  "Casero",
			Price:        price("4.50"),
			CategoryID:   categoryID,
			Translations: model.Translations{"en": {Title: "Creme caramel"}},
		})

		assert.NoError(t, err)
		assert.Equal(t, "Creme caramel", dish.Translations["en"].Title)
		mockTranslator.AssertNotCalled(t, "TranslateDish", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestMenuService_DeleteDish(t *testing.T) {
	ownerA := uuid.New()
	ownerB := uuid.New()
	restaurantA := &model.Restaurant{ID: uuid.New(), OwnerID: ownerA}
	restaurantB := &model.Restaurant{ID: uuid.New(), OwnerID: ownerB}
	dish := &model.Dish{ID: uuid.New(), RestaurantID: restaurantA.ID}

	t.Run("unknown dish fails with not found", func(t *testing.T) {
		mockDishes := new(MockDishRepository)
		mockDishes.On("FindByID", mock.Anything, dish.ID).Return(nil, gorm.ErrRecordNotFound)

		service := NewMenuService(new(MockRestaurantRepository), new(MockCategoryRepository), mockDishes, new(MockTranslator), nil)
		err := service.DeleteDish(context.Background(), ownerA, dish.ID)

		assert.ErrorIs(t, err, apperrors.ErrDishNotFound)
	})

	t.Run("another tenant's dish fails with forbidden", func(t *testing.T) {
		mockDishes := new(MockDishRepository)
		mockDishes.On("FindByID", mock.Anything, dish.ID).Return(dish, nil)
		mockRestaurants := new(MockRestaurantRepository)
		mockRestaurants.On("FindByOwnerID", mock.Anything, ownerB).Return(restaurantB, nil)

		service := NewMenuService(mockRestaurants, new(MockCategoryRepository), mockDishes, new(MockTranslator), nil)
		err := service.DeleteDish(context.Background(), ownerB, dish.ID)

		assert.ErrorIs(t, err, apperrors.ErrForbidden)
		mockDishes.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("owner deletes their own dish", func(t *testing.T) {
		mockDishes := new(MockDishRepository)
		mockDishes.On("FindByID", mock.Anything, dish.ID).Return(dish, nil)
		mockDishes.On("Delete", mock.Anything, dish.ID).Return(nil)
		mockRestaurants := new(MockRestaurantRepository)
		mockRestaurants.On("FindByOwnerID", mock.Anything, ownerA).Return(restaurantA, nil)

		service := NewMenuService(mockRestaurants, new(MockCategoryRepository), mockDishes, new(MockTranslator), nil)
		err := service.DeleteDish(context.Background(), ownerA, dish.ID)

		assert.NoError(t, err)
		mockDishes.AssertExpectations(t)
	})
}
