package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/diegorodrguez7/carta-digital-qr/internal/auth"
	"github.com/diegorodrguez7/carta-digital-qr/internal/model"
)

// MockUserRepository is a mock implementation of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

// MockRestaurantRepository is a mock implementation of repository.RestaurantRepository.
type MockRestaurantRepository struct {
	mock.Mock
}

func (m *MockRestaurantRepository) CreateWithCategories(ctx context.Context, restaurant *model.Restaurant, categoryNames []string) error {
	args := m.Called(ctx, restaurant, categoryNames)
	return args.Error(0)
}

func (m *MockRestaurantRepository) Update(ctx context.Context, restaurant *model.Restaurant) error {
	args := m.Called(ctx, restaurant)
	return args.Error(0)
}

func (m *MockRestaurantRepository) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	args := m.Called(ctx, id, fields)
	return args.Error(0)
}

func (m *MockRestaurantRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Restaurant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Restaurant), args.Error(1)
}

func (m *MockRestaurantRepository) FindByOwnerID(ctx context.Context, ownerID uuid.UUID) (*model.Restaurant, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Restaurant), args.Error(1)
}

func (m *MockRestaurantRepository) FindByOwnerIDFull(ctx context.Context, ownerID uuid.UUID) (*model.Restaurant, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Restaurant), args.Error(1)
}

func (m *MockRestaurantRepository) ListAllFull(ctx context.Context) ([]model.Restaurant, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Restaurant), args.Error(1)
}

// MockCategoryRepository is a mock implementation of repository.CategoryRepository.
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) Create(ctx context.Context, category *model.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) FindByIDForRestaurant(ctx context.Context, id, restaurantID uuid.UUID) (*model.Category, error) {
	args := m.Called(ctx, id, restaurantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Category), args.Error(1)
}

func (m *MockCategoryRepository) ListByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]model.Category, error) {
	args := m.Called(ctx, restaurantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Category), args.Error(1)
}

// MockDishRepository is a mock implementation of repository.DishRepository.
type MockDishRepository struct {
	mock.Mock
}

func (m *MockDishRepository) Create(ctx context.Context, dish *model.Dish) error {
	args := m.Called(ctx, dish)
	return args.Error(0)
}

func (m *MockDishRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Dish, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Dish), args.Error(1)
}

func (m *MockDishRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockDishRepository) DeleteByRestaurant(ctx context.Context, restaurantID uuid.UUID) error {
	args := m.Called(ctx, restaurantID)
	return args.Error(0)
}

// MockIdentityVerifier is a mock implementation of auth.IdentityVerifier.
type MockIdentityVerifier struct {
	mock.Mock
}

func (m *MockIdentityVerifier) Verify(ctx context.Context, credential string) (*auth.IdentityPayload, error) {
	args := m.Called(ctx, credential)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.IdentityPayload), args.Error(1)
}

// MockTranslator is a mock implementation of Translator.
type MockTranslator struct {
	mock.Mock
}

func (m *MockTranslator) TranslateDish(ctx context.Context, title, description string) model.Translations {
	args := m.Called(ctx, title, description)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(model.Translations)
}
