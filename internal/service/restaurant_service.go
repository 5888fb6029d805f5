package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/diegorodrguez7/carta-digital-qr/internal/cache"
	apperrors "github.com/diegorodrguez7/carta-digital-qr/internal/errors"
	"github.com/diegorodrguez7/carta-digital-qr/internal/model"
	"github.com/diegorodrguez7/carta-digital-qr/internal/repository"
)

// StarterCategories is the fixed category set seeded at provisioning time,
// in menu order.
var StarterCategories = []string{
	"Entrantes",
	"Platos principales",
	"Postres",
	"Bebidas",
	"Vinos",
}

// ProfileUpdate carries a partial company-profile update. Nil fields are
// left unchanged.
type ProfileUpdate struct {
	CompanyName *string
	Address     *string
	Phone       *string
	QRColor     *string
	Tagline     *string
}

// RestaurantService provisions and maintains a client's restaurant record.
type RestaurantService interface {
	// EnsureRestaurant guarantees exactly one restaurant for a CLIENT user,
	// creating it lazily with the starter categories. Returns nil for
	// non-CLIENT users.
	EnsureRestaurant(ctx context.Context, user *model.User) (*model.Restaurant, error)
	// GetForOwner returns the caller's restaurant fully loaded.
	GetForOwner(ctx context.Context, ownerID uuid.UUID) (*model.Restaurant, error)
	// UpdateProfile applies a partial company-profile update to the caller's
	// own restaurant.
	UpdateProfile(ctx context.Context, ownerID uuid.UUID, update ProfileUpdate) (*model.Restaurant, error)
}

type restaurantService struct {
	restaurants repository.RestaurantRepository
	cache       *cache.Client
}

// NewRestaurantService creates a new restaurant service.
func NewRestaurantService(restaurants repository.RestaurantRepository, cache *cache.Client) RestaurantService {
	return &restaurantService{
		restaurants: restaurants,
		cache:       cache,
	}
}

// EnsureRestaurant is idempotent: concurrent calls for the same new user
// converge on one row through the ownerId unique index. The loser of a
// creation race re-fetches the winner's row.
func (s *restaurantService) EnsureRestaurant(ctx context.Context, user *model.User) (*model.Restaurant, error) {
	if user.Role != model.RoleClient {
		return nil, nil
	}

	existing, err := s.restaurants.FindByOwnerIDFull(ctx, user.ID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("find restaurant: %w", err)
	}

	restaurant := &model.Restaurant{
		OwnerID: user.ID,
		Status:  model.StatusActive,
		QRColor: "#111827",
	}
	if err := s.restaurants.CreateWithCategories(ctx, restaurant, StarterCategories); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return s.restaurants.FindByOwnerIDFull(ctx, user.ID)
		}
		return nil, fmt.Errorf("create restaurant: %w", err)
	}

	restaurant.Dishes = []model.Dish{}
	return restaurant, nil
}

// GetForOwner returns the restaurant owned by ownerID with relations loaded.
func (s *restaurantService) GetForOwner(ctx context.Context, ownerID uuid.UUID) (*model.Restaurant, error) {
	restaurant, err := s.restaurants.FindByOwnerIDFull(ctx, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRestaurantNotFound
		}
		return nil, err
	}
	return restaurant, nil
}

// UpdateProfile overwrites only the fields present in the update.
func (s *restaurantService) UpdateProfile(ctx context.Context, ownerID uuid.UUID, update ProfileUpdate) (*model.Restaurant, error) {
	restaurant, err := s.restaurants.FindByOwnerID(ctx, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRestaurantNotFound
		}
		return nil, err
	}

	fields := map[string]interface{}{}
	if update.CompanyName != nil {
		fields["company_name"] = *update.CompanyName
	}
	if update.Address != nil {
		fields["address"] = *update.Address
	}
	if update.Phone != nil {
		fields["phone"] = *update.Phone
	}
	if update.QRColor != nil {
		fields["qr_color"] = *update.QRColor
	}
	if update.Tagline != nil {
		fields["tagline"] = *update.Tagline
	}

	if len(fields) > 0 {
		if err := s.restaurants.UpdateFields(ctx, restaurant.ID, fields); err != nil {
			return nil, fmt.Errorf("update restaurant: %w", err)
		}
		_ = s.cache.Delete(ctx, cache.PublicMenuKey(ownerID))
	}

	return s.restaurants.FindByOwnerIDFull(ctx, ownerID)
}
