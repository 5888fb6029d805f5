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

// AdminService spans all restaurants and is restricted to SUPERADMIN. The
// role check runs before any store access.
type AdminService interface {
	ListRestaurants(ctx context.Context, actor model.Role) ([]model.Restaurant, error)
	// ToggleStatus flips the business-suspension axis ACTIVE<->PAUSED,
	// independent of the published flag.
	ToggleStatus(ctx context.Context, actor model.Role, restaurantID uuid.UUID) (*model.Restaurant, error)
	// ToggleMenu flips the published flag for any restaurant, bypassing
	// ownership. It mirrors owner publish/unpublish semantics for the menu
	// link; no other field changes.
	ToggleMenu(ctx context.Context, actor model.Role, restaurantID uuid.UUID) (*model.Restaurant, error)
}

type adminService struct {
	restaurants repository.RestaurantRepository
	cache       *cache.Client
	baseURL     string
}

// NewAdminService creates a new administration service.
func NewAdminService(restaurants repository.RestaurantRepository, cache *cache.Client, baseURL string) AdminService {
	return &adminService{
		restaurants: restaurants,
		cache:       cache,
		baseURL:     baseURL,
	}
}

func requireSuperadmin(actor model.Role) error {
	if actor != model.RoleSuperadmin {
		return apperrors.ErrForbidden
	}
	return nil
}

// ListRestaurants returns every restaurant with relations, newest first.
func (s *adminService) ListRestaurants(ctx context.Context, actor model.Role) ([]model.Restaurant, error) {
	if err := requireSuperadmin(actor); err != nil {
		return nil, err
	}
	return s.restaurants.ListAllFull(ctx)
}

func (s *adminService) findRestaurant(ctx context.Context, id uuid.UUID) (*model.Restaurant, error) {
	restaurant, err := s.restaurants.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRestaurantNotFound
		}
		return nil, err
	}
	return restaurant, nil
}

// ToggleStatus flips ACTIVE<->PAUSED for a restaurant by id.
func (s *adminService) ToggleStatus(ctx context.Context, actor model.Role, restaurantID uuid.UUID) (*model.Restaurant, error) {
	if err := requireSuperadmin(actor); err != nil {
		return nil, err
	}

	restaurant, err := s.findRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	status := model.StatusActive
	if restaurant.Status == model.StatusActive {
		status = model.StatusPaused
	}
	if err := s.restaurants.UpdateFields(ctx, restaurant.ID, map[string]interface{}{
		"status": status,
	}); err != nil {
		return nil, fmt.Errorf("toggle status: %w", err)
	}

	_ = s.cache.Delete(ctx, cache.PublicMenuKey(restaurant.OwnerID))
	return s.restaurants.FindByOwnerIDFull(ctx, restaurant.OwnerID)
}

// ToggleMenu flips the published flag for a restaurant by id.
func (s *adminService) ToggleMenu(ctx context.Context, actor model.Role, restaurantID uuid.UUID) (*model.Restaurant, error) {
	if err := requireSuperadmin(actor); err != nil {
		return nil, err
	}

	restaurant, err := s.findRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{
		"published": !restaurant.Published,
	}
	if !restaurant.Published {
		// Switching on: derive the menu link the way owner publish does.
		fields["menu_link"] = MenuLinkFor(s.baseURL, restaurant.OwnerID)
	}
	if err := s.restaurants.UpdateFields(ctx, restaurant.ID, fields); err != nil {
		return nil, fmt.Errorf("toggle menu: %w", err)
	}

	_ = s.cache.Delete(ctx, cache.PublicMenuKey(restaurant.OwnerID))
	return s.restaurants.FindByOwnerIDFull(ctx, restaurant.OwnerID)
}
