package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/diegorodrguez7/carta-digital-qr/internal/cache"
	apperrors "github.com/diegorodrguez7/carta-digital-qr/internal/errors"
	"github.com/diegorodrguez7/carta-digital-qr/internal/model"
	"github.com/diegorodrguez7/carta-digital-qr/internal/publication"
	"github.com/diegorodrguez7/carta-digital-qr/internal/repository"
)

const publicMenuCacheTTL = time.Minute

// PublicationService drives the menu through its publication states and
// serves the public read view.
type PublicationService interface {
	// Publish makes the menu live and derives the public menu link from the
	// owner's user id. Idempotent; re-publishing recomputes the link.
	Publish(ctx context.Context, ownerID uuid.UUID) (*model.Restaurant, error)
	// Unpublish pauses the menu. The menu link and setupCompleted survive so
	// the menu stays addressable but inactive.
	Unpublish(ctx context.Context, ownerID uuid.UUID) (*model.Restaurant, error)
	// DeleteMenu purges every dish and resets the publication state.
	// Categories survive.
	DeleteMenu(ctx context.Context, ownerID uuid.UUID) (*model.Restaurant, error)
	// PublicMenu returns the published menu for an owner id, for the open
	// QR-code endpoint. Paused businesses and unpublished menus are hidden.
	PublicMenu(ctx context.Context, ownerID uuid.UUID) (*model.Restaurant, error)
}

type publicationService struct {
	restaurants repository.RestaurantRepository
	dishes      repository.DishRepository
	cache       *cache.Client
	baseURL     string
}

// NewPublicationService creates a new publication service. baseURL is the
// public site prefix the derived menu links point at.
func NewPublicationService(
	restaurants repository.RestaurantRepository,
	dishes repository.DishRepository,
	cache *cache.Client,
	baseURL string,
) PublicationService {
	return &publicationService{
		restaurants: restaurants,
		dishes:      dishes,
		cache:       cache,
		baseURL:     baseURL,
	}
}

// MenuLinkFor derives the deterministic public menu URL for an owner.
func MenuLinkFor(baseURL string, ownerID uuid.UUID) string {
	return fmt.Sprintf("%s/menu/%s", baseURL, ownerID)
}

func (s *publicationService) ownRestaurant(ctx context.Context, ownerID uuid.UUID) (*model.Restaurant, error) {
	restaurant, err := s.restaurants.FindByOwnerID(ctx, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRestaurantNotFound
		}
		return nil, err
	}
	return restaurant, nil
}

func (s *publicationService) transition(r *model.Restaurant, event publication.Event) error {
	if _, ok := publication.Apply(publication.StateOf(r), event); !ok {
		return apperrors.ErrMenuNotPublished
	}
	return nil
}

// Publish sets published and setupCompleted and recomputes the menu link.
func (s *publicationService) Publish(ctx context.Context, ownerID uuid.UUID) (*model.Restaurant, error) {
	restaurant, err := s.ownRestaurant(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if err := s.transition(restaurant, publication.EventPublish); err != nil {
		return nil, err
	}

	link := MenuLinkFor(s.baseURL, ownerID)
	fields := map[string]interface{}{
		"published":       true,
		"setup_completed": true,
		"menu_link":       link,
	}
	if err := s.restaurants.UpdateFields(ctx, restaurant.ID, fields); err != nil {
		return nil, fmt.Errorf("publish menu: %w", err)
	}

	_ = s.cache.Delete(ctx, cache.PublicMenuKey(ownerID))
	return s.restaurants.FindByOwnerIDFull(ctx, ownerID)
}

// Unpublish clears the published flag only.
func (s *publicationService) Unpublish(ctx context.Context, ownerID uuid.UUID) (*model.Restaurant, error) {
	restaurant, err := s.ownRestaurant(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if err := s.transition(restaurant, publication.EventUnpublish); err != nil {
		return nil, err
	}

	if err := s.restaurants.UpdateFields(ctx, restaurant.ID, map[string]interface{}{
		"published": false,
	}); err != nil {
		return nil, fmt.Errorf("unpublish menu: %w", err)
	}

	_ = s.cache.Delete(ctx, cache.PublicMenuKey(ownerID))
	return s.restaurants.FindByOwnerIDFull(ctx, ownerID)
}

// DeleteMenu removes all dishes and resets the publication state. The
// restaurant row and its categories persist.
func (s *publicationService) DeleteMenu(ctx context.Context, ownerID uuid.UUID) (*model.Restaurant, error) {
	restaurant, err := s.ownRestaurant(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	if err := s.dishes.DeleteByRestaurant(ctx, restaurant.ID); err != nil {
		return nil, fmt.Errorf("delete dishes: %w", err)
	}
	if err := s.restaurants.UpdateFields(ctx, restaurant.ID, map[string]interface{}{
		"published":       false,
		"menu_link":       nil,
		"setup_completed": false,
	}); err != nil {
		return nil, fmt.Errorf("reset menu: %w", err)
	}

	_ = s.cache.Delete(ctx, cache.PublicMenuKey(ownerID))
	return s.restaurants.FindByOwnerIDFull(ctx, ownerID)
}

// PublicMenu serves the read-only menu with a short-lived cache in front, so
// QR scans do not hammer the database.
func (s *publicationService) PublicMenu(ctx context.Context, ownerID uuid.UUID) (*model.Restaurant, error) {
	key := cache.PublicMenuKey(ownerID)
	if data, _ := s.cache.Get(ctx, key); data != nil {
		var cached model.Restaurant
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	restaurant, err := s.restaurants.FindByOwnerIDFull(ctx, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRestaurantNotFound
		}
		return nil, err
	}
	if !restaurant.Published || restaurant.Status != model.StatusActive {
		return nil, apperrors.ErrRestaurantNotFound
	}

	if payload, err := json.Marshal(restaurant); err == nil {
		_ = s.cache.Set(ctx, key, payload, publicMenuCacheTTL)
	}
	return restaurant, nil
}
