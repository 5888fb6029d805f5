package main

import (
	"context"
	"log"

	"github.com/shopspring/decimal"

	"github.com/diegorodrguez7/carta-digital-qr/internal/config"
	"github.com/diegorodrguez7/carta-digital-qr/internal/db"
	"github.com/diegorodrguez7/carta-digital-qr/internal/model"
	"github.com/diegorodrguez7/carta-digital-qr/internal/repository"
	"github.com/diegorodrguez7/carta-digital-qr/internal/service"
)

// seedDish is a demo menu entry inserted into one of the starter categories.
type seedDish struct {
	Category    string
	Title       string
	Description string
	Price       string
	Allergens   []string
}

var demoDishes = []seedDish{
	{Category: "Entrantes", Title: "Croquetas de jamón", Description: "Croquetas caseras de jamón ibérico", Price: "7.50", Allergens: []string{"gluten", "lactosa"}},
	{Category: "Platos principales", Title: "Paella de marisco", Description: "Paella tradicional con marisco fresco", Price: "16.00", Allergens: []string{"marisco"}},
	{Category: "Postres", Title: "Flan", Description: "Flan casero con caramelo", Price: "4.50", Allergens: []string{"huevo", "lactosa"}},
	{Category: "Bebidas", Title: "Agua mineral", Description: "Botella de 50cl", Price: "1.80"},
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := db.Migrate(gormDB); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()

	userRepo := repository.NewUserRepository(gormDB)
	restaurantRepo := repository.NewRestaurantRepository(gormDB)
	categoryRepo := repository.NewCategoryRepository(gormDB)
	dishRepo := repository.NewDishRepository(gormDB)

	restaurantService := service.NewRestaurantService(restaurantRepo, nil)

	owner, err := userRepo.FindByEmail(ctx, "cliente-demo@qarta.local")
	if err != nil {
		owner = &model.User{
			Email: "cliente-demo@qarta.local",
			Name:  "Propietario Demo",
			Role:  model.RoleClient,
		}
		if err := userRepo.Create(ctx, owner); err != nil {
			log.Fatalf("Failed to create demo owner: %v", err)
		}
		log.Println("Created demo owner")
	}

	restaurant, err := restaurantService.EnsureRestaurant(ctx, owner)
	if err != nil {
		log.Fatalf("Failed to provision demo restaurant: %v", err)
	}
	log.Printf("Demo restaurant ready: %s", restaurant.ID)

	categories, err := categoryRepo.ListByRestaurant(ctx, restaurant.ID)
	if err != nil {
		log.Fatalf("Failed to list categories: %v", err)
	}
	byName := make(map[string]model.Category, len(categories))
	for _, c := range categories {
		byName[c.Name] = c
	}

	if len(restaurant.Dishes) > 0 {
		log.Println("Demo restaurant already has dishes, skipping dish seed")
		return
	}

	seeded := 0
	for _, d := range demoDishes {
		category, ok := byName[d.Category]
		if !ok {
			log.Printf("Skipping dish %q: category %q not found", d.Title, d.Category)
			continue
		}
		price, err := decimal.NewFromString(d.Price)
		if err != nil {
			log.Printf("Skipping dish %q: bad price %q", d.Title, d.Price)
			continue
		}
		allergens := d.Allergens
		if allergens == nil {
			allergens = []string{}
		}
		dish := &model.Dish{
			Title:        d.Title,
			Description:  d.Description,
			Price:        price,
			Allergens:    allergens,
			RestaurantID: restaurant.ID,
			CategoryID:   category.ID,
		}
		if err := dishRepo.Create(ctx, dish); err != nil {
			log.Fatalf("Failed to create dish %q: %v", d.Title, err)
		}
		seeded++
	}

	log.Printf("Seed completed: %d dishes created", seeded)
}
