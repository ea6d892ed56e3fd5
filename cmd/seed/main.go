package main

import (
	"context"
	"log"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"shopcart/internal/config"
	"shopcart/internal/db"
	"shopcart/internal/model"
	"shopcart/internal/repository"
)

// Users are created out-of-band: this CLI is that band. It upserts the
// fixture users below and, when the catalog is empty, a few starter
// products.

type seedUser struct {
	Username string
	Password string
}

type seedProduct struct {
	Name        string
	Price       string
	Description string
}

var seedUsers = []seedUser{
	{Username: "alice", Password: "alice-password"},
	{Username: "bob", Password: "bob-password"},
}

var seedProducts = []seedProduct{
	{Name: "Widget", Price: "9.99", Description: "A standard widget"},
	{Name: "Gadget", Price: "24.50", Description: ""},
	{Name: "Doohickey", Price: "3.25", Description: "Assorted colors"},
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	// Run migrations to ensure schema is up to date
	if err := gormDB.AutoMigrate(&model.User{}, &model.Product{}, &model.CartItem{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	userRepo := repository.NewUserRepository(gormDB)
	productRepo := repository.NewProductRepository(gormDB)

	created, updated, err := upsertUsers(ctx, userRepo, seedUsers)
	if err != nil {
		log.Fatalf("Failed to seed users: %v", err)
	}
	log.Printf("Users seeded: %d created, %d updated", created, updated)

	products, err := seedCatalog(ctx, productRepo, seedProducts)
	if err != nil {
		log.Fatalf("Failed to seed products: %v", err)
	}
	log.Printf("Products seeded: %d", products)

	log.Println("Seed completed successfully!")
}

// upsertUsers creates the fixture users, rehashing the password of any
// that already exist.
func upsertUsers(ctx context.Context, repo repository.UserRepository, users []seedUser) (created int, updated int, err error) {
	for _, u := range users {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			return created, updated, err
		}

		existing, err := repo.FindByUsername(ctx, u.Username)
		if err != nil && err != gorm.ErrRecordNotFound {
			return created, updated, err
		}

		if existing != nil {
			existing.PasswordHash = string(hash)
			if err := repo.Update(ctx, existing); err != nil {
				return created, updated, err
			}
			updated++
		} else {
			user := &model.User{
				Username:     u.Username,
				PasswordHash: string(hash),
			}
			if err := repo.Create(ctx, user); err != nil {
				return created, updated, err
			}
			created++
		}
	}

	return created, updated, nil
}

// seedCatalog inserts the starter products. Products have no natural key,
// so a non-empty catalog is left alone instead of accumulating duplicates.
func seedCatalog(ctx context.Context, repo repository.ProductRepository, products []seedProduct) (int, error) {
	existing, err := repo.List(ctx)
	if err != nil {
		return 0, err
	}
	if len(existing) > 0 {
		log.Printf("Catalog already has %d products, skipping product seed", len(existing))
		return 0, nil
	}

	count := 0
	for _, p := range products {
		price, err := decimal.NewFromString(p.Price)
		if err != nil {
			log.Printf("Skipping product %s with invalid price: %s", p.Name, p.Price)
			continue
		}

		product := &model.Product{
			Name:        p.Name,
			Price:       price,
			Description: p.Description,
		}
		if err := repo.Create(ctx, product); err != nil {
			return count, err
		}
		count++
	}

	return count, nil
}
