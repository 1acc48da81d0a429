package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"github.com/neo11221/wenhong-cramschool/internal/models"
	mongorepo "github.com/neo11221/wenhong-cramschool/internal/repositories/mongodb"
	"github.com/neo11221/wenhong-cramschool/pkg/mongodb"
)

// Seeds the database with demo students, the reward catalog and a
// default admin account. Existing data is left untouched, so the script
// is safe to run more than once.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}
	dbName := os.Getenv("MONGODB_DATABASE")
	if dbName == "" {
		dbName = "wenhong-workshop"
	}

	ctx := context.Background()
	client, err := mongodb.Connect(ctx, uri)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err := mongodb.Disconnect(ctx, client); err != nil {
			log.Printf("Failed to disconnect from MongoDB: %v", err)
		}
	}()
	db := client.Database(dbName)

	profileRepo := mongorepo.NewProfileRepository(db)
	productRepo := mongorepo.NewProductRepository(db)
	adminRepo := mongorepo.NewAdminUserRepository(db)

	profileCount, err := profileRepo.Count(ctx)
	if err != nil {
		log.Fatalf("Failed to count profiles: %v", err)
	}
	if profileCount == 0 {
		students := []*models.Profile{
			{Name: "Alex Chen", Points: 1200, TotalEarned: 2500, Role: models.RoleStudent, Avatar: "🦊"},
			{Name: "Mia Lin", Points: 800, TotalEarned: 1800, Role: models.RoleStudent, Avatar: "🐰"},
			{Name: "Kevin Wang", Points: 2100, TotalEarned: 4200, Role: models.RoleStudent, Avatar: "🐯"},
		}
		for _, s := range students {
			if err := profileRepo.Create(ctx, s); err != nil {
				log.Fatalf("Failed to seed profile %s: %v", s.Name, err)
			}
		}
		log.Printf("Seeded %d student profiles", len(students))
	} else {
		log.Printf("Profiles already present (%d), skipping", profileCount)
	}

	products, err := productRepo.FindAll(ctx)
	if err != nil {
		log.Fatalf("Failed to list products: %v", err)
	}
	if len(products) == 0 {
		catalog := []*models.Product{
			{Name: "Snack Box", Category: models.CategoryFood, Price: 150, Description: "A box of assorted snacks", Stock: 20},
			{Name: "Bubble Tea", Category: models.CategoryFood, Price: 80, Description: "One cup of bubble tea", Stock: 30},
			{Name: "Nintendo Switch", Category: models.CategoryElectronic, Price: 12000, Description: "The grand prize", Stock: 1},
			{Name: "Stationery Set", Category: models.CategoryOther, Price: 320, Description: "Pens, notebook and stickers", Stock: 15},
			{Name: "Movie Ticket", Category: models.CategoryTicket, Price: 800, Description: "One cinema ticket", Stock: 10},
			{Name: "Wireless Earbuds", Category: models.CategoryElectronic, Price: 2500, Description: "Bluetooth earbuds", Stock: 3},
		}
		for _, p := range catalog {
			if err := productRepo.Create(ctx, p); err != nil {
				log.Fatalf("Failed to seed product %s: %v", p.Name, err)
			}
		}
		log.Printf("Seeded %d products", len(catalog))
	} else {
		log.Printf("Products already present (%d), skipping", len(products))
	}

	adminCount, err := adminRepo.Count(ctx)
	if err != nil {
		log.Fatalf("Failed to count admin users: %v", err)
	}
	if adminCount == 0 {
		email := os.Getenv("ADMIN_EMAIL")
		if email == "" {
			email = "admin@wenhong.local"
		}
		password := os.Getenv("ADMIN_PASSWORD")
		if password == "" {
			password = "changeme"
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("Failed to hash admin password: %v", err)
		}
		admin := &models.AdminUser{
			Name:     "Workshop Admin",
			Email:    email,
			Password: string(hashed),
		}
		if err := adminRepo.Create(ctx, admin); err != nil {
			log.Fatalf("Failed to seed admin user: %v", err)
		}
		log.Printf("Seeded admin user %s", email)
	} else {
		log.Printf("Admin users already present (%d), skipping", adminCount)
	}
}
