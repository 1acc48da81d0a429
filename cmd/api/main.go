package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/neo11221/wenhong-cramschool/api/routes"
	"github.com/neo11221/wenhong-cramschool/internal/config"
	"github.com/neo11221/wenhong-cramschool/internal/handlers"
	"github.com/neo11221/wenhong-cramschool/internal/repositories"
	"github.com/neo11221/wenhong-cramschool/internal/repositories/memory"
	mongorepo "github.com/neo11221/wenhong-cramschool/internal/repositories/mongodb"
	"github.com/neo11221/wenhong-cramschool/internal/repositories/rediscache"
	"github.com/neo11221/wenhong-cramschool/internal/services"
	"github.com/neo11221/wenhong-cramschool/pkg/genai"
	"github.com/neo11221/wenhong-cramschool/pkg/mongodb"
)

func main() {
	// Load .env file if present
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	// Initialize repositories
	var (
		profileRepo    repositories.ProfileRepository
		redemptionRepo repositories.RedemptionRepository
		productRepo    repositories.ProductRepository
		grantRepo      repositories.PointGrantRepository
		adminRepo      repositories.AdminUserRepository
	)
	if cfg.Storage.Driver == "memory" {
		log.Println("Using in-memory storage, data will not survive a restart")
		profileRepo = memory.NewProfileRepository()
		redemptionRepo = memory.NewRedemptionRepository()
		productRepo = memory.NewProductRepository()
		grantRepo = memory.NewPointGrantRepository()
		adminRepo = memory.NewAdminUserRepository()
	} else {
		client, err := mongodb.Connect(ctx, cfg.MongoDB.URI)
		if err != nil {
			log.Fatalf("Failed to connect to MongoDB: %v", err)
		}
		defer func() {
			if err := mongodb.Disconnect(ctx, client); err != nil {
				log.Printf("Failed to disconnect from MongoDB: %v", err)
			}
		}()
		db := client.Database(cfg.MongoDB.Database)
		profileRepo = mongorepo.NewProfileRepository(db)
		redemptionRepo = mongorepo.NewRedemptionRepository(db)
		productRepo = mongorepo.NewProductRepository(db)
		grantRepo = mongorepo.NewPointGrantRepository(db)
		adminRepo = mongorepo.NewAdminUserRepository(db)
	}

	// The leaderboard cache is optional. Without Redis the service
	// rebuilds the board from the profile store on every request.
	var leaderboardCache *rediscache.LeaderboardCache
	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Printf("Redis unavailable, leaderboard caching disabled: %v", err)
		} else {
			ttl := time.Duration(cfg.Redis.CacheTTLSecs) * time.Second
			leaderboardCache = rediscache.NewLeaderboardCache(redisClient, ttl)
		}
	}

	generator := genai.NewClient(cfg.GenAI.BaseURL, cfg.GenAI.APIKey, cfg.GenAI.Model, cfg.GenAI.MockAPI)

	// Initialize services
	ledgerService := services.NewLedgerService(profileRepo, redemptionRepo, grantRepo)
	redemptionService := services.NewRedemptionService(ledgerService, redemptionRepo, productRepo)
	profileService := services.NewProfileService(profileRepo, grantRepo)
	productService := services.NewProductService(productRepo)
	motivationService := services.NewMotivationService(generator)
	leaderboardService := services.NewLeaderboardService(profileRepo, leaderboardCache)
	authService := services.NewAuthService(adminRepo, cfg)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	profileHandler := handlers.NewProfileHandler(profileService, motivationService)
	pointsHandler := handlers.NewPointsHandler(ledgerService, leaderboardService)
	redemptionHandler := handlers.NewRedemptionHandler(redemptionService, leaderboardService)
	productHandler := handlers.NewProductHandler(productService)
	leaderboardHandler := handlers.NewLeaderboardHandler(leaderboardService)

	router := routes.SetupRouter(cfg, authHandler, profileHandler, pointsHandler, redemptionHandler, productHandler, leaderboardHandler)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
