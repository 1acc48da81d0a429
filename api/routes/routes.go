package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/neo11221/wenhong-cramschool/internal/config"
	"github.com/neo11221/wenhong-cramschool/internal/handlers"
	"github.com/neo11221/wenhong-cramschool/internal/middleware"
)

// SetupRouter configures the API routes
func SetupRouter(
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	profileHandler *handlers.ProfileHandler,
	pointsHandler *handlers.PointsHandler,
	redemptionHandler *handlers.RedemptionHandler,
	productHandler *handlers.ProductHandler,
	leaderboardHandler *handlers.LeaderboardHandler,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware(cfg))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggerMiddleware())

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		v1.POST("/auth/login", authHandler.Login)

		v1.GET("/products", productHandler.GetAll)
		v1.GET("/products/:id", productHandler.GetByID)

		v1.GET("/leaderboard", leaderboardHandler.Get)

		v1.GET("/profiles", profileHandler.GetAll)
		v1.GET("/profiles/count", profileHandler.GetCount)
		v1.GET("/profiles/:id", profileHandler.GetByID)
		v1.PUT("/profiles/:id/avatar", profileHandler.UpdateAvatar)
		v1.GET("/profiles/:id/rank", profileHandler.GetRank)
		v1.GET("/profiles/:id/grants", profileHandler.GetGrants)
		v1.GET("/profiles/:id/redemptions", redemptionHandler.GetByUserID)
		v1.GET("/profiles/:id/encouragement", profileHandler.GetEncouragement)
		v1.GET("/profiles/:id/mission", profileHandler.GetDailyMission)

		v1.POST("/redemptions", redemptionHandler.Request)
		v1.GET("/redemptions/:id", redemptionHandler.GetByID)
		v1.POST("/redemptions/:id/cancel", redemptionHandler.Cancel)
		v1.GET("/redemptions/qr/:token", redemptionHandler.GetByQRCode)

		// Admin routes
		admin := v1.Group("/")
		admin.Use(middleware.JWTAuthMiddleware(cfg), middleware.RequireAdmin())
		{
			admin.POST("/points/issue", pointsHandler.IssuePoints)
			admin.POST("/redemptions/:id/confirm", redemptionHandler.Confirm)
			admin.GET("/redemptions", redemptionHandler.GetAll)
			admin.POST("/products", productHandler.Create)
			admin.PUT("/products/:id", productHandler.Update)
			admin.POST("/profiles", profileHandler.Create)
		}
	}

	return router
}
