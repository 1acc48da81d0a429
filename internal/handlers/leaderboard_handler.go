package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/neo11221/wenhong-cramschool/internal/services"
)

// LeaderboardHandler handles leaderboard HTTP requests
type LeaderboardHandler struct {
	leaderboardService *services.LeaderboardService
}

// NewLeaderboardHandler creates a new LeaderboardHandler
func NewLeaderboardHandler(leaderboardService *services.LeaderboardService) *LeaderboardHandler {
	return &LeaderboardHandler{
		leaderboardService: leaderboardService,
	}
}

// Get handles GET /leaderboard
func (h *LeaderboardHandler) Get(c *gin.Context) {
	entries, err := h.leaderboardService.Get(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}
