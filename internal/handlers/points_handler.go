package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/neo11221/wenhong-cramschool/internal/services"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PointsHandler handles point issuance HTTP requests
type PointsHandler struct {
	ledgerService      *services.LedgerService
	leaderboardService *services.LeaderboardService
}

// NewPointsHandler creates a new PointsHandler
func NewPointsHandler(ledgerService *services.LedgerService, leaderboardService *services.LeaderboardService) *PointsHandler {
	return &PointsHandler{
		ledgerService:      ledgerService,
		leaderboardService: leaderboardService,
	}
}

// IssuePoints handles POST /points/issue
func (h *PointsHandler) IssuePoints(c *gin.Context) {
	var req struct {
		ProfileID string `json:"profileId" binding:"required"`
		Amount    int    `json:"amount" binding:"required"`
		Reason    string `json:"reason"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profileID, err := primitive.ObjectIDFromHex(req.ProfileID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid profile ID format"})
		return
	}

	grantedBy := ""
	if claimsValue, exists := c.Get("claims"); exists {
		if claims, ok := claimsValue.(jwt.MapClaims); ok {
			grantedBy, _ = claims["sub"].(string)
		}
	}

	profile, err := h.ledgerService.IssuePoints(c.Request.Context(), profileID, req.Amount, req.Reason, grantedBy)
	if err != nil {
		abortWithError(c, err)
		return
	}

	h.leaderboardService.Invalidate(c.Request.Context())
	c.JSON(http.StatusOK, profile)
}
