package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/neo11221/wenhong-cramschool/internal/services"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RedemptionHandler handles redemption HTTP requests
type RedemptionHandler struct {
	redemptionService  *services.RedemptionService
	leaderboardService *services.LeaderboardService
}

// NewRedemptionHandler creates a new RedemptionHandler
func NewRedemptionHandler(redemptionService *services.RedemptionService, leaderboardService *services.LeaderboardService) *RedemptionHandler {
	return &RedemptionHandler{
		redemptionService:  redemptionService,
		leaderboardService: leaderboardService,
	}
}

// Request handles POST /redemptions
func (h *RedemptionHandler) Request(c *gin.Context) {
	var req struct {
		ProfileID string `json:"profileId" binding:"required"`
		ProductID string `json:"productId" binding:"required"`
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
	productID, err := primitive.ObjectIDFromHex(req.ProductID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID format"})
		return
	}

	redemption, err := h.redemptionService.Request(c.Request.Context(), profileID, productID)
	if err != nil {
		abortWithError(c, err)
		return
	}

	h.leaderboardService.Invalidate(c.Request.Context())
	c.JSON(http.StatusCreated, redemption)
}

// Confirm handles POST /redemptions/:id/confirm
func (h *RedemptionHandler) Confirm(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	redemption, err := h.redemptionService.Confirm(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, redemption)
}

// Cancel handles POST /redemptions/:id/cancel
func (h *RedemptionHandler) Cancel(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	redemption, err := h.redemptionService.Cancel(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, err)
		return
	}

	h.leaderboardService.Invalidate(c.Request.Context())
	c.JSON(http.StatusOK, redemption)
}

// GetByID handles GET /redemptions/:id
func (h *RedemptionHandler) GetByID(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	redemption, err := h.redemptionService.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, redemption)
}

// GetByQRCode handles GET /redemptions/qr/:token. Staff scan a pickup
// code and look the reservation up by its opaque token.
func (h *RedemptionHandler) GetByQRCode(c *gin.Context) {
	redemption, err := h.redemptionService.GetByQRCode(c.Request.Context(), c.Param("token"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, redemption)
}

// GetByUserID handles GET /profiles/:id/redemptions
func (h *RedemptionHandler) GetByUserID(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	redemptions, err := h.redemptionService.GetByUserID(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, redemptions)
}

// GetAll handles GET /redemptions
func (h *RedemptionHandler) GetAll(c *gin.Context) {
	redemptions, err := h.redemptionService.GetAll(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, redemptions)
}
