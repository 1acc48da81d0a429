package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/neo11221/wenhong-cramschool/internal/models"
	"github.com/neo11221/wenhong-cramschool/internal/services"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProfileHandler handles profile-related HTTP requests
type ProfileHandler struct {
	profileService    *services.ProfileService
	motivationService *services.MotivationService
}

// NewProfileHandler creates a new ProfileHandler
func NewProfileHandler(profileService *services.ProfileService, motivationService *services.MotivationService) *ProfileHandler {
	return &ProfileHandler{
		profileService:    profileService,
		motivationService: motivationService,
	}
}

// GetAll handles GET /profiles
func (h *ProfileHandler) GetAll(c *gin.Context) {
	profiles, err := h.profileService.GetAll(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, profiles)
}

// GetByID handles GET /profiles/:id
func (h *ProfileHandler) GetByID(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	profile, err := h.profileService.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// Create handles POST /profiles
func (h *ProfileHandler) Create(c *gin.Context) {
	var req struct {
		Name   string      `json:"name" binding:"required"`
		Role   models.Role `json:"role"`
		Avatar string      `json:"avatar"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Role == "" {
		req.Role = models.RoleStudent
	}
	if !req.Role.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid role"})
		return
	}

	profile, err := h.profileService.Create(c.Request.Context(), req.Name, req.Role, req.Avatar)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, profile)
}

// UpdateAvatar handles PUT /profiles/:id/avatar
func (h *ProfileHandler) UpdateAvatar(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	var req struct {
		Avatar string `json:"avatar" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := h.profileService.UpdateAvatar(c.Request.Context(), id, req.Avatar)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// GetRank handles GET /profiles/:id/rank
func (h *ProfileHandler) GetRank(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	profile, rank, err := h.profileService.GetRank(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"profileId":   profile.ID,
		"totalEarned": profile.TotalEarned,
		"rank":        rank,
	})
}

// GetGrants handles GET /profiles/:id/grants
func (h *ProfileHandler) GetGrants(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	grants, err := h.profileService.GetGrants(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, grants)
}

// GetEncouragement handles GET /profiles/:id/encouragement
func (h *ProfileHandler) GetEncouragement(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	profile, rank, err := h.profileService.GetRank(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, err)
		return
	}

	message := h.motivationService.GetEncouragement(c.Request.Context(), profile, rank)
	c.JSON(http.StatusOK, gin.H{"message": message})
}

// GetDailyMission handles GET /profiles/:id/mission
func (h *ProfileHandler) GetDailyMission(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	profile, err := h.profileService.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, err)
		return
	}

	mission := h.motivationService.GenerateDailyMission(c.Request.Context(), profile)
	c.JSON(http.StatusOK, mission)
}

// GetCount handles GET /profiles/count
func (h *ProfileHandler) GetCount(c *gin.Context) {
	count, err := h.profileService.Count(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}
