package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neo11221/wenhong-cramschool/api/routes"
	"github.com/neo11221/wenhong-cramschool/internal/config"
	"github.com/neo11221/wenhong-cramschool/internal/handlers"
	"github.com/neo11221/wenhong-cramschool/internal/models"
	"github.com/neo11221/wenhong-cramschool/internal/repositories/memory"
	"github.com/neo11221/wenhong-cramschool/internal/services"
	"github.com/neo11221/wenhong-cramschool/internal/utils"
)

type apiFixture struct {
	router      *gin.Engine
	cfg         *config.Config
	profileRepo *memory.ProfileRepository
	productRepo *memory.ProductRepository
	adminToken  string
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{}
	cfg.Server.AllowedHosts = []string{"localhost:3000"}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.ExpiresIn = 3600

	profileRepo := memory.NewProfileRepository()
	redemptionRepo := memory.NewRedemptionRepository()
	productRepo := memory.NewProductRepository()
	grantRepo := memory.NewPointGrantRepository()
	adminRepo := memory.NewAdminUserRepository()

	ledgerService := services.NewLedgerService(profileRepo, redemptionRepo, grantRepo)
	redemptionService := services.NewRedemptionService(ledgerService, redemptionRepo, productRepo)
	profileService := services.NewProfileService(profileRepo, grantRepo)
	productService := services.NewProductService(productRepo)
	motivationService := services.NewMotivationService(nil)
	leaderboardService := services.NewLeaderboardService(profileRepo, nil)
	authService := services.NewAuthService(adminRepo, cfg)

	router := routes.SetupRouter(
		cfg,
		handlers.NewAuthHandler(authService),
		handlers.NewProfileHandler(profileService, motivationService),
		handlers.NewPointsHandler(ledgerService, leaderboardService),
		handlers.NewRedemptionHandler(redemptionService, leaderboardService),
		handlers.NewProductHandler(productService),
		handlers.NewLeaderboardHandler(leaderboardService),
	)

	token, _, err := utils.GenerateJWT("admin-1", string(models.RoleAdmin), cfg)
	require.NoError(t, err)

	return &apiFixture{
		router:      router,
		cfg:         cfg,
		profileRepo: profileRepo,
		productRepo: productRepo,
		adminToken:  token,
	}
}

func (f *apiFixture) seed(t *testing.T, points, price, stock int) (*models.Profile, *models.Product) {
	t.Helper()
	ctx := context.Background()
	p := &models.Profile{Name: "Alex Chen", Points: points, TotalEarned: points, Role: models.RoleStudent}
	require.NoError(t, f.profileRepo.Create(ctx, p))
	prod := &models.Product{Name: "Movie Ticket", Category: models.CategoryTicket, Price: price, Stock: stock}
	require.NoError(t, f.productRepo.Create(ctx, prod))
	return p, prod
}

func (f *apiFixture) do(t *testing.T, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func decodeRedemption(t *testing.T, w *httptest.ResponseRecorder) *models.Redemption {
	t.Helper()
	var r models.Redemption
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &r))
	return &r
}

func TestRedemptionLifecycleOverHTTP(t *testing.T) {
	f := newAPIFixture(t)
	p, prod := f.seed(t, 1200, 800, 5)

	// Request
	w := f.do(t, http.MethodPost, "/api/v1/redemptions", gin.H{
		"profileId": p.ID.Hex(),
		"productId": prod.ID.Hex(),
	}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	redemption := decodeRedemption(t, w)
	assert.Equal(t, models.RedemptionPending, redemption.Status)
	assert.NotEmpty(t, redemption.QRCodeData)

	// Staff scan the pickup code
	w = f.do(t, http.MethodGet, "/api/v1/redemptions/qr/"+redemption.QRCodeData, nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, redemption.ID, decodeRedemption(t, w).ID)

	// Confirm requires an admin token
	confirmPath := fmt.Sprintf("/api/v1/redemptions/%s/confirm", redemption.ID.Hex())
	w = f.do(t, http.MethodPost, confirmPath, nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = f.do(t, http.MethodPost, confirmPath, nil, f.adminToken)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, models.RedemptionCompleted, decodeRedemption(t, w).Status)

	// Completed is terminal
	w = f.do(t, http.MethodPost, confirmPath, nil, f.adminToken)
	assert.Equal(t, http.StatusConflict, w.Code)

	// Balance reflects the debit
	stored, err := f.profileRepo.FindByID(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, 400, stored.Points)
}

func TestRedemptionRequestInsufficientPointsOverHTTP(t *testing.T) {
	f := newAPIFixture(t)
	p, prod := f.seed(t, 400, 500, 5)

	w := f.do(t, http.MethodPost, "/api/v1/redemptions", gin.H{
		"profileId": p.ID.Hex(),
		"productId": prod.ID.Hex(),
	}, "")
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestRedemptionRequestUnknownProductOverHTTP(t *testing.T) {
	f := newAPIFixture(t)
	p, _ := f.seed(t, 1200, 800, 5)

	w := f.do(t, http.MethodPost, "/api/v1/redemptions", gin.H{
		"profileId": p.ID.Hex(),
		"productId": "64a000000000000000000000",
	}, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRedemptionCancelOverHTTP(t *testing.T) {
	f := newAPIFixture(t)
	p, prod := f.seed(t, 1200, 800, 5)

	w := f.do(t, http.MethodPost, "/api/v1/redemptions", gin.H{
		"profileId": p.ID.Hex(),
		"productId": prod.ID.Hex(),
	}, "")
	require.Equal(t, http.StatusCreated, w.Code)
	redemption := decodeRedemption(t, w)

	w = f.do(t, http.MethodPost, fmt.Sprintf("/api/v1/redemptions/%s/cancel", redemption.ID.Hex()), nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.RedemptionCancelled, decodeRedemption(t, w).Status)

	stored, err := f.profileRepo.FindByID(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, 1200, stored.Points)
}

func TestIssuePointsOverHTTP(t *testing.T) {
	f := newAPIFixture(t)
	p, _ := f.seed(t, 800, 100, 1)

	w := f.do(t, http.MethodPost, "/api/v1/points/issue", gin.H{
		"profileId": p.ID.Hex(),
		"amount":    100,
		"reason":    "quiz reward",
	}, f.adminToken)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var profile models.Profile
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &profile))
	assert.Equal(t, 900, profile.Points)
	assert.Equal(t, 900, profile.TotalEarned)
}

func TestIssuePointsRejectsNegativeAmountOverHTTP(t *testing.T) {
	f := newAPIFixture(t)
	p, _ := f.seed(t, 800, 100, 1)

	w := f.do(t, http.MethodPost, "/api/v1/points/issue", gin.H{
		"profileId": p.ID.Hex(),
		"amount":    -50,
	}, f.adminToken)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestIssuePointsRequiresAdminRole(t *testing.T) {
	f := newAPIFixture(t)
	p, _ := f.seed(t, 800, 100, 1)

	studentToken, _, err := utils.GenerateJWT("student-1", string(models.RoleStudent), f.cfg)
	require.NoError(t, err)

	w := f.do(t, http.MethodPost, "/api/v1/points/issue", gin.H{
		"profileId": p.ID.Hex(),
		"amount":    100,
	}, studentToken)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
