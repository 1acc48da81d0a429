package services

import (
	"context"
	"errors"
	"time"

	"github.com/neo11221/wenhong-cramschool/internal/config"
	"github.com/neo11221/wenhong-cramschool/internal/models"
	"github.com/neo11221/wenhong-cramschool/internal/repositories"
	"github.com/neo11221/wenhong-cramschool/internal/utils"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned for any login failure so the caller
// cannot distinguish a missing account from a wrong password
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService handles admin authentication
type AuthService struct {
	adminRepo repositories.AdminUserRepository
	cfg       *config.Config
}

// NewAuthService creates a new AuthService
func NewAuthService(adminRepo repositories.AdminUserRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		adminRepo: adminRepo,
		cfg:       cfg,
	}
}

// Login verifies admin credentials and returns a signed JWT
func (s *AuthService) Login(ctx context.Context, req *models.LoginRequest) (string, time.Time, error) {
	adminUser, err := s.adminRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return "", time.Time{}, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(adminUser.Password), []byte(req.Password)); err != nil {
		return "", time.Time{}, ErrInvalidCredentials
	}

	return utils.GenerateJWT(adminUser.ID.Hex(), string(models.RoleAdmin), s.cfg)
}

// Register creates a new admin account with a bcrypt-hashed password
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*models.AdminUser, error) {
	if _, err := s.adminRepo.FindByEmail(ctx, email); err == nil {
		return nil, errors.New("admin user with this email already exists")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	adminUser := &models.AdminUser{
		Name:     name,
		Email:    email,
		Password: string(hashedPassword),
	}
	if err := s.adminRepo.Create(ctx, adminUser); err != nil {
		return nil, err
	}

	adminUser.Password = ""
	return adminUser, nil
}
