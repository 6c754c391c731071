package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pageza/delight/backend/internal/models"
	"github.com/pageza/delight/backend/internal/types"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	tokenTTL          = 24 * time.Hour
	minPasswordLength = 8
	usernameMaxLength = 150
)

// AuthService manages staff accounts and their tokens
type AuthService struct {
	db        *gorm.DB
	jwtSecret string
}

// NewAuthService creates a new AuthService instance
func NewAuthService(db *gorm.DB, jwtSecret string) *AuthService {
	return &AuthService{
		db:        db,
		jwtSecret: jwtSecret,
	}
}

// CreateStaffUser creates an active staff account
func (s *AuthService) CreateStaffUser(ctx context.Context, username, password string) (*models.StaffUser, error) {
	username, err := cleanName("username", username, usernameMaxLength)
	if err != nil {
		return nil, err
	}
	if len(password) < minPasswordLength {
		return nil, invalid("password", "ensure this value has at least %d characters", minPasswordLength)
	}

	var count int64
	if err := s.db.WithContext(ctx).Model(&models.StaffUser{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	dup := invalid("username", "a user with that username already exists")
	if count > 0 {
		return nil, dup
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.StaffUser{
		Username:     username,
		PasswordHash: string(hash),
		IsActive:     true,
	}
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		return nil, fmt.Errorf("failed to create staff user: %w", translateError(err, dup))
	}
	return user, nil
}

// Login checks the credentials and returns a signed token
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *models.StaffUser, error) {
	var user models.StaffUser
	if err := s.db.WithContext(ctx).Where("username = ?", strings.TrimSpace(username)).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("failed to load staff user: %w", err)
	}
	if !user.IsActive {
		return "", nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	now := time.Now()
	if err := s.db.WithContext(ctx).Model(&user).Update("last_login_at", now).Error; err != nil {
		return "", nil, fmt.Errorf("failed to record login: %w", err)
	}

	token, err := s.GenerateToken(&types.TokenClaims{UserID: user.ID, Username: user.Username})
	if err != nil {
		return "", nil, err
	}
	return token, &user, nil
}

// GenerateToken signs claims, filling in the registered time claims
func (s *AuthService) GenerateToken(claims *types.TokenClaims) (string, error) {
	now := time.Now()
	claims.Subject = claims.UserID.String()
	claims.IssuedAt = jwt.NewNumericDate(now)
	claims.ExpiresAt = jwt.NewNumericDate(now.Add(tokenTTL))

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

// ValidateToken parses and verifies a token produced by GenerateToken
func (s *AuthService) ValidateToken(tokenString string) (*types.TokenClaims, error) {
	claims := &types.TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid || claims.UserID == uuid.Nil {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
