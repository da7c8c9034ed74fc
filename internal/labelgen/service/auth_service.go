package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ZulfikarHD/labelgen/internal/config"
	"github.com/ZulfikarHD/labelgen/internal/labelgen/entity"
	"github.com/ZulfikarHD/labelgen/internal/labelgen/repository"
	"github.com/ZulfikarHD/labelgen/internal/middleware"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const revokedKeyPrefix = "labelgen:revoked:"

// AuthService handles NP+password login, token issuing and logout
// revocation. Revoked token IDs live in redis until the token would
// have expired anyway; without redis, logout degrades to client-side
// token disposal.
type AuthService struct {
	users *repository.UserRepository
	rdb   *redis.Client
	cfg   config.JWTConfig
}

func NewAuthService(users *repository.UserRepository, rdb *redis.Client, cfg config.JWTConfig) *AuthService {
	return &AuthService{users: users, rdb: rdb, cfg: cfg}
}

// Login authenticates by NP and password. An unknown NP, a wrong
// password and an inactive account all collapse into the same
// ErrInvalidCredential: a disabled account must look no different
// from a wrong password.
func (s *AuthService) Login(np, password string) (string, *entity.User, error) {
	user, err := s.users.GetByNP(strings.ToUpper(np))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrInvalidCredential
		}
		return "", nil, fmt.Errorf("lookup user: %w", err)
	}

	if !user.IsActive {
		return "", nil, ErrInvalidCredential
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredential
	}

	token, err := s.issueToken(user)
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}
	return token, user, nil
}

func (s *AuthService) issueToken(user *entity.User) (string, error) {
	now := time.Now()
	claims := middleware.JWTClaims{
		UserID: user.ID,
		NP:     user.NP,
		Name:   user.Name,
		Role:   string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Issuer:    s.cfg.Issuer,
			Subject:   user.NP,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.AccessTokenExpire)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.Secret))
}

// Logout revokes the token by JTI for the remaining token lifetime.
func (s *AuthService) Logout(ctx context.Context, jti string) error {
	if s.rdb == nil || jti == "" {
		return nil
	}
	return s.rdb.Set(ctx, revokedKeyPrefix+jti, "1", s.cfg.AccessTokenExpire).Err()
}

// IsRevoked implements middleware.TokenStore.
func (s *AuthService) IsRevoked(ctx context.Context, jti string) bool {
	if s.rdb == nil || jti == "" {
		return false
	}
	n, err := s.rdb.Exists(ctx, revokedKeyPrefix+jti).Result()
	if err != nil {
		// Redis being down must not lock everyone out.
		return false
	}
	return n > 0
}

// IsActive implements middleware.ActiveChecker.
func (s *AuthService) IsActive(ctx context.Context, userID uint) bool {
	user, err := s.users.GetByID(userID)
	if err != nil {
		return false
	}
	return user.IsActive
}

// CurrentUser resolves the authenticated user's profile.
func (s *AuthService) CurrentUser(userID uint) (*entity.User, error) {
	user, err := s.users.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

// ChangePassword is the self-service path: the current password must
// verify before the new one is set.
func (s *AuthService) ChangePassword(userID uint, current, newPassword string) error {
	user, err := s.users.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(current)); err != nil {
		return ErrInvalidCredential
	}
	hash, err := HashPassword(newPassword)
	if err != nil {
		return err
	}
	user.Password = hash
	return s.users.Update(user)
}

// SetPassword is the admin path: no current-password check.
func (s *AuthService) SetPassword(userID uint, newPassword string) error {
	user, err := s.users.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	hash, err := HashPassword(newPassword)
	if err != nil {
		return err
	}
	user.Password = hash
	return s.users.Update(user)
}

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// DefaultPassword is the issued-on-creation password: Peruri + NP.
func DefaultPassword(np string) string {
	return "Peruri" + strings.ToUpper(np)
}
