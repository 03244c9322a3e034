package services

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/GermanChai/germanchai/entity"
	"github.com/GermanChai/germanchai/repository"
	"github.com/GermanChai/germanchai/utils"

	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type AuthService struct {
	userRepo  *repository.UserRepository
	carts     CartStore
	jwtSecret string
	jwtTTL    time.Duration
}

func NewAuthService(repo *repository.UserRepository, carts CartStore, secret string, ttl time.Duration) *AuthService {
	return &AuthService{
		userRepo:  repo,
		carts:     carts,
		jwtSecret: secret,
		jwtTTL:    ttl,
	}
}

// Register creates a new customer account. Any stale cart stored under the
// new account's id is discarded, same as on login.
func (s *AuthService) Register(ctx context.Context, email, password string) (*entity.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	count, err := s.userRepo.CountByEmail(email)
	if err != nil {
		return nil, "", err
	}
	if count > 0 {
		return nil, "", errors.New("email already registered")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", errors.New("hash password failed")
	}

	user := &entity.User{
		Email:    email,
		Password: string(hashed),
		Role:     entity.RoleCustomer,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, "", err
	}

	s.invalidateCart(ctx, user.ID)

	token, err := utils.GenerateToken(user.ID, user.Role, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return nil, "", errors.New("cannot generate token")
	}
	return user, token, nil
}

// Login verifies credentials and issues a JWT. Signing in invalidates any
// cart persisted for this account so nothing leaks across sessions.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	s.invalidateCart(ctx, user.ID)

	token, err := utils.GenerateToken(user.ID, user.Role, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, errors.New("cannot generate token")
	}
	return token, user, nil
}

// Logout drops the persisted cart. The token itself is stateless and
// simply expires.
func (s *AuthService) Logout(ctx context.Context, userID uint) {
	s.invalidateCart(ctx, userID)
}

func (s *AuthService) GetUser(userID uint) (*entity.User, error) {
	return s.userRepo.FindByID(userID)
}

func (s *AuthService) invalidateCart(ctx context.Context, userID uint) {
	if err := s.carts.Delete(ctx, userID); err != nil {
		log.Printf("invalidate cart for user %d: %v", userID, err)
	}
}
