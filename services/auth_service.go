package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Dosada05/league-standings/models"
	"github.com/Dosada05/league-standings/repositories"
	"github.com/Dosada05/league-standings/utils"
	"github.com/golang-jwt/jwt/v4"
)

const TokenTTL = 24 * time.Hour

type LoginInput struct {
	Email    string
	Password string
}

type AuthService interface {
	Login(ctx context.Context, input LoginInput) (string, *models.User, error)
}

type authService struct {
	userRepo  repositories.UserRepository
	jwtSecret []byte
	now       func() time.Time
}

func NewAuthService(userRepo repositories.UserRepository, jwtSecret string) AuthService {
	return &authService{
		userRepo:  userRepo,
		jwtSecret: []byte(jwtSecret),
		now:       time.Now,
	}
}

// Login checks the credentials and issues an HS256 token carrying user_id and role.
func (s *authService) Login(ctx context.Context, input LoginInput) (string, *models.User, error) {
	if input.Email == "" || input.Password == "" {
		return "", nil, ErrInvalidCredentials
	}

	user, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("failed to find user by email: %w", err)
	}

	if !utils.CheckPasswordHash(input.Password, user.PasswordHash) {
		return "", nil, ErrInvalidCredentials
	}
	user.PasswordHash = ""

	now := s.now()
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"role":    string(user.Role),
		"iat":     now.Unix(),
		"exp":     now.Add(TokenTTL).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
	if err != nil {
		return "", nil, fmt.Errorf("failed to sign token: %w", err)
	}
	return token, user, nil
}
