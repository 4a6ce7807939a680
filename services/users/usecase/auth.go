package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	jwtpkg "github.com/ridenaija/ridenaija/internal/pkg/jwt"
	"github.com/ridenaija/ridenaija/internal/pkg/logger"
	"github.com/ridenaija/ridenaija/internal/pkg/models"
	"github.com/ridenaija/ridenaija/internal/utils"
	"github.com/ridenaija/ridenaija/services/users"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 8

// Register creates a new passenger account and returns a signed token so
// the client is authenticated immediately after sign-up.
func (u *UserUC) Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {
	name := utils.SanitizeString(req.Name)
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !utils.IsValidEmail(email) {
		return nil, fmt.Errorf("invalid email address")
	}

	if len(req.Password) < minPasswordLength {
		return nil, fmt.Errorf("password must be at least %d characters", minPasswordLength)
	}

	isValid, formattedPhone, err := utils.ValidatePhoneNumber(req.Phone)
	if err != nil || !isValid {
		return nil, fmt.Errorf("invalid phone number")
	}

	role := req.Role
	if role == "" {
		role = "passenger"
	}
	if role != "passenger" && role != "driver" {
		return nil, fmt.Errorf("invalid role")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Name:         name,
		Email:        email,
		Phone:        formattedPhone,
		PasswordHash: string(hash),
		Role:         role,
		Rating:       5.0,
	}

	if err := u.userRepo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, users.ErrEmailTaken) {
			return nil, users.ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	token, expiresAt, err := jwtpkg.GenerateToken(user.ID, user.Email, user.Role, u.cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	logger.Info("User registered",
		logger.String("user_id", user.ID.String()),
		logger.String("phone", utils.MaskPhoneNumber(user.Phone)))

	return &models.AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      user,
	}, nil
}

// Login authenticates credentials against the stored bcrypt hash.
func (u *UserUC) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := u.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, users.ErrUserNotFound) {
			return nil, users.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, users.ErrInvalidCredentials
	}

	token, expiresAt, err := jwtpkg.GenerateToken(user.ID, user.Email, user.Role, u.cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	logger.Info("User logged in",
		logger.String("user_id", user.ID.String()))

	return &models.AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      user,
	}, nil
}

// GetProfile returns the account for the authenticated user ID.
func (u *UserUC) GetProfile(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	user, err := u.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return user, nil
}
