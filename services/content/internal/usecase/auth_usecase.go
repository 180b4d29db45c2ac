package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"hello-madurai/pkg/jwt"
	"hello-madurai/pkg/logger"
	"hello-madurai/services/content/internal/entity"
	"hello-madurai/services/content/internal/repo/persistent"

	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 8

type AuthUseCase interface {
	Login(ctx context.Context, email, password string) (string, *entity.Admin, error)
	CreateAdmin(ctx context.Context, email, name, password string) (*entity.Admin, error)
}

type authUseCase struct {
	admins     persistent.AdminRepository
	jwtService *jwt.Service
	logger     *logger.Logger
}

func NewAuthUseCase(admins persistent.AdminRepository, jwtService *jwt.Service, logger *logger.Logger) AuthUseCase {
	return &authUseCase{
		admins:     admins,
		jwtService: jwtService,
		logger:     logger,
	}
}

func (uc *authUseCase) Login(ctx context.Context, email, password string) (string, *entity.Admin, error) {
	admin, err := uc.admins.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return "", nil, entity.ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("failed to load admin: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return "", nil, entity.ErrInvalidCredentials
	}

	token, err := uc.jwtService.GenerateToken(admin.ID, admin.Role)
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate token: %w", err)
	}

	if err := uc.admins.TouchLastLogin(ctx, admin.ID, time.Now().UTC()); err != nil {
		uc.logger.Warn("Failed to record login for admin %s: %v", admin.ID, err)
	}

	return token, admin, nil
}

func (uc *authUseCase) CreateAdmin(ctx context.Context, email, name, password string) (*entity.Admin, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, entity.NewValidationError("email", "is required")
	}
	if len(password) < minPasswordLength {
		return nil, entity.NewValidationError("password", fmt.Sprintf("must be at least %d characters", minPasswordLength))
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	admin := &entity.Admin{
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
		Role:         jwt.RoleAdmin,
	}
	if err := uc.admins.Create(ctx, admin); err != nil {
		return nil, fmt.Errorf("failed to create admin: %w", err)
	}
	return admin, nil
}
