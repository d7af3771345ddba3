package services

import (
	"context"
	"time"

	"github.com/khatasync/khata_backend/internal/core/domain"
	"github.com/khatasync/khata_backend/internal/dto"
)

// UserSvcFacade defines owner-account operations.
type UserSvcFacade interface {
	// Register creates the owner account with a bcrypt-hashed password.
	Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)

	// Authenticate verifies credentials and returns the user on success.
	Authenticate(ctx context.Context, username, password string) (*domain.User, error)

	// GetUser retrieves a user by ID.
	GetUser(ctx context.Context, userID string) (*domain.User, error)
}

// TokenSvcFacade issues bearer tokens for authenticated users.
type TokenSvcFacade interface {
	// GenerateToken creates a signed JWT for the user.
	GenerateToken(user *domain.User) (token string, expiresAt time.Time, err error)
}
