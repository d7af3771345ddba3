package services

import (
	"context"
	"testing"

	"github.com/khatasync/khata_backend/internal/apperrors"
	"github.com/khatasync/khata_backend/internal/core/domain"
	"github.com/khatasync/khata_backend/internal/dto"
	"github.com/khatasync/khata_backend/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRegisterHashesPassword(t *testing.T) {
	ctx := context.Background()
	userRepo := new(mockUserRepo)
	svc := NewUserService(userRepo)

	var saved domain.User
	userRepo.On("SaveUser", ctx, mock.AnythingOfType("domain.User")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(domain.User)
		}).Return(nil)

	user, err := svc.Register(ctx, dto.RegisterRequest{
		Name:     "Owner",
		Username: "owner",
		Password: "correct-horse",
	})
	require.NoError(t, err)

	assert.NotEqual(t, "correct-horse", saved.PasswordHash)
	assert.True(t, utils.CheckPasswordHash("correct-horse", saved.PasswordHash))
	assert.Equal(t, user.UserID, saved.CreatedBy)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	ctx := context.Background()
	userRepo := new(mockUserRepo)
	svc := NewUserService(userRepo)

	userRepo.On("SaveUser", ctx, mock.Anything).Return(apperrors.ErrDuplicate)

	_, err := svc.Register(ctx, dto.RegisterRequest{
		Name:     "Owner",
		Username: "owner",
		Password: "correct-horse",
	})
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)
}

func TestAuthenticateHidesFailureCause(t *testing.T) {
	ctx := context.Background()
	userRepo := new(mockUserRepo)
	svc := NewUserService(userRepo)

	hash, err := utils.HashPassword("right-password")
	require.NoError(t, err)

	userRepo.On("FindUserByUsername", ctx, "owner").Return(&domain.User{
		UserID: "user-1", Username: "owner", PasswordHash: hash,
	}, nil)
	userRepo.On("FindUserByUsername", ctx, "ghost").Return(nil, apperrors.ErrNotFound)

	// Unknown username and wrong password come back as the same error.
	_, err = svc.Authenticate(ctx, "ghost", "whatever")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	_, err = svc.Authenticate(ctx, "owner", "wrong-password")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	user, err := svc.Authenticate(ctx, "owner", "right-password")
	require.NoError(t, err)
	assert.Equal(t, "user-1", user.UserID)
}
