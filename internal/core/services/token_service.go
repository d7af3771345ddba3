package services

import (
	"time"

	"github.com/khatasync/khata_backend/internal/core/domain"
	"github.com/khatasync/khata_backend/internal/utils"
	"github.com/khatasync/khata_backend/pkg/config"
)

// TokenService issues HMAC-signed JWTs from the application config.
type TokenService struct {
	secret string
	expiry time.Duration
	issuer string
}

func NewTokenService(cfg *config.Config) *TokenService {
	return &TokenService{
		secret: cfg.JWTSecret,
		expiry: cfg.JWTExpiryDuration,
		issuer: cfg.JWTIssuer,
	}
}

func (s *TokenService) GenerateToken(user *domain.User) (string, time.Time, error) {
	return utils.GenerateJWT(user.UserID, s.secret, s.expiry, s.issuer)
}
