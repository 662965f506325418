package services

import (
	"context"
	"time"

	domain "bookvault/internal/api/domain/services"
)

// TokenService определяет интерфейс для операций с токенами JWT.
type TokenService interface {
	GenerateToken(ctx context.Context, userID, username, email string) (string, time.Time, error)

	ValidateToken(ctx context.Context, token string) (*domain.AuthContext, error)
}
