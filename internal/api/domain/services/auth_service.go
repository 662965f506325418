package services

import (
	"errors"
	"time"

	"bookvault/internal/api/domain/entities"
)

// Ошибки домена аутентификации.
var (
	ErrIncorrectCredentials  = errors.New("incorrect credentials")
	ErrNotAuthenticated      = errors.New("not authenticated")
	ErrTokenGenerationFailed = errors.New("failed to generate authentication token")
)

// AuthContext представляет проверенную личность пользователя для одного запроса.
// Выводится из подписанного токена и никогда не сохраняется.
type AuthContext struct {
	UserID   string
	Username string
	Email    string
}

// AuthResult представляет результат успешного входа или регистрации.
type AuthResult struct {
	Token     string
	ExpiresAt time.Time
	User      *entities.User
}
