// Package middleware содержит промежуточное ПО для HTTP обработчиков.
package middleware

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	svc "bookvault/internal/api/ports/services"
	"bookvault/pkg/logger"
)

// AuthContextKey - ключ Locals с проверенным контекстом пользователя.
const AuthContextKey = "authContext"

// Константы для логирования.
const (
	LogAuthMiddleware = "auth middleware"

	ErrorNoAuthHeader       = "no authorization header provided"
	ErrorInvalidTokenFormat = "invalid token format"
	ErrorInvalidToken       = "invalid or expired token"
)

// NewAuthMiddleware создает промежуточное ПО проверки bearer-токена.
// Проверка закрыта по умолчанию: любая ошибка проверки означает отказ,
// частичная личность в запрос не попадает.
func NewAuthMiddleware(tokenSvc svc.TokenService) fiber.Handler {
	return func(ctx fiber.Ctx) error {
		requestCtx := ctx.Context()
		log := logger.Log(requestCtx).With(zap.String("middleware", "auth"))
		log.Debug(requestCtx, LogAuthMiddleware)

		authHeader := ctx.Get("Authorization")
		if authHeader == "" {
			log.Debug(requestCtx, ErrorNoAuthHeader)
			if err := ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": ErrorNoAuthHeader,
			}); err != nil {
				return fmt.Errorf("failed to send unauthorized response: %w", err)
			}
			return nil
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			log.Debug(requestCtx, ErrorInvalidTokenFormat)
			if err := ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": ErrorInvalidTokenFormat,
			}); err != nil {
				return fmt.Errorf("failed to send unauthorized response: %w", err)
			}
			return nil
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")

		authCtx, err := tokenSvc.ValidateToken(requestCtx, token)
		if err != nil {
			log.Debug(requestCtx, ErrorInvalidToken, zap.Error(err))
			if err := ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": ErrorInvalidToken,
			}); err != nil {
				return fmt.Errorf("failed to send unauthorized response: %w", err)
			}
			return nil
		}

		ctx.Locals(AuthContextKey, authCtx)

		return ctx.Next()
	}
}
