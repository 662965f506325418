package jwt_service_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookvault/internal/api/adapters/services"
	domainservices "bookvault/internal/api/domain/services"
	"bookvault/pkg/logger"
)

//nolint:gosec
const (
	msgNoErrorValidatingToken       = "should validate token without errors"
	msgInvalidTokenFormat           = "should return invalid token error for bad format"
	msgInvalidTokenReturnedError    = "invalid token should return error"
	msgCorrectIdentityReturned      = "should return correct user identity"
	msgExpiredTokenReturnsError     = "expired token should return error"
	msgCreateTokenWithNoneAlgorithm = "should create token with none algorithm"
	msgCreateTokenWithCustomClaims  = "should create token with custom claims"
)

func TestValidateToken(t *testing.T) {
	testLogger, err := logger.NewLogger(logger.Development, "debug")
	require.NoError(t, err, msgErrorCreatingTestLogger)

	ctx := context.Background()
	ctx = logger.NewContext(ctx, testLogger)

	t.Run("successful validation of a valid token", func(t *testing.T) {
		secretKey := "test-secret-key-12345"
		tokenTTL := 24 * time.Hour
		userID := "test-user-id-123"
		username := "reader"
		email := "reader@example.com"

		service := services.NewJWT(secretKey, tokenTTL)

		token, _, err := service.GenerateToken(ctx, userID, username, email)
		require.NoError(t, err, msgNoErrorGeneratingToken)
		assert.NotEmpty(t, token, msgTokenNotEmpty)

		authCtx, err := service.ValidateToken(ctx, token)
		require.NoError(t, err, msgNoErrorValidatingToken)
		require.NotNil(t, authCtx)
		assert.Equal(t, userID, authCtx.UserID, msgCorrectIdentityReturned)
		assert.Equal(t, username, authCtx.Username, msgCorrectIdentityReturned)
		assert.Equal(t, email, authCtx.Email, msgCorrectIdentityReturned)
	})

	t.Run("error on expired token", func(t *testing.T) {
		secretKey := "test-secret-key-12345"
		tokenTTL := -15 * time.Minute

		service := services.NewJWT(secretKey, tokenTTL)

		token, _, err := service.GenerateToken(ctx, "test-user-id-123", "reader", "reader@example.com")
		require.NoError(t, err, msgNoErrorGeneratingToken)

		authCtx, err := service.ValidateToken(ctx, token)
		require.Error(t, err, msgExpiredTokenReturnsError)
		assert.ErrorIs(t, err, domainservices.ErrExpiredJWTToken)
		assert.Nil(t, authCtx)
	})

	t.Run("error on invalid token format", func(t *testing.T) {
		service := services.NewJWT("test-secret-key-12345", 24*time.Hour)

		authCtx, err := service.ValidateToken(ctx, "invalid.token.format")
		require.Error(t, err, msgInvalidTokenReturnedError)
		assert.ErrorIs(t, err, domainservices.ErrInvalidJWTToken, msgInvalidTokenFormat)
		assert.Nil(t, authCtx)
	})

	t.Run("error on token with wrong signature", func(t *testing.T) {
		service1 := services.NewJWT("test-secret-key-12345", 24*time.Hour)
		service2 := services.NewJWT("different-secret-key-67890", 24*time.Hour)

		token, _, err := service1.GenerateToken(ctx, "test-user-id-123", "reader", "reader@example.com")
		require.NoError(t, err, msgNoErrorGeneratingToken)

		authCtx, err := service2.ValidateToken(ctx, token)
		require.Error(t, err, msgInvalidTokenReturnedError)
		assert.ErrorIs(t, err, domainservices.ErrInvalidJWTToken, msgInvalidTokenFormat)
		assert.Nil(t, authCtx)
	})

	t.Run("error on token with invalid signing method", func(t *testing.T) {
		secretKey := "test-secret-key-12345"
		userID := "test-user-id-123"

		claims := &services.Claims{
			UserID:   userID,
			Username: "reader",
			Email:    "reader@example.com",
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
				IssuedAt:  jwt.NewNumericDate(time.Now()),
				Subject:   userID,
			},
		}

		token := jwt.NewWithClaims(jwt.SigningMethodNone, claims)
		tokenString, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err, msgCreateTokenWithNoneAlgorithm)

		service := services.NewJWT(secretKey, 24*time.Hour)
		authCtx, err := service.ValidateToken(ctx, tokenString)
		require.Error(t, err, msgInvalidTokenReturnedError)
		assert.ErrorIs(t, err, domainservices.ErrInvalidJWTToken, msgInvalidTokenFormat)
		assert.Nil(t, authCtx)
	})

	t.Run("error on empty token", func(t *testing.T) {
		service := services.NewJWT("test-secret-key-12345", 24*time.Hour)

		authCtx, err := service.ValidateToken(ctx, "")
		require.Error(t, err, msgInvalidTokenReturnedError)
		assert.ErrorIs(t, err, domainservices.ErrInvalidJWTToken, msgInvalidTokenFormat)
		assert.Nil(t, authCtx)
	})

	t.Run("error on token without user identity", func(t *testing.T) {
		secretKey := "test-secret-key-12345"

		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"some_random_field": "not_user_id",
			"exp":               time.Now().Add(time.Hour).Unix(),
		})

		tokenString, err := token.SignedString([]byte(secretKey))
		require.NoError(t, err, msgCreateTokenWithCustomClaims)

		service := services.NewJWT(secretKey, 24*time.Hour)
		authCtx, err := service.ValidateToken(ctx, tokenString)
		require.Error(t, err, msgInvalidTokenReturnedError)
		assert.ErrorIs(t, err, domainservices.ErrInvalidJWTToken, msgInvalidTokenFormat)
		assert.Nil(t, authCtx)
	})
}
