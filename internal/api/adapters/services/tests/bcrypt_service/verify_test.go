package bcrypt_service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"bookvault/internal/api/adapters/services"
	domainservices "bookvault/internal/api/domain/services"
)

func TestVerify(t *testing.T) {
	ctx := context.Background()
	service := services.NewBcrypt(bcrypt.MinCost)

	t.Run("correct password matches hash", func(t *testing.T) {
		hash, err := service.Hash(ctx, "password123")
		require.NoError(t, err)

		valid, err := service.Verify(ctx, "password123", hash)
		require.NoError(t, err)
		assert.True(t, valid)
	})

	t.Run("wrong password does not match hash", func(t *testing.T) {
		hash, err := service.Hash(ctx, "password123")
		require.NoError(t, err)

		valid, err := service.Verify(ctx, "wrongpassword", hash)
		require.NoError(t, err)
		assert.False(t, valid)
	})

	t.Run("error on empty password", func(t *testing.T) {
		valid, err := service.Verify(ctx, "", "some-hash")
		require.Error(t, err)
		assert.ErrorIs(t, err, domainservices.ErrInvalidPassword)
		assert.False(t, valid)
	})

	t.Run("error on empty hash", func(t *testing.T) {
		valid, err := service.Verify(ctx, "password123", "")
		require.Error(t, err)
		assert.ErrorIs(t, err, domainservices.ErrInvalidPassword)
		assert.False(t, valid)
	})

	t.Run("error on malformed hash", func(t *testing.T) {
		valid, err := service.Verify(ctx, "password123", "not-a-bcrypt-hash")
		require.Error(t, err)
		assert.False(t, valid)
	})
}
