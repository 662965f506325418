package userrepo_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookvault/internal/api/adapters/postgres"
	"bookvault/internal/api/domain/entities"
	"bookvault/pkg/logger"
)

func TestUserRepository_FindByID(t *testing.T) {
	ctx := context.Background()
	testLogger, err := logger.NewLogger(logger.Development, "debug")
	require.NoError(t, err)
	ctx = logger.NewContext(ctx, testLogger)

	userID := "user-uuid-123"
	now := time.Now().UTC().Truncate(time.Microsecond)

	userColumns := []string{"id", "email", "username", "password_hash", "created_at", "updated_at"}
	bookColumns := []string{"book_id", "title", "description", "image", "link", "authors", "created_at"}

	t.Run("Успешный поиск пользователя с книгами", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("SELECT id, email, username, password_hash, created_at, updated_at FROM users .+").
			WithArgs(userID).
			WillReturnRows(
				pgxmock.NewRows(userColumns).
					AddRow(userID, "reader@example.com", "reader", "hash", now, now),
			)

		mock.ExpectQuery("SELECT book_id, title, description, image, link, authors, created_at FROM saved_books .+").
			WithArgs(userID).
			WillReturnRows(
				pgxmock.NewRows(bookColumns).
					AddRow("book-1", "The Hobbit", "A hobbit goes on an adventure.", "hobbit.jpg", "https://example.com/hobbit", []string{"J.R.R. Tolkien"}, now.Add(-time.Hour)).
					AddRow("book-2", "Dune", "", "", "", []string{"Frank Herbert"}, now),
			)

		repo := postgres.NewUserRepository(mock)
		user, err := repo.FindByID(ctx, userID)

		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, userID, user.ID)
		assert.Equal(t, "reader@example.com", user.Email)
		require.Len(t, user.SavedBooks, 2)
		assert.Equal(t, "book-1", user.SavedBooks[0].BookID)
		assert.Equal(t, []string{"J.R.R. Tolkien"}, user.SavedBooks[0].Authors)
		assert.Equal(t, "book-2", user.SavedBooks[1].BookID)
		assert.Equal(t, 2, user.BookCount())
		assert.True(t, user.HasBook("book-2"))

		err = mock.ExpectationsWereMet()
		require.NoError(t, err)
	})

	t.Run("Пользователь без сохраненных книг", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("SELECT id, email, username, password_hash, created_at, updated_at FROM users .+").
			WithArgs(userID).
			WillReturnRows(
				pgxmock.NewRows(userColumns).
					AddRow(userID, "reader@example.com", "reader", "hash", now, now),
			)

		mock.ExpectQuery("SELECT book_id, title, description, image, link, authors, created_at FROM saved_books .+").
			WithArgs(userID).
			WillReturnRows(pgxmock.NewRows(bookColumns))

		repo := postgres.NewUserRepository(mock)
		user, err := repo.FindByID(ctx, userID)

		require.NoError(t, err)
		require.NotNil(t, user)
		assert.NotNil(t, user.SavedBooks)
		assert.Empty(t, user.SavedBooks)

		err = mock.ExpectationsWereMet()
		require.NoError(t, err)
	})

	t.Run("Пользователь не найден", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("SELECT id, email, username, password_hash, created_at, updated_at FROM users .+").
			WithArgs("missing-id").
			WillReturnRows(pgxmock.NewRows(userColumns))

		repo := postgres.NewUserRepository(mock)
		user, err := repo.FindByID(ctx, "missing-id")

		assert.Nil(t, user)
		require.Error(t, err)
		assert.ErrorIs(t, err, entities.ErrUserNotFound)

		err = mock.ExpectationsWereMet()
		require.NoError(t, err)
	})

	t.Run("Ошибка БД при загрузке книг", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("SELECT id, email, username, password_hash, created_at, updated_at FROM users .+").
			WithArgs(userID).
			WillReturnRows(
				pgxmock.NewRows(userColumns).
					AddRow(userID, "reader@example.com", "reader", "hash", now, now),
			)

		mock.ExpectQuery("SELECT book_id, title, description, image, link, authors, created_at FROM saved_books .+").
			WithArgs(userID).
			WillReturnError(errors.New("database connection error"))

		repo := postgres.NewUserRepository(mock)
		user, err := repo.FindByID(ctx, userID)

		assert.Nil(t, user)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "error loading saved books")

		err = mock.ExpectationsWereMet()
		require.NoError(t, err)
	})
}
