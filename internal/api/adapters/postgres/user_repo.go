// Package postgres provides PostgreSQL implementations of repositories.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"bookvault/internal/api/domain/entities"
	"bookvault/internal/api/ports/repositories"
	"bookvault/pkg/logger"
)

// Коды ошибок PostgreSQL.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

type PgxPoolInterface interface {
	QueryRow(ctx context.Context, query string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, query string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, query string, args ...interface{}) (pgx.Rows, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Close()
}

// UserRepository реализует интерфейс repositories.UserRepository для работы с Postgres.
type UserRepository struct {
	pool PgxPoolInterface
}

// NewUserRepository создает новый экземпляр репозитория пользователей.
func NewUserRepository(pool PgxPoolInterface) repositories.UserRepository {
	return &UserRepository{pool: pool}
}

// Create создает нового пользователя. Нарушение уникальности username
// или email возвращается как entities.ErrUserAlreadyExists.
func (r *UserRepository) Create(ctx context.Context, user *entities.User) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", "Create"))

	query := `
        INSERT INTO users (email, username, password_hash)
        VALUES ($1, $2, $3)
        RETURNING id, email, username, password_hash, created_at, updated_at
    `

	var createdUser entities.User
	err := r.pool.QueryRow(ctx, query,
		user.Email,
		user.Username,
		user.PasswordHash,
	).Scan(
		&createdUser.ID,
		&createdUser.Email,
		&createdUser.Username,
		&createdUser.PasswordHash,
		&createdUser.CreatedAt,
		&createdUser.UpdatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			log.Debug(ctx, "duplicate user", zap.String("constraint", pgErr.ConstraintName))
			return nil, entities.ErrUserAlreadyExists
		}
		log.Error(ctx, "error creating user", zap.Error(err))
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	createdUser.SavedBooks = []entities.SavedBook{}
	return &createdUser, nil
}

// FindByID находит пользователя по ID вместе с коллекцией сохраненных книг.
func (r *UserRepository) FindByID(ctx context.Context, id string) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", "FindByID"))

	query := `
        SELECT id, email, username, password_hash, created_at, updated_at
        FROM users
        WHERE id = $1
    `

	var user entities.User
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&user.ID,
		&user.Email,
		&user.Username,
		&user.PasswordHash,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "user not found", zap.String("id", id))
			return nil, entities.ErrUserNotFound
		}
		log.Error(ctx, "error finding user by id", zap.Error(err))
		return nil, fmt.Errorf("error querying user by id: %w", err)
	}

	if err := r.loadSavedBooks(ctx, &user); err != nil {
		return nil, err
	}

	return &user, nil
}

// FindByEmail находит пользователя по email вместе с коллекцией сохраненных книг.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", "FindByEmail"))

	query := `
        SELECT id, email, username, password_hash, created_at, updated_at
        FROM users
        WHERE email = $1
    `

	var user entities.User
	err := r.pool.QueryRow(ctx, query, email).Scan(
		&user.ID,
		&user.Email,
		&user.Username,
		&user.PasswordHash,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "user not found", zap.String("email", email))
			return nil, entities.ErrUserNotFound
		}
		log.Error(ctx, "error finding user by email", zap.Error(err))
		return nil, fmt.Errorf("error querying user by email: %w", err)
	}

	if err := r.loadSavedBooks(ctx, &user); err != nil {
		return nil, err
	}

	return &user, nil
}

// AddSavedBook атомарно добавляет книгу в коллекцию пользователя.
// Один условный INSERT: книга с уже существующим bookID не вставляется
// повторно, конкурирующие вставки разных книг не теряются.
func (r *UserRepository) AddSavedBook(ctx context.Context, userID string, book *entities.SavedBook) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", "AddSavedBook"))

	query := `
        INSERT INTO saved_books (user_id, book_id, title, description, image, link, authors)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        ON CONFLICT (user_id, book_id) DO NOTHING
    `

	// Колонка authors объявлена NOT NULL: nil-срез кодируется как NULL.
	authors := book.Authors
	if authors == nil {
		authors = []string{}
	}

	result, err := r.pool.Exec(ctx, query,
		userID,
		book.BookID,
		book.Title,
		book.Description,
		book.Image,
		book.Link,
		authors,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			log.Debug(ctx, "user not found", zap.String("userID", userID))
			return nil, entities.ErrUserNotFound
		}
		log.Error(ctx, "error saving book", zap.Error(err))
		return nil, fmt.Errorf("error saving book: %w", err)
	}

	if result.RowsAffected() == 0 {
		log.Debug(ctx, "book already saved", zap.String("bookID", book.BookID))
	}

	return r.FindByID(ctx, userID)
}

// RemoveSavedBook атомарно удаляет книгу из коллекции пользователя.
// Отсутствующая книга не является ошибкой.
func (r *UserRepository) RemoveSavedBook(ctx context.Context, userID, bookID string) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", "RemoveSavedBook"))

	query := `
        DELETE FROM saved_books
        WHERE user_id = $1 AND book_id = $2
    `

	result, err := r.pool.Exec(ctx, query, userID, bookID)
	if err != nil {
		log.Error(ctx, "error removing book", zap.Error(err))
		return nil, fmt.Errorf("error removing book: %w", err)
	}

	if result.RowsAffected() == 0 {
		log.Debug(ctx, "book was not in collection", zap.String("bookID", bookID))
	}

	return r.FindByID(ctx, userID)
}

// loadSavedBooks загружает коллекцию сохраненных книг пользователя.
func (r *UserRepository) loadSavedBooks(ctx context.Context, user *entities.User) error {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", "loadSavedBooks"))

	rows, err := r.pool.Query(ctx,
		`SELECT book_id, title, description, image, link, authors, created_at
         FROM saved_books
         WHERE user_id = $1
         ORDER BY created_at`,
		user.ID,
	)
	if err != nil {
		log.Error(ctx, "error loading saved books", zap.Error(err))
		return fmt.Errorf("error loading saved books: %w", err)
	}
	defer rows.Close()

	books := make([]entities.SavedBook, 0)
	for rows.Next() {
		var book entities.SavedBook
		if err := rows.Scan(&book.BookID, &book.Title, &book.Description, &book.Image, &book.Link, &book.Authors, &book.CreatedAt); err != nil {
			log.Error(ctx, "error scanning saved book", zap.Error(err))
			return fmt.Errorf("error scanning saved book: %w", err)
		}
		books = append(books, book)
	}

	if err := rows.Err(); err != nil {
		log.Error(ctx, "error iterating saved books", zap.Error(err))
		return fmt.Errorf("error iterating saved books: %w", err)
	}

	user.SavedBooks = books
	return nil
}
