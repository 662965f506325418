package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"bookvault/internal/api/domain/entities"
	"bookvault/internal/api/domain/services"
	"bookvault/internal/api/ports/api"
	"bookvault/internal/api/ports/cache"
	"bookvault/internal/api/ports/repositories"
	"bookvault/pkg/logger"
)

const (
	methodMe         = "Me"
	methodSaveBook   = "SaveBook"
	methodRemoveBook = "RemoveBook"

	msgNoAuthContext    = "operation requires authentication"
	msgProfileFromCache = "user profile found in cache"
	msgProfileCached    = "user profile cached"
	msgCacheWriteFailed = "failed to cache user profile"
	msgCacheDropFailed  = "failed to invalidate cached profile"
	msgUserVanished     = "authenticated user no longer exists"
	msgBookSaved        = "book saved to user collection"
	msgBookRemoved      = "book removed from user collection"
	msgInvalidBook      = "invalid book payload"

	msgErrFindingProfile = "error finding user profile"
	msgErrSavingBook     = "error saving book"
	msgErrRemovingBook   = "error removing book"

	errCtxAuthRequired    = "authentication required"
	errCtxFindingUserByID = "finding user by id"
	errCtxValidatingBook  = "validating book"
	errCtxSavingBook      = "saving book"
	errCtxRemovingBook    = "removing book"
)

// ProfileCacheKeyPrefix - префикс ключа кэша профиля пользователя.
const ProfileCacheKeyPrefix = "profile:"

// profileCacheTTL - время жизни кэшированного профиля.
const profileCacheTTL = 15 * time.Minute

// profileSnapshot - сериализуемый снимок профиля для кэша.
// Хэш пароля в кэш никогда не попадает.
type profileSnapshot struct {
	ID         string               `json:"id"`
	Username   string               `json:"username"`
	Email      string               `json:"email"`
	SavedBooks []entities.SavedBook `json:"saved_books"`
	CreatedAt  time.Time            `json:"created_at"`
	UpdatedAt  time.Time            `json:"updated_at"`
}

// LibraryUseCaseImpl реализует интерфейс LibraryUseCase.
type LibraryUseCaseImpl struct {
	userRepo repositories.UserRepository
	cache    cache.Cache
}

// NewLibraryUseCase создает новый экземпляр сервиса коллекции книг.
func NewLibraryUseCase(userRepo repositories.UserRepository, profileCache cache.Cache) api.LibraryUseCase {
	return &LibraryUseCaseImpl{
		userRepo: userRepo,
		cache:    profileCache,
	}
}

// Me возвращает профиль аутентифицированного пользователя вместе с
// коллекцией сохраненных книг. Исчезнувший после выдачи токена
// пользователь возвращается как пустой результат, а не как ошибка.
func (l *LibraryUseCaseImpl) Me(ctx context.Context, auth *services.AuthContext) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("method", methodMe))

	if auth == nil {
		log.Debug(ctx, msgNoAuthContext)
		return nil, fmt.Errorf("%s: %w", errCtxAuthRequired, services.ErrNotAuthenticated)
	}

	log = log.With(zap.String("userID", auth.UserID))

	if user, ok := l.fromCache(ctx, auth.UserID); ok {
		log.Debug(ctx, msgProfileFromCache)
		return user, nil
	}

	user, err := l.userRepo.FindByID(ctx, auth.UserID)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			log.Debug(ctx, msgUserVanished)
			return nil, nil
		}
		log.Error(ctx, msgErrFindingProfile, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxFindingUserByID, err)
	}

	l.toCache(ctx, user)
	return user, nil
}

// SaveBook атомарно добавляет книгу в коллекцию пользователя.
// Повторное сохранение книги с тем же bookID не создает дубликат.
func (l *LibraryUseCaseImpl) SaveBook(ctx context.Context, auth *services.AuthContext, book *entities.SavedBook) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("method", methodSaveBook))

	if auth == nil {
		log.Debug(ctx, msgNoAuthContext)
		return nil, fmt.Errorf("%s: %w", errCtxAuthRequired, services.ErrNotAuthenticated)
	}

	log = log.With(zap.String("userID", auth.UserID))

	if err := book.Validate(); err != nil {
		log.Debug(ctx, msgInvalidBook, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxValidatingBook, err)
	}

	log = log.With(zap.String("bookID", book.BookID))

	user, err := l.userRepo.AddSavedBook(ctx, auth.UserID, book)
	if err != nil {
		log.Error(ctx, msgErrSavingBook, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxSavingBook, err)
	}

	l.dropCache(ctx, auth.UserID)

	log.Info(ctx, msgBookSaved, zap.Int("bookCount", user.BookCount()))
	return user, nil
}

// RemoveBook атомарно удаляет книгу из коллекции пользователя.
// Удаление отсутствующей книги не является ошибкой.
func (l *LibraryUseCaseImpl) RemoveBook(ctx context.Context, auth *services.AuthContext, bookID string) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("method", methodRemoveBook))

	if auth == nil {
		log.Debug(ctx, msgNoAuthContext)
		return nil, fmt.Errorf("%s: %w", errCtxAuthRequired, services.ErrNotAuthenticated)
	}

	log = log.With(zap.String("userID", auth.UserID), zap.String("bookID", bookID))

	if bookID == "" {
		log.Debug(ctx, msgInvalidBook)
		return nil, fmt.Errorf("%s: %w", errCtxValidatingBook, entities.ErrEmptyBookID)
	}

	user, err := l.userRepo.RemoveSavedBook(ctx, auth.UserID, bookID)
	if err != nil {
		log.Error(ctx, msgErrRemovingBook, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxRemovingBook, err)
	}

	l.dropCache(ctx, auth.UserID)

	log.Info(ctx, msgBookRemoved, zap.Int("bookCount", user.BookCount()))
	return user, nil
}

func (l *LibraryUseCaseImpl) fromCache(ctx context.Context, userID string) (*entities.User, bool) {
	if l.cache == nil {
		return nil, false
	}

	cached, err := l.cache.Get(ctx, ProfileCacheKeyPrefix+userID)
	if err != nil || cached == "" {
		return nil, false
	}

	var snapshot profileSnapshot
	if err := json.Unmarshal([]byte(cached), &snapshot); err != nil {
		return nil, false
	}

	return &entities.User{
		ID:         snapshot.ID,
		Username:   snapshot.Username,
		Email:      snapshot.Email,
		SavedBooks: snapshot.SavedBooks,
		CreatedAt:  snapshot.CreatedAt,
		UpdatedAt:  snapshot.UpdatedAt,
	}, true
}

func (l *LibraryUseCaseImpl) toCache(ctx context.Context, user *entities.User) {
	if l.cache == nil {
		return
	}

	log := logger.Log(ctx)

	snapshot := profileSnapshot{
		ID:         user.ID,
		Username:   user.Username,
		Email:      user.Email,
		SavedBooks: user.SavedBooks,
		CreatedAt:  user.CreatedAt,
		UpdatedAt:  user.UpdatedAt,
	}

	data, err := json.Marshal(snapshot)
	if err != nil {
		return
	}

	if err := l.cache.Set(ctx, ProfileCacheKeyPrefix+user.ID, string(data), profileCacheTTL); err != nil {
		log.Warn(ctx, msgCacheWriteFailed, zap.Error(err))
		return
	}
	log.Debug(ctx, msgProfileCached)
}

func (l *LibraryUseCaseImpl) dropCache(ctx context.Context, userID string) {
	if l.cache == nil {
		return
	}

	if err := l.cache.Delete(ctx, ProfileCacheKeyPrefix+userID); err != nil {
		logger.Log(ctx).Warn(ctx, msgCacheDropFailed, zap.Error(err))
	}
}
